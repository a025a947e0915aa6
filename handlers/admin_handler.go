package handlers

import (
	"crypto/subtle"
	"errors"
	"log"
	"time"

	config "github.com/akshat2912/vidyalaya/configs"
	"github.com/akshat2912/vidyalaya/models"
	"github.com/akshat2912/vidyalaya/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminLogin checks the fixed admin credentials from config and issues a
// short-lived signed token. Admins are not Account rows.
func AdminLogin(c *fiber.Ctx) error {
	var req AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(config.Config("ADMIN_USERNAME")))
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(config.Config("ADMIN_PASSWORD")))
	if userOK&passOK != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid username or password"})
	}

	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": "ADMIN",
		"exp":  time.Now().Add(12 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString([]byte(config.Config("JWT_SECRET")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create token"})
	}

	return c.JSON(fiber.Map{"token": t})
}

// ListPendingInstitutions handles GET /admin/institutions/pending.
func ListPendingInstitutions(c *fiber.Ctx) error {
	pending, err := services.Onboarding.Pending()
	if err != nil {
		log.Printf("🔥 Failed to list pending institutions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}
	return c.JSON(pending)
}

type DecideInstitutionRequest struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	Reason string `json:"reason"`
}

// DecideInstitution handles POST /admin/institutions/:id/approve. Approval
// rotates the account password and mails the new credentials; rejection mails
// the reason. Either way the decision is single-shot.
func DecideInstitution(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid institution ID"})
	}

	var req DecideInstitutionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if req.Status == models.ApprovalStatusApproved {
		err = services.Onboarding.Approve(id)
	} else {
		err = services.Onboarding.Reject(id, req.Reason)
	}
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Institution not found"})
		case errors.Is(err, services.ErrAlreadyDecided):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "ALREADY_DECIDED"})
		default:
			log.Printf("🔥 Failed to decide institution %s: %v", id, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update institution"})
		}
	}

	return c.JSON(fiber.Map{"message": "Institution " + req.Status})
}
