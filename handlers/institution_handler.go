package handlers

import (
	"errors"
	"log"

	"github.com/akshat2912/vidyalaya/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type RegisterInstitutionRequest struct {
	RegisteredName     string `json:"registeredName" validate:"required,min=3"`
	RegistrationNumber string `json:"registrationNumber" validate:"required,min=3"`
	InstitutionType    string `json:"institutionType" validate:"required,oneof=SCHOOL COACHING COLLEGE"`
	StreetAddress      string `json:"streetAddress" validate:"required,min=3"`
	City               string `json:"city" validate:"required,min=2"`
	District           string `json:"district" validate:"required,min=2"`
	State              string `json:"state" validate:"required,min=2"`
	Pincode            string `json:"pincode" validate:"required,len=6,numeric"`
	PhoneNumber        string `json:"phoneNumber" validate:"required,min=10,max=15"`
	Email              string `json:"email" validate:"required,email"`
	PrincipalName      string `json:"principalName" validate:"required,min=3"`
	PrincipalPhone     string `json:"principalPhone" validate:"required,min=10,max=15"`
	PlanType           string `json:"planType" validate:"required,oneof=BASIC PRO"`
	PlanDuration       int    `json:"planDuration" validate:"required,min=1,max=12"`
}

// RegisterInstitution handles POST /institutions/register.
func RegisterInstitution(c *fiber.Ctx) error {
	var req RegisterInstitutionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	result, err := services.Onboarding.Register(services.RegisterInstitutionInput{
		RegisteredName:     req.RegisteredName,
		RegistrationNumber: req.RegistrationNumber,
		InstitutionType:    req.InstitutionType,
		StreetAddress:      req.StreetAddress,
		City:               req.City,
		District:           req.District,
		State:              req.State,
		Pincode:            req.Pincode,
		PhoneNumber:        req.PhoneNumber,
		Email:              req.Email,
		PrincipalName:      req.PrincipalName,
		PrincipalPhone:     req.PrincipalPhone,
		PlanType:           req.PlanType,
		PlanDuration:       req.PlanDuration,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateRegistration):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "DUPLICATE_REGISTRATION",
				"detail":  err.Error(),
			})
		case errors.Is(err, services.ErrGatewayUnavailable):
			log.Printf("🔥 Gateway order creation failed: %v", err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"message": "Payment gateway unavailable. Please try again later.",
			})
		default:
			log.Printf("🔥 Institution registration failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to register institution"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}
