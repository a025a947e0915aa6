package handlers

import (
	"errors"
	"log"

	"github.com/akshat2912/vidyalaya/services"
	"github.com/gofiber/fiber/v2"
)

type VerifyPaymentRequest struct {
	OrderID   string `json:"orderId" validate:"required"`
	PaymentID string `json:"paymentId" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

// VerifyPayment handles POST /payments/verify, the gateway's signed callback.
func VerifyPayment(c *fiber.Ctx) error {
	var req VerifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	err := services.Onboarding.ConfirmPayment(req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Payment order not found"})
		case errors.Is(err, services.ErrInvalidSignature):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "INVALID_SIGNATURE"})
		default:
			log.Printf("🔥 Payment confirmation failed for order %s: %v", req.OrderID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to confirm payment"})
		}
	}

	return c.JSON(fiber.Map{"message": "Payment verified successfully"})
}
