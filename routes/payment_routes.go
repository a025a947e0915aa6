package routes

import (
	"github.com/akshat2912/vidyalaya/handlers"
	"github.com/gofiber/fiber/v2"
)

func PaymentRoutes(app *fiber.App) {
	app.Post("/payments/verify", handlers.VerifyPayment)
}
