package routes

import (
	"github.com/akshat2912/vidyalaya/handlers"
	"github.com/gofiber/fiber/v2"
)

func InstitutionRoutes(app *fiber.App) {
	app.Post("/institutions/register", handlers.RegisterInstitution)
}
