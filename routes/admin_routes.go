package routes

import (
	"github.com/akshat2912/vidyalaya/handlers"
	"github.com/akshat2912/vidyalaya/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	app.Post("/admin/login", handlers.AdminLogin)

	admin := app.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	admin.Get("/institutions/pending", handlers.ListPendingInstitutions)
	admin.Post("/institutions/:id/approve", handlers.DecideInstitution)
}
