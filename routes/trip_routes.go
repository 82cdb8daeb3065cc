package routes

import (
	"transport-app/config"
	"transport-app/controllers"
	"transport-app/middleware"
	"transport-app/repositories"
	"transport-app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupTripRoutes(app *fiber.App, db *gorm.DB) {
	service := services.NewTripService(
		repositories.NewTripRepository(db),
		repositories.NewTruckRepository(db),
		repositories.NewDriverRepository(db),
		repositories.NewClientRepository(db),
		repositories.NewIncomeRepository(db),
		repositories.NewBuiltyRepository(db),
	)
	controller := controllers.NewTripController(service)

	api := app.Group(config.MAIN_ROUTES+"/trips", middleware.AuthMiddleware(db))
	api.Get("/", controller.GetAll)
	api.Post("/", controller.Plan)
	api.Get("/:id", controller.GetByID)
	api.Put("/:id/start", controller.Start)
	api.Put("/:id/complete", controller.Complete)
	api.Put("/:id/cancel", controller.Cancel)
	api.Put("/:id/costs", controller.UpdateCosts)
	api.Get("/:id/profit", controller.Profit)
	api.Delete("/:id", controller.Delete)
}
