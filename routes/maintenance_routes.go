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

func SetupMaintenanceRoutes(app *fiber.App, db *gorm.DB) {
	service := services.NewMaintenanceService(repositories.NewMaintenanceRepository(db), repositories.NewTruckRepository(db))
	controller := controllers.NewMaintenanceController(service)

	api := app.Group(config.MAIN_ROUTES+"/maintenance", middleware.AuthMiddleware(db))
	api.Get("/", controller.GetAll)
	api.Post("/", controller.Schedule)
	api.Post("/export", controller.ExportJobs)
	api.Post("/overdue-sweep", controller.OverdueSweep)
	api.Get("/upcoming", controller.Upcoming)
	api.Get("/cost-by-truck/:truck_id", controller.CostByTruck)
	api.Get("/:id", controller.GetByID)
	api.Put("/:id", controller.Update)
	api.Put("/:id/start", controller.Start)
	api.Put("/:id/complete", controller.Complete)
	api.Put("/:id/cancel", controller.Cancel)
	api.Delete("/:id", controller.Delete)
}
