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

func SetupTruckRoutes(app *fiber.App, db *gorm.DB) {
	controller := controllers.NewTruckController(services.NewTruckService(repositories.NewTruckRepository(db)))

	api := app.Group(config.MAIN_ROUTES+"/trucks", middleware.AuthMiddleware(db))
	api.Get("/", controller.GetAll)
	api.Post("/", controller.Create)
	api.Get("/documents-expiring", controller.DocumentsExpiring)
	api.Get("/:id", controller.GetByID)
	api.Put("/:id", controller.Update)
	api.Delete("/:id", controller.Delete)
	api.Put("/:id/retire", controller.Retire)
	api.Get("/:id/valuation", controller.Valuation)
}
