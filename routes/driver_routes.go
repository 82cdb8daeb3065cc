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

func SetupDriverRoutes(app *fiber.App, db *gorm.DB) {
	controller := controllers.NewDriverController(services.NewDriverService(repositories.NewDriverRepository(db)))

	api := app.Group(config.MAIN_ROUTES+"/drivers", middleware.AuthMiddleware(db))
	api.Get("/", controller.GetAll)
	api.Post("/", controller.Create)
	api.Get("/license-expiring", controller.LicenseExpiring)
	api.Get("/:id", controller.GetByID)
	api.Put("/:id", controller.Update)
	api.Delete("/:id", controller.Delete)
	api.Put("/:id/status", controller.SetStatus)
}
