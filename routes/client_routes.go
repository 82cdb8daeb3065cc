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

func SetupClientRoutes(app *fiber.App, db *gorm.DB) {
	clientRepo := repositories.NewClientRepository(db)
	builtyRepo := repositories.NewBuiltyRepository(db)
	controller := controllers.NewClientController(services.NewClientService(clientRepo, builtyRepo))

	api := app.Group(config.MAIN_ROUTES+"/clients", middleware.AuthMiddleware(db))
	api.Get("/", controller.GetAll)
	api.Post("/", controller.Create)
	api.Post("/export-outstanding", controller.ExportOutstanding)
	api.Get("/:id", controller.GetByID)
	api.Put("/:id", controller.Update)
	api.Delete("/:id", controller.Delete)
	api.Put("/:id/status", controller.SetStatus)
	api.Get("/:id/outstanding", controller.Outstanding)
}
