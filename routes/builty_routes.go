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

func SetupBuiltyRoutes(app *fiber.App, db *gorm.DB) {
	clientRepo := repositories.NewClientRepository(db)
	builtyRepo := repositories.NewBuiltyRepository(db)
	clientService := services.NewClientService(clientRepo, builtyRepo)
	service := services.NewBuiltyService(builtyRepo, repositories.NewTripRepository(db), clientService)
	controller := controllers.NewBuiltyController(service)

	api := app.Group(config.MAIN_ROUTES+"/builties", middleware.AuthMiddleware(db))
	api.Get("/", controller.GetAll)
	api.Post("/", controller.Create)
	api.Post("/upload-excel", controller.ImportBuilties)
	api.Post("/export", controller.ExportRegister)
	api.Get("/:id", controller.GetByID)
	api.Put("/:id", controller.Update)
	api.Post("/:id/payments", controller.RecordPayment)
	api.Put("/:id/delivery-status", controller.SetDeliveryStatus)
	api.Put("/:id/pdf", controller.AttachPdf)
	api.Delete("/:id", controller.Delete)
}
