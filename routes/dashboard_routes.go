package routes

import (
	"transport-app/config"
	"transport-app/controllers"
	"transport-app/middleware"
	"transport-app/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	controller := controllers.NewDashboardController(
		repositories.NewTruckRepository(db),
		repositories.NewDriverRepository(db),
		repositories.NewTripRepository(db),
		repositories.NewBuiltyRepository(db),
		repositories.NewIncomeRepository(db),
		repositories.NewMaintenanceRepository(db),
	)

	api := app.Group(config.MAIN_ROUTES+"/dashboard", middleware.AuthMiddleware(db))
	api.Get("/overview", controller.Overview)
	api.Get("/profit-and-loss", controller.ProfitAndLoss)
	api.Get("/top-clients", controller.TopClients)
	api.Get("/expiring-documents", controller.ExpiringDocuments)
}
