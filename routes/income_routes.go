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

func SetupIncomeRoutes(app *fiber.App, db *gorm.DB) {
	service := services.NewIncomeService(repositories.NewIncomeRepository(db), repositories.NewTruckRepository(db))
	controller := controllers.NewIncomeController(service)

	api := app.Group(config.MAIN_ROUTES+"/incomes", middleware.AuthMiddleware(db))
	api.Get("/", controller.GetAll)
	api.Post("/", controller.Create)
	api.Post("/export", controller.ExportIncomes)
	api.Get("/monthly-statement", controller.MonthlyStatement)
	api.Get("/by-category", controller.TotalByCategory)
	api.Get("/by-truck/:truck_id", controller.TotalByTruck)
	api.Get("/:id", controller.GetByID)
	api.Put("/:id", controller.Update)
	api.Delete("/:id", controller.Delete)
}
