package main

import (
	"transport-app/config"
	"transport-app/controllers/idgen"
	"transport-app/database"
	"transport-app/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadConfig()
	log := config.InitLogger()

	app := fiber.New()

	if err := database.EnsureDatabaseExists(config.DBName); err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}

	db, err := database.OpenConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	database.RunSeeders(db)
	idgen.Init()

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupDashboardRoutes(app, db)
	routes.SetupClientRoutes(app, db)
	routes.SetupDriverRoutes(app, db)
	routes.SetupTruckRoutes(app, db)
	routes.SetupTripRoutes(app, db)
	routes.SetupBuiltyRoutes(app, db)
	routes.SetupIncomeRoutes(app, db)
	routes.SetupMaintenanceRoutes(app, db)

	log.Infof("Server listening on port %s", config.APP_PORT)
	if err := app.Listen(":" + config.APP_PORT); err != nil {
		log.Fatal(err)
	}
}
