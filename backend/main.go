package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"quizdeck/backend/config"
	"quizdeck/backend/generator"
	"quizdeck/backend/middleware"
	"quizdeck/backend/routes"
	"quizdeck/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	gen := generator.NewClient(cfg)
	routes.SetupRoutes(app, db, cfg, gen.GenerateQuestions)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
