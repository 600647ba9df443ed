package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	swagger "github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/localnerve/nickstore/data"
	"github.com/localnerve/nickstore/internal/config"
	"github.com/localnerve/nickstore/internal/database"
	"github.com/localnerve/nickstore/internal/handlers"
	"github.com/localnerve/nickstore/internal/middleware"
	"github.com/localnerve/nickstore/internal/services"
	"github.com/localnerve/nickstore/internal/store"

	_ "github.com/localnerve/nickstore/docs/api" // Swagger docs
)

// @title Game Nick Store API
// @version 1.0.0
// @description Catalog service for a game account storefront

// @contact.name API Support
// @contact.url https://github.com/localnerve/nickstore
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:8000
// @BasePath /api
// @schemes http https

const seedTimeout = 30 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if cfg.SeedCategories {
		if err := seedCategories(store.New(db)); err != nil {
			log.Fatalf("Failed to seed categories: %v", err)
		}
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
		AppName:      "nickstore",
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(compress.New())
	app.Use(middleware.CORS(cfg.CORSAllowOrigins))

	// Prometheus metrics
	prometheus := fiberprometheus.New("nickstore")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	handlers.RegisterRoutes(app, cfg, db)

	// 404 handler
	app.Use(handlers.NotFound)

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// seedCategories adds the default categories when the catalog has none
func seedCategories(s *store.Store) error {
	names, err := data.DefaultCategories()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	seeded, err := services.NewCategoryService(s).EnsureSeeded(ctx, names)
	if err != nil {
		return err
	}
	if seeded > 0 {
		log.Printf("Seeded %d default categories", seeded)
	}
	return nil
}
