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
	swagger "github.com/gofiber/swagger"
	"github.com/localnerve/decideforme/internal/ai"
	"github.com/localnerve/decideforme/internal/config"
	"github.com/localnerve/decideforme/internal/database"
	"github.com/localnerve/decideforme/internal/events"
	"github.com/localnerve/decideforme/internal/handlers"
	"github.com/localnerve/decideforme/internal/kvstore"
	"github.com/localnerve/decideforme/internal/middleware"
	"github.com/localnerve/decideforme/internal/services"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	_ "github.com/localnerve/decideforme/docs/api" // Swagger docs
)

// @title DecideForMe API
// @version 1.0.0
// @description Decision assistant service: spin wheel, vibe quiz, AI chat and comparisons, admin dashboard
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/decideforme
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name dfm_profile

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Connect to the database when it backs the store
	var db *gorm.DB
	if cfg.StoreType == kvstore.TypeDatabase {
		db, err = database.Connect(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close(db)

		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	// Connect to redis for the redis store or the event relay
	var rdb *redis.Client
	if cfg.NeedsRedis() {
		rdb, err = database.ConnectRedis(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer rdb.Close()
	}

	store, err := kvstore.Open(cfg.StoreType, db, rdb)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreType, err)
	}

	bus := events.NewBus()
	if cfg.EventsRedis {
		relay := events.NewRedisRelay(rdb, bus)
		go func() {
			if err := relay.Run(ctx); err != nil {
				log.Printf("Event relay stopped: %v", err)
			}
		}()
	}

	gateway, err := ai.New(ctx, cfg.APIKey, cfg.GeminiModel, cfg.AITimeout)
	if err != nil {
		log.Fatalf("Failed to create AI gateway: %v", err)
	}

	registry := services.NewRegistry(store, bus, gateway, services.OptionsFromConfig(cfg))

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("decideforme")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())
	handlers.Register(api, cfg, registry)

	// 404 handler
	app.Use(handlers.NotFound)

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		stop()
		// Event streams only end when their connection closes
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	port := cfg.Port
	log.Printf("Starting server on port %s with the %s store", port, cfg.StoreType)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}
