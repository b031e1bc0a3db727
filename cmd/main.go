package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "booking-backend/docs"
	"booking-backend/internal/config"
	"booking-backend/internal/database"
	"booking-backend/internal/events"
	"booking-backend/internal/handlers"
	"booking-backend/internal/middleware"
	"booking-backend/internal/repository"
	"booking-backend/internal/routes"
	"booking-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title Booking Backend API
// @version 1.0
// @description Venues, artists and the shows that bring them together: listing, search, creation, editing and deletion
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8010
// @BasePath /api/v1
// @schemes http https

func main() {
	// Load environment variables
	loadEnvFile()

	// Load configuration
	cfg := config.Load()

	// Setup logger
	log := setupLogger()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Warnf("Configuration validation warning: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("Error closing database connection: %v", err)
		}
	}()

	publisher, err := events.NewPublisher(cfg.AMQP, log)
	if err != nil {
		log.Warnf("Domain events disabled: %v", err)
		publisher = events.NopPublisher{}
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Errorf("Error closing event publisher: %v", err)
		}
	}()

	venueService := services.NewVenueService(repository.NewVenueRepository(db), publisher, log)
	artistService := services.NewArtistService(repository.NewArtistRepository(db), publisher, log)
	showService := services.NewShowService(repository.NewShowRepository(db), publisher, log)

	var imageStore services.ImageStore
	if cfg.MinIO.Enabled {
		minioService, err := services.NewMinIOService(&cfg.MinIO, log)
		if err != nil {
			log.Fatalf("Failed to initialize MinIO service: %v", err)
		}
		imageStore = minioService

		for _, svc := range []interface{}{venueService, artistService} {
			if s, ok := svc.(interface{ SetImageStore(services.ImageStore) }); ok {
				s.SetImageStore(imageStore)
			}
		}
	}

	rdb := connectRedis(cfg.Redis, log)
	limiter := middleware.NewRateLimiter(cfg.RateLimit, rdb, log)

	app := fiber.New(fiber.Config{
		AppName:               "Booking Backend API",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: false,
		ErrorHandler:          customErrorHandler(log),
	})

	setupMiddleware(app)

	app.Get("/health", healthCheckHandler(db, rdb))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Swagger documentation
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Setup API routes
	routes.Setup(app, routes.Handlers{
		Venue:  handlers.NewVenueHandler(venueService, log),
		Artist: handlers.NewArtistHandler(artistService, log),
		Show:   handlers.NewShowHandler(showService, log),
		Upload: handlers.NewUploadHandler(imageStore, log),
	}, limiter.Handler())

	// Graceful shutdown
	go gracefulShutdown(app, log)

	log.Infof("Booking Backend API starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	if os.Getenv("GO_ENV") == "dev" || os.Getenv("GO_ENV") == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

// connectRedis returns nil when Redis is not configured or unreachable, which
// turns rate limiting off.
func connectRedis(cfg config.RedisConfig, log *logrus.Logger) redis.Scripter {
	if cfg.Addr == "" {
		log.Info("REDIS_ADDR not set, rate limiting is disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.WithError(err).Warn("Redis unreachable, rate limiting is disabled")
		_ = rdb.Close()
		return nil
	}

	log.WithField("addr", cfg.Addr).Info("Redis connection established successfully")
	return rdb
}

func setupMiddleware(app *fiber.App) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Logger middleware
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS, PATCH",
		AllowCredentials: false,
		MaxAge:           86400, // 24 hours
	}))

	app.Use(middleware.Metrics())
}

func healthCheckHandler(db *database.Database, rdb redis.Scripter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbStatus := "healthy"
		if err := db.HealthCheck(); err != nil {
			dbStatus = "unhealthy"
		}

		redisStatus := "disabled"
		if client, ok := rdb.(*redis.Client); ok {
			redisStatus = "healthy"
			if err := client.Ping(c.Context()).Err(); err != nil {
				redisStatus = "unhealthy"
			}
		}

		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   "booking-backend",
			"version":   "1.0.0",
			"database":  dbStatus,
			"redis":     redisStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func customErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": code,
		}).Error("Request error")

		return c.Status(code).JSON(fiber.Map{
			"status":  "error",
			"code":    code,
			"message": err.Error(),
		})
	}
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}

func loadEnvFile() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stdout)

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	execDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	envFile := filepath.Join(execDir, "envs", ".env."+env)
	if err := godotenv.Load(envFile); err != nil {
		log.Warnf("Could not load environment file %s: %v", envFile, err)

		defaultEnvFile := filepath.Join(execDir, "envs", ".env")
		if err := godotenv.Load(defaultEnvFile); err != nil {
			log.Warnf("Could not load default environment file: %v", err)
		} else {
			log.Infof("Environment loaded from default file %s", defaultEnvFile)
		}
	} else {
		log.Infof("Environment loaded from file %s", envFile)
	}
}
