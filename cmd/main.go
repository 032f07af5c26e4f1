package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"movie-reviews/docs"
	"movie-reviews/internal/config"
	"movie-reviews/internal/handlers"
	"movie-reviews/internal/metrics"
	"movie-reviews/internal/repository"
	"movie-reviews/internal/routes"
	"movie-reviews/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title Movies API
// @version 1.0
// @description CRUD API for movies and their reviews

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
	log := setupLogger(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Warnf("Configuration validation warning: %v", err)
	}

	movieRepo := repository.NewMovieRepository()

	app := newApp(cfg, log, movieRepo)

	// Graceful shutdown
	go gracefulShutdown(app, cfg.Server.ShutdownTimeout, log)

	log.Infof("%s starting on port %s", cfg.App.Name, cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

// newApp wires services, handlers and routes around a single movie repository.
func newApp(cfg *config.Config, log *logrus.Logger, movieRepo repository.MovieRepository) *fiber.App {
	validate := handlers.NewValidator()

	movieService := services.NewMovieService(movieRepo)
	reviewService := services.NewReviewService(movieRepo)
	movieHandler := handlers.NewMovieHandler(movieService, validate, log)
	reviewHandler := handlers.NewReviewHandler(reviewService, validate, log)

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           cfg.Server.IdleTimeout,
		DisableStartupMessage: !cfg.IsDevelopment(),
		ErrorHandler:          customErrorHandler(log),
	})

	setupMiddleware(app, cfg)

	if cfg.Metrics.Enabled {
		m := metrics.New(movieRepo)
		app.Use(m.Middleware())
		app.Get(cfg.Metrics.Path, m.Handler())
	}

	health := healthCheckHandler(cfg, movieRepo)
	app.Get("/", health)
	app.Get("/health", health)

	// Swagger documentation
	if cfg.Swagger.Enabled {
		docs.SwaggerInfo.Version = cfg.App.Version
		app.Get("/swagger/*", fiberSwagger.WrapHandler)
	}

	// Setup API routes
	routes.Setup(app, movieHandler, reviewHandler)

	return app
}

func setupLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	}
	if cfg.IsDevelopment() {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func setupMiddleware(app *fiber.App, cfg *config.Config) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: cfg.Server.EnableStackTraces,
	}))

	app.Use(requestid.New())

	// Logger middleware
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSAllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS, PATCH",
		AllowCredentials: false,
		MaxAge:           86400, // 24 hours
	}))
}

func healthCheckHandler(cfg *config.Config, movieRepo repository.MovieRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		movies, reviews := movieRepo.Count(c.UserContext())

		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   cfg.App.Name,
			"version":   cfg.App.Version,
			"movies":    movies,
			"reviews":   reviews,
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

		entry := log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": code,
		})
		if code >= fiber.StatusInternalServerError {
			entry.Error("Request error")
		} else {
			entry.Warn("Request error")
		}

		status := "error"
		if code >= fiber.StatusInternalServerError {
			status = "fail"
		}
		return c.Status(code).JSON(fiber.Map{
			"status":  status,
			"code":    code,
			"message": err.Error(),
		})
	}
}

func gracefulShutdown(app *fiber.App, timeout time.Duration, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(timeout); err != nil {
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
