package main

import (
	"os"
	"strconv"
	"time"

	"contacts-backend/controllers"
	"contacts-backend/database"
	"contacts-backend/logger"
	"contacts-backend/middlewares"
	"contacts-backend/phone"
	"contacts-backend/repositories"
	"contacts-backend/routes"
	"contacts-backend/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// envInt reads an int env var with a default fallback.
func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func main() {
	log := logger.NewLogger()
	defer log.Sync()

	// ---- Database
	if err := database.Connect(); err != nil {
		log.Fatalw("database connection failed", "error", err)
	}
	if err := database.AutoMigrate(); err != nil {
		log.Fatalw("migration failed", "error", err)
	}
	if err := database.Seed(database.DB); err != nil {
		log.Fatalw("demo seed failed", "error", err)
	}

	// ---- Service wiring
	region := os.Getenv("PHONE_REGION")
	if region == "" {
		region = "HU"
	}
	contactService := services.NewContactService(
		repositories.NewGormContactRepository(database.DB),
		repositories.NewGormCompanyRepository(database.DB),
		phone.NewRegionValidator(region),
	)
	contactController := controllers.NewContactController(contactService)

	// ---- Limits (configurable via env)
	// Fiber default BodyLimit is 4 * 1024 * 1024 bytes if unset (per docs).
	// We allow overriding with BODY_LIMIT_BYTES or BODY_LIMIT_MB.
	bodyLimitBytes := envInt("BODY_LIMIT_BYTES", 0)
	if bodyLimitBytes <= 0 {
		bodyLimitBytes = envInt("BODY_LIMIT_MB", 4) * 1024 * 1024
	}

	// ---- Fiber app with global error handler + body limit
	app := fiber.New(fiber.Config{
		ErrorHandler: middlewares.NewErrorHandler(log),
		BodyLimit:    bodyLimitBytes,
	})

	app.Use(middlewares.RequestLogger(log))

	// ---- CORS
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// ---- Global rate limiter (applies to all routes; tune via env)
	rlMax := envInt("RATE_LIMIT_MAX", 60)                                            // default 60 reqs
	rlWindow := time.Duration(envInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second // default 60s window
	app.Use(limiter.New(limiter.Config{
		Max:        rlMax,
		Expiration: rlWindow,
	}))

	// ---- Routes
	routes.Register(app, contactController)

	// ---- Start
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Infow("starting API server", "port", port, "phoneRegion", region)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalw("server stopped", "error", err)
	}
}
