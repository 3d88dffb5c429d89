package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/padraicob/lotto-backend/config"
	"github.com/padraicob/lotto-backend/database"
	"github.com/padraicob/lotto-backend/handlers"
	"github.com/padraicob/lotto-backend/jobs"
	"github.com/padraicob/lotto-backend/services"
	"github.com/padraicob/lotto-backend/shared"
)

func main() {
	// Load config
	cfg := config.LoadConfig()

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	} else {
		logrus.Warnf("Invalid LOG_LEVEL value: %s, using info", cfg.LogLevel)
	}

	// Connect to the draw store
	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer database.Close()

	drawConfig := config.DefaultDrawConfig()
	drawConfig.Timezone = cfg.Timezone

	// The clock is the single source of civil time; an unresolvable
	// timezone means every comparison would be wrong, so refuse to start.
	clockService, err := services.NewClockService(drawConfig.Timezone)
	if err != nil {
		log.Fatalf("Failed to initialize clock: %v", err)
	}

	// Core services
	scheduleService := services.NewScheduleService(clockService, drawConfig.DrawHour)
	stateService := services.NewStateService(clockService, drawConfig.DrawHour, drawConfig.StaleDays)
	countdownService := services.NewCountdownService(clockService, drawConfig.DrawHour, cfg.GetForceShowGrace())
	prizeMatcher := services.NewPrizeMatcherService()
	generatorService := services.NewGeneratorService(drawConfig.NumberCount, drawConfig.NumberMax)

	// Store, cache and orchestration
	drawStore := database.NewDrawStore(database.Database(cfg.MongoDatabase))
	cacheConfig := config.DefaultCacheConfig()
	cacheConfig.DefaultTTL = cfg.GetCacheTTL()
	cacheService := services.NewCacheService(cacheConfig.DefaultTTL, cacheConfig.MaxSize)
	resultService := services.NewResultService(drawStore, cacheService, clockService, scheduleService, stateService)

	// Advisory per-client rate limiting
	rateLimitConfig := config.DefaultRateLimitConfig()
	rateLimitConfig.RequestsPerWindow = cfg.GetRateLimitPerMinute()
	rateLimiter := shared.NewFixedWindowRateLimiter(rateLimitConfig.RequestsPerWindow, rateLimitConfig.Window)

	logrus.WithFields(logrus.Fields{
		"timezone":       drawConfig.Timezone,
		"draw_hour":      drawConfig.DrawHour,
		"cache_ttl":      cacheConfig.DefaultTTL,
		"rate_limit":     rateLimitConfig.RequestsPerWindow,
		"mongo_database": cfg.MongoDatabase,
	}).Info("Lotto backend services initialized")

	// Background jobs
	cleanupJob := jobs.NewCacheCleanupJob(cacheService)
	sweepJob := jobs.NewLimiterSweepJob(rateLimiter)

	go func() {
		cleanupTicker := time.NewTicker(10 * time.Minute)
		sweepTicker := time.NewTicker(time.Minute)

		for {
			select {
			case <-cleanupTicker.C:
				cleanupJob.Run()
			case <-sweepTicker.C:
				sweepJob.Run()
			}
		}
	}()

	// Handlers
	resultsHandler := handlers.NewResultsHandler(resultService, countdownService)
	checkHandler := handlers.NewCheckHandler(resultService, prizeMatcher)
	timerHandler := handlers.NewTimerHandler(countdownService, scheduleService, clockService, drawConfig.ResyncPeriod)
	generatorHandler := handlers.NewGeneratorHandler(generatorService)
	adminHandler := handlers.NewAdminHandler(cfg.AdminToken, cacheService, rateLimiter, resultService)

	// Setup Fiber
	app := fiber.New()

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(rateLimitMiddleware(rateLimiter))

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()

		status := "ok"
		code := fiber.StatusOK
		if err := database.Ping(ctx); err != nil {
			status = "degraded"
			code = fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"status":    status,
			"timestamp": time.Now().Unix(),
		})
	})

	// Routes
	api := app.Group("/api/v1")

	api.Get("/results/latest", resultsHandler.GetLatest)
	api.Get("/results/:date", resultsHandler.GetResultByDate)
	api.Get("/results/:date/past", resultsHandler.GetPastResults)
	api.Get("/archive", resultsHandler.GetArchive)
	api.Post("/check", checkHandler.CheckNumbers)
	api.Get("/timer", timerHandler.GetTimer)
	api.Get("/generator", generatorHandler.GenerateLine)

	admin := api.Group("/admin", adminHandler.RequireToken)
	admin.Get("/stats", adminHandler.GetStats)
	admin.Post("/cache/flush", adminHandler.FlushCache)

	logrus.Infof("Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// rateLimitMiddleware keys the advisory limiter by client IP, falling
// back to a generated id when no address is available.
func rateLimitMiddleware(limiter *shared.FixedWindowRateLimiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clientID := c.IP()
		if clientID == "" {
			clientID = uuid.New().String()
		}
		if !limiter.Allow(clientID) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"error":   "Too many requests",
			})
		}
		return c.Next()
	}
}
