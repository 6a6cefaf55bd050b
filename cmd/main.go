package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"watch-tracker-service/internal/config"
	"watch-tracker-service/internal/database"
	"watch-tracker-service/internal/handler"
	"watch-tracker-service/internal/middleware"
	"watch-tracker-service/internal/repository"
	"watch-tracker-service/internal/service"
)

func main() {
	// Structured logging
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.NewPostgres(cfg.DB)
	if err != nil {
		slog.Error("failed to connect to PostgreSQL", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Connect to Redis (non-fatal; the rate limiter is skipped without it)
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	rdb, err := database.NewRedis(pingCtx, cfg.Redis)
	cancel()
	if err != nil {
		slog.Warn("Redis unavailable, running without rate limiting", "error", err)
	}

	// Initialize layers
	movieRepo := repository.NewMovieRepository(db)
	seriesRepo := repository.NewSeriesRepository(db)
	watchlistRepo := repository.NewWatchlistRepository(db)

	movieSvc := service.NewMovieService(movieRepo)
	seriesSvc := service.NewSeriesService(seriesRepo)
	watchlistSvc := service.NewWatchlistService(movieRepo, seriesRepo, watchlistRepo)

	movieH := handler.NewMovieHandler(movieSvc)
	seriesH := handler.NewSeriesHandler(seriesSvc)
	watchlistH := handler.NewWatchlistHandler(watchlistSvc)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Watch Tracker Service",
		ServerHeader: "Watch-Tracker-Service",
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("unhandled error", "error", err, "status", code)
			return c.Status(code).JSON(handler.ErrorResponse{Error: err.Error()})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	if rdb != nil {
		limiter := middleware.NewRateLimiter(rdb, cfg.RateLimit.MaxRequests, cfg.RateLimit.WindowSec)
		app.Use(limiter.Handler())
	}

	// Catalog routes
	app.Get("/health", handler.Health)
	app.Get("/movies", movieH.List)
	app.Post("/movies", movieH.Create)
	app.Get("/movies/:id", movieH.Get)
	app.Put("/movies/:id", movieH.Update)
	app.Delete("/movies/:id", movieH.Delete)
	app.Get("/series", seriesH.List)
	app.Post("/series", seriesH.Create)
	app.Get("/series/:id", seriesH.Get)
	app.Put("/series/:id", seriesH.Update)
	app.Delete("/series/:id", seriesH.Delete)
	app.Post("/series/:id/seasons", seriesH.AddSeason)

	// Watchlist routes, gated on the caller-supplied user identity
	app.Use("/me", middleware.RequireUser())
	app.Use("/watchlist", middleware.RequireUser())
	app.Use("/progress", middleware.RequireUser())
	app.Get("/me/watchlist", watchlistH.GetWatchlist)
	app.Post("/watchlist/movies/:id", watchlistH.AddMovie)
	app.Post("/watchlist/series/:id", watchlistH.AddSeries)
	app.Patch("/progress/series/:id", watchlistH.UpdateProgress)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		slog.Info("shutting down watch tracker service...")
		_ = app.Shutdown()
	}()

	// Start server
	addr := ":" + cfg.Port
	slog.Info("starting watch tracker service", "addr", addr)
	if err := app.Listen(addr); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
