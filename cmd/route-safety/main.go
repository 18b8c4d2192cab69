package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/mr1hm/go-route-safety/internal/api"
	"github.com/mr1hm/go-route-safety/internal/broadcast"
	"github.com/mr1hm/go-route-safety/internal/config"
	"github.com/mr1hm/go-route-safety/internal/hazard"
	"github.com/mr1hm/go-route-safety/internal/history"
	"github.com/mr1hm/go-route-safety/internal/ingestion"
	"github.com/mr1hm/go-route-safety/internal/logging"
	"github.com/mr1hm/go-route-safety/internal/repository"
	"github.com/mr1hm/go-route-safety/internal/scoring"
	"github.com/mr1hm/go-route-safety/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("Server starting", "host", cfg.Server.Host, "port", cfg.Server.Port)

	db, err := repository.NewSQLiteDB(cfg.DB.Path)
	if err != nil {
		logging.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Recorded assessments fan out to SSE subscribers
	broadcaster := broadcast.NewBroadcaster()

	recorder := history.NewRecorder(cfg.Worker, db, broadcaster)
	recorder.Start(ctx)

	deps := session.Dependencies{
		Weather:   ingestion.NewOpenWeather(cfg.Providers.OpenWeatherAPIKey, cfg.Providers.OpenWeatherURL, cfg.Providers.FetchTimeout),
		Hazards:   hazard.NewRandomSource(cfg.Hazards.Seed),
		Simulator: scoring.NewRandomSimulator(cfg.Hazards.Seed),
		Recorder:  recorder,
	}
	directions, err := ingestion.NewGoogleDirections(cfg.Providers.GoogleMapsAPIKey, cfg.Providers.DirectionsBaseURL, cfg.Providers.FetchTimeout)
	switch {
	case errors.Is(err, ingestion.ErrDirectionsUnavailable):
		slog.Warn("GOOGLE_MAPS_API_KEY not set, route fetching disabled")
	case err != nil:
		logging.Fatalf("Failed to initialize directions client: %v", err)
	default:
		deps.Directions = directions
	}
	if cfg.Providers.OpenWeatherAPIKey == "" {
		slog.Warn("OPENWEATHER_API_KEY not set, forecasts will be empty")
	}

	store := session.NewStore()
	janitor, err := session.StartJanitor(store, cfg.Sessions.SweepSchedule, cfg.Sessions.MaxIdle)
	if err != nil {
		logging.Fatalf("Failed to start session janitor: %v", err)
	}

	svc := session.NewService(store, cfg.Hazards.Factors, deps)

	// Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false, // Set to false when using wildcard origins
	}))
	router.Use(api.RateLimitMiddleware(cfg.Server.RateLimitRPS))

	handler := api.NewHandler(svc, db, broadcaster)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down...")

	broadcaster.Close() // ends open SSE streams so Shutdown does not wait on them

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	janitor.Stop()
	recorder.Stop() // drains queued records before the database closes
	cancel()

	slog.Info("shutdown complete")
}
