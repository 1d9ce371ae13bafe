package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MassBabyGeek/advent-leaderboard/internal/api"
	"github.com/MassBabyGeek/advent-leaderboard/internal/app"
	"github.com/MassBabyGeek/advent-leaderboard/internal/config"
	"github.com/MassBabyGeek/advent-leaderboard/internal/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	if err := logger.Init(app.LoggerConfig(cfg, "leaderboard-server")); err != nil {
		logger.Error("Could not init logger: %v", err)
		os.Exit(1)
	}

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		logger.Error("Startup failed: %v", err)
		os.Exit(1)
	}
	defer a.Close()

	// Initialize routes
	router := api.SetupRouter(api.RouterConfig{
		Leaderboards:   a.Leaderboards,
		Years:          cfg.Years(),
		AdminTokenHash: cfg.AdminTokenHash,
		CORSOrigins:    cfg.CORSOrigins,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Success("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed: %v", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown: %v", err)
	}
	logger.Success("Server stopped")
}
