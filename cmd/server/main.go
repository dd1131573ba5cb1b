package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/dineflex-backend/internal/app"
	"github.com/nekogravitycat/dineflex-backend/internal/config"
	"github.com/nekogravitycat/dineflex-backend/internal/pkg/logger"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{Service: "dineflex-server"}).WithError(err).Error("failed to load config")
		os.Exit(1)
	}

	format := logger.FormatText
	if cfg.IsProduction {
		format = logger.FormatJSON
		gin.SetMode(gin.ReleaseMode)
	}
	appLogger := logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  format,
		Service: "dineflex-server",
	})

	// Wire modules
	container := app.NewContainer(app.Config{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  cfg.ProdOrigins,
		Logger:       appLogger,
	})

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           container.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Run server in separate goroutine
	go func() {
		appLogger.Info("server running", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Error("server error")
			stop()
		}
	}()

	// Wait for Ctrl+C
	<-ctx.Done()
	appLogger.Info("shutdown signal received")

	// Create a shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Error("server forced to shutdown")
	}

	appLogger.Info("server exited gracefully")
}
