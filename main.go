package main

import (
	"classical-cipher-backend/config"
	"classical-cipher-backend/handlers"
	"classical-cipher-backend/logger"
	"classical-cipher-backend/metrics"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	baseLogger := logger.New(cfg.DevMode(), cfg.LogLevel)
	baseLogger.Info().
		Str("app_env", cfg.AppEnv).
		Str("port", cfg.Port).
		Strs("cors_origins", cfg.CORSAllowOrigins).
		Msg("Configuration loaded")

	if !cfg.DevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := handlers.NewRouter(cfg, &baseLogger, metrics.NewMetrics())

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		baseLogger.Info().Msgf("Server starting on port %s", cfg.Port)
		baseLogger.Info().Msg("  POST /api/{caesar,vigenere,railfence,playfair,transposition}/encrypt")
		baseLogger.Info().Msg("  POST /api/{caesar,vigenere,railfence,playfair,transposition}/decrypt")
		baseLogger.Info().Msg("  GET  /api/ciphers - List ciphers and key types")
		baseLogger.Info().Msg("  GET  /api/health  - Health check")
		baseLogger.Info().Msg("  GET  /metrics     - Prometheus metrics")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	baseLogger.Info().Msg("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
