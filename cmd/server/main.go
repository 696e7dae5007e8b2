// Package main is the entry point for the connection search service.
//
//	@title						ČD Connection Search API
//	@version					1.0.0
//	@description				A read-only train connection search service over the Czech Railways timetable, exposing assistant-friendly search tools.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/JanProvaznik/cd-mcp/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
//
//	@externalDocs.description	Technical Documentation
//	@externalDocs.url			https://github.com/JanProvaznik/cd-mcp/blob/main/docs/architecture.md
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/JanProvaznik/cd-mcp/docs"

	toolhttp "github.com/JanProvaznik/cd-mcp/internal/adapter/http"
	"github.com/JanProvaznik/cd-mcp/internal/adapter/http/middleware"
	"github.com/JanProvaznik/cd-mcp/internal/adapter/upstream/cdtt"
	"github.com/JanProvaznik/cd-mcp/internal/config"
	"github.com/JanProvaznik/cd-mcp/internal/infrastructure/logger"
	"github.com/JanProvaznik/cd-mcp/internal/infrastructure/ratelimit"
	"github.com/JanProvaznik/cd-mcp/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("upstream", cfg.Upstream.BaseURL).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, log.Logger)

	// Setup routes
	setupRoutes(e, cfg, log)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// setupLogger builds the service logger from config and installs it as the
// global instance.
func setupLogger(cfg *config.Config) *logger.Logger {
	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	logger.SetGlobal(log)
	return log
}

// setupRoutes wires the upstream client, the use case and the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger) {
	client := cdtt.NewClient(cdtt.Config{
		BaseURL:     cfg.Upstream.BaseURL,
		HTTPTimeout: cfg.Upstream.HTTPTimeout,
		RateLimit: ratelimit.Config{
			RequestsPerSecond: cfg.Upstream.RateLimitRPS,
			BurstSize:         cfg.Upstream.RateLimitBurst,
		},
		Logger: log,
	})

	ucConfig := &usecase.Config{
		SearchTimeout: cfg.Search.Timeout,
		PriceTimeout:  cfg.Search.PriceTimeout,
		MaxResults:    cfg.Search.MaxResults,
		MaxLocations:  cfg.Search.MaxLocations,
		Logger:        log,
	}
	searchUseCase := usecase.NewConnectionSearchUseCase(client, client, client, ucConfig)

	handler := toolhttp.NewToolHandler(searchUseCase)
	toolhttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
