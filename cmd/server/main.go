// Package main is the entry point for the VoeLivre storefront API.
//
//	@title						VoeLivre Storefront API
//	@version					1.0.0
//	@description				Backend for the VoeLivre flight-booking storefront: airport typeahead, flight search with live/mock fallback, checkout and trips.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/voelivre/voelivre-api/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8788
//	@BasePath					/api/v1
//
//	@schemes					http https
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
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/voelivre/voelivre-api/docs"

	// Application layers
	apihttp "github.com/voelivre/voelivre-api/internal/adapter/http"
	"github.com/voelivre/voelivre-api/internal/adapter/http/middleware"
	"github.com/voelivre/voelivre-api/internal/adapter/upstream"
	"github.com/voelivre/voelivre-api/internal/booking"
	"github.com/voelivre/voelivre-api/internal/config"
	"github.com/voelivre/voelivre-api/internal/directory"
	"github.com/voelivre/voelivre-api/internal/infrastructure/logger"
	"github.com/voelivre/voelivre-api/internal/infrastructure/timeutil"
	"github.com/voelivre/voelivre-api/internal/search"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Bool("use_real_api", cfg.Upstream.UseRealAPI).
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
	if err := setupRoutes(e, cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up routes")
	}

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e)
}

// setupLogger configures the global zerolog logger based on config.
func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Use console writer for non-JSON format
	if cfg.Logging.Format != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	// Set log level from config
	switch cfg.Logging.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// setupRoutes wires the services and registers the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config) error {
	appLog := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "voelivre-api",
	})

	// Upstream client only exists when the live API is enabled; the
	// resolver and orchestrator degrade gracefully without it.
	var airportAPI *upstream.Client
	if cfg.Upstream.UseRealAPI {
		client, err := upstream.NewClient(upstream.Config{
			BaseURL:   cfg.Upstream.BaseURL,
			APIKey:    cfg.Upstream.APIKey,
			Timeout:   cfg.Upstream.Timeout,
			RateLimit: cfg.Upstream.RateLimit,
			RateBurst: cfg.Upstream.RateBurst,
		}, appLog.WithComponent("upstream"))
		if err != nil {
			return fmt.Errorf("create upstream client: %w", err)
		}
		airportAPI = client
	}

	dataset := directory.NewDataset(cfg.Directory.DatasetURL, nil, appLog.WithComponent("directory"))

	resolverOpts := []directory.ResolverOption{
		directory.WithTypeaheadDelay(cfg.Directory.TypeaheadDelay),
		directory.WithSuggestLimit(cfg.Directory.SuggestLimit),
	}
	orchestratorOpts := []search.Option{
		search.WithMockDelay(cfg.Search.MockDelay),
	}
	if airportAPI != nil {
		resolverOpts = append(resolverOpts, directory.WithSuggestionAPI(airportAPI))
		orchestratorOpts = append(orchestratorOpts, search.WithFlightAPI(airportAPI))
	}

	resolver := directory.NewResolver(dataset, appLog.WithComponent("resolver"), resolverOpts...)
	orchestrator := search.NewOrchestrator(appLog.WithComponent("search"), orchestratorOpts...)
	bookings := booking.NewService(timeutil.NewRealClock(), appLog.WithComponent("booking"))

	handler := apihttp.NewHandler(resolver, orchestrator, bookings)
	apihttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return nil
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
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
