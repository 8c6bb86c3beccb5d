// Package main is the entry point for the Southwest fare scraper service.
//
//	@title						Southwest Fare Scraper API
//	@version					1.0.0
//	@description				Scrapes Southwest Airlines one-way search results into structured fares, with an optional chat assistant.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-search/southwest-fare-scraper/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
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

	sdk "github.com/github/copilot-sdk/go"
	"github.com/labstack/echo/v4"

	// Import generated docs for swagger
	_ "github.com/flight-search/southwest-fare-scraper/docs"

	// Application layers
	"github.com/flight-search/southwest-fare-scraper/internal/adapter/acquisition/browser"
	"github.com/flight-search/southwest-fare-scraper/internal/adapter/acquisition/file"
	flighthttp "github.com/flight-search/southwest-fare-scraper/internal/adapter/http"
	"github.com/flight-search/southwest-fare-scraper/internal/adapter/http/middleware"
	"github.com/flight-search/southwest-fare-scraper/internal/agent"
	"github.com/flight-search/southwest-fare-scraper/internal/config"
	"github.com/flight-search/southwest-fare-scraper/internal/domain"
	"github.com/flight-search/southwest-fare-scraper/internal/infrastructure/logger"
	"github.com/flight-search/southwest-fare-scraper/internal/infrastructure/metrics"
	"github.com/flight-search/southwest-fare-scraper/internal/infrastructure/retry"
	"github.com/flight-search/southwest-fare-scraper/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	log := logger.New(cfg.Logging)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("acquirer", cfg.Acquisition.Mode).
		Bool("agent", cfg.Agent.Enabled).
		Msg("Configuration loaded")

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.NewMetrics(cfg.Metrics.Namespace)
	}

	flightUseCase := usecase.NewFlightSearchUseCase(
		newAcquirer(cfg, log),
		&usecase.Config{
			SearchTimeout: cfg.Search.Timeout,
			MaxAttempts:   cfg.Search.MaxAttempts,
			RetryDelay:    cfg.Search.RetryDelay,
			BaseURL:       cfg.Acquisition.BaseURL,
			Debug:         cfg.Acquisition.Debug,
		},
		usecase.WithLogger(log),
		usecase.WithMetrics(m),
	)

	handlers := flighthttp.Handlers{
		Flights: flighthttp.NewFlightHandler(flightUseCase, log),
	}
	if m != nil {
		handlers.Metrics = m.Handler()
	}

	if cfg.Agent.Enabled {
		client, err := startCopilot(context.Background(), log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to start Copilot client")
		}
		defer client.Stop()

		assistant := agent.New(client, flightUseCase, agent.Config{
			Model:   cfg.Agent.Model,
			Timeout: cfg.Agent.Timeout,
		}, log)
		handlers.Chat = flighthttp.NewChatHandler(assistant, log, m)
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log)
	e.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	flighthttp.RegisterRoutes(e, handlers)

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

// newAcquirer selects the page acquirer named by the configuration.
func newAcquirer(cfg *config.Config, log *logger.Logger) domain.PageAcquirer {
	if cfg.Acquisition.Mode == config.AcquirerFile {
		log.Info().Str("path", cfg.Acquisition.DebugFile).Msg("Serving results from saved page")
		return file.NewAcquirer(cfg.Acquisition.DebugFile)
	}
	return browser.NewAcquirer(browser.Config{
		NavigationTimeout: cfg.Acquisition.NavigationTimeout,
		DumpPath:          cfg.Acquisition.DebugFile,
		ExecPath:          cfg.Acquisition.ChromePath,
	}, log)
}

// startCopilot starts the Copilot CLI client used by the assistant,
// retrying while the CLI process comes up.
func startCopilot(ctx context.Context, log *logger.Logger) (*sdk.Client, error) {
	cfg := retry.DefaultConfig
	cfg.OnRetry = func(attempt int, err error, wait time.Duration) {
		log.Warn().Err(err).Int("attempt", attempt).Dur("wait", wait).Msg("Copilot client failed to start, retrying")
	}

	var client *sdk.Client
	err := retry.Do(ctx, func() error {
		client = sdk.NewClient(&sdk.ClientOptions{
			LogLevel: "error",
		})
		if err := client.Start(); err != nil {
			client.Stop()
			return err
		}
		return nil
	}, cfg)
	if err != nil {
		return nil, err
	}
	return client, nil
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
