// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/flight-search/southwest-fare-scraper/internal/infrastructure/logger"
)

// Acquisition modes.
const (
	AcquirerBrowser = "browser"
	AcquirerFile    = "file"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	Search      SearchConfig
	Acquisition AcquisitionConfig
	Agent       AgentConfig
	Metrics     MetricsConfig
	Logging     logger.Config
	App         AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"90s"`

	// CORSAllowedOrigins lists the browser origins allowed to call the API
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// SearchConfig holds orchestration settings for a fare search.
type SearchConfig struct {
	Timeout     time.Duration `env:"SEARCH_TIMEOUT" envDefault:"60s"`
	MaxAttempts int           `env:"SEARCH_MAX_ATTEMPTS" envDefault:"1"`
	RetryDelay  time.Duration `env:"SEARCH_RETRY_DELAY" envDefault:"1s"`
}

// AcquisitionConfig selects and tunes the page acquirer.
type AcquisitionConfig struct {
	// Mode is browser (live site) or file (saved page)
	Mode string `env:"ACQUIRER" envDefault:"browser"`

	// BaseURL is the results page the search URL is built on
	BaseURL string `env:"SEARCH_BASE_URL" envDefault:"https://www.southwest.com/air/booking/select-depart.html"`

	// DebugFile is written by the browser in debug mode and read in file mode
	DebugFile string `env:"DEBUG_FILE" envDefault:"debug.html"`

	// Debug runs every search with a visible browser and a page dump
	Debug bool `env:"DEBUG" envDefault:"false"`

	NavigationTimeout time.Duration `env:"NAVIGATION_TIMEOUT" envDefault:"5s"`

	// ChromePath overrides the Chrome executable chromedp launches
	ChromePath string `env:"CHROME_PATH"`
}

// AgentConfig holds the chat assistant settings.
type AgentConfig struct {
	Enabled bool          `env:"AGENT_ENABLED" envDefault:"false"`
	Model   string        `env:"AGENT_MODEL" envDefault:"gpt-4.1"`
	Timeout time.Duration `env:"AGENT_TIMEOUT" envDefault:"80s"`
}

// MetricsConfig holds Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `env:"METRICS_ENABLED" envDefault:"true"`
	Namespace string `env:"METRICS_NAMESPACE" envDefault:"fare_scraper"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Search.Timeout <= 0 {
		return fmt.Errorf("SEARCH_TIMEOUT must be positive")
	}
	if cfg.Acquisition.NavigationTimeout <= 0 {
		return fmt.Errorf("NAVIGATION_TIMEOUT must be positive")
	}

	// A search must finish before the server gives up on the response
	if cfg.Search.Timeout >= cfg.Server.WriteTimeout {
		return fmt.Errorf("SEARCH_TIMEOUT (%s) should be less than SERVER_WRITE_TIMEOUT (%s)",
			cfg.Search.Timeout, cfg.Server.WriteTimeout)
	}

	if cfg.Search.MaxAttempts < 1 {
		return fmt.Errorf("SEARCH_MAX_ATTEMPTS must be at least 1, got %d", cfg.Search.MaxAttempts)
	}
	if cfg.Search.RetryDelay < 0 {
		return fmt.Errorf("SEARCH_RETRY_DELAY must not be negative")
	}

	// Validate acquirer
	switch cfg.Acquisition.Mode {
	case AcquirerBrowser:
	case AcquirerFile:
		if cfg.Acquisition.DebugFile == "" {
			return fmt.Errorf("DEBUG_FILE is required when ACQUIRER is %q", AcquirerFile)
		}
	default:
		return fmt.Errorf("ACQUIRER must be one of: browser, file; got %q", cfg.Acquisition.Mode)
	}
	if cfg.Acquisition.BaseURL == "" {
		return fmt.Errorf("SEARCH_BASE_URL must not be empty")
	}

	if cfg.Agent.Enabled {
		if cfg.Agent.Model == "" {
			return fmt.Errorf("AGENT_MODEL is required when AGENT_ENABLED is set")
		}
		if cfg.Agent.Timeout <= 0 {
			return fmt.Errorf("AGENT_TIMEOUT must be positive")
		}
		if cfg.Agent.Timeout >= cfg.Server.WriteTimeout {
			return fmt.Errorf("AGENT_TIMEOUT (%s) should be less than SERVER_WRITE_TIMEOUT (%s)",
				cfg.Agent.Timeout, cfg.Server.WriteTimeout)
		}
	}

	if cfg.Metrics.Enabled && cfg.Metrics.Namespace == "" {
		return fmt.Errorf("METRICS_NAMESPACE is required when METRICS_ENABLED is set")
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
