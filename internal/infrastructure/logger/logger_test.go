package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "test-service"}, &buf)

	log.Info().Msg("test message")

	result := decode(t, &buf)
	assert.Equal(t, "info", result["level"])
	assert.Equal(t, "test message", result["message"])
	assert.Equal(t, "test-service", result["service"])
	assert.NotEmpty(t, result["time"])
}

func TestNewLogger_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "console", ServiceName: "test"}, &buf)

	log.Info().Msg("test message")

	assert.Contains(t, buf.String(), "test message")
	assert.Contains(t, buf.String(), "INF")
}

func TestNewLogger_LogLevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    string
		shouldLog   bool
	}{
		{"debug logged at debug level", "debug", "debug", true},
		{"debug NOT logged at info level", "info", "debug", false},
		{"warn logged at info level", "info", "warn", true},
		{"info NOT logged at warn level", "warn", "info", false},
		{"error logged at error level", "error", "error", true},
		{"empty level defaults to info", "", "info", true},
		{"invalid level defaults to info", "loud", "debug", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithOutput(Config{Level: tt.configLevel, Format: "json"}, &buf)

			switch tt.logLevel {
			case "debug":
				log.Debug().Msg("test")
			case "info":
				log.Info().Msg("test")
			case "warn":
				log.Warn().Msg("test")
			case "error":
				log.Error().Msg("test")
			}

			if tt.shouldLog {
				assert.NotEmpty(t, buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestNewLogger_WithCaller(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", EnableCaller: true}, &buf)

	log.Info().Msg("test")

	result := decode(t, &buf)
	require.Contains(t, result, "caller")
	assert.Contains(t, result["caller"], "logger_test.go")
}

func TestLogger_ContextFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(DefaultConfig(), &buf)

	log.WithRequestID("req-123").
		WithSearch("SAN", "DAL", "2024-04-22").
		WithAcquirer("browser").
		Info().Msg("search started")

	result := decode(t, &buf)
	assert.Equal(t, "req-123", result["request_id"])
	assert.Equal(t, "SAN", result["origin"])
	assert.Equal(t, "DAL", result["destination"])
	assert.Equal(t, "2024-04-22", result["departure_date"])
	assert.Equal(t, "browser", result["acquirer"])
	assert.Equal(t, "fare-scraper", result["service"])
}

func TestLogger_WithField(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(DefaultConfig(), &buf)

	log.WithField("custom_field", "custom_value").Info().Msg("test")

	assert.Equal(t, "custom_value", decode(t, &buf)["custom_field"])
}

func TestLogger_ContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(DefaultConfig(), &buf).WithRequestID("req-9")
	fallback := Nop()

	ctx := log.IntoContext(context.Background())
	FromContext(ctx, fallback).Info().Msg("from context")

	assert.Equal(t, "req-9", decode(t, &buf)["request_id"])
	assert.Same(t, fallback, FromContext(context.Background(), fallback))
}

func TestNop(t *testing.T) {
	var buf bytes.Buffer
	Nop().Info().Msg("this should not appear")
	assert.Empty(t, buf.String())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.False(t, cfg.EnableCaller)
	assert.Equal(t, "fare-scraper", cfg.ServiceName)
}
