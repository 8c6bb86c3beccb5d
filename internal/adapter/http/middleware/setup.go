package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-search/southwest-fare-scraper/internal/infrastructure/logger"
)

// Setup registers all middleware on the Echo instance in order:
//  1. RequestID, so every later log line carries the ID
//  2. ContextLogger, so use cases log with the ID
//  3. RequestLogger
//  4. Recover, innermost so a panic still produces a logged response
//
// Call it before registering routes.
func Setup(e *echo.Echo, log *logger.Logger) {
	SetupWithConfig(e, log, DefaultRecoveryConfig())
}

// SetupWithConfig registers middleware with a custom recovery configuration.
func SetupWithConfig(e *echo.Echo, log *logger.Logger, recoveryConfig RecoveryConfig) {
	e.Use(RequestID())
	e.Use(ContextLogger(log))
	e.Use(RequestLogger(log))
	e.Use(RecoverWithConfig(log, recoveryConfig))
}
