package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups the handlers served by the API.
// Chat and Metrics are optional.
type Handlers struct {
	Flights *FlightHandler
	Chat    *ChatHandler
	Metrics http.Handler
}

// RegisterRoutes registers all fare scraper API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h Handlers) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Flights.Health)

	// API v1 group
	api := e.Group("/api/v1")
	api.POST("/flights/search", h.Flights.SearchFlights)
	if h.Chat != nil {
		api.POST("/chat", h.Chat.Chat)
	}

	if h.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(h.Metrics))
	}

	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
