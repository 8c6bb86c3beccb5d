package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/cors"
)

// CORS lets browser clients on allowedOrigins call the API.
// An empty list allows every origin.
func CORS(allowedOrigins []string) echo.MiddlewareFunc {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{echo.HeaderContentType, RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	})

	return echo.WrapMiddleware(c.Handler)
}
