// Package integration provides helpers and integration tests for the fare scraper.
// Integration tests verify that components work together correctly, including
// HTTP handlers, the use case, the parser and the file-backed acquirer.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/flight-search/southwest-fare-scraper/internal/adapter/http"
	"github.com/flight-search/southwest-fare-scraper/internal/adapter/http/middleware"
	"github.com/flight-search/southwest-fare-scraper/internal/adapter/http/response"
	"github.com/flight-search/southwest-fare-scraper/internal/domain"
	"github.com/flight-search/southwest-fare-scraper/internal/infrastructure/logger"
	"github.com/flight-search/southwest-fare-scraper/internal/infrastructure/metrics"
	"github.com/flight-search/southwest-fare-scraper/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.FlightHandler
	Metrics *metrics.Metrics
}

// NewTestServer creates a test server around an acquirer with the full
// middleware stack, metrics and the given use case configuration.
func NewTestServer(acquirer domain.PageAcquirer, config *usecase.Config) *TestServer {
	log := logger.Nop()
	m := metrics.NewMetrics("fare_scraper")
	uc := usecase.NewFlightSearchUseCase(acquirer, config,
		usecase.WithLogger(log),
		usecase.WithMetrics(m),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.Setup(e, log)

	handler := httpAdapter.NewFlightHandler(uc, log)
	httpAdapter.RegisterRoutes(e, httpAdapter.Handlers{
		Flights: handler,
		Metrics: m.Handler(),
	})

	return &TestServer{
		Echo:    e,
		Handler: handler,
		Metrics: m,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a search request body.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/search",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// MetricsRequest scrapes the metrics endpoint.
func (ts *TestServer) MetricsRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/metrics",
	})
}

// ParseSearchResponse parses the response body as a SearchFlightsResponse.
func (r *Response) ParseSearchResponse() (*httpAdapter.SearchFlightsResponse, error) {
	var resp httpAdapter.SearchFlightsResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body as an error detail.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	var errResp response.ErrorDetail
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return &errResp, nil
}

// DefaultSearchRequest returns the request the fixture pages were saved for.
func DefaultSearchRequest() httpAdapter.SearchFlightsRequest {
	return httpAdapter.SearchFlightsRequest{
		DepartureDate:  "2024-04-22",
		Origination:    "SAN",
		Destination:    "DAL",
		PassengerCount: 1,
		AdultCount:     1,
	}
}
