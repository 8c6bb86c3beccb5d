package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/southwest-fare-scraper/internal/adapter/http/response"
	"github.com/flight-search/southwest-fare-scraper/internal/domain"
	"github.com/flight-search/southwest-fare-scraper/internal/usecase"
)

// mockUseCase is a mock implementation of FlightSearchUseCase for testing.
type mockUseCase struct {
	searchFunc func(ctx context.Context, query domain.QueryContext, opts usecase.SearchOptions) (*domain.SearchResult, error)
}

func (m *mockUseCase) Search(ctx context.Context, query domain.QueryContext, opts usecase.SearchOptions) (*domain.SearchResult, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, opts)
	}
	return resultFor(query), nil
}

// resultFor builds a one-flight result for query.
func resultFor(query domain.QueryContext, records ...domain.FlightRecord) *domain.SearchResult {
	c := domain.NewFlightCollection(query)
	_ = c.Populate(records)
	return &domain.SearchResult{
		Collection: c,
		Metadata: domain.SearchMetadata{
			URL:        "https://www.southwest.com/air/booking/select-depart.html",
			Acquirer:   "file",
			Attempts:   1,
			SearchedAt: time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC),
			DurationMs: 120,
		},
	}
}

func testRecord(query domain.QueryContext) domain.FlightRecord {
	return domain.FlightRecord{
		Query:         query,
		FlightNumber:  "# 1234",
		LowFare:       true,
		NumberOfStops: "0",
		ChangePlanes:  domain.ChangePlanesNotApplicable,
		DepartureTime: "6:00AM",
		ArrivalTime:   "11:15AM",
		Duration:      "3h 15m",
		PricesAndSeatsLeft: [domain.FareTierCount]domain.FareOffer{
			{Tier: domain.FareTierBusinessSelect, Price: "$250", SeatsLeft: domain.SeatsPlenty},
			{Tier: domain.FareTierAnytime, Price: "$210", SeatsLeft: domain.SeatsPlenty},
			{Tier: domain.FareTierWannaGetAwayPlus, Price: "$120", SeatsLeft: "3 left"},
			{Tier: domain.FareTierWannaGetAway, Price: "$80", SeatsLeft: "1 left"},
		},
	}
}

// setupTestHandler creates a test Echo instance and FlightHandler.
func setupTestHandler(uc usecase.FlightSearchUseCase) (*echo.Echo, *FlightHandler) {
	e := echo.New()
	h := NewFlightHandler(uc, nil)
	RegisterRoutes(e, Handlers{Flights: h})
	return e, h
}

// makeRequest is a helper to make test requests.
func makeRequest(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func validRequest() SearchFlightsRequest {
	return SearchFlightsRequest{
		DepartureDate:  "2024-04-22",
		Origination:    "SAN",
		Destination:    "DAL",
		PassengerCount: 1,
		AdultCount:     1,
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorDetail {
	t.Helper()
	var errResp response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	return errResp
}

// =====================================================
// Handler Tests
// =====================================================

func TestSearchFlights_Success(t *testing.T) {
	var captured domain.QueryContext
	mock := &mockUseCase{
		searchFunc: func(ctx context.Context, query domain.QueryContext, opts usecase.SearchOptions) (*domain.SearchResult, error) {
			captured = query
			return resultFor(query, testRecord(query)), nil
		},
	}
	e, _ := setupTestHandler(mock)

	req := validRequest()
	req.Origination = "san"
	rec := makeRequest(e, http.MethodPost, "/api/v1/flights/search", req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "SAN", captured.OriginationAirport)
	assert.Equal(t, "DAL", captured.DestinationAirport)

	var resp SearchFlightsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "Total Flights Available: 1")
	assert.Contains(t, resp.Message, "Cheapest Flight Price: $80")
	require.Len(t, resp.Data.Flights, 1)
	assert.Equal(t, "# 1234", resp.Data.Flights[0].FlightNumber)
	assert.Equal(t, []string{"Wanna Get Away", "$80", "1 left"}, resp.Data.Flights[0].PricesAndSeatsLeft[3])
	assert.Equal(t, 1, resp.Metadata.TotalFlights)
	assert.Equal(t, "file", resp.Metadata.Acquirer)
	assert.Equal(t, "2024-04-01T09:00:00Z", resp.Metadata.SearchedAt)
	require.NotNil(t, resp.Metadata.CheapestPrice)
	assert.Equal(t, 80.0, *resp.Metadata.CheapestPrice)
}

func TestSearchFlights_EmptyResults(t *testing.T) {
	e, _ := setupTestHandler(&mockUseCase{})

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights/search", validRequest())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"flights":[]`)
	assert.NotContains(t, rec.Body.String(), "cheapest_price")
	assert.Contains(t, rec.Body.String(), "Cheapest Flight Price: N/A")
}

func TestSearchFlights_DebugOption(t *testing.T) {
	var capturedOpts usecase.SearchOptions
	mock := &mockUseCase{
		searchFunc: func(ctx context.Context, query domain.QueryContext, opts usecase.SearchOptions) (*domain.SearchResult, error) {
			capturedOpts = opts
			return resultFor(query), nil
		},
	}
	e, _ := setupTestHandler(mock)

	req := validRequest()
	req.Debug = true
	rec := makeRequest(e, http.MethodPost, "/api/v1/flights/search", req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, capturedOpts.Debug)
}

func TestSearchFlights_InvalidJSON(t *testing.T) {
	e, _ := setupTestHandler(&mockUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/flights/search",
		strings.NewReader(`{invalid json`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, response.CodeInvalidRequest, decodeError(t, rec).Code)
}

func TestSearchFlights_ValidationErrors(t *testing.T) {
	called := false
	mock := &mockUseCase{
		searchFunc: func(ctx context.Context, query domain.QueryContext, opts usecase.SearchOptions) (*domain.SearchResult, error) {
			called = true
			return resultFor(query), nil
		},
	}
	e, _ := setupTestHandler(mock)

	tests := []struct {
		name          string
		mutate        func(r *SearchFlightsRequest)
		expectedField string
	}{
		{"missing origination", func(r *SearchFlightsRequest) { r.Origination = "" }, "origination"},
		{"missing destination", func(r *SearchFlightsRequest) { r.Destination = "" }, "destination"},
		{"missing departure date", func(r *SearchFlightsRequest) { r.DepartureDate = "" }, "departure_date"},
		{"bad date format", func(r *SearchFlightsRequest) { r.DepartureDate = "04/22/2024" }, "departure_date"},
		{"origination with digits", func(r *SearchFlightsRequest) { r.Origination = "SA1" }, "origination"},
		{"same airports", func(r *SearchFlightsRequest) { r.Destination = "SAN" }, "destination"},
		{"zero passengers", func(r *SearchFlightsRequest) { r.PassengerCount = 0 }, "passenger_count"},
		{"adults exceed passengers", func(r *SearchFlightsRequest) { r.AdultCount = 2 }, "adult_count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			rec := makeRequest(e, http.MethodPost, "/api/v1/flights/search", req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			errResp := decodeError(t, rec)
			assert.Equal(t, response.CodeValidationError, errResp.Code)
			assert.Contains(t, errResp.Details, tt.expectedField)
		})
	}
	assert.False(t, called, "use case must not run for invalid requests")
}

func TestSearchFlights_ErrorMapping(t *testing.T) {
	const searchURL = "https://www.southwest.com/air/booking/select-depart.html?x=1"

	parseErr := domain.NewParseError("duration", "div.flight-stops--duration")
	parseErr.Row = 2
	parseErr.FlightNumber = "# 42"

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
		expectedDetail map[string]string
	}{
		{
			name:           "domain validation",
			err:            domain.NewValidationError("adult_count", "adult_count must be at least 1"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   response.CodeValidationError,
			expectedDetail: map[string]string{"adult_count": "adult_count must be at least 1"},
		},
		{
			name:           "page structure",
			err:            domain.NewPageStructureError("#air-booking-product-0", "Book Flights | Southwest Airlines"),
			expectedStatus: http.StatusBadGateway,
			expectedCode:   response.CodePageStructure,
			expectedDetail: map[string]string{"selector": "#air-booking-product-0", "page_title": "Book Flights | Southwest Airlines"},
		},
		{
			name:           "parse",
			err:            parseErr,
			expectedStatus: http.StatusBadGateway,
			expectedCode:   response.CodeParseError,
			expectedDetail: map[string]string{
				"row": "2", "flight_number": "# 42", "field": "duration", "selector": "div.flight-stops--duration",
			},
		},
		{
			name:           "acquisition timeout",
			err:            domain.NewAcquisitionTimeoutError(searchURL, context.DeadlineExceeded),
			expectedStatus: http.StatusGatewayTimeout,
			expectedCode:   response.CodeTimeout,
			expectedDetail: map[string]string{"url": searchURL},
		},
		{
			name:           "acquisition failure",
			err:            domain.NewAcquisitionError(searchURL, errors.New("net::ERR_NAME_NOT_RESOLVED")),
			expectedStatus: http.StatusBadGateway,
			expectedCode:   response.CodeUpstreamError,
			expectedDetail: map[string]string{"url": searchURL},
		},
		{
			name:           "cancelled",
			err:            context.Canceled,
			expectedStatus: http.StatusGatewayTimeout,
			expectedCode:   response.CodeTimeout,
		},
		{
			name:           "bare deadline",
			err:            context.DeadlineExceeded,
			expectedStatus: http.StatusGatewayTimeout,
			expectedCode:   response.CodeTimeout,
		},
		{
			name:           "unknown",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   response.CodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockUseCase{
				searchFunc: func(ctx context.Context, query domain.QueryContext, opts usecase.SearchOptions) (*domain.SearchResult, error) {
					return nil, tt.err
				},
			}
			e, _ := setupTestHandler(mock)

			rec := makeRequest(e, http.MethodPost, "/api/v1/flights/search", validRequest())

			assert.Equal(t, tt.expectedStatus, rec.Code)
			errResp := decodeError(t, rec)
			assert.Equal(t, tt.expectedCode, errResp.Code)
			for k, v := range tt.expectedDetail {
				assert.Equal(t, v, errResp.Details[k], "detail %s", k)
			}
		})
	}
}

func TestSearchFlights_PassesRequestContext(t *testing.T) {
	type ctxKey struct{}
	var got interface{}
	mock := &mockUseCase{
		searchFunc: func(ctx context.Context, query domain.QueryContext, opts usecase.SearchOptions) (*domain.SearchResult, error) {
			got = ctx.Value(ctxKey{})
			return resultFor(query), nil
		},
	}
	e, _ := setupTestHandler(mock)

	body, _ := json.Marshal(validRequest())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/flights/search", bytes.NewReader(body))
	req = req.WithContext(context.WithValue(req.Context(), ctxKey{}, "marker"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "marker", got)
}

func TestHealth(t *testing.T) {
	e, _ := setupTestHandler(&mockUseCase{})

	rec := makeRequest(e, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRegisterRoutes_OptionalHandlers(t *testing.T) {
	e := echo.New()
	RegisterRoutes(e, Handlers{Flights: NewFlightHandler(&mockUseCase{}, nil)})

	rec := makeRequest(e, http.MethodPost, "/api/v1/chat", ChatRequest{Message: "hi"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = makeRequest(e, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
