package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEcho() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorDetail {
	t.Helper()
	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	return result
}

func TestHealth(t *testing.T) {
	c, rec := setupEcho()

	require.NoError(t, Health(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var result HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "ok", result.Status)
}

func TestErrorBuilders(t *testing.T) {
	details := map[string]string{"selector": "ul#air-search-results-matrix-0"}

	tests := []struct {
		name        string
		write       func(c echo.Context) error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails map[string]string
	}{
		{
			name:        "bad request",
			write:       func(c echo.Context) error { return BadRequest(c, "Invalid input") },
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeInvalidRequest,
			wantMessage: "Invalid input",
		},
		{
			name:        "invalid body",
			write:       InvalidRequestBody,
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeInvalidRequest,
			wantMessage: MsgInvalidRequestBody,
		},
		{
			name:        "validation details",
			write:       func(c echo.Context) error { return ValidationError(c, map[string]string{"origination": "is required"}) },
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeValidationError,
			wantMessage: MsgValidationFailed,
			wantDetails: map[string]string{"origination": "is required"},
		},
		{
			name:        "validation message",
			write:       func(c echo.Context) error { return ValidationErrorWithMessage(c, "adult_count: too many") },
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeValidationError,
			wantMessage: "adult_count: too many",
		},
		{
			name:        "bad gateway",
			write:       func(c echo.Context) error { return BadGateway(c, CodePageStructure, MsgPageStructure, details) },
			wantStatus:  http.StatusBadGateway,
			wantCode:    CodePageStructure,
			wantMessage: MsgPageStructure,
			wantDetails: details,
		},
		{
			name:        "gateway timeout",
			write:       func(c echo.Context) error { return GatewayTimeout(c, nil) },
			wantStatus:  http.StatusGatewayTimeout,
			wantCode:    CodeTimeout,
			wantMessage: MsgTimeout,
		},
		{
			name:        "cancelled",
			write:       RequestCancelled,
			wantStatus:  http.StatusGatewayTimeout,
			wantCode:    CodeTimeout,
			wantMessage: MsgRequestCancelled,
		},
		{
			name:        "service unavailable",
			write:       func(c echo.Context) error { return ServiceUnavailable(c, MsgAgentUnavailable) },
			wantStatus:  http.StatusServiceUnavailable,
			wantCode:    CodeServiceUnavailable,
			wantMessage: MsgAgentUnavailable,
		},
		{
			name:        "internal",
			write:       InternalServerError,
			wantStatus:  http.StatusInternalServerError,
			wantCode:    CodeInternalError,
			wantMessage: MsgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := setupEcho()

			require.NoError(t, tt.write(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			result := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, result.Code)
			assert.Equal(t, tt.wantMessage, result.Message)
			assert.Equal(t, tt.wantDetails, result.Details)
		})
	}
}

func TestGatewayTimeout_OmitsEmptyDetails(t *testing.T) {
	c, rec := setupEcho()

	require.NoError(t, GatewayTimeout(c, nil))

	assert.NotContains(t, rec.Body.String(), "details")
}

func TestSearchResults(t *testing.T) {
	c, rec := setupEcho()

	results := struct {
		Message string `json:"message"`
	}{Message: "Total Flights Available: 2"}

	require.NoError(t, SearchResults(c, results))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Total Flights Available: 2")
}

func TestOK(t *testing.T) {
	c, rec := setupEcho()

	require.NoError(t, OK(c, map[string]string{"message": "hi"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"hi"}`, rec.Body.String())
}
