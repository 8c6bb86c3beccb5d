package http

import (
	"context"
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/southwest-fare-scraper/internal/adapter/http/response"
	"github.com/flight-search/southwest-fare-scraper/internal/domain"
	"github.com/flight-search/southwest-fare-scraper/internal/infrastructure/logger"
	"github.com/flight-search/southwest-fare-scraper/internal/usecase"
)

// FlightHandler handles HTTP requests for fare search endpoints.
type FlightHandler struct {
	useCase usecase.FlightSearchUseCase
	log     *logger.Logger
}

// NewFlightHandler creates a new FlightHandler with the given use case.
// A nil logger discards handler logs.
func NewFlightHandler(uc usecase.FlightSearchUseCase, log *logger.Logger) *FlightHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &FlightHandler{
		useCase: uc,
		log:     log,
	}
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search Southwest fares
// @Description Scrape the Southwest results page for a one-way search
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search parameters"
// @Success 200 {object} SearchFlightsResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Wrong page, unparseable page or unreachable site"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/flights/search [post]
func (h *FlightHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest

	// Bind request body
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	// Validate request
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.Search(c.Request().Context(), ToDomainQuery(&req), ToSearchOptions(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToSearchResponse(result))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *FlightHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *FlightHandler) handleError(c echo.Context, err error) error {
	log := logger.FromContext(c.Request().Context(), h.log)

	var (
		structErr  *domain.PageStructureError
		parseErr   *domain.ParseError
		acqErr     *domain.AcquisitionError
		invalidErr *domain.ValidationError
	)

	switch {
	case errors.As(err, &invalidErr):
		return response.ValidationError(c, map[string]string{invalidErr.Field: invalidErr.Message})

	case errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationErrorWithMessage(c, err.Error())

	case errors.As(err, &structErr):
		log.Warn().Err(err).Msg("Results container missing from acquired page")
		return response.BadGateway(c, response.CodePageStructure, response.MsgPageStructure, map[string]string{
			"selector":   structErr.Selector,
			"page_title": structErr.PageTitle,
		})

	case errors.As(err, &parseErr):
		log.Error().Err(err).Msg("Flight row could not be parsed")
		return response.BadGateway(c, response.CodeParseError, response.MsgParseError, parseDetails(parseErr))

	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)

	case errors.As(err, &acqErr) && acqErr.Timeout:
		log.Warn().Err(err).Msg("Results page acquisition timed out")
		return response.GatewayTimeout(c, map[string]string{"url": acqErr.URL})

	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c, nil)

	case errors.As(err, &acqErr):
		log.Error().Err(err).Msg("Results page acquisition failed")
		return response.BadGateway(c, response.CodeUpstreamError, response.MsgUpstreamError, map[string]string{
			"url": acqErr.URL,
		})
	}

	log.Error().Err(err).Msg("Fare search failed")
	return response.InternalServerError(c)
}

func parseDetails(e *domain.ParseError) map[string]string {
	details := map[string]string{
		"field":    e.Field,
		"selector": e.Selector,
	}
	if e.Row >= 0 {
		details["row"] = strconv.Itoa(e.Row)
	}
	if e.FlightNumber != "" {
		details["flight_number"] = e.FlightNumber
	}
	return details
}

// Health handles GET /health
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}
