package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/southwest-fare-scraper/internal/adapter/http/response"
	"github.com/flight-search/southwest-fare-scraper/internal/infrastructure/logger"
	"github.com/flight-search/southwest-fare-scraper/internal/infrastructure/metrics"
)

// Chat outcomes recorded on the chat metric.
const (
	chatStatusOK          = "ok"
	chatStatusInvalid     = "invalid"
	chatStatusUnavailable = "unavailable"
	chatStatusError       = "error"
)

// Assistant answers free-text fare questions, searching on the user's behalf.
type Assistant interface {
	Chat(ctx context.Context, message string) (string, error)
}

// ChatHandler handles the assistant endpoint.
type ChatHandler struct {
	assistant Assistant
	log       *logger.Logger
	metrics   *metrics.Metrics
}

// NewChatHandler creates a ChatHandler. A nil assistant makes every request
// answer 503.
func NewChatHandler(a Assistant, log *logger.Logger, m *metrics.Metrics) *ChatHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &ChatHandler{assistant: a, log: log, metrics: m}
}

// Chat handles POST /api/v1/chat
//
// @Summary Ask the fare assistant
// @Description Send a message to the customer support assistant, which searches fares when needed
// @Tags chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Chat message"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Assistant unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/chat [post]
func (h *ChatHandler) Chat(c echo.Context) error {
	if h.assistant == nil {
		h.metrics.ObserveChat(chatStatusUnavailable)
		return response.ServiceUnavailable(c, response.MsgAgentUnavailable)
	}

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		h.metrics.ObserveChat(chatStatusInvalid)
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		h.metrics.ObserveChat(chatStatusInvalid)
		var validationErrs *ValidationErrors
		if errors.As(err, &validationErrs) {
			return response.ValidationError(c, validationErrs.ToMap())
		}
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	ctx := c.Request().Context()
	reply, err := h.assistant.Chat(ctx, req.Message)
	if err != nil {
		h.metrics.ObserveChat(chatStatusError)
		switch {
		case errors.Is(err, context.Canceled):
			return response.RequestCancelled(c)
		case errors.Is(err, context.DeadlineExceeded):
			return response.GatewayTimeout(c, nil)
		}
		logger.FromContext(ctx, h.log).Error().Err(err).Msg("Assistant chat failed")
		return response.ServiceUnavailable(c, response.MsgAgentUnavailable)
	}

	h.metrics.ObserveChat(chatStatusOK)
	return response.OK(c, &ChatResponse{Message: reply})
}
