// Package agent runs the customer support chat assistant. Each chat opens a
// Copilot SDK session whose single tool runs a fare search.
package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	sdk "github.com/github/copilot-sdk/go"

	"github.com/flight-search/southwest-fare-scraper/internal/domain"
	"github.com/flight-search/southwest-fare-scraper/internal/infrastructure/logger"
	"github.com/flight-search/southwest-fare-scraper/internal/infrastructure/timeutil"
	"github.com/flight-search/southwest-fare-scraper/internal/usecase"
)

// Default assistant values.
const (
	DefaultModel   = "gpt-4.1"
	DefaultTimeout = 80 * time.Second
)

var (
	// ErrSession is returned when the model session reports an error.
	ErrSession = errors.New("assistant session error")

	errNoClient = errors.New("copilot client not configured")
)

// chatSession is the part of *sdk.Session a chat uses.
type chatSession interface {
	On(handler sdk.SessionEventHandler) func()
	Send(options sdk.MessageOptions) (string, error)
	Destroy() error
}

type sessionFactory func(cfg *sdk.SessionConfig) (chatSession, error)

func clientSessions(client *sdk.Client) sessionFactory {
	return func(cfg *sdk.SessionConfig) (chatSession, error) {
		if client == nil {
			return nil, errNoClient
		}
		session, err := client.CreateSession(cfg)
		if err != nil {
			return nil, err
		}
		return session, nil
	}
}

// SearchParams are the arguments of the fare search tool.
type SearchParams struct {
	DepartureDate  string `json:"departure_date" jsonschema:"The date of the flight in the format yyyy-mm-dd"`
	Origination    string `json:"origination" jsonschema:"The origination airport 3-letter code. Examples: SAN, LAX, SFO"`
	Destination    string `json:"destination" jsonschema:"The destination airport 3-letter code. Examples: DAL, PHX, LGA"`
	PassengerCount int    `json:"passenger_count" jsonschema:"The number of passengers"`
	AdultCount     int    `json:"adult_count" jsonschema:"The number of adults"`
}

// Query converts the tool arguments to a domain query.
func (p SearchParams) Query() domain.QueryContext {
	return domain.QueryContext{
		DepartureDate:      strings.TrimSpace(p.DepartureDate),
		OriginationAirport: strings.ToUpper(strings.TrimSpace(p.Origination)),
		DestinationAirport: strings.ToUpper(strings.TrimSpace(p.Destination)),
		PassengerCount:     p.PassengerCount,
		AdultCount:         p.AdultCount,
	}
}

// Config holds the assistant settings.
type Config struct {
	Model   string
	Timeout time.Duration
}

// Assistant answers chat messages with a Copilot model that can search fares.
type Assistant struct {
	newSession sessionFactory
	search     usecase.FlightSearchUseCase
	model      string
	timeout    time.Duration
	log        *logger.Logger
	clock      timeutil.Clock
}

// New creates an Assistant on a started Copilot client.
func New(client *sdk.Client, search usecase.FlightSearchUseCase, cfg Config, log *logger.Logger) *Assistant {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Assistant{
		newSession: clientSessions(client),
		search:     search,
		model:      cfg.Model,
		timeout:    cfg.Timeout,
		log:        log,
		clock:      timeutil.NewRealClock(),
	}
}

// Chat sends message to a new session and returns the final assistant reply.
func (a *Assistant) Chat(ctx context.Context, message string) (string, error) {
	log := logger.FromContext(ctx, a.log)

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	session, err := a.newSession(&sdk.SessionConfig{
		Model:     a.model,
		Streaming: true,
		Tools:     []sdk.Tool{a.searchTool(ctx)},
		SystemMessage: &sdk.SystemMessageConfig{
			Mode:    "replace",
			Content: buildSystemMessage(a.clock.Now().Format("2006-01-02")),
		},
	})
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	defer session.Destroy()

	var (
		mu       sync.Mutex
		reply    string
		failure  error
		once     sync.Once
		finished = make(chan struct{})
	)
	done := func() { once.Do(func() { close(finished) }) }

	session.On(func(event sdk.SessionEvent) {
		switch event.Type {
		case "assistant.message":
			if event.Data.Content != nil {
				mu.Lock()
				reply = *event.Data.Content
				mu.Unlock()
			}
		case "session.idle":
			done()
		case "session.error":
			msg := "unknown error"
			if event.Data.Content != nil {
				msg = *event.Data.Content
			}
			mu.Lock()
			failure = fmt.Errorf("%w: %s", ErrSession, msg)
			mu.Unlock()
			done()
		}
	})

	log.Debug().Str("model", a.model).Msg("Sending chat message")
	if _, err := session.Send(sdk.MessageOptions{Prompt: message}); err != nil {
		return "", fmt.Errorf("send message: %w", err)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-finished:
	}

	mu.Lock()
	defer mu.Unlock()
	if failure != nil {
		return "", failure
	}
	return reply, nil
}

// searchTool defines the fare search tool bound to the chat context.
func (a *Assistant) searchTool(ctx context.Context) sdk.Tool {
	return sdk.DefineTool(ToolName, toolDescription,
		func(params SearchParams, inv sdk.ToolInvocation) (any, error) {
			return a.runSearch(ctx, params), nil
		})
}

// runSearch executes one tool call. Failures are returned to the model as
// text so it can explain them to the customer.
func (a *Assistant) runSearch(ctx context.Context, params SearchParams) string {
	query := params.Query()
	log := logger.FromContext(ctx, a.log).
		WithSearch(query.OriginationAirport, query.DestinationAirport, query.DepartureDate)

	log.Info().
		Int("passenger_count", query.PassengerCount).
		Int("adult_count", query.AdultCount).
		Msg("Assistant requested fare search")

	result, err := a.search.Search(ctx, query, usecase.DefaultSearchOptions())
	if err != nil {
		log.Warn().Err(err).Msg("Assistant fare search failed")
		return "Error: " + err.Error()
	}
	return result.Collection.DisplayText()
}
