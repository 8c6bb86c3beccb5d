package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/flight-search/southwest-fare-scraper/internal/adapter/acquisition"
	"github.com/flight-search/southwest-fare-scraper/internal/domain"
	"github.com/flight-search/southwest-fare-scraper/internal/infrastructure/logger"
	"github.com/flight-search/southwest-fare-scraper/internal/infrastructure/metrics"
	"github.com/flight-search/southwest-fare-scraper/internal/infrastructure/retry"
	"github.com/flight-search/southwest-fare-scraper/internal/infrastructure/timeutil"
	"github.com/flight-search/southwest-fare-scraper/internal/scraper"
)

// Default orchestration values.
const (
	DefaultSearchTimeout = 60 * time.Second
	DefaultMaxAttempts   = 1
	DefaultRetryDelay    = time.Second
)

// FlightSearchUseCase defines the interface for fare search operations.
type FlightSearchUseCase interface {
	// Search validates the query, acquires the results page and parses it.
	Search(ctx context.Context, query domain.QueryContext, opts SearchOptions) (*domain.SearchResult, error)
}

// Config contains configuration options for the use case.
type Config struct {
	// SearchTimeout bounds acquisition and parsing, retries included
	SearchTimeout time.Duration

	// MaxAttempts is the number of acquisitions tried when the wrong page
	// renders or acquisition times out; 1 disables retries
	MaxAttempts int

	// RetryDelay is the wait before the first retry
	RetryDelay time.Duration

	// BaseURL overrides the booking site results page
	BaseURL string

	// Debug turns on debug acquisition for every search
	Debug bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		SearchTimeout: DefaultSearchTimeout,
		MaxAttempts:   DefaultMaxAttempts,
		RetryDelay:    DefaultRetryDelay,
		BaseURL:       acquisition.DefaultBaseURL,
	}
}

type flightSearchUseCase struct {
	acquirer domain.PageAcquirer
	cfg      Config
	log      *logger.Logger
	metrics  *metrics.Metrics
	clock    timeutil.Clock
}

// NewFlightSearchUseCase creates a FlightSearchUseCase around the given acquirer.
// If config is nil, or a field is zero, the default values are used.
func NewFlightSearchUseCase(acquirer domain.PageAcquirer, config *Config, opts ...Option) FlightSearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.SearchTimeout > 0 {
			cfg.SearchTimeout = config.SearchTimeout
		}
		if config.MaxAttempts > 0 {
			cfg.MaxAttempts = config.MaxAttempts
		}
		if config.RetryDelay > 0 {
			cfg.RetryDelay = config.RetryDelay
		}
		if config.BaseURL != "" {
			cfg.BaseURL = config.BaseURL
		}
		cfg.Debug = config.Debug
	}

	uc := &flightSearchUseCase{
		acquirer: acquirer,
		cfg:      cfg,
		log:      logger.Nop(),
		clock:    timeutil.NewRealClock(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Search implements FlightSearchUseCase.Search.
func (uc *flightSearchUseCase) Search(ctx context.Context, query domain.QueryContext, opts SearchOptions) (*domain.SearchResult, error) {
	start := uc.clock.Now()
	name := uc.acquirer.Name()
	log := logger.FromContext(ctx, uc.log).
		WithSearch(query.OriginationAirport, query.DestinationAirport, query.DepartureDate).
		WithAcquirer(name)

	if err := query.Validate(); err != nil {
		uc.metrics.ObserveSearch(metrics.OutcomeInvalid, 0, 0)
		return nil, err
	}

	url := acquisition.BuildSearchURL(uc.cfg.BaseURL, query)
	debug := uc.cfg.Debug || opts.Debug

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.SearchTimeout)
	defer cancel()

	attempts := 0
	records, err := retry.DoWithResult(ctx, func() ([]domain.FlightRecord, error) {
		attempts++
		uc.metrics.ObserveAttempt(name)

		markup, err := uc.acquirer.Acquire(ctx, url, debug)
		if err != nil {
			return nil, err
		}
		return scraper.ParsePage(markup, query)
	}, uc.retryConfig(log))

	elapsed := timeutil.Since(uc.clock, start)
	if err != nil {
		err = asTimeout(url, err)
		uc.metrics.ObserveSearch(outcomeOf(err), elapsed, 0)
		log.Error().Err(err).Int("attempts", attempts).Dur("elapsed", elapsed).Msg("Fare search failed")
		return nil, err
	}

	collection := domain.NewFlightCollection(query)
	if err := collection.Populate(records); err != nil {
		return nil, err
	}

	uc.metrics.ObserveSearch(metrics.OutcomeSuccess, elapsed, collection.Len())
	event := log.Info().Int("flights", collection.Len()).Int("attempts", attempts).Dur("elapsed", elapsed)
	if cheapest, err := collection.CheapestPrice(); err == nil {
		event = event.Float64("cheapest", cheapest)
	}
	event.Msg("Fare search completed")

	return &domain.SearchResult{
		Collection: collection,
		Metadata: domain.SearchMetadata{
			URL:        url,
			Acquirer:   name,
			Attempts:   attempts,
			SearchedAt: start,
			DurationMs: elapsed.Milliseconds(),
		},
	}, nil
}

func (uc *flightSearchUseCase) retryConfig(log *logger.Logger) retry.Config {
	return retry.PageLoadConfig.
		WithMaxAttempts(uc.cfg.MaxAttempts).
		WithInitialDelay(uc.cfg.RetryDelay).
		WithRetryIf(retryable).
		WithOnRetry(func(attempt int, err error, wait time.Duration) {
			log.Warn().Err(err).Int("attempt", attempt).Dur("wait", wait).Msg("Retrying page acquisition")
		})
}

// retryable reports whether another acquisition may render the right page.
// Parse errors mean the page rendered but its markup is not understood.
func retryable(err error) bool {
	return domain.IsPageStructure(err) || domain.IsAcquisitionTimeout(err)
}

// asTimeout converts a bare search deadline into an acquisition timeout.
func asTimeout(url string, err error) error {
	var aerr *domain.AcquisitionError
	if errors.Is(err, context.DeadlineExceeded) && !errors.As(err, &aerr) {
		return domain.NewAcquisitionTimeoutError(url, err)
	}
	return err
}

func outcomeOf(err error) string {
	switch {
	case domain.IsInvalidRequest(err):
		return metrics.OutcomeInvalid
	case domain.IsPageStructure(err):
		return metrics.OutcomePageStructure
	case domain.IsParse(err):
		return metrics.OutcomeParse
	case domain.IsAcquisitionTimeout(err):
		return metrics.OutcomeTimeout
	case errors.Is(err, domain.ErrAcquisition):
		return metrics.OutcomeAcquisition
	default:
		return metrics.OutcomeError
	}
}
