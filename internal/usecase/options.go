// Package usecase orchestrates a fare search: it builds the results page URL,
// acquires the rendered page and parses it into a flight collection.
package usecase

import (
	"github.com/flight-search/southwest-fare-scraper/internal/infrastructure/logger"
	"github.com/flight-search/southwest-fare-scraper/internal/infrastructure/metrics"
	"github.com/flight-search/southwest-fare-scraper/internal/infrastructure/timeutil"
)

// SearchOptions contains per-request parameters of a search.
type SearchOptions struct {
	// Debug asks the acquirer for a visible browser and a page dump.
	// It is OR-ed with Config.Debug.
	Debug bool
}

// DefaultSearchOptions returns the options used when a caller sets none.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{}
}

// Option customises the collaborators of the use case.
type Option func(*flightSearchUseCase)

// WithLogger sets the logger used when the request context carries none.
func WithLogger(l *logger.Logger) Option {
	return func(uc *flightSearchUseCase) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithMetrics records search outcomes and acquisition attempts.
func WithMetrics(m *metrics.Metrics) Option {
	return func(uc *flightSearchUseCase) {
		uc.metrics = m
	}
}

// WithClock overrides the clock used for timestamps and durations.
func WithClock(c timeutil.Clock) Option {
	return func(uc *flightSearchUseCase) {
		if c != nil {
			uc.clock = c
		}
	}
}
