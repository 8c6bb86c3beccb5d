// Package mock provides test doubles for the fare scraper.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific pages).
package mock

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/flight-search/southwest-fare-scraper/internal/domain"
)

// Acquirer is a configurable mock implementation of domain.PageAcquirer.
// Each call returns the next configured response; the last one repeats.
type Acquirer struct {
	name      string
	responses []response
	delay     time.Duration
	calls     []Call
	mu        sync.Mutex
}

type response struct {
	html string
	err  error
}

// Call records the arguments of one Acquire call.
type Call struct {
	URL   string
	Debug bool
}

// NewAcquirer creates a new mock acquirer with the given name.
// The acquirer is configured using the builder pattern methods.
func NewAcquirer(name string) *Acquirer {
	return &Acquirer{name: name}
}

// WithPage appends a response returning html.
func (a *Acquirer) WithPage(html string) *Acquirer {
	a.responses = append(a.responses, response{html: html})
	return a
}

// WithError appends a response failing with err.
func (a *Acquirer) WithError(err error) *Acquirer {
	a.responses = append(a.responses, response{err: err})
	return a
}

// WithDelay configures the acquirer to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (a *Acquirer) WithDelay(d time.Duration) *Acquirer {
	a.delay = d
	return a
}

// Name returns the acquirer's name.
func (a *Acquirer) Name() string {
	return a.name
}

// Acquire implements domain.PageAcquirer.Acquire.
// It respects context cancellation the way the real acquirers do.
func (a *Acquirer) Acquire(ctx context.Context, url string, debug bool) (string, error) {
	a.mu.Lock()
	n := len(a.calls)
	a.calls = append(a.calls, Call{URL: url, Debug: debug})
	a.mu.Unlock()

	// Apply delay if configured
	if a.delay > 0 {
		select {
		case <-ctx.Done():
		case <-time.After(a.delay):
		}
	}

	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", domain.NewAcquisitionTimeoutError(url, err)
		}
		return "", domain.NewAcquisitionError(url, err)
	}

	if len(a.responses) == 0 {
		return "", domain.NewAcquisitionError(url, errors.New("mock acquirer has no page configured"))
	}
	if n >= len(a.responses) {
		n = len(a.responses) - 1
	}
	r := a.responses[n]
	return r.html, r.err
}

// CallCount returns the number of times Acquire was called.
func (a *Acquirer) CallCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.calls)
}

// Calls returns a copy of the recorded calls.
func (a *Acquirer) Calls() []Call {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Call, len(a.calls))
	copy(out, a.calls)
	return out
}

// Reset clears the recorded calls.
func (a *Acquirer) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls = nil
}

// Ensure Acquirer implements domain.PageAcquirer at compile time.
var _ domain.PageAcquirer = (*Acquirer)(nil)
