package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=acquirer.go -destination=mock_acquirer.go -package=domain

// PageAcquirer obtains the fully rendered markup of a results page.
// Implementations own navigation, timeouts and interstitial handling; on
// failure they return an *AcquisitionError.
type PageAcquirer interface {
	// Name identifies the acquisition strategy (e.g., "browser", "file").
	Name() string

	// Acquire returns the markup of the page served for url. When debug is
	// set the implementation may run visibly and keep a copy of the page.
	Acquire(ctx context.Context, url string, debug bool) (string, error)
}

// SearchMetadata describes how a search result was obtained.
type SearchMetadata struct {
	// URL is the results page address that was acquired
	URL string `json:"url"`

	// Acquirer is the name of the acquisition strategy used
	Acquirer string `json:"acquirer"`

	// Attempts is the number of acquisition attempts made
	Attempts int `json:"attempts"`

	// SearchedAt is when the search started
	SearchedAt time.Time `json:"searched_at"`

	// DurationMs is the total search duration in milliseconds
	DurationMs int64 `json:"duration_ms"`
}

// SearchResult is the outcome of one search: the populated collection and
// metadata about its acquisition.
type SearchResult struct {
	Collection *FlightCollection
	Metadata   SearchMetadata
}
