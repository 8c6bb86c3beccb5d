package http

import "github.com/flight-search/southwest-fare-scraper/internal/domain"

// SearchFlightsResponse is the body of a successful search.
// Message is the plain-text rendering the assistant relays to the user.
type SearchFlightsResponse struct {
	Message  string                      `json:"message"`
	Data     domain.SerializedCollection `json:"data"`
	Metadata SearchMetadataDTO           `json:"metadata"`
}

// SearchMetadataDTO describes how a search was carried out.
type SearchMetadataDTO struct {
	// URL is the results page that was acquired
	URL string `json:"url"`

	// Acquirer names the page acquirer (browser or file)
	Acquirer string `json:"acquirer"`

	// Attempts is the number of acquisitions made
	Attempts int `json:"attempts" example:"1"`

	// SearchedAt is the RFC3339 start time of the search
	SearchedAt string `json:"searched_at" example:"2024-04-01T09:00:00Z"`

	// DurationMs is the time spent acquiring and parsing
	DurationMs int64 `json:"duration_ms" example:"4210"`

	// TotalFlights is the number of flights parsed
	TotalFlights int `json:"total_flights" example:"12"`

	// CheapestPrice is the lowest price across all tiers; absent when nothing is priced
	CheapestPrice *float64 `json:"cheapest_price,omitempty" example:"80"`
}

// ChatResponse is the body of a successful chat request.
type ChatResponse struct {
	Message string `json:"message"`
}
