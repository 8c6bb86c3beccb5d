package http

import (
	"time"

	"github.com/flight-search/southwest-fare-scraper/internal/domain"
	"github.com/flight-search/southwest-fare-scraper/internal/usecase"
)

// ToDomainQuery converts a validated request to the domain query.
func ToDomainQuery(req *SearchFlightsRequest) domain.QueryContext {
	return domain.QueryContext{
		DepartureDate:      req.DepartureDate,
		OriginationAirport: req.Origination,
		DestinationAirport: req.Destination,
		PassengerCount:     req.PassengerCount,
		AdultCount:         req.AdultCount,
	}
}

// ToSearchOptions extracts the per-request search options.
func ToSearchOptions(req *SearchFlightsRequest) usecase.SearchOptions {
	return usecase.SearchOptions{Debug: req.Debug}
}

// ToSearchResponse builds the response body from a search result.
func ToSearchResponse(result *domain.SearchResult) *SearchFlightsResponse {
	c := result.Collection

	meta := SearchMetadataDTO{
		URL:          result.Metadata.URL,
		Acquirer:     result.Metadata.Acquirer,
		Attempts:     result.Metadata.Attempts,
		SearchedAt:   result.Metadata.SearchedAt.UTC().Format(time.RFC3339),
		DurationMs:   result.Metadata.DurationMs,
		TotalFlights: c.Len(),
	}
	if cheapest, err := c.CheapestPrice(); err == nil {
		meta.CheapestPrice = &cheapest
	}

	return &SearchFlightsResponse{
		Message:  c.DisplayText(),
		Data:     c.ToSerializable(),
		Metadata: meta,
	}
}
