// Package domain contains the core entities of the fare scraper: the search
// query, the flight records parsed from a results page and the collection
// that aggregates them.
package domain

import (
	"regexp"
	"time"
)

// QueryContext holds the fixed search parameters attached to every record in a
// result set. It is a value type and is copied, never shared.
type QueryContext struct {
	// DepartureDate is the travel date in YYYY-MM-DD format
	DepartureDate string

	// OriginationAirport is the 3-letter code of the departure airport (e.g., "SAN")
	OriginationAirport string

	// DestinationAirport is the 3-letter code of the arrival airport (e.g., "DAL")
	DestinationAirport string

	// PassengerCount is the total number of passengers
	PassengerCount int

	// AdultCount is the number of adult passengers
	AdultCount int
}

// MaxPassengers is the largest party the booking site accepts in one search.
const MaxPassengers = 8

var (
	airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)
	dateRegex        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Validate checks the query parameters.
// The returned error wraps ErrInvalidRequest.
func (q QueryContext) Validate() error {
	if q.DepartureDate == "" {
		return NewValidationError("departure_date", "departure_date is required")
	}
	if !dateRegex.MatchString(q.DepartureDate) {
		return NewValidationError("departure_date", "departure_date must be in YYYY-MM-DD format")
	}
	if _, err := time.Parse("2006-01-02", q.DepartureDate); err != nil {
		return NewValidationError("departure_date", "departure_date is not a valid date")
	}

	if !airportCodeRegex.MatchString(q.OriginationAirport) {
		return NewValidationError("origination", "origination must be a 3-letter airport code")
	}
	if !airportCodeRegex.MatchString(q.DestinationAirport) {
		return NewValidationError("destination", "destination must be a 3-letter airport code")
	}
	if q.OriginationAirport == q.DestinationAirport {
		return NewValidationError("destination", "origination and destination must be different")
	}

	if q.PassengerCount < 1 {
		return NewValidationError("passenger_count", "passenger_count must be at least 1")
	}
	if q.PassengerCount > MaxPassengers {
		return NewValidationError("passenger_count", "passenger_count cannot exceed 8")
	}
	if q.AdultCount < 1 {
		return NewValidationError("adult_count", "adult_count must be at least 1")
	}
	if q.AdultCount > q.PassengerCount {
		return NewValidationError("adult_count", "adult_count cannot exceed passenger_count")
	}

	return nil
}
