// Package http provides the HTTP handler layer for the fare scraper API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/flight-search/southwest-fare-scraper/internal/domain"
)

// SearchFlightsRequest is the body of POST /api/v1/flights/search.
// Its keys are the ones the assistant tool sends.
type SearchFlightsRequest struct {
	// DepartureDate is the travel date in YYYY-MM-DD format
	DepartureDate string `json:"departure_date" example:"2024-04-22"`

	// Origination is the 3-letter code of the departure airport
	Origination string `json:"origination" example:"SAN"`

	// Destination is the 3-letter code of the arrival airport
	Destination string `json:"destination" example:"DAL"`

	// PassengerCount is the total number of passengers (1-8)
	PassengerCount int `json:"passenger_count" example:"1"`

	// AdultCount is the number of adults, at most PassengerCount
	AdultCount int `json:"adult_count" example:"1"`

	// Debug requests a visible browser and a saved page for this search
	Debug bool `json:"debug,omitempty"`
}

// ChatRequest is the body of POST /api/v1/chat.
type ChatRequest struct {
	// Message is the user's chat message
	Message string `json:"message" example:"Find me a flight from San Diego to Dallas on April 22"`
}

// MaxChatMessageLength caps the length of a chat message in characters.
const MaxChatMessageLength = 4000

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds every field error of a request.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
// The first message wins when a field fails more than once.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		if _, ok := result[e.Field]; !ok {
			result[e.Field] = e.Message
		}
	}
	return result
}

// Validate normalizes airport codes to upper case and reports every invalid field.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateDepartureDate(errs)
	r.Origination = validateAirport(errs, "origination", r.Origination)
	r.Destination = validateAirport(errs, "destination", r.Destination)
	r.validateRoute(errs)
	r.validatePassengers(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchFlightsRequest) validateDepartureDate(errs *ValidationErrors) {
	r.DepartureDate = strings.TrimSpace(r.DepartureDate)
	if r.DepartureDate == "" {
		errs.Add("departure_date", "departure_date is required")
		return
	}
	if !datePattern.MatchString(r.DepartureDate) {
		errs.Add("departure_date", "departure_date must be in YYYY-MM-DD format")
		return
	}
	if _, err := time.Parse("2006-01-02", r.DepartureDate); err != nil {
		errs.Add("departure_date", "departure_date is not a valid date")
	}
}

func validateAirport(errs *ValidationErrors, field, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		errs.Add(field, field+" is required")
		return code
	}
	if !airportCodePattern.MatchString(code) {
		errs.Add(field, field+" must be a 3-letter airport code")
	}
	return code
}

func (r *SearchFlightsRequest) validateRoute(errs *ValidationErrors) {
	if r.Origination != "" && r.Origination == r.Destination {
		errs.Add("destination", "origination and destination must be different")
	}
}

func (r *SearchFlightsRequest) validatePassengers(errs *ValidationErrors) {
	switch {
	case r.PassengerCount < 1:
		errs.Add("passenger_count", "passenger_count must be at least 1")
	case r.PassengerCount > domain.MaxPassengers:
		errs.Add("passenger_count", fmt.Sprintf("passenger_count cannot exceed %d", domain.MaxPassengers))
	}

	switch {
	case r.AdultCount < 1:
		errs.Add("adult_count", "adult_count must be at least 1")
	case r.PassengerCount >= 1 && r.AdultCount > r.PassengerCount:
		errs.Add("adult_count", "adult_count cannot exceed passenger_count")
	}
}

// Validate reports an empty or oversized chat message.
func (r *ChatRequest) Validate() error {
	errs := &ValidationErrors{}

	r.Message = strings.TrimSpace(r.Message)
	switch {
	case r.Message == "":
		errs.Add("message", "message is required")
	case utf8.RuneCountInString(r.Message) > MaxChatMessageLength:
		errs.Add("message", fmt.Sprintf("message cannot exceed %d characters", MaxChatMessageLength))
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
