// Package acquisition builds Southwest search URLs and hosts the page
// acquirers that fetch the rendered results page.
package acquisition

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/flight-search/southwest-fare-scraper/internal/domain"
)

// DefaultBaseURL is the one-way select-depart page of the booking site.
const DefaultBaseURL = "https://www.southwest.com/air/booking/select-depart.html"

// BuildSearchURL formats the results page URL for a one-way, all-day, USD
// adult search. Parameters are emitted in a fixed order.
func BuildSearchURL(baseURL string, q domain.QueryContext) string {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	params := [][2]string{
		{"adultPassengersCount", strconv.Itoa(q.PassengerCount)},
		{"adultsCount", strconv.Itoa(q.AdultCount)},
		{"departureDate", q.DepartureDate},
		{"departureTimeOfDay", "ALL_DAY"},
		{"destinationAirportCode", q.DestinationAirport},
		{"fareType", "USD"},
		{"from", q.OriginationAirport},
		{"int", "HOMEQBOMAIR"},
		{"originationAirportCode", q.OriginationAirport},
		{"passengerType", "ADULT"},
		{"reset", "true"},
		{"returnDate", ""},
		{"returnTimeOfDay", "ALL_DAY"},
		{"to", q.DestinationAirport},
		{"tripType", "oneway"},
	}

	var b strings.Builder
	b.WriteString(baseURL)
	b.WriteByte('?')
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p[0])
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p[1]))
	}
	return b.String()
}
