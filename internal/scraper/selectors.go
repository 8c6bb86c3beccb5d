package scraper

import "github.com/flight-search/southwest-fare-scraper/internal/domain"

// CSS selectors for the Southwest select-depart results page.
const (
	SelectorResultsContainer = "ul#air-search-results-matrix-0"
	SelectorResultRow        = "li"

	SelectorIndicators     = "div.select-detail--indicators"
	SelectorIndicatorLabel = "span"
	SelectorLowFareBadge   = "span.select-detail--lowest-fare-badge"
	SelectorFastestBadge   = "span.select-detail--fastest-fare-badge"

	SelectorStops        = "div.select-detail--number-of-stops"
	SelectorStopsBadge   = "div.select-detail--flight-stops-badge"
	SelectorChangePlanes = "div.select-detail--change-planes"

	SelectorDepartureTime = `div[data-test="select-detail--origination-time"]`
	SelectorArrivalTime   = `div[data-test="select-detail--destination-time"]`
	SelectorTimeValue     = "span.time--value"

	SelectorDuration = "div.select-detail--flight-duration"

	SelectorFares     = "div.select-detail--fares"
	SelectorFarePrice = "span.swa-g-screen-reader-only"
	SelectorSeatsLeft = "span.seats-left-indicator-text"
)

// Label prefixes and suffixes stripped from extracted text.
const (
	prefixChangePlanes = "Change planes "
	prefixDeparts      = "Departs "
	prefixArrives      = "Arrives "
	suffixDollars      = " Dollars"
	labelNonstop       = "Nonstop"
)

// Field names reported in parse errors. They match the serialized keys.
const (
	FieldFlightNumber  = "flight_number"
	FieldNumberOfStops = "number_of_stops"
	FieldDepartureTime = "departure_time"
	FieldArrivalTime   = "arrival_time"
	FieldDuration      = "duration"
)

// fareButtons maps each tier to the data-test value of its fare button.
var fareButtons = map[domain.FareTier]string{
	domain.FareTierBusinessSelect:   "fare-button--business-select",
	domain.FareTierAnytime:          "fare-button--anytime",
	domain.FareTierWannaGetAwayPlus: "fare-button--wanna-get-away-plus",
	domain.FareTierWannaGetAway:     "fare-button--wanna-get-away",
}

func fareButtonSelector(tier domain.FareTier) string {
	return `div[data-test="` + fareButtons[tier] + `"]`
}
