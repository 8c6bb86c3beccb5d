// Package scraper extracts flight records from the markup of a Southwest
// results page. Every function is a pure transform of the markup it is
// given and is safe for concurrent use.
package scraper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/flight-search/southwest-fare-scraper/internal/domain"
)

var stopsPattern = regexp.MustCompile(`^(\d+)\s+stops?$`)

// findOne returns the first match of selector under s, and whether one exists.
func findOne(s *goquery.Selection, selector string) (*goquery.Selection, bool) {
	match := s.Find(selector).First()
	if match.Length() == 0 {
		return nil, false
	}
	return match, true
}

func text(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}

// ParseFlightNumber returns the first label of the indicators block.
func ParseFlightNumber(row *goquery.Selection) (string, error) {
	indicators, ok := findOne(row, SelectorIndicators)
	if !ok {
		return "", domain.NewParseError(FieldFlightNumber, SelectorIndicators)
	}
	label, ok := findOne(indicators, SelectorIndicatorLabel)
	if !ok {
		return "", domain.NewParseError(FieldFlightNumber, SelectorIndicators+" "+SelectorIndicatorLabel)
	}
	return text(label), nil
}

// ParseLowFare reports whether the row carries the lowest-fare badge.
func ParseLowFare(row *goquery.Selection) bool {
	return hasIndicatorBadge(row, SelectorLowFareBadge)
}

// ParseFastest reports whether the row carries the fastest badge.
func ParseFastest(row *goquery.Selection) bool {
	return hasIndicatorBadge(row, SelectorFastestBadge)
}

func hasIndicatorBadge(row *goquery.Selection, badge string) bool {
	indicators, ok := findOne(row, SelectorIndicators)
	if !ok {
		return false
	}
	_, ok = findOne(indicators, badge)
	return ok
}

// ParseNumberOfStops returns the stop count as text: "Nonstop" becomes "0"
// and "N stop"/"N stops" becomes "N".
func ParseNumberOfStops(row *goquery.Selection) (string, error) {
	stops, ok := findOne(row, SelectorStops)
	if !ok {
		return "", domain.NewParseError(FieldNumberOfStops, SelectorStops)
	}
	badge, ok := findOne(stops, SelectorStopsBadge)
	if !ok {
		return "", domain.NewParseError(FieldNumberOfStops, SelectorStops+" "+SelectorStopsBadge)
	}
	return normalizeStops(text(badge))
}

func normalizeStops(label string) (string, error) {
	if strings.EqualFold(label, labelNonstop) {
		return "0", nil
	}
	if m := stopsPattern.FindStringSubmatch(label); m != nil {
		return m[1], nil
	}
	return "", &domain.ParseError{
		Row:      -1,
		Field:    FieldNumberOfStops,
		Selector: SelectorStopsBadge,
		Reason:   fmt.Sprintf("unrecognised stop label %q in", label),
	}
}

// ParseChangePlanes returns the connection airport of a plane change, or
// domain.ChangePlanesNotApplicable when the row has no change-planes label.
func ParseChangePlanes(row *goquery.Selection) string {
	stops, ok := findOne(row, SelectorStops)
	if !ok {
		return domain.ChangePlanesNotApplicable
	}
	label, ok := findOne(stops, SelectorChangePlanes)
	if !ok {
		return domain.ChangePlanesNotApplicable
	}
	return strings.TrimSpace(strings.TrimPrefix(text(label), prefixChangePlanes))
}

// ParseDepartureTime returns the displayed departure time.
func ParseDepartureTime(row *goquery.Selection) (string, error) {
	return parseTime(row, SelectorDepartureTime, prefixDeparts, FieldDepartureTime)
}

// ParseArrivalTime returns the displayed arrival time.
func ParseArrivalTime(row *goquery.Selection) (string, error) {
	return parseTime(row, SelectorArrivalTime, prefixArrives, FieldArrivalTime)
}

func parseTime(row *goquery.Selection, container, prefix, field string) (string, error) {
	selector := container + " " + SelectorTimeValue
	block, ok := findOne(row, container)
	if !ok {
		return "", domain.NewParseError(field, container)
	}
	value, ok := findOne(block, SelectorTimeValue)
	if !ok {
		return "", domain.NewParseError(field, selector)
	}
	return strings.TrimSpace(strings.TrimPrefix(text(value), prefix)), nil
}

// ParseDuration returns the duration label unmodified.
func ParseDuration(row *goquery.Selection) (string, error) {
	label, ok := findOne(row, SelectorDuration)
	if !ok {
		return "", domain.NewParseError(FieldDuration, SelectorDuration)
	}
	return text(label), nil
}

// ParsePricesAndSeatsLeft returns one offer per tier in domain.FareTiers order.
func ParsePricesAndSeatsLeft(row *goquery.Selection) [domain.FareTierCount]domain.FareOffer {
	var offers [domain.FareTierCount]domain.FareOffer

	fares, hasFares := findOne(row, SelectorFares)
	for i, tier := range domain.FareTiers {
		if !hasFares {
			offers[i] = parseFareOffer(nil, tier)
			continue
		}
		button, _ := findOne(fares, fareButtonSelector(tier))
		offers[i] = parseFareOffer(button, tier)
	}

	return offers
}

// parseFareOffer applies the per-tier fallback policy. The price check runs
// first: no price label means PriceUnavailable. An explicit seats-left label
// is kept verbatim; without one an unavailable tier has SeatsNone and a
// priced tier SeatsPlenty. A nil button is a tier with neither label.
func parseFareOffer(button *goquery.Selection, tier domain.FareTier) domain.FareOffer {
	offer := domain.FareOffer{Tier: tier, Price: domain.PriceUnavailable}
	if button == nil {
		offer.SeatsLeft = domain.SeatsNone
		return offer
	}

	if price, ok := findOne(button, SelectorFarePrice); ok {
		offer.Price = "$" + strings.TrimSpace(strings.TrimSuffix(text(price), suffixDollars))
	}

	seats, hasSeats := findOne(button, SelectorSeatsLeft)
	switch {
	case hasSeats:
		offer.SeatsLeft = text(seats)
	case !offer.Available():
		offer.SeatsLeft = domain.SeatsNone
	default:
		offer.SeatsLeft = domain.SeatsPlenty
	}

	return offer
}
