package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Sentinel field values used when the page omits a sub-structure.
const (
	// PriceUnavailable marks a fare tier with no purchasable price.
	PriceUnavailable = "Unavailable"

	// SeatsNone is the seats-left value of an unavailable tier.
	SeatsNone = "0"

	// SeatsPlenty is inferred when a tier is priced but shows no low-seat warning.
	SeatsPlenty = "5+ left"

	// ChangePlanesNotApplicable marks a flight without a plane change.
	ChangePlanesNotApplicable = "N/A"
)

// FareTier is one of the four purchasable price classes of a flight.
type FareTier string

// Fare tiers in display order.
const (
	FareTierBusinessSelect   FareTier = "Business Select"
	FareTierAnytime          FareTier = "Anytime"
	FareTierWannaGetAwayPlus FareTier = "Wanna Get Away Plus"
	FareTierWannaGetAway     FareTier = "Wanna Get Away"
)

// FareTierCount is the number of fare tiers every record carries.
const FareTierCount = 4

// FareTiers lists the tiers in the fixed order used by FlightRecord.PricesAndSeatsLeft.
var FareTiers = [FareTierCount]FareTier{
	FareTierBusinessSelect,
	FareTierAnytime,
	FareTierWannaGetAwayPlus,
	FareTierWannaGetAway,
}

// FareOffer is the (tier, price, seats left) tuple of one fare tier.
type FareOffer struct {
	// Tier is the fare tier name
	Tier FareTier

	// Price is "$<amount>" or PriceUnavailable
	Price string

	// SeatsLeft is the seats-left badge text, SeatsPlenty or SeatsNone
	SeatsLeft string
}

// Available reports whether the tier has a price.
func (o FareOffer) Available() bool {
	return o.Price != PriceUnavailable
}

// Amount parses the numeric value of the price.
// It fails for unavailable tiers and malformed prices.
func (o FareOffer) Amount() (float64, error) {
	if !o.Available() {
		return 0, fmt.Errorf("%w: %s fare is unavailable", ErrEmptyResult, o.Tier)
	}
	raw := strings.ReplaceAll(strings.TrimPrefix(o.Price, "$"), ",", "")
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s price %q: %w", o.Tier, o.Price, err)
	}
	return amount, nil
}

// FlightRecord is one flight option parsed from a results page.
// It carries a copy of the query so each record is self-describing.
type FlightRecord struct {
	Query QueryContext

	// FlightNumber identifies the flight within a result set (e.g., "# 1234")
	FlightNumber string

	Fastest bool
	LowFare bool

	// NumberOfStops is the stop count as text, "0" for nonstop
	NumberOfStops string

	// ChangePlanes is the connection airport or ChangePlanesNotApplicable
	ChangePlanes string

	// DepartureTime and ArrivalTime are local times as displayed (e.g., "6:00PM")
	DepartureTime string
	ArrivalTime   string

	// Duration is the display text of the trip length (e.g., "2h 15m")
	Duration string

	// PricesAndSeatsLeft holds one offer per tier in FareTiers order
	PricesAndSeatsLeft [FareTierCount]FareOffer
}
