package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// FlightCollection aggregates the records of one search with its query.
// It is created empty and populated exactly once.
type FlightCollection struct {
	query     QueryContext
	flights   []FlightRecord
	populated bool
}

// NewFlightCollection creates an empty collection for the given query.
func NewFlightCollection(query QueryContext) *FlightCollection {
	return &FlightCollection{query: query}
}

// Populate stores the parsed records in display order.
// It returns ErrAlreadyPopulated on a second call.
func (c *FlightCollection) Populate(records []FlightRecord) error {
	if c.populated {
		return ErrAlreadyPopulated
	}
	c.flights = make([]FlightRecord, len(records))
	copy(c.flights, records)
	c.populated = true
	return nil
}

// Query returns the search parameters of the collection.
func (c *FlightCollection) Query() QueryContext {
	return c.query
}

// Flights returns a copy of the records in page display order.
func (c *FlightCollection) Flights() []FlightRecord {
	out := make([]FlightRecord, len(c.flights))
	copy(out, c.flights)
	return out
}

// Len returns the number of records.
func (c *FlightCollection) Len() int {
	return len(c.flights)
}

// CheapestPrice returns the lowest price across every fare tier of every flight.
// It returns an error wrapping ErrEmptyResult when no tier is priced.
func (c *FlightCollection) CheapestPrice() (float64, error) {
	if len(c.flights) == 0 {
		return 0, fmt.Errorf("%w: collection has no flights", ErrEmptyResult)
	}

	found := false
	var cheapest float64
	for _, f := range c.flights {
		for _, offer := range f.PricesAndSeatsLeft {
			if !offer.Available() {
				continue
			}
			amount, err := offer.Amount()
			if err != nil {
				return 0, fmt.Errorf("flight %s: %w", f.FlightNumber, err)
			}
			if !found || amount < cheapest {
				cheapest = amount
				found = true
			}
		}
	}

	if !found {
		return 0, fmt.Errorf("%w: no fare tier is priced", ErrEmptyResult)
	}
	return cheapest, nil
}

// FormatPrice renders an amount the way the site displays it (e.g., "$80").
func FormatPrice(amount float64) string {
	return "$" + strconv.FormatFloat(amount, 'f', -1, 64)
}

// DisplayText renders the collection for logs and CLI output.
func (c *FlightCollection) DisplayText() string {
	var b strings.Builder

	cheapest := "N/A"
	if amount, err := c.CheapestPrice(); err == nil {
		cheapest = FormatPrice(amount)
	}

	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Departure Date: %s\n", c.query.DepartureDate)
	fmt.Fprintf(&b, "Origination Airport: %s\n", c.query.OriginationAirport)
	fmt.Fprintf(&b, "Destination Airport: %s\n", c.query.DestinationAirport)
	fmt.Fprintf(&b, "Passenger Count: %d\n", c.query.PassengerCount)
	fmt.Fprintf(&b, "Adult Count: %d\n", c.query.AdultCount)
	fmt.Fprintf(&b, "Total Flights Available: %d\n", len(c.flights))
	fmt.Fprintf(&b, "Cheapest Flight Price: %s\n", cheapest)
	b.WriteString("\n\n")

	for _, f := range c.flights {
		writeFlight(&b, f)
	}

	return b.String()
}

func writeFlight(b *strings.Builder, f FlightRecord) {
	fmt.Fprintf(b, "############### Flight Number: %s ###############\n", f.FlightNumber)
	fmt.Fprintf(b, "Fastest: %t\n", f.Fastest)
	fmt.Fprintf(b, "Low Fare: %t\n", f.LowFare)
	fmt.Fprintf(b, "Number of Stops: %s\n", f.NumberOfStops)
	fmt.Fprintf(b, "Change Planes: %s\n", f.ChangePlanes)
	fmt.Fprintf(b, "Departure Time: %s\n", f.DepartureTime)
	fmt.Fprintf(b, "Arrival Time: %s\n", f.ArrivalTime)
	fmt.Fprintf(b, "Duration: %s\n", f.Duration)
	b.WriteString("Prices:\n")
	for _, o := range f.PricesAndSeatsLeft {
		fmt.Fprintf(b, "  - %s: %s (%s)\n", o.Tier, o.Price, o.SeatsLeft)
	}
	b.WriteString("\n\n")
}
