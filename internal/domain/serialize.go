package domain

import "fmt"

// SerializedQuery is the wire shape of a QueryContext.
type SerializedQuery struct {
	DepartureDate      string `json:"departure_date"`
	OriginationAirport string `json:"origination_airport"`
	DestinationAirport string `json:"destination_airport"`
	PassengerCount     int    `json:"passenger_count"`
	AdultCount         int    `json:"adult_count"`
}

// SerializedFlight is the wire shape of a FlightRecord.
// Each entry of PricesAndSeatsLeft is a [tier, price, seats_left] triple.
type SerializedFlight struct {
	SerializedQuery
	FlightNumber       string     `json:"flight_number"`
	Fastest            bool       `json:"fastest"`
	LowFare            bool       `json:"low_fare"`
	NumberOfStops      string     `json:"number_of_stops"`
	ChangePlanes       string     `json:"change_planes"`
	DepartureTime      string     `json:"departure_time"`
	ArrivalTime        string     `json:"arrival_time"`
	Duration           string     `json:"duration"`
	PricesAndSeatsLeft [][]string `json:"prices_and_seats_left"`
}

// SerializedCollection is the wire shape of a FlightCollection.
type SerializedCollection struct {
	SerializedQuery
	Flights []SerializedFlight `json:"flights"`
}

// ToSerializable converts the query to its wire shape.
func (q QueryContext) ToSerializable() SerializedQuery {
	return SerializedQuery{
		DepartureDate:      q.DepartureDate,
		OriginationAirport: q.OriginationAirport,
		DestinationAirport: q.DestinationAirport,
		PassengerCount:     q.PassengerCount,
		AdultCount:         q.AdultCount,
	}
}

// ToSerializable converts the record to its wire shape.
func (f FlightRecord) ToSerializable() SerializedFlight {
	prices := make([][]string, 0, FareTierCount)
	for _, o := range f.PricesAndSeatsLeft {
		prices = append(prices, []string{string(o.Tier), o.Price, o.SeatsLeft})
	}

	return SerializedFlight{
		SerializedQuery:    f.Query.ToSerializable(),
		FlightNumber:       f.FlightNumber,
		Fastest:            f.Fastest,
		LowFare:            f.LowFare,
		NumberOfStops:      f.NumberOfStops,
		ChangePlanes:       f.ChangePlanes,
		DepartureTime:      f.DepartureTime,
		ArrivalTime:        f.ArrivalTime,
		Duration:           f.Duration,
		PricesAndSeatsLeft: prices,
	}
}

// ToSerializable converts the collection to its wire shape.
// Flights is never nil so it encodes as an empty list.
func (c *FlightCollection) ToSerializable() SerializedCollection {
	flights := make([]SerializedFlight, 0, len(c.flights))
	for _, f := range c.flights {
		flights = append(flights, f.ToSerializable())
	}
	return SerializedCollection{
		SerializedQuery: c.query.ToSerializable(),
		Flights:         flights,
	}
}

// QueryContext converts the wire shape back to a QueryContext.
func (s SerializedQuery) QueryContext() QueryContext {
	return QueryContext{
		DepartureDate:      s.DepartureDate,
		OriginationAirport: s.OriginationAirport,
		DestinationAirport: s.DestinationAirport,
		PassengerCount:     s.PassengerCount,
		AdultCount:         s.AdultCount,
	}
}

// FlightRecord converts the wire shape back to a FlightRecord.
// It rejects fare lists that are not one triple per tier in tier order.
func (s SerializedFlight) FlightRecord() (FlightRecord, error) {
	if len(s.PricesAndSeatsLeft) != FareTierCount {
		return FlightRecord{}, fmt.Errorf("flight %s: expected %d fare tiers, got %d",
			s.FlightNumber, FareTierCount, len(s.PricesAndSeatsLeft))
	}

	var offers [FareTierCount]FareOffer
	for i, entry := range s.PricesAndSeatsLeft {
		if len(entry) != 3 {
			return FlightRecord{}, fmt.Errorf("flight %s: fare entry %d must have 3 values, got %d",
				s.FlightNumber, i, len(entry))
		}
		if FareTier(entry[0]) != FareTiers[i] {
			return FlightRecord{}, fmt.Errorf("flight %s: fare entry %d is %q, expected %q",
				s.FlightNumber, i, entry[0], FareTiers[i])
		}
		offers[i] = FareOffer{Tier: FareTiers[i], Price: entry[1], SeatsLeft: entry[2]}
	}

	return FlightRecord{
		Query:              s.SerializedQuery.QueryContext(),
		FlightNumber:       s.FlightNumber,
		Fastest:            s.Fastest,
		LowFare:            s.LowFare,
		NumberOfStops:      s.NumberOfStops,
		ChangePlanes:       s.ChangePlanes,
		DepartureTime:      s.DepartureTime,
		ArrivalTime:        s.ArrivalTime,
		Duration:           s.Duration,
		PricesAndSeatsLeft: offers,
	}, nil
}

// FromSerializable re-hydrates a populated collection from its wire shape.
func FromSerializable(s SerializedCollection) (*FlightCollection, error) {
	records := make([]FlightRecord, 0, len(s.Flights))
	for _, sf := range s.Flights {
		rec, err := sf.FlightRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	c := NewFlightCollection(s.SerializedQuery.QueryContext())
	if err := c.Populate(records); err != nil {
		return nil, err
	}
	return c, nil
}
