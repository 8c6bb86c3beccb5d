package domain

func testQuery() QueryContext {
	return QueryContext{
		DepartureDate:      "2024-04-22",
		OriginationAirport: "SAN",
		DestinationAirport: "DAL",
		PassengerCount:     1,
		AdultCount:         1,
	}
}

// offers builds the four tier offers from prices in tier order.
// An empty price means the tier is unavailable.
func offers(prices ...string) [FareTierCount]FareOffer {
	var out [FareTierCount]FareOffer
	for i, tier := range FareTiers {
		out[i] = FareOffer{Tier: tier, Price: PriceUnavailable, SeatsLeft: SeatsNone}
		if i < len(prices) && prices[i] != "" {
			out[i].Price = prices[i]
			out[i].SeatsLeft = SeatsPlenty
		}
	}
	return out
}

func testRecord(number string, prices ...string) FlightRecord {
	return FlightRecord{
		Query:              testQuery(),
		FlightNumber:       number,
		NumberOfStops:      "0",
		ChangePlanes:       ChangePlanesNotApplicable,
		DepartureTime:      "6:00AM",
		ArrivalTime:        "11:15AM",
		Duration:           "3h 15m",
		PricesAndSeatsLeft: offers(prices...),
	}
}
