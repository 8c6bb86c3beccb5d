package scraper

import (
	"errors"

	"github.com/PuerkitoBio/goquery"

	"github.com/flight-search/southwest-fare-scraper/internal/domain"
)

// BuildRecord runs every field parser against one result row and assembles
// the record. The first mandatory field that fails aborts the build with a
// *domain.ParseError.
func BuildRecord(query domain.QueryContext, row *goquery.Selection) (domain.FlightRecord, error) {
	flightNumber, err := ParseFlightNumber(row)
	if err != nil {
		return domain.FlightRecord{}, err
	}

	rec := domain.FlightRecord{
		Query:        query,
		FlightNumber: flightNumber,
		LowFare:      ParseLowFare(row),
		Fastest:      ParseFastest(row),
		ChangePlanes: ParseChangePlanes(row),
	}

	if rec.NumberOfStops, err = ParseNumberOfStops(row); err != nil {
		return domain.FlightRecord{}, withFlightNumber(err, flightNumber)
	}
	if rec.DepartureTime, err = ParseDepartureTime(row); err != nil {
		return domain.FlightRecord{}, withFlightNumber(err, flightNumber)
	}
	if rec.ArrivalTime, err = ParseArrivalTime(row); err != nil {
		return domain.FlightRecord{}, withFlightNumber(err, flightNumber)
	}
	if rec.Duration, err = ParseDuration(row); err != nil {
		return domain.FlightRecord{}, withFlightNumber(err, flightNumber)
	}

	rec.PricesAndSeatsLeft = ParsePricesAndSeatsLeft(row)

	return rec, nil
}

func withFlightNumber(err error, flightNumber string) error {
	var perr *domain.ParseError
	if errors.As(err, &perr) {
		perr.FlightNumber = flightNumber
	}
	return err
}
