package acquisition

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/southwest-fare-scraper/test/testutil"
)

func TestBuildSearchURL(t *testing.T) {
	got := BuildSearchURL("", testutil.Query())

	want := "https://www.southwest.com/air/booking/select-depart.html?" +
		"adultPassengersCount=1&adultsCount=1&departureDate=2024-04-22&departureTimeOfDay=ALL_DAY" +
		"&destinationAirportCode=DAL&fareType=USD&from=SAN&int=HOMEQBOMAIR&originationAirportCode=SAN" +
		"&passengerType=ADULT&reset=true&returnDate=&returnTimeOfDay=ALL_DAY&to=DAL&tripType=oneway"
	assert.Equal(t, want, got)
}

func TestBuildSearchURL_QueryValues(t *testing.T) {
	q := testutil.Query()
	q.PassengerCount = 3
	q.AdultCount = 2

	raw := BuildSearchURL("http://localhost:9999/select-depart.html", q)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9999", u.Host)
	assert.Equal(t, "/select-depart.html", u.Path)

	values := u.Query()
	assert.Equal(t, "3", values.Get("adultPassengersCount"))
	assert.Equal(t, "2", values.Get("adultsCount"))
	assert.Equal(t, "SAN", values.Get("originationAirportCode"))
	assert.Equal(t, "SAN", values.Get("from"))
	assert.Equal(t, "DAL", values.Get("destinationAirportCode"))
	assert.Equal(t, "DAL", values.Get("to"))
	assert.Equal(t, "oneway", values.Get("tripType"))
	assert.True(t, values.Has("returnDate"))
}
