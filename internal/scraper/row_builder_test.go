package scraper

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

// fareSpec describes one fare button. Empty strings omit the label.
type fareSpec struct {
	price string
	seats string
}

// rowSpec describes a result row. Fields set to "-" omit the sub-structure.
type rowSpec struct {
	flightNumber string
	lowFare      bool
	fastest      bool
	stops        string
	changePlanes string
	departs      string
	arrives      string
	duration     string
	fares        map[string]fareSpec
	noFares      bool
}

func defaultRow() rowSpec {
	return rowSpec{
		flightNumber: "# 1234",
		stops:        "Nonstop",
		departs:      "Departs 6:00AM",
		arrives:      "Arrives 11:15AM",
		duration:     "3h 15m",
		fares:        map[string]fareSpec{},
	}
}

func (r rowSpec) html() string {
	var b strings.Builder
	b.WriteString("<li>")

	if r.flightNumber != "-" {
		b.WriteString(`<div class="select-detail--indicators">`)
		if r.flightNumber != "" {
			fmt.Fprintf(&b, `<span class="flight-numbers--flight-number">%s</span>`, r.flightNumber)
		}
		if r.lowFare {
			b.WriteString(`<span class="select-detail--lowest-fare-badge">Lowest fare</span>`)
		}
		if r.fastest {
			b.WriteString(`<span class="select-detail--fastest-fare-badge">Fastest</span>`)
		}
		b.WriteString(`</div>`)
	}

	if r.stops != "-" {
		b.WriteString(`<div class="select-detail--number-of-stops">`)
		if r.stops != "" {
			fmt.Fprintf(&b, `<div class="flight-stops-badge select-detail--flight-stops-badge">%s</div>`, r.stops)
		}
		if r.changePlanes != "" {
			fmt.Fprintf(&b, `<div class="select-detail--change-planes">%s</div>`, r.changePlanes)
		}
		b.WriteString(`</div>`)
	}

	if r.departs != "-" {
		fmt.Fprintf(&b, `<div data-test="select-detail--origination-time"><span class="time--value">%s</span></div>`, r.departs)
	}
	if r.arrives != "-" {
		fmt.Fprintf(&b, `<div data-test="select-detail--destination-time"><span class="time--value">%s</span></div>`, r.arrives)
	}
	if r.duration != "-" {
		fmt.Fprintf(&b, `<div class="select-detail--flight-duration">%s</div>`, r.duration)
	}

	if !r.noFares {
		b.WriteString(`<div class="select-detail--fares">`)
		for _, button := range []string{
			"fare-button--business-select", "fare-button--anytime",
			"fare-button--wanna-get-away-plus", "fare-button--wanna-get-away",
		} {
			fare, ok := r.fares[button]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, `<div data-test="%s"><button>`, button)
			if fare.price != "" {
				fmt.Fprintf(&b, `<span class="swa-g-screen-reader-only">%s</span>`, fare.price)
			} else {
				b.WriteString("Sold out")
			}
			if fare.seats != "" {
				fmt.Fprintf(&b, `<span class="seats-left-indicator-text">%s</span>`, fare.seats)
			}
			b.WriteString(`</button></div>`)
		}
		b.WriteString(`</div>`)
	}

	b.WriteString("</li>")
	return b.String()
}

// row parses the row description into the selection a field parser receives.
func (r rowSpec) row(t *testing.T) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<ul>" + r.html() + "</ul>"))
	require.NoError(t, err)
	row := doc.Find("li").First()
	require.Equal(t, 1, row.Length())
	return row
}

// page wraps rows in a results container.
func page(rows ...rowSpec) string {
	var b strings.Builder
	b.WriteString(`<html><head><title>Select Flights</title></head><body><ul id="air-search-results-matrix-0">`)
	for _, r := range rows {
		b.WriteString(r.html())
	}
	b.WriteString(`</ul></body></html>`)
	return b.String()
}
