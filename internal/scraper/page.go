package scraper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/flight-search/southwest-fare-scraper/internal/domain"
)

// ParsePage locates the results container in markup and builds one record
// per row in document order. It returns a *domain.PageStructureError when the
// container is absent and the first *domain.ParseError otherwise; no partial
// result is returned on failure.
func ParsePage(markup string, query domain.QueryContext) ([]domain.FlightRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("read markup: %w", err)
	}

	container, ok := findOne(doc.Selection, SelectorResultsContainer)
	if !ok {
		title := strings.TrimSpace(doc.Find("title").First().Text())
		return nil, domain.NewPageStructureError(SelectorResultsContainer, title)
	}

	rows := container.ChildrenFiltered(SelectorResultRow)
	records := make([]domain.FlightRecord, 0, rows.Length())

	var parseErr error
	rows.EachWithBreak(func(i int, row *goquery.Selection) bool {
		rec, err := BuildRecord(query, row)
		if err != nil {
			parseErr = withRow(err, i)
			return false
		}
		records = append(records, rec)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return records, nil
}

func withRow(err error, row int) error {
	var perr *domain.ParseError
	if errors.As(err, &perr) {
		perr.Row = row
	}
	return err
}
