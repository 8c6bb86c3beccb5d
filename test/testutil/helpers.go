// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/flight-search/southwest-fare-scraper/internal/domain"
)

// Fixture file names under test/testdata.
const (
	ResultsPage      = "results_page.html"
	InterstitialPage = "interstitial_page.html"
	MalformedRowPage = "malformed_row_page.html"
	EmptyResultsPage = "empty_results_page.html"
)

// TestDataPath returns the absolute path of a file in the testdata directory.
func TestDataPath(t *testing.T, filename string) string {
	t.Helper()

	// Get the path to testdata relative to this file
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	return filepath.Join(projectRoot, "test", "testdata", filename)
}

// LoadTestHTML loads a saved results page from the testdata directory.
func LoadTestHTML(t *testing.T, filename string) string {
	t.Helper()

	data, err := os.ReadFile(TestDataPath(t, filename))
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return string(data)
}

// Query returns the query the fixture pages were saved for.
func Query() domain.QueryContext {
	return domain.QueryContext{
		DepartureDate:      "2024-04-22",
		OriginationAirport: "SAN",
		DestinationAirport: "DAL",
		PassengerCount:     1,
		AdultCount:         1,
	}
}

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
