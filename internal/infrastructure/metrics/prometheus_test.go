package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveSearch(t *testing.T) {
	m := NewMetrics("test")

	m.ObserveSearch(OutcomeSuccess, 2*time.Second, 3)
	m.ObserveSearch(OutcomeSuccess, time.Second, 0)
	m.ObserveSearch(OutcomeTimeout, 30*time.Second, 0)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.SearchesTotal.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SearchesTotal.WithLabelValues(OutcomeTimeout)))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.FlightsParsed))
	assert.Equal(t, 1, testutil.CollectAndCount(m.SearchDuration))
}

func TestMetrics_ObserveAttemptAndChat(t *testing.T) {
	m := NewMetrics("test")

	m.ObserveAttempt("browser")
	m.ObserveAttempt("browser")
	m.ObserveAttempt("file")
	m.ObserveChat("ok")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.AcquisitionAttempts.WithLabelValues("browser")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.AcquisitionAttempts.WithLabelValues("file")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ChatRequests.WithLabelValues("ok")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveSearch(OutcomeSuccess, time.Second, 1)
		m.ObserveAttempt("browser")
		m.ObserveChat("ok")
	})
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a := NewMetrics("test")
	b := NewMetrics("test")

	a.ObserveAttempt("file")

	assert.Equal(t, float64(0), testutil.ToFloat64(b.AcquisitionAttempts.WithLabelValues("file")))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics("fare_scraper")
	m.ObserveSearch(OutcomeSuccess, time.Second, 2)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `fare_scraper_searches_total{outcome="success"} 1`)
	assert.Contains(t, string(body), "fare_scraper_flights_parsed_total 2")
}
