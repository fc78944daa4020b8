package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMetricsIdempotent(t *testing.T) {
	InitMetrics()
	InitMetrics()
	require.NotNil(t, HTTPRequestsTotal)
	require.NotNil(t, LoansCheckedOutTotal)
}

func TestCounterVec(t *testing.T) {
	InitMetrics()
	labels := map[string]string{"method": "GET", "path": "/api/v1/books", "status": "200"}

	before := counterVecValue(t, HTTPRequestsTotal, labels)
	HTTPRequestsTotal.With(labels).Inc()
	HTTPRequestsTotal.With(labels).Inc()
	assert.Equal(t, before+2, counterVecValue(t, HTTPRequestsTotal, labels))
}

func TestLoanCounters(t *testing.T) {
	InitMetrics()

	before := counterValue(t, LoansCheckedOutTotal)
	LoansCheckedOutTotal.Inc()
	assert.Equal(t, before+1, counterValue(t, LoansCheckedOutTotal))

	reason := map[string]string{"reason": "on_loan"}
	rejected := counterVecValue(t, LoanCheckoutsRejectedTotal, reason)
	LoanCheckoutsRejectedTotal.With(reason).Inc()
	assert.Equal(t, rejected+1, counterVecValue(t, LoanCheckoutsRejectedTotal, reason))
}

func TestGaugeVec(t *testing.T) {
	InitMetrics()

	CircuitBreakerState.With(map[string]string{"name": "loan-events"}).Set(0)
	CircuitBreakerState.With(map[string]string{"name": "other"}).Set(1)

	assert.Equal(t, 0.0, gaugeVecValue(t, CircuitBreakerState, map[string]string{"name": "loan-events"}))
	assert.Equal(t, 1.0, gaugeVecValue(t, CircuitBreakerState, map[string]string{"name": "other"}))
}

func TestHistogramVec(t *testing.T) {
	InitMetrics()
	labels := map[string]string{"method": "POST", "path": "/api/v1/loans-test"}

	HTTPRequestDuration.With(labels).Observe(0.05)
	HTTPRequestDuration.With(labels).Observe(0.1)

	var m dto.Metric
	require.NoError(t, HTTPRequestDuration.With(labels).(prometheus.Histogram).Write(&m))
	assert.Equal(t, uint64(2), m.Histogram.GetSampleCount())
	assert.InDelta(t, 0.15, m.Histogram.GetSampleSum(), 1e-9)
}

func TestRecordCache(t *testing.T) {
	labels := map[string]string{"resource": "author", "result": "hit"}
	InitMetrics()
	before := counterVecValue(t, CacheRequestsTotal, labels)
	RecordCache("author", "hit")
	assert.Equal(t, before+1, counterVecValue(t, CacheRequestsTotal, labels))
}

func TestHandlerExposesMetrics(t *testing.T) {
	InitMetrics()
	LoansReturnedTotal.Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(string(body), "library_loans_returned_total"))
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.Counter.GetValue()
}

func counterVecValue(t *testing.T, vec *prometheus.CounterVec, labels map[string]string) float64 {
	t.Helper()
	return counterValue(t, vec.With(labels))
}

func gaugeVecValue(t *testing.T, vec *prometheus.GaugeVec, labels map[string]string) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, vec.With(labels).Write(&m))
	return m.Gauge.GetValue()
}
