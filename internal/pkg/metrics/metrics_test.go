package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"placeorder/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerMetrics_CountsOutcomes(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.NewServerMetrics(registry)

	m.OrdersPlaced.WithLabelValues(metrics.OutcomePlaced).Inc()
	m.OrdersPlaced.WithLabelValues(metrics.OutcomePlaced).Inc()
	m.OrdersPlaced.WithLabelValues("ValidationError").Inc()

	assert.InDelta(t, 2, testutil.ToFloat64(m.OrdersPlaced.WithLabelValues(metrics.OutcomePlaced)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.OrdersPlaced.WithLabelValues("ValidationError")), 0)
}

func TestServerMetrics_DoubleRegistrationPanics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics.NewServerMetrics(registry)

	assert.Panics(t, func() { metrics.NewServerMetrics(registry) })
}

func TestHandlerFor_ExposesRegisteredCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.NewServerMetrics(registry)
	m.CatalogRefresh.WithLabelValues("ok").Inc()

	rec := httptest.NewRecorder()
	metrics.HandlerFor(registry).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `placeorder_catalog_refresh_total{result="ok"} 1`)
}
