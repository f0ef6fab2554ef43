// Package metrics exposes the service's prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "placeorder"

// OutcomePlaced labels a successful workflow run; failures are labelled with
// their error code.
const OutcomePlaced = "placed"

type ServerMetrics struct {
	Requests        *prometheus.CounterVec
	LatencyMS       *prometheus.HistogramVec
	OrdersPlaced    *prometheus.CounterVec
	EventsPublished *prometheus.CounterVec
	CatalogRefresh  *prometheus.CounterVec
}

// NewServerMetrics registers the collectors with registerer. Registering twice
// with the same registerer panics.
func NewServerMetrics(registerer prometheus.Registerer) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_total",
		Help:      "Place-order workflow runs by outcome.",
	}, []string{"outcome"})
	published := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_published_total",
		Help:      "Events handed to the broker by event key and result.",
	}, []string{"event", "result"})
	refresh := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_refresh_total",
		Help:      "Price catalog refreshes by result.",
	}, []string{"result"})

	registerer.MustRegister(requests, latency, orders, published, refresh)
	return &ServerMetrics{
		Requests:        requests,
		LatencyMS:       latency,
		OrdersPlaced:    orders,
		EventsPublished: published,
		CatalogRefresh:  refresh,
	}
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// HandlerFor serves the given gatherer, for registries other than the default.
func HandlerFor(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
