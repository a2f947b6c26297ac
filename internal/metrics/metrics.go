package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "service_directory"

// Collector is a prometheus.Collector for the directory server. A nil
// *Collector is valid and records nothing.
type Collector struct {
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	catalogRecords  prometheus.Gauge
	catalogRejected prometheus.Gauge
	resultSize      prometheus.Histogram
	activeSessions  prometheus.Gauge

	registry *prometheus.Registry
}

// New returns a Collector registered on its own registry.
func New() *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by route and status code.",
			}, []string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route.",
				Buckets:   prometheus.DefBuckets,
			}, []string{"method", "route"},
		),
		catalogRecords: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "catalog_records",
				Help:      "Service records loaded into the catalog.",
			},
		),
		catalogRejected: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "catalog_rejected_records",
				Help:      "Catalog entries rejected at load time.",
			},
		),
		resultSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "directory_result_size",
				Help:      "Number of services matched per directory query.",
				Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
			},
		),
		activeSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "active_view_sessions",
				Help:      "Open WebSocket directory view sessions.",
			},
		),
		registry: prometheus.NewRegistry(),
	}
	c.registry.MustRegister(c)
	return c
}

// Describe is part of the prometheus.Collector interface.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.requests.Describe(ch)
	c.requestDuration.Describe(ch)
	c.catalogRecords.Describe(ch)
	c.catalogRejected.Describe(ch)
	c.resultSize.Describe(ch)
	c.activeSessions.Describe(ch)
}

// Collect is part of the prometheus.Collector interface.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.requests.Collect(ch)
	c.requestDuration.Collect(ch)
	c.catalogRecords.Collect(ch)
	c.catalogRejected.Collect(ch)
	c.resultSize.Collect(ch)
	c.activeSessions.Collect(ch)
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one finished HTTP request.
func (c *Collector) ObserveRequest(method, route string, status int, took time.Duration) {
	if c == nil {
		return
	}
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method, route).Observe(took.Seconds())
}

// SetCatalog records the outcome of the catalog load.
func (c *Collector) SetCatalog(records, rejected int) {
	if c == nil {
		return
	}
	c.catalogRecords.Set(float64(records))
	c.catalogRejected.Set(float64(rejected))
}

// ObserveResultSize records how many services one query matched.
func (c *Collector) ObserveResultSize(n int) {
	if c == nil {
		return
	}
	c.resultSize.Observe(float64(n))
}

func (c *Collector) SessionOpened() {
	if c == nil {
		return
	}
	c.activeSessions.Inc()
}

func (c *Collector) SessionClosed() {
	if c == nil {
		return
	}
	c.activeSessions.Dec()
}
