package metrics

import (
	"net/http"
	"strconv"
	"time"

	"hostdeck/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hostdeck"

// Metrics owns a private registry with the HTTP and domain collectors.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	calendarToggles  *prometheus.CounterVec
	calendarRejected *prometheus.CounterVec
	listingWrites    *prometheus.CounterVec
	photoRejected    prometheus.Counter
	mockActions      *prometheus.CounterVec
}

func New(cfg *config.Config) *Metrics {
	constLabels := prometheus.Labels{"service": cfg.App.Name}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "HTTP requests by method, route and status.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP request latency by method and route.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		calendarToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "calendar",
			Name:        "toggles_total",
			Help:        "Applied availability range toggles by action.",
			ConstLabels: constLabels,
		}, []string{"action"}),
		calendarRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "calendar",
			Name:        "rejected_total",
			Help:        "Rejected calendar clicks by reason.",
			ConstLabels: constLabels,
		}, []string{"reason"}),
		listingWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "listing",
			Name:        "writes_total",
			Help:        "Listing writes by operation.",
			ConstLabels: constLabels,
		}, []string{"op"}),
		photoRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "listing",
			Name:        "photos_rejected_total",
			Help:        "Photos rejected during listing writes.",
			ConstLabels: constLabels,
		}),
		mockActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "mock",
			Name:        "actions_total",
			Help:        "Simulated actions by domain and action.",
			ConstLabels: constLabels,
		}, []string{"domain", "action"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.calendarToggles,
		m.calendarRejected,
		m.listingWrites,
		m.photoRejected,
		m.mockActions,
	)

	return m
}

// NewNop returns unlabeled collectors on a fresh registry.
func NewNop() *Metrics {
	cfg := &config.Config{}

	return New(cfg)
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) CalendarToggled(action string) {
	m.calendarToggles.WithLabelValues(action).Inc()
}

func (m *Metrics) CalendarRejected(reason string) {
	m.calendarRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) ListingWritten(op string) {
	m.listingWrites.WithLabelValues(op).Inc()
}

func (m *Metrics) PhotosRejected(count int) {
	m.photoRejected.Add(float64(count))
}

func (m *Metrics) MockAction(domain, action string) {
	m.mockActions.WithLabelValues(domain, action).Inc()
}
