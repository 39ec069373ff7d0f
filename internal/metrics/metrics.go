// Package metrics holds the Prometheus collectors for the HTTP surface and
// the challenge lifecycle.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "snapdaily"

// Result labels shared by domain counters.
const (
	ResultOK       = "ok"
	ResultConflict = "conflict"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// Metrics owns a registry and the collectors registered on it. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	publishes   *prometheus.CounterVec
	submissions *prometheus.CounterVec
	likes       *prometheus.CounterVec
	comments    prometheus.Counter
}

// New creates collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method", "route"}),
		publishes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "challenge",
			Name:      "publishes_total",
			Help:      "Daily challenge publish attempts by result.",
		}, []string{"result"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "challenge",
			Name:      "submissions_total",
			Help:      "Photo submissions by result.",
		}, []string{"result"}),
		likes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "social",
			Name:      "like_toggles_total",
			Help:      "Like toggles by resulting state.",
		}, []string{"state"}),
		comments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "social",
			Name:      "comments_total",
			Help:      "Comments added.",
		}),
	}

	m.registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.publishes,
		m.submissions,
		m.likes,
		m.comments,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler exposing the registered metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RequestStarted tracks in-flight requests. Call the returned func when the
// request finishes.
func (m *Metrics) RequestStarted() func() {
	if m == nil {
		return func() {}
	}
	m.httpInFlight.Inc()
	return m.httpInFlight.Dec
}

// ObserveRequest records one handled request. route is the matched route
// template, not the raw path.
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	method = strings.ToUpper(method)
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordPublish counts a publish attempt.
func (m *Metrics) RecordPublish(result string) {
	if m == nil {
		return
	}
	m.publishes.WithLabelValues(result).Inc()
}

// RecordSubmission counts a submission attempt.
func (m *Metrics) RecordSubmission(result string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(result).Inc()
}

// RecordLike counts a like toggle by the state it produced.
func (m *Metrics) RecordLike(liked bool) {
	if m == nil {
		return
	}
	state := "unliked"
	if liked {
		state = "liked"
	}
	m.likes.WithLabelValues(state).Inc()
}

// RecordComment counts an added comment.
func (m *Metrics) RecordComment() {
	if m == nil {
		return
	}
	m.comments.Inc()
}
