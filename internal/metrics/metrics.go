// Package metrics collects Prometheus metrics for the HTTP API and the
// auth and blog flows, and exposes them for scraping.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Auth events.
const (
	AuthRegister     = "register"
	AuthLoginSuccess = "login_success"
	AuthLoginFailure = "login_failure"
)

// Post actions.
const (
	PostCreate = "create"
	PostUpdate = "update"
	PostDelete = "delete"
)

// unmatchedRoute labels requests that did not match any route so that
// arbitrary paths cannot blow up label cardinality.
const unmatchedRoute = "unmatched"

// Collector is the Prometheus implementation of the application metrics.
type Collector struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	authEvents   *prometheus.CounterVec
	postActions  *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics in reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "yobo_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status_code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "yobo_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		authEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "yobo_auth_events_total",
			Help: "Registrations and login attempts.",
		}, []string{"event"}),
		postActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "yobo_post_actions_total",
			Help: "Successful post mutations by action.",
		}, []string{"action"}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.authEvents,
		c.postActions,
	)

	return c
}

// RecordAuth counts an auth event such as [AuthRegister].
func (c *Collector) RecordAuth(event string) {
	c.authEvents.WithLabelValues(event).Inc()
}

// RecordPost counts a successful post mutation such as [PostCreate].
func (c *Collector) RecordPost(action string) {
	c.postActions.WithLabelValues(action).Inc()
}

// RecordHTTP counts one finished HTTP request.
func (c *Collector) RecordHTTP(method, route string, statusCode int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Middleware records every request handled by a chi router. The route label
// is the matched pattern, e.g. "/api/blog/{id}".
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		c.RecordHTTP(r.Method, route, status, time.Since(start))
	})
}

// Handler returns the HTTP handler for Prometheus scraping.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
