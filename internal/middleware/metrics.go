package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const unmatchedRoute = "unmatched"

var (
	requestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "eshop",
		Subsystem: "http",
		Name:      "in_flight_requests",
		Help:      "Current number of in-flight HTTP requests.",
	})

	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eshop",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests by route and status.",
	}, []string{"method", "route", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "eshop",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latencies in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	responseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "eshop",
		Subsystem: "http",
		Name:      "response_size_bytes",
		Help:      "HTTP response body sizes in bytes.",
		Buckets:   prometheus.ExponentialBuckets(128, 4, 7),
	}, []string{"method", "route"})

	authRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eshop",
		Subsystem: "auth",
		Name:      "rejected_requests_total",
		Help:      "Total number of requests rejected by the auth gate.",
	}, []string{"reason"})
)

// routePattern is the matched chi pattern. Unmatched paths share one label.
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
		return rc.RoutePattern()
	}
	return unmatchedRoute
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestsInFlight.Inc()
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			requestsInFlight.Dec()
			route := routePattern(r)
			status := strconv.Itoa(statusOf(ww))

			requestsTotal.WithLabelValues(r.Method, route, status).Inc()
			requestDuration.WithLabelValues(r.Method, route, status).Observe(time.Since(start).Seconds())
			responseSize.WithLabelValues(r.Method, route).Observe(float64(ww.BytesWritten()))
		}()

		next.ServeHTTP(ww, r)
	})
}
