package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersConsumed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "eshop",
			Subsystem: "kafka_consumer",
			Name:      "order_requests_consumed_total",
			Help:      "Total number of order requests turned into orders",
		},
	)

	ordersRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eshop",
			Subsystem: "kafka_consumer",
			Name:      "order_requests_rejected_total",
			Help:      "Total number of order requests that could not be turned into orders",
		},
		[]string{"reason"},
	)

	ordersDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "eshop",
			Subsystem: "kafka_consumer",
			Name:      "order_requests_dlq_total",
			Help:      "Total number of order requests written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "eshop",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	orderRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "eshop",
			Subsystem: "kafka_consumer",
			Name:      "order_request_duration_seconds",
			Help:      "Histogram of order request handling durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	orderRequestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "eshop",
			Subsystem: "kafka_consumer",
			Name:      "order_requests_in_progress",
			Help:      "Number of order requests currently being handled",
		},
	)
)

// RegisterMetrics registers the kafka consumer collectors with the default registry.
func RegisterMetrics() {
	prometheus.MustRegister(
		ordersConsumed,
		ordersRejected,
		ordersDLQ,
		commitErrors,
		orderRequestDuration,
		orderRequestsInProgress,
	)
}
