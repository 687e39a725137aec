package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "eshop",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Total number of successfully created orders.",
	})

	orderCreationFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eshop",
		Subsystem: "orders",
		Name:      "creation_failed_total",
		Help:      "Total number of failed order submissions by stage.",
	}, []string{"stage"})

	orderItemsOrphaned = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "eshop",
		Subsystem: "orders",
		Name:      "items_orphaned_total",
		Help:      "Order items left without an owning order.",
	})

	orderItemsCompensated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "eshop",
		Subsystem: "orders",
		Name:      "items_compensated_total",
		Help:      "Order items deleted after a failed order submission.",
	})
)
