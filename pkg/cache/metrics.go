package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "eshop",
		Subsystem: "order_cache",
		Name:      "hits_total",
		Help:      "Total number of order cache hits.",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "eshop",
		Subsystem: "order_cache",
		Name:      "misses_total",
		Help:      "Total number of order cache misses, expired entries included.",
	})

	cacheEvictions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eshop",
		Subsystem: "order_cache",
		Name:      "evictions_total",
		Help:      "Total number of entries removed from the order cache by reason.",
	}, []string{"reason"})

	cacheEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "eshop",
		Subsystem: "order_cache",
		Name:      "entries",
		Help:      "Current number of entries in the order cache.",
	})
)
