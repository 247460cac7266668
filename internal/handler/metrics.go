package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	checkoutsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront_orders",
			Subsystem: "checkout_consumer",
			Name:      "checkouts_processed_total",
			Help:      "Total number of checkout requests turned into orders",
		},
	)

	checkoutsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront_orders",
			Subsystem: "checkout_consumer",
			Name:      "checkouts_failed_total",
			Help:      "Total number of failed checkout requests",
		},
	)

	checkoutsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront_orders",
			Subsystem: "checkout_consumer",
			Name:      "checkouts_dlq_total",
			Help:      "Total number of checkout requests written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront_orders",
			Subsystem: "checkout_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	checkoutProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "storefront_orders",
			Subsystem: "checkout_consumer",
			Name:      "checkout_processing_duration_seconds",
			Help:      "Histogram of checkout processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	checkoutsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "storefront_orders",
			Subsystem: "checkout_consumer",
			Name:      "checkouts_in_progress",
			Help:      "Number of checkout requests currently being processed",
		},
	)
)

var orderOperationsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "storefront_orders",
		Subsystem: "workflow",
		Name:      "operations_total",
		Help:      "Total number of order operations by outcome",
	},
	[]string{"operation", "outcome"},
)

func RegisterMetrics() {
	prometheus.MustRegister(
		checkoutsProcessed,
		checkoutsFailed,
		checkoutsDLQ,
		commitErrors,
		checkoutProcessingDuration,
		checkoutsInProgress,

		orderOperationsTotal,
	)
}
