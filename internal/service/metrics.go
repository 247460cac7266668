package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	eventCreated = "created"
	eventUpdated = "updated"
)

var notificationsDropped = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "storefront_orders",
		Subsystem: "notifier",
		Name:      "notifications_dropped_total",
		Help:      "Total number of order notifications that failed after the change was committed",
	},
	[]string{"event"},
)

func RegisterMetrics() {
	prometheus.MustRegister(notificationsDropped)
}
