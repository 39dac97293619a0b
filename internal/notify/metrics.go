package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	displayedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "planner",
			Name:      "notifications_displayed_total",
			Help:      "Notifications successfully handed to a sink.",
		},
		[]string{"sink"},
	)

	failedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "planner",
			Name:      "notifications_failed_total",
			Help:      "Notifications a sink failed to deliver.",
		},
		[]string{"sink"},
	)
)
