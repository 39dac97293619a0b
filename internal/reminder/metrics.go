package reminder

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	firedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "planner",
		Name:      "reminders_fired_total",
		Help:      "Block reminders delivered to the notification sink.",
	})

	suppressedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "planner",
		Name:      "reminders_suppressed_total",
		Help:      "Reminder opportunities dropped because notification permission was not granted.",
	})
)
