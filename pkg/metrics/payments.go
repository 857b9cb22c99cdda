package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// ConfirmationsTotal counts confirm-payment outcomes: created, confirmed,
	// already_confirmed, failed.
	ConfirmationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "payments",
			Subsystem: "confirm",
			Name:      "total",
			Help:      "Total number of payment confirmation requests by outcome",
		},
		[]string{"outcome"},
	)

	NotificationsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "payments",
			Subsystem: "notifications",
			Name:      "published_total",
			Help:      "Total number of confirmation notifications published",
		},
		[]string{"topic", "status"},
	)
)

func init() {
	Registry.MustRegister(ConfirmationsTotal, NotificationsPublished)
}
