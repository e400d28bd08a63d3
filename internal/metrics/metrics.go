package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpdatesHandled counts inbound bot updates by kind
	UpdatesHandled = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cancelitnow",
		Name:      "updates_total",
		Help:      "Inbound bot updates handled, by update kind.",
	}, []string{"kind"})

	// StoreErrors counts failed round-trips to the backing table
	StoreErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cancelitnow",
		Name:      "store_errors_total",
		Help:      "Failed append/list/update calls to the subscription store.",
	})

	// SubscriptionsAdded counts completed add flows
	SubscriptionsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cancelitnow",
		Name:      "subscriptions_added_total",
		Help:      "Subscriptions saved through the add flow.",
	})

	// SubscriptionsCancelled counts confirmed cancellations
	SubscriptionsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cancelitnow",
		Name:      "subscriptions_cancelled_total",
		Help:      "Subscriptions cancelled after confirmation.",
	})
)
