package listing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menudash_listing_fetches_total",
			Help: "Listing fetches applied to a screen, by outcome",
		},
		[]string{"resource", "outcome"},
	)

	staleResponsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menudash_listing_stale_responses_total",
			Help: "Responses discarded because a newer request had been issued",
		},
		[]string{"resource"},
	)

	deletesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menudash_listing_deletes_total",
			Help: "Delete actions by outcome",
		},
		[]string{"resource", "outcome"},
	)
)
