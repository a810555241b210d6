package backend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	finesIssuedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "teamwallet",
		Subsystem: "fines",
		Name:      "issued_total",
		Help:      "The total number of issued fines",
	})

	finesPaidCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "teamwallet",
		Subsystem: "fines",
		Name:      "paid_total",
		Help:      "The total number of fines marked paid",
	})

	payoutsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "teamwallet",
		Subsystem: "payouts",
		Name:      "recorded_total",
		Help:      "The total number of recorded payouts",
	})

	invitesAcceptedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "teamwallet",
		Subsystem: "invites",
		Name:      "accepted_total",
		Help:      "The total number of accepted invites",
	})
)
