package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	lotsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tg_ledger_lots_created_total",
		Help: "Lots recorded in the ledger, both parsed and manual.",
	})
	lotsSold = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tg_ledger_lots_sold_total",
		Help: "Lots closed as sold.",
	})
	lotsRestored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tg_ledger_lots_restored_total",
		Help: "Lots closed as restored (refunded).",
	})
	notificationsIgnored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tg_ledger_notifications_ignored_total",
		Help: "Free-form texts that did not parse as purchase notifications.",
	})
)
