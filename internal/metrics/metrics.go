package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Economy metrics
var (
	TransactionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "economy_transactions_total",
			Help: "Total economy operations by type and outcome",
		},
		[]string{"operation", "outcome"},
	)

	MoneyMovedCents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "economy_money_moved_cents_total",
			Help: "Total money moved in minor units by operation",
		},
		[]string{"operation"},
	)
)

// Progression metrics
var (
	XPAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "progression_xp_awarded_total",
			Help: "Total XP granted across all guilds",
		},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "progression_level_ups_total",
			Help: "Total level-ups observed",
		},
	)
)

const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
)

// RecordTransaction increments the transaction counter for an operation.
func RecordTransaction(operation string, ok bool) {
	outcome := OutcomeOK
	if !ok {
		outcome = OutcomeRejected
	}
	TransactionsTotal.WithLabelValues(operation, outcome).Inc()
}
