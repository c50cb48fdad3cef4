package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HandlerRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wagering_handler_runs_total",
		Help: "Fan-out handler executions by final result",
	}, []string{"signal", "handler", "result"})

	HandlerDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wagering_handler_duration_seconds",
		Help:    "Fan-out handler latency including retries",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
	}, []string{"signal", "handler"})

	LedgerConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wagering_ledger_version_conflicts_total",
		Help: "Optimistic lock conflicts on balance writes",
	})

	LedgerApplies = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wagering_ledger_applies_total",
		Help: "Ledger apply outcomes",
	}, []string{"type", "result"})

	RolloverExcessDiscarded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wagering_rollover_excess_discarded_total",
		Help: "Wager excess dropped because the rollover queue was exhausted",
	}, []string{"currency"})

	CashbackBufferFlushed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wagering_cashback_buffer_entries_total",
		Help: "Drained cashback buffer entries by merge result",
	}, []string{"result"})
)
