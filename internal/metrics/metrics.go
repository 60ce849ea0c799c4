package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OperationsTotal counts engine operations by name and result kind
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "htlc_operations_total",
			Help: "Total number of HTLC engine operations",
		},
		[]string{"operation", "result"},
	)

	// OperationDuration tracks service call latency
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "htlc_operation_duration_seconds",
			Help:    "HTLC operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// PayoutsTotal counts ledger transfers by kind and outcome
	PayoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "htlc_payouts_total",
			Help: "Total number of payouts dispatched to the ledger",
		},
		[]string{"kind", "status"},
	)

	// PayoutDuration tracks ledger transfer time
	PayoutDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "htlc_payout_duration_seconds",
			Help:    "Ledger transfer duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 30, 60, 120},
		},
		[]string{"kind"},
	)

	// PayoutsInFlight tracks transfers that have not settled yet
	PayoutsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "htlc_payouts_in_flight",
			Help: "Number of payouts awaiting ledger settlement",
		},
	)

	// EventsEmitted counts emitted engine events by type
	EventsEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "htlc_events_emitted_total",
			Help: "Total number of engine events emitted",
		},
		[]string{"type"},
	)

	// OpenEntities tracks open escrows, orders, fills and pending requests
	OpenEntities = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "htlc_open_entities",
			Help: "Number of open entities by kind",
		},
		[]string{"kind"},
	)

	// ExpiredOpenEntities tracks open entities past their deadline
	ExpiredOpenEntities = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "htlc_expired_open_entities",
			Help: "Number of open entities past their deadline by kind",
		},
		[]string{"kind"},
	)

	// LockedAmount tracks value held by open entities
	LockedAmount = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "htlc_locked_amount",
			Help: "Value locked in open entities by kind",
		},
		[]string{"kind"},
	)

	// SweepsTotal counts sweeper runs by outcome
	SweepsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "htlc_sweeps_total",
			Help: "Total number of expired-request sweeps",
		},
		[]string{"status"},
	)

	// ErrorsTotal counts errors by component and type
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "htlc_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)
