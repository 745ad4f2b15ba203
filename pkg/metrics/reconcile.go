package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ReconcileRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reconcile",
			Name:      "runs_total",
			Help:      "Reconciliation cycles by result",
		},
		[]string{"result"},
	)

	ReconcileOrdersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reconcile",
			Name:      "orders_total",
			Help:      "Pending orders inspected during reconciliation, by outcome",
		},
		[]string{"outcome"},
	)

	ReconcileDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "reconcile",
			Name:      "run_duration_seconds",
			Help:      "Reconciliation cycle duration in seconds",
			Buckets:   []float64{.1, .5, 1, 5, 10, 30, 60, 120, 300},
		},
	)

	// ReconcileLastSuccess lets alerting spot a reconciler that keeps failing or stopped running.
	ReconcileLastSuccess = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "reconcile",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last reconciliation cycle that finished without error",
		},
	)
)
