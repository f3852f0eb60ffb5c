package fibonacci

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds the calculation metrics. It is separate from the global
// Prometheus registry so the CLI can dump exactly what a run recorded.
var Registry = prometheus.NewRegistry()

var (
	calculationsTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "fibbench_calculations_total",
			Help: "The total number of Fibonacci calculations processed",
		},
		[]string{"algorithm", "status"},
	)
	calculationDuration = promauto.With(Registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fibbench_calculation_duration_seconds",
			Help:    "The duration of Fibonacci calculations in seconds",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		},
		[]string{"algorithm"},
	)
	resultBits = promauto.With(Registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fibbench_result_bits",
			Help: "Bit length of the last result produced by each algorithm",
		},
		[]string{"algorithm"},
	)
)
