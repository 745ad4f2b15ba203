package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var GatewayRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "gateway",
		Name:      "request_duration_seconds",
		Help:      "Payment gateway call latency in seconds",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20},
	},
	[]string{"operation", "result"},
)

// ObserveGatewayCall records one gateway call; result is "ok" or "error".
func ObserveGatewayCall(operation string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	GatewayRequestDuration.WithLabelValues(operation, result).Observe(time.Since(start).Seconds())
}
