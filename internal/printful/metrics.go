package printful

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var providerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "merch_fulfillment",
	Subsystem: "printful",
	Name:      "request_duration_seconds",
	Help:      "Printful API call latencies in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"operation", "status"})
