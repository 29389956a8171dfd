package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	paymentEventsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "merch_fulfillment",
			Subsystem: "kafka_consumer",
			Name:      "payment_events_processed_total",
			Help:      "Total number of successfully processed payment events",
		},
		[]string{"status"},
	)

	paymentEventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "merch_fulfillment",
			Subsystem: "kafka_consumer",
			Name:      "payment_events_failed_total",
			Help:      "Total number of failed payment event processing attempts",
		},
	)

	paymentEventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "merch_fulfillment",
			Subsystem: "kafka_consumer",
			Name:      "payment_events_dlq_total",
			Help:      "Total number of payment events written to DLQ",
		},
	)

	dlqWriteStalls = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "merch_fulfillment",
			Subsystem: "kafka_consumer",
			Name:      "dlq_write_stalls_total",
			Help:      "Total number of exhausted DLQ write retry rounds while the partition is blocked",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "merch_fulfillment",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	paymentEventDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "merch_fulfillment",
			Subsystem: "kafka_consumer",
			Name:      "payment_event_duration_seconds",
			Help:      "Histogram of payment event processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	paymentEventsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "merch_fulfillment",
			Subsystem: "kafka_consumer",
			Name:      "payment_events_in_progress",
			Help:      "Number of payment events currently being processed",
		},
	)
)

var (
	fulfillRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "merch_fulfillment",
			Subsystem: "http",
			Name:      "fulfill_requests_total",
			Help:      "Total number of admin fulfill requests by response code",
		},
		[]string{"code"},
	)

	fulfillRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "merch_fulfillment",
			Subsystem: "http",
			Name:      "fulfill_request_duration_seconds",
			Help:      "Histogram of admin fulfill request durations",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20, 40},
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		paymentEventsProcessed,
		paymentEventsFailed,
		paymentEventsDLQ,
		dlqWriteStalls,
		commitErrors,
		paymentEventDuration,
		paymentEventsInProgress,

		fulfillRequestTotal,
		fulfillRequestDuration,
	)
}
