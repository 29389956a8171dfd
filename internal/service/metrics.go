package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSubmitted          = "submitted"
	outcomeConfirmed          = "confirmed"
	outcomeConfirmationFailed = "confirmation_failed"
	outcomeAlreadyInProgress  = "already_in_progress"
	outcomeNotFound           = "not_found"
	outcomeCancelled          = "cancelled"
	outcomeNoEligibleItems    = "no_eligible_items"
	outcomeInvalidAddress     = "invalid_address"
	outcomeSubmissionFailed   = "submission_failed"
	outcomeStateWriteFailed   = "state_write_failed"
	outcomeError              = "error"
)

var (
	fulfillmentOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "merch_fulfillment",
		Subsystem: "coordinator",
		Name:      "fulfill_total",
		Help:      "Total number of fulfill calls by outcome.",
	}, []string{"outcome"})

	fulfillDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "merch_fulfillment",
		Subsystem: "coordinator",
		Name:      "fulfill_duration_seconds",
		Help:      "Histogram of fulfill durations in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	missingExternalIDs = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "merch_fulfillment",
		Subsystem: "coordinator",
		Name:      "missing_external_id_total",
		Help:      "Line items submitted with internal product id because no printful external id is recorded.",
	})

	catalogSyncProducts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "merch_fulfillment",
		Subsystem: "catalog",
		Name:      "synced_products_total",
		Help:      "Total number of products processed by catalog sync by action.",
	}, []string{"action"})
)
