// Package metrics defines the Prometheus metrics exported by the indexer processes.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dsc-protocol/dsc-indexer/internal/domain"
)

const namespace = "dsc_indexer"

// Event results
const (
	ResultApplied   = "applied"
	ResultDuplicate = "duplicate"
	ResultRetried   = "retried"
	ResultFailed    = "failed"
)

var (
	// EventsTotal counts protocol events seen by the processor, by outcome
	EventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Protocol events handled, by event type and result",
		},
		[]string{"event_type", "result"},
	)

	// DecodeErrorsTotal counts logs dropped before they became events
	DecodeErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decode_errors_total",
			Help:      "Logs that could not be decoded into protocol events",
		},
		[]string{"reason"},
	)

	// ClampedTotal counts subtractions that would have taken a non-negative field below zero
	ClampedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clamped_total",
			Help:      "Non-negative fields clamped at zero on underflow",
		},
		[]string{"field"},
	)

	// HTTPRequestDuration tracks API latency
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "API request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// LastProcessedBlock is the block of the most recent event the bridge applied
	LastProcessedBlock = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_processed_block",
			Help:      "Block number of the last applied protocol event",
		},
	)
)

// RecordEvent increments the event counter
func RecordEvent(eventType domain.EventType, result string) {
	EventsTotal.WithLabelValues(string(eventType), result).Inc()
}

// RecordDecodeError classifies a decode failure
func RecordDecodeError(err error) {
	reason := "other"
	switch {
	case errors.Is(err, domain.ErrUnknownEvent):
		reason = "unknown_event"
	case errors.Is(err, domain.ErrInvalidEventShape):
		reason = "invalid_shape"
	case errors.Is(err, domain.ErrUnexpectedContract):
		reason = "unexpected_contract"
	case errors.Is(err, domain.ErrInvalidAmount):
		reason = "invalid_amount"
	}
	DecodeErrorsTotal.WithLabelValues(reason).Inc()
}

// RecordClamp increments the clamp counter for field
func RecordClamp(field string) {
	ClampedTotal.WithLabelValues(field).Inc()
}

// ObserveHTTPRequest records one API request
func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
