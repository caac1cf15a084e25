package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/dsc-protocol/dsc-indexer/internal/domain"
)

func TestRecordDecodeError(t *testing.T) {
	tests := []struct {
		err    error
		reason string
	}{
		{fmt.Errorf("%w: 0x01", domain.ErrUnknownEvent), "unknown_event"},
		{fmt.Errorf("%w: topics", domain.ErrInvalidEventShape), "invalid_shape"},
		{domain.ErrUnexpectedContract, "unexpected_contract"},
		{domain.ErrInvalidAmount, "invalid_amount"},
		{fmt.Errorf("boom"), "other"},
	}

	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			before := testutil.ToFloat64(DecodeErrorsTotal.WithLabelValues(tt.reason))
			RecordDecodeError(tt.err)
			assert.Equal(t, before+1, testutil.ToFloat64(DecodeErrorsTotal.WithLabelValues(tt.reason)))
		})
	}
}

func TestRecordEventAndClamp(t *testing.T) {
	before := testutil.ToFloat64(EventsTotal.WithLabelValues("transfer", ResultApplied))
	RecordEvent(domain.EventTypeTransfer, ResultApplied)
	assert.Equal(t, before+1, testutil.ToFloat64(EventsTotal.WithLabelValues("transfer", ResultApplied)))

	before = testutil.ToFloat64(ClampedTotal.WithLabelValues("total_collateral"))
	RecordClamp("total_collateral")
	assert.Equal(t, before+1, testutil.ToFloat64(ClampedTotal.WithLabelValues("total_collateral")))
}

func TestObserveHTTPRequest(t *testing.T) {
	ObserveHTTPRequest("GET", "/api/v1/stats", 200, 15*time.Millisecond)
	assert.Equal(t, 1, testutil.CollectAndCount(HTTPRequestDuration, "dsc_indexer_http_request_duration_seconds"))
}
