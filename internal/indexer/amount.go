package indexer

import (
	"context"
	"fmt"

	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/dsc-protocol/dsc-indexer/internal/domain"
	"github.com/dsc-protocol/dsc-indexer/internal/logger"
	"github.com/dsc-protocol/dsc-indexer/internal/metrics"
)

// Clamp fields reported through metrics
const (
	FieldTotalCollateral = "totalCollateral"
	FieldTotalDeposited  = "totalDeposited"
)

// Deltas are the non-negative amounts an event adds to the aggregates. Nil means zero
type Deltas struct {
	Mint    *uint256.Int
	Burn    *uint256.Int
	Deposit *uint256.Int
	Redeem  *uint256.Int
}

func orZero(v *uint256.Int) *uint256.Int {
	if v == nil {
		return new(uint256.Int)
	}
	return v
}

// parseStored parses an accumulator read from the store, empty is zero
func parseStored(field, value string) (*uint256.Int, error) {
	if value == "" {
		return new(uint256.Int), nil
	}
	v, err := uint256.FromDecimal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s %q: %w", field, value, err)
	}
	return v, nil
}

func add(field string, a, b *uint256.Int) (*uint256.Int, error) {
	sum, overflow := new(uint256.Int).AddOverflow(a, b)
	if overflow {
		return nil, fmt.Errorf("%w: %s + %s on %s", domain.ErrAmountOverflow, a.Dec(), b.Dec(), field)
	}
	return sum, nil
}

// subClamped returns a - b, or zero when b exceeds a
func subClamped(ctx context.Context, field, id string, a, b *uint256.Int) *uint256.Int {
	if a.Lt(b) {
		logger.WarnCtx(ctx, "Amount underflow clamped at zero",
			zap.String("field", field),
			zap.String("id", id),
			zap.String("current", a.Dec()),
			zap.String("subtracted", b.Dec()))
		metrics.RecordClamp(field)
		return new(uint256.Int)
	}
	return new(uint256.Int).Sub(a, b)
}
