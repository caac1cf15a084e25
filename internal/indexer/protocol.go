package indexer

import (
	"context"
	"fmt"

	"github.com/dsc-protocol/dsc-indexer/internal/domain"
	"github.com/dsc-protocol/dsc-indexer/internal/store"
	"github.com/dsc-protocol/dsc-indexer/internal/store/schema"
)

// ProtocolAggregator maintains the protocol-wide stats singleton
type ProtocolAggregator struct{}

// NewProtocolAggregator creates a protocol aggregator
func NewProtocolAggregator() *ProtocolAggregator {
	return &ProtocolAggregator{}
}

// loadProtocolStats returns the singleton, or a zero one stamped with timestamp when none exists yet
func loadProtocolStats(ctx context.Context, s store.Store, timestamp int64) (*schema.ProtocolStats, error) {
	stats, err := s.GetProtocolStats(ctx, domain.PROTOCOL_STATS_ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get protocol stats: %w", err)
	}
	if stats != nil {
		return stats, nil
	}

	return &schema.ProtocolStats{
		ID:                   domain.PROTOCOL_STATS_ID,
		TotalMintVolume:      "0",
		TotalBurnVolume:      "0",
		TotalNetMinted:       "0",
		TotalCollateral:      "0",
		LastUpdatedTimestamp: timestamp,
	}, nil
}

// Apply adds the deltas to the protocol totals and persists them.
// Net minted is recomputed from the two volumes, collateral clamps at zero.
func (a *ProtocolAggregator) Apply(ctx context.Context, s store.Store, timestamp int64, d Deltas) error {
	stats, err := loadProtocolStats(ctx, s, timestamp)
	if err != nil {
		return err
	}

	mintVolume, err := parseStored("totalMintVolume", stats.TotalMintVolume)
	if err != nil {
		return err
	}
	burnVolume, err := parseStored("totalBurnVolume", stats.TotalBurnVolume)
	if err != nil {
		return err
	}
	collateral, err := parseStored(FieldTotalCollateral, stats.TotalCollateral)
	if err != nil {
		return err
	}

	if mintVolume, err = add("totalMintVolume", mintVolume, orZero(d.Mint)); err != nil {
		return err
	}
	if burnVolume, err = add("totalBurnVolume", burnVolume, orZero(d.Burn)); err != nil {
		return err
	}
	if collateral, err = add(FieldTotalCollateral, collateral, orZero(d.Deposit)); err != nil {
		return err
	}
	collateral = subClamped(ctx, FieldTotalCollateral, stats.ID, collateral, orZero(d.Redeem))

	stats.TotalMintVolume = mintVolume.Dec()
	stats.TotalBurnVolume = burnVolume.Dec()
	stats.TotalNetMinted = domain.SignedDiff(mintVolume, burnVolume)
	stats.TotalCollateral = collateral.Dec()
	stats.LastUpdatedTimestamp = timestamp

	if err := s.UpsertProtocolStats(ctx, stats); err != nil {
		return fmt.Errorf("failed to save protocol stats: %w", err)
	}
	return nil
}
