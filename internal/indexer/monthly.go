package indexer

import (
	"context"
	"fmt"
	"time"

	"github.com/dsc-protocol/dsc-indexer/internal/domain"
	"github.com/dsc-protocol/dsc-indexer/internal/store"
	"github.com/dsc-protocol/dsc-indexer/internal/store/schema"
)

// NewUserCutoff decides when an active user also counts as new in a month
type NewUserCutoff string

const (
	// CutoffCalendarMonth counts a user as new in the UTC month of its first interaction
	CutoffCalendarMonth NewUserCutoff = "calendar_month"
	// CutoffFirstSeen counts a user as new when its first interaction is not older than
	// the event that opened the month bucket
	CutoffFirstSeen NewUserCutoff = "first_seen"
)

// MonthlyAggregator maintains one stats bucket per UTC calendar month
type MonthlyAggregator struct {
	cutoff NewUserCutoff
}

// NewMonthlyAggregator creates a monthly aggregator, an empty cutoff means calendar month
func NewMonthlyAggregator(cutoff NewUserCutoff) *MonthlyAggregator {
	if cutoff == "" {
		cutoff = CutoffCalendarMonth
	}
	return &MonthlyAggregator{cutoff: cutoff}
}

// Apply folds an event of userAddress into the bucket of timestamp's month.
// The user must already be stored.
func (m *MonthlyAggregator) Apply(ctx context.Context, s store.Store, timestamp int64, userAddress string, d Deltas) error {
	monthID := domain.MonthID(timestamp)

	stats, err := s.GetMonthlyStats(ctx, monthID)
	if err != nil {
		return fmt.Errorf("failed to get monthly stats %s: %w", monthID, err)
	}
	if stats == nil {
		stats = newMonthlyStats(monthID, timestamp)
	}

	if err := accumulateMonthly(stats, d); err != nil {
		return err
	}

	user, err := s.GetUser(ctx, userAddress)
	if err != nil {
		return fmt.Errorf("failed to get user %s: %w", userAddress, err)
	}
	if user == nil {
		return fmt.Errorf("%w: %s in month %s", domain.ErrUserNotFound, userAddress, monthID)
	}

	markerID := domain.ActiveUserMarkerID(monthID, userAddress)
	marker, err := s.GetMonthlyActiveUser(ctx, markerID)
	if err != nil {
		return fmt.Errorf("failed to get active user marker %s: %w", markerID, err)
	}
	if marker == nil {
		if err := s.CreateMonthlyActiveUser(ctx, &schema.MonthlyActiveUser{
			ID:          markerID,
			UserAddress: userAddress,
			Month:       monthID,
		}); err != nil {
			return fmt.Errorf("failed to create active user marker %s: %w", markerID, err)
		}
		stats.ActiveUsers++

		// only on the first activity of the month, so a user is new at most once per month
		if m.isNewUser(user, stats) {
			stats.NewUsers++
		}
	}

	if err := s.UpsertMonthlyStats(ctx, stats); err != nil {
		return fmt.Errorf("failed to save monthly stats %s: %w", monthID, err)
	}
	return nil
}

func (m *MonthlyAggregator) isNewUser(user *schema.User, stats *schema.MonthlyStats) bool {
	if m.cutoff == CutoffFirstSeen {
		return user.FirstInteractionTimestamp >= stats.Timestamp
	}
	return domain.MonthID(user.FirstInteractionTimestamp) == stats.ID
}

func newMonthlyStats(monthID string, timestamp int64) *schema.MonthlyStats {
	t := time.Unix(timestamp, 0).UTC()
	return &schema.MonthlyStats{
		ID:                  monthID,
		Year:                t.Year(),
		Month:               int(t.Month()),
		MintVolume:          "0",
		BurnVolume:          "0",
		NetMintVolume:       "0",
		CollateralDeposited: "0",
		CollateralRedeemed:  "0",
		NetCollateral:       "0",
		Timestamp:           timestamp,
	}
}

func accumulateMonthly(stats *schema.MonthlyStats, d Deltas) error {
	mint, err := parseStored("mintVolume", stats.MintVolume)
	if err != nil {
		return err
	}
	burn, err := parseStored("burnVolume", stats.BurnVolume)
	if err != nil {
		return err
	}
	deposited, err := parseStored("collateralDeposited", stats.CollateralDeposited)
	if err != nil {
		return err
	}
	redeemed, err := parseStored("collateralRedeemed", stats.CollateralRedeemed)
	if err != nil {
		return err
	}

	if mint, err = add("mintVolume", mint, orZero(d.Mint)); err != nil {
		return err
	}
	if burn, err = add("burnVolume", burn, orZero(d.Burn)); err != nil {
		return err
	}
	if deposited, err = add("collateralDeposited", deposited, orZero(d.Deposit)); err != nil {
		return err
	}
	if redeemed, err = add("collateralRedeemed", redeemed, orZero(d.Redeem)); err != nil {
		return err
	}

	stats.MintVolume = mint.Dec()
	stats.BurnVolume = burn.Dec()
	stats.NetMintVolume = domain.SignedDiff(mint, burn)
	stats.CollateralDeposited = deposited.Dec()
	stats.CollateralRedeemed = redeemed.Dec()
	stats.NetCollateral = domain.SignedDiff(deposited, redeemed)
	return nil
}
