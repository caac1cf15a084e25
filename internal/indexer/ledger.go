package indexer

import (
	"context"
	"fmt"

	"github.com/dsc-protocol/dsc-indexer/internal/store"
	"github.com/dsc-protocol/dsc-indexer/internal/store/schema"
)

// UserLedger owns the per-address user records
type UserLedger struct{}

// NewUserLedger creates a user ledger
func NewUserLedger() *UserLedger {
	return &UserLedger{}
}

// GetOrCreate loads the user for address. A first sighting builds a zero record with
// first = last = timestamp and counts the user in the protocol stats right away.
// The returned user is not saved; callers apply the event to it and upsert it once.
func (l *UserLedger) GetOrCreate(ctx context.Context, s store.Store, address string, timestamp int64) (*schema.User, bool, error) {
	user, err := s.GetUser(ctx, address)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get user %s: %w", address, err)
	}
	if user != nil {
		return user, false, nil
	}

	stats, err := loadProtocolStats(ctx, s, timestamp)
	if err != nil {
		return nil, false, err
	}
	stats.TotalUsers++
	if err := s.UpsertProtocolStats(ctx, stats); err != nil {
		return nil, false, fmt.Errorf("failed to count new user: %w", err)
	}

	return &schema.User{
		ID:                        address,
		TotalDeposited:            "0",
		TotalMinted:               "0",
		TotalBurned:               "0",
		FirstInteractionTimestamp: timestamp,
		LastInteractionTimestamp:  timestamp,
	}, true, nil
}

// touch widens the interaction window of user to cover timestamp.
// Events replayed out of order, as by a backfill of an older range, can move the first interaction back
func touch(user *schema.User, timestamp int64) {
	if timestamp < user.FirstInteractionTimestamp {
		user.FirstInteractionTimestamp = timestamp
	}
	if timestamp > user.LastInteractionTimestamp {
		user.LastInteractionTimestamp = timestamp
	}
}
