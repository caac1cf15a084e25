package store

import (
	"context"

	"github.com/dsc-protocol/dsc-indexer/internal/store/schema"
)

const (
	// DefaultListLimit is used when a list query does not set a limit
	DefaultListLimit = 100
	// MaxListLimit caps every list query
	MaxListLimit = 1000
)

// Order directions
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Interaction order fields
const (
	OrderByTimestamp   = "timestamp"
	OrderByAmount      = "amount"
	OrderByBlockNumber = "blockNumber"
)

// InteractionFilter selects mints, burns, deposits and redemptions
type InteractionFilter struct {
	User         *string
	Token        *string // ignored for mints and burns
	TimestampGte *int64
	TimestampLte *int64

	OrderBy        string // timestamp (default), amount or blockNumber
	OrderDirection string // asc (default) or desc
	Limit          int
	Offset         int
}

// UserFilter pages through users
type UserFilter struct {
	OrderBy        string // id (default), totalDeposited, totalMinted, totalBurned, firstInteractionTimestamp, lastInteractionTimestamp
	OrderDirection string
	Limit          int
	Offset         int
}

// MonthlyStatsFilter pages through monthly buckets, ordered by month
type MonthlyStatsFilter struct {
	OrderDirection string
	Limit          int
	Offset         int
}

// InteractionSums aggregates the interaction records in a timestamp window
type InteractionSums struct {
	MintVolume          string
	BurnVolume          string
	CollateralDeposited string
	CollateralRedeemed  string
	// DistinctUsers counts addresses that own at least one interaction in the window
	DistinctUsers int64
}

// TimeRange is a half-open [From, To) window of unix seconds, nil bounds are open
type TimeRange struct {
	From *int64
	To   *int64
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetUser retrieves a user by address, nil when absent
	GetUser(ctx context.Context, address string) (*schema.User, error)
	// UpsertUser creates or replaces a user
	UpsertUser(ctx context.Context, user *schema.User) error
	// ListUsers pages through users
	ListUsers(ctx context.Context, filter UserFilter) ([]schema.User, error)
	// CountUsers returns the number of users
	CountUsers(ctx context.Context) (int64, error)

	// GetProtocolStats retrieves the protocol stats singleton, nil when absent
	GetProtocolStats(ctx context.Context, id string) (*schema.ProtocolStats, error)
	// UpsertProtocolStats creates or replaces the protocol stats
	UpsertProtocolStats(ctx context.Context, stats *schema.ProtocolStats) error

	// GetMonthlyStats retrieves a monthly bucket, nil when absent
	GetMonthlyStats(ctx context.Context, id string) (*schema.MonthlyStats, error)
	// UpsertMonthlyStats creates or replaces a monthly bucket
	UpsertMonthlyStats(ctx context.Context, stats *schema.MonthlyStats) error
	// ListMonthlyStats pages through monthly buckets
	ListMonthlyStats(ctx context.Context, filter MonthlyStatsFilter) ([]schema.MonthlyStats, error)

	// GetMonthlyActiveUser retrieves an active user marker, nil when absent
	GetMonthlyActiveUser(ctx context.Context, id string) (*schema.MonthlyActiveUser, error)
	// CreateMonthlyActiveUser creates an active user marker, an existing marker is left untouched
	CreateMonthlyActiveUser(ctx context.Context, marker *schema.MonthlyActiveUser) error
	// CountMonthlyActiveUsers counts the markers of a month
	CountMonthlyActiveUsers(ctx context.Context, monthID string) (int64, error)

	// CreateMint inserts a mint record, a duplicate id is a no-op
	CreateMint(ctx context.Context, mint *schema.Mint) error
	// CreateBurn inserts a burn record, a duplicate id is a no-op
	CreateBurn(ctx context.Context, burn *schema.Burn) error
	// CreateCollateralDeposit inserts a deposit record, a duplicate id is a no-op
	CreateCollateralDeposit(ctx context.Context, deposit *schema.CollateralDeposit) error
	// CreateCollateralRedemption inserts a redemption record, a duplicate id is a no-op
	CreateCollateralRedemption(ctx context.Context, redemption *schema.CollateralRedemption) error

	// ListMints queries mint records
	ListMints(ctx context.Context, filter InteractionFilter) ([]schema.Mint, error)
	// ListBurns queries burn records
	ListBurns(ctx context.Context, filter InteractionFilter) ([]schema.Burn, error)
	// ListCollateralDeposits queries deposit records
	ListCollateralDeposits(ctx context.Context, filter InteractionFilter) ([]schema.CollateralDeposit, error)
	// ListCollateralRedemptions queries redemption records
	ListCollateralRedemptions(ctx context.Context, filter InteractionFilter) ([]schema.CollateralRedemption, error)

	// SumInteractions totals the interaction records in a window
	SumInteractions(ctx context.Context, window TimeRange) (*InteractionSums, error)

	// IsLogProcessed reports whether a log was already applied
	IsLogProcessed(ctx context.Context, id string) (bool, error)
	// MarkLogProcessed records an applied log
	MarkLogProcessed(ctx context.Context, log *schema.ProcessedLog) error

	// GetBlockCursor retrieves the last processed block number for a chain, 0 when unset
	GetBlockCursor(ctx context.Context, chain string) (uint64, error)
	// SetBlockCursor stores the last processed block number for a chain
	SetBlockCursor(ctx context.Context, chain string, blockNumber uint64) error

	// WithTx runs fn in a single unit of work. Every write made through the Store passed to fn
	// is committed when fn returns nil and discarded otherwise
	WithTx(ctx context.Context, fn func(tx Store) error) error
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

func isDesc(direction string) bool {
	return direction == OrderDesc
}
