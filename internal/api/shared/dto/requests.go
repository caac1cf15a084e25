package dto

import "github.com/dsc-protocol/dsc-indexer/internal/api/shared/types"

// InteractionQuery filters and pages an interaction list. Nil fields take their defaults
type InteractionQuery struct {
	User           *string
	Token          *string
	TimestampGte   *int64
	TimestampLte   *int64
	OrderBy        *types.InteractionOrderBy
	OrderDirection *types.Order
	Limit          *int
	Offset         *int
}

// UserQuery pages the user list
type UserQuery struct {
	OrderBy        *types.UserOrderBy
	OrderDirection *types.Order
	Limit          *int
	Offset         *int
}

// MonthlyStatsQuery pages the monthly buckets, ordered by month
type MonthlyStatsQuery struct {
	OrderDirection *types.Order
	Limit          *int
	Offset         *int
}

// TriggerBackfillRequest represents the body of a backfill trigger.
// ToBlock 0 means the chain head when the workflow starts
type TriggerBackfillRequest struct {
	FromBlock uint64 `json:"from_block"`
	ToBlock   uint64 `json:"to_block"`
	ChunkSize uint64 `json:"chunk_size"`
}
