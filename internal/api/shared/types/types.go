package types

import "github.com/dsc-protocol/dsc-indexer/internal/store"

// Order enumeration for sorting
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

func (o Order) Desc() bool {
	return o == OrderDesc
}

// Valid checks if an order is valid
func (o Order) Valid() bool {
	return o == OrderAsc || o == OrderDesc
}

// InteractionKind selects one of the four interaction collections
type InteractionKind string

const (
	InteractionMint       InteractionKind = "mints"
	InteractionBurn       InteractionKind = "burns"
	InteractionDeposit    InteractionKind = "collateralDeposits"
	InteractionRedemption InteractionKind = "collateralRedemptions"
)

// HasToken reports whether records of this kind carry a collateral token
func (k InteractionKind) HasToken() bool {
	return k == InteractionDeposit || k == InteractionRedemption
}

// Valid checks if a kind is valid
func (k InteractionKind) Valid() bool {
	switch k {
	case InteractionMint, InteractionBurn, InteractionDeposit, InteractionRedemption:
		return true
	}
	return false
}

// InteractionOrderBy is a sortable interaction field
type InteractionOrderBy string

const (
	InteractionOrderByTimestamp   InteractionOrderBy = "timestamp"
	InteractionOrderByAmount      InteractionOrderBy = "amount"
	InteractionOrderByBlockNumber InteractionOrderBy = "blockNumber"
)

// Valid checks if an interaction order field is valid
func (o InteractionOrderBy) Valid() bool {
	return o == InteractionOrderByTimestamp || o == InteractionOrderByAmount || o == InteractionOrderByBlockNumber
}

// UserOrderBy is a sortable user field
type UserOrderBy string

const (
	UserOrderByID                        UserOrderBy = "id"
	UserOrderByTotalDeposited            UserOrderBy = "totalDeposited"
	UserOrderByTotalMinted               UserOrderBy = "totalMinted"
	UserOrderByTotalBurned               UserOrderBy = "totalBurned"
	UserOrderByFirstInteractionTimestamp UserOrderBy = "firstInteractionTimestamp"
	UserOrderByLastInteractionTimestamp  UserOrderBy = "lastInteractionTimestamp"
)

// Valid checks if a user order field is valid
func (o UserOrderBy) Valid() bool {
	switch o {
	case UserOrderByID, UserOrderByTotalDeposited, UserOrderByTotalMinted, UserOrderByTotalBurned,
		UserOrderByFirstInteractionTimestamp, UserOrderByLastInteractionTimestamp:
		return true
	}
	return false
}

// ToStoreOrder converts an API order to the store direction, ascending by default
func ToStoreOrder(order Order) string {
	if order.Desc() {
		return store.OrderDesc
	}
	return store.OrderAsc
}

// ToStoreInteractionOrderBy converts an API order field to the store field
func ToStoreInteractionOrderBy(orderBy InteractionOrderBy) string {
	switch orderBy {
	case InteractionOrderByAmount:
		return store.OrderByAmount
	case InteractionOrderByBlockNumber:
		return store.OrderByBlockNumber
	default:
		return store.OrderByTimestamp
	}
}
