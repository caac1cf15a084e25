package graphql

import (
	"github.com/dsc-protocol/dsc-indexer/internal/api/shared/dto"
	apierrors "github.com/dsc-protocol/dsc-indexer/internal/api/shared/errors"
	"github.com/dsc-protocol/dsc-indexer/internal/api/shared/types"
)

func toOrder(d *OrderDirection) *types.Order {
	if d == nil {
		return nil
	}
	o := types.Order(*d)
	return &o
}

func toInteractionOrderBy(o *InteractionOrderBy) *types.InteractionOrderBy {
	if o == nil {
		return nil
	}
	orderBy := types.InteractionOrderBy(*o)
	return &orderBy
}

func toUserOrderBy(o *UserOrderBy) *types.UserOrderBy {
	if o == nil {
		return nil
	}
	orderBy := types.UserOrderBy(*o)
	return &orderBy
}

// monthlyStatsQuery maps first and skip onto limit and offset
func monthlyStatsQuery(first, skip *int, orderDirection *OrderDirection) dto.MonthlyStatsQuery {
	return dto.MonthlyStatsQuery{
		OrderDirection: toOrder(orderDirection),
		Limit:          first,
		Offset:         skip,
	}
}

func userQuery(first, skip *int, orderBy *UserOrderBy, orderDirection *OrderDirection) dto.UserQuery {
	return dto.UserQuery{
		OrderBy:        toUserOrderBy(orderBy),
		OrderDirection: toOrder(orderDirection),
		Limit:          first,
		Offset:         skip,
	}
}

// interactionQuery reads paging, ordering and the optional where filter
func interactionQuery(first, skip *int, orderBy *InteractionOrderBy, orderDirection *OrderDirection, where *InteractionFilter) (dto.InteractionQuery, error) {
	q := dto.InteractionQuery{
		OrderBy:        toInteractionOrderBy(orderBy),
		OrderDirection: toOrder(orderDirection),
		Limit:          first,
		Offset:         skip,
	}
	if where == nil {
		return q, nil
	}

	q.User = where.User
	q.Token = where.Token

	if where.TimestampGte != nil {
		n, err := bigIntToInt64("timestamp_gte", *where.TimestampGte)
		if err != nil {
			return q, err
		}
		q.TimestampGte = &n
	}
	if where.TimestampLte != nil {
		n, err := bigIntToInt64("timestamp_lte", *where.TimestampLte)
		if err != nil {
			return q, err
		}
		q.TimestampLte = &n
	}

	return q, nil
}

// backfillRequest maps the triggerBackfill arguments. A missing toBlock means the chain head
func backfillRequest(fromBlock string, toBlock *string, chunkSize *int) (dto.TriggerBackfillRequest, error) {
	var req dto.TriggerBackfillRequest
	var err error

	if req.FromBlock, err = bigIntToUint64("fromBlock", fromBlock); err != nil {
		return req, err
	}
	if toBlock != nil {
		if req.ToBlock, err = bigIntToUint64("toBlock", *toBlock); err != nil {
			return req, err
		}
	}
	if chunkSize != nil {
		if *chunkSize < 0 {
			return req, apierrors.NewValidationError("chunkSize must not be negative")
		}
		req.ChunkSize = uint64(*chunkSize)
	}

	return req, nil
}
