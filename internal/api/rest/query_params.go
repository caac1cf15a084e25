package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/dsc-protocol/dsc-indexer/internal/api/shared/constants"
	"github.com/dsc-protocol/dsc-indexer/internal/api/shared/dto"
	"github.com/dsc-protocol/dsc-indexer/internal/api/shared/types"
)

// PageQueryParams holds the paging parameters shared by list endpoints
type PageQueryParams struct {
	Limit  *int         `form:"limit"`
	Offset *int         `form:"offset"`
	Order  *types.Order `form:"order"`
}

// defaultOrder lists the newest records first unless the caller asks otherwise
func (p *PageQueryParams) defaultOrder() *types.Order {
	if p.Order != nil {
		return p.Order
	}
	order := constants.DEFAULT_REST_ORDER
	return &order
}

// ListInteractionsQueryParams holds query parameters for the interaction collections
type ListInteractionsQueryParams struct {
	PageQueryParams

	User         *string                   `form:"user"`
	Token        *string                   `form:"token"`
	TimestampGte *int64                    `form:"timestamp_gte"`
	TimestampLte *int64                    `form:"timestamp_lte"`
	OrderBy      *types.InteractionOrderBy `form:"order_by"`
}

// ListUsersQueryParams holds query parameters for GET /users
type ListUsersQueryParams struct {
	PageQueryParams

	OrderBy *types.UserOrderBy `form:"order_by"`
}

// ParseListInteractionsQuery parses query parameters for GET /mints and its siblings
func ParseListInteractionsQuery(c *gin.Context) (dto.InteractionQuery, error) {
	var params ListInteractionsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return dto.InteractionQuery{}, err
	}

	return dto.InteractionQuery{
		User:           params.User,
		Token:          params.Token,
		TimestampGte:   params.TimestampGte,
		TimestampLte:   params.TimestampLte,
		OrderBy:        params.OrderBy,
		OrderDirection: params.defaultOrder(),
		Limit:          params.Limit,
		Offset:         params.Offset,
	}, nil
}

// ParseListUsersQuery parses query parameters for GET /users. Users keep ascending order by default
func ParseListUsersQuery(c *gin.Context) (dto.UserQuery, error) {
	var params ListUsersQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return dto.UserQuery{}, err
	}

	return dto.UserQuery{
		OrderBy:        params.OrderBy,
		OrderDirection: params.Order,
		Limit:          params.Limit,
		Offset:         params.Offset,
	}, nil
}

// ParseListMonthlyStatsQuery parses query parameters for GET /monthly-stats
func ParseListMonthlyStatsQuery(c *gin.Context) (dto.MonthlyStatsQuery, error) {
	var params PageQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return dto.MonthlyStatsQuery{}, err
	}

	return dto.MonthlyStatsQuery{
		OrderDirection: params.defaultOrder(),
		Limit:          params.Limit,
		Offset:         params.Offset,
	}, nil
}
