package graphql

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.81

import (
	"context"

	"github.com/dsc-protocol/dsc-indexer/internal/api/shared/dto"
	"github.com/dsc-protocol/dsc-indexer/internal/api/shared/types"
)

// User is the resolver for the user field.
func (r *burnResolver) User(ctx context.Context, obj *dto.InteractionResponse) (*dto.UserResponse, error) {
	return r.interactionUser(ctx, obj)
}

// User is the resolver for the user field.
func (r *collateralDepositResolver) User(ctx context.Context, obj *dto.InteractionResponse) (*dto.UserResponse, error) {
	return r.interactionUser(ctx, obj)
}

// User is the resolver for the user field.
func (r *collateralRedemptionResolver) User(ctx context.Context, obj *dto.InteractionResponse) (*dto.UserResponse, error) {
	return r.interactionUser(ctx, obj)
}

// User is the resolver for the user field.
func (r *mintResolver) User(ctx context.Context, obj *dto.InteractionResponse) (*dto.UserResponse, error) {
	return r.interactionUser(ctx, obj)
}

// TriggerBackfill is the resolver for the triggerBackfill field.
func (r *mutationResolver) TriggerBackfill(ctx context.Context, fromBlock string, toBlock *string, chunkSize *int) (*dto.WorkflowRunResponse, error) {
	req, err := backfillRequest(fromBlock, toBlock, chunkSize)
	if err != nil {
		return nil, err
	}
	return r.executor.TriggerBackfill(ctx, req)
}

// TriggerAudit is the resolver for the triggerAudit field.
func (r *mutationResolver) TriggerAudit(ctx context.Context) (*dto.WorkflowRunResponse, error) {
	return r.executor.TriggerAudit(ctx)
}

// ProtocolStats is the resolver for the protocolStats field.
func (r *queryResolver) ProtocolStats(ctx context.Context, id string) (*dto.ProtocolStatsResponse, error) {
	return r.executor.GetProtocolStats(ctx, id)
}

// MonthlyStats is the resolver for the monthlyStats field.
func (r *queryResolver) MonthlyStats(ctx context.Context, id string) (*dto.MonthlyStatsResponse, error) {
	return r.executor.GetMonthlyStats(ctx, id)
}

// MonthlyStatsList is the resolver for the monthlyStatsList field.
func (r *queryResolver) MonthlyStatsList(ctx context.Context, first *int, skip *int, orderDirection *OrderDirection) ([]*dto.MonthlyStatsResponse, error) {
	list, err := r.executor.ListMonthlyStats(ctx, monthlyStatsQuery(first, skip, orderDirection))
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MonthlyStatsResponse, len(list.MonthlyStats))
	for i := range list.MonthlyStats {
		out[i] = &list.MonthlyStats[i]
	}
	return out, nil
}

// User is the resolver for the user field.
func (r *queryResolver) User(ctx context.Context, id string) (*dto.UserResponse, error) {
	return r.loadUser(ctx, id)
}

// Users is the resolver for the users field.
func (r *queryResolver) Users(ctx context.Context, first *int, skip *int, orderBy *UserOrderBy, orderDirection *OrderDirection) ([]*dto.UserResponse, error) {
	list, err := r.executor.ListUsers(ctx, userQuery(first, skip, orderBy, orderDirection))
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, len(list.Users))
	for i := range list.Users {
		out[i] = &list.Users[i]
	}
	r.primeUsers(ctx, out)
	return out, nil
}

// Mints is the resolver for the mints field.
func (r *queryResolver) Mints(ctx context.Context, first *int, skip *int, orderBy *InteractionOrderBy, orderDirection *OrderDirection, where *InteractionFilter) ([]*dto.InteractionResponse, error) {
	return r.queryInteractions(ctx, types.InteractionMint, first, skip, orderBy, orderDirection, where)
}

// Burns is the resolver for the burns field.
func (r *queryResolver) Burns(ctx context.Context, first *int, skip *int, orderBy *InteractionOrderBy, orderDirection *OrderDirection, where *InteractionFilter) ([]*dto.InteractionResponse, error) {
	return r.queryInteractions(ctx, types.InteractionBurn, first, skip, orderBy, orderDirection, where)
}

// CollateralDeposits is the resolver for the collateralDeposits field.
func (r *queryResolver) CollateralDeposits(ctx context.Context, first *int, skip *int, orderBy *InteractionOrderBy, orderDirection *OrderDirection, where *InteractionFilter) ([]*dto.InteractionResponse, error) {
	return r.queryInteractions(ctx, types.InteractionDeposit, first, skip, orderBy, orderDirection, where)
}

// CollateralRedemptions is the resolver for the collateralRedemptions field.
func (r *queryResolver) CollateralRedemptions(ctx context.Context, first *int, skip *int, orderBy *InteractionOrderBy, orderDirection *OrderDirection, where *InteractionFilter) ([]*dto.InteractionResponse, error) {
	return r.queryInteractions(ctx, types.InteractionRedemption, first, skip, orderBy, orderDirection, where)
}

// Mints is the resolver for the mints field.
func (r *userResolver) Mints(ctx context.Context, obj *dto.UserResponse, first *int, skip *int, orderBy *InteractionOrderBy, orderDirection *OrderDirection) ([]*dto.InteractionResponse, error) {
	return r.userInteractions(ctx, types.InteractionMint, obj, first, skip, orderBy, orderDirection)
}

// Burns is the resolver for the burns field.
func (r *userResolver) Burns(ctx context.Context, obj *dto.UserResponse, first *int, skip *int, orderBy *InteractionOrderBy, orderDirection *OrderDirection) ([]*dto.InteractionResponse, error) {
	return r.userInteractions(ctx, types.InteractionBurn, obj, first, skip, orderBy, orderDirection)
}

// CollateralDeposits is the resolver for the collateralDeposits field.
func (r *userResolver) CollateralDeposits(ctx context.Context, obj *dto.UserResponse, first *int, skip *int, orderBy *InteractionOrderBy, orderDirection *OrderDirection) ([]*dto.InteractionResponse, error) {
	return r.userInteractions(ctx, types.InteractionDeposit, obj, first, skip, orderBy, orderDirection)
}

// CollateralRedemptions is the resolver for the collateralRedemptions field.
func (r *userResolver) CollateralRedemptions(ctx context.Context, obj *dto.UserResponse, first *int, skip *int, orderBy *InteractionOrderBy, orderDirection *OrderDirection) ([]*dto.InteractionResponse, error) {
	return r.userInteractions(ctx, types.InteractionRedemption, obj, first, skip, orderBy, orderDirection)
}

// Burn returns BurnResolver implementation.
func (r *Resolver) Burn() BurnResolver { return &burnResolver{r} }

// CollateralDeposit returns CollateralDepositResolver implementation.
func (r *Resolver) CollateralDeposit() CollateralDepositResolver {
	return &collateralDepositResolver{r}
}

// CollateralRedemption returns CollateralRedemptionResolver implementation.
func (r *Resolver) CollateralRedemption() CollateralRedemptionResolver {
	return &collateralRedemptionResolver{r}
}

// Mint returns MintResolver implementation.
func (r *Resolver) Mint() MintResolver { return &mintResolver{r} }

// Mutation returns MutationResolver implementation.
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

// Query returns QueryResolver implementation.
func (r *Resolver) Query() QueryResolver { return &queryResolver{r} }

// User returns UserResolver implementation.
func (r *Resolver) User() UserResolver { return &userResolver{r} }

type burnResolver struct{ *Resolver }
type collateralDepositResolver struct{ *Resolver }
type collateralRedemptionResolver struct{ *Resolver }
type mintResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
type userResolver struct{ *Resolver }
