package executor

import (
	"context"
	"fmt"

	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"

	"github.com/dsc-protocol/dsc-indexer/internal/api/shared/constants"
	"github.com/dsc-protocol/dsc-indexer/internal/api/shared/dto"
	apierrors "github.com/dsc-protocol/dsc-indexer/internal/api/shared/errors"
	"github.com/dsc-protocol/dsc-indexer/internal/api/shared/types"
	"github.com/dsc-protocol/dsc-indexer/internal/domain"
	"github.com/dsc-protocol/dsc-indexer/internal/providers/temporal"
	"github.com/dsc-protocol/dsc-indexer/internal/store"
	"github.com/dsc-protocol/dsc-indexer/internal/workflows"
)

// Executor is the interface for the API executor, shared by REST and GraphQL
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// GetProtocolStats retrieves the protocol stats by id, nil when absent
	GetProtocolStats(ctx context.Context, id string) (*dto.ProtocolStatsResponse, error)

	// GetMonthlyStats retrieves a monthly bucket by its YYYY-MM id, nil when absent
	GetMonthlyStats(ctx context.Context, id string) (*dto.MonthlyStatsResponse, error)

	// ListMonthlyStats pages through monthly buckets
	ListMonthlyStats(ctx context.Context, query dto.MonthlyStatsQuery) (*dto.MonthlyStatsListResponse, error)

	// GetUser retrieves a user by address, nil when absent
	GetUser(ctx context.Context, address string) (*dto.UserResponse, error)

	// ListUsers pages through users
	ListUsers(ctx context.Context, query dto.UserQuery) (*dto.UserListResponse, error)

	// ListInteractions queries mints, burns, collateral deposits or collateral redemptions
	ListInteractions(ctx context.Context, kind types.InteractionKind, query dto.InteractionQuery) (*dto.InteractionListResponse, error)

	// TriggerBackfill starts an IndexBlockRange workflow
	TriggerBackfill(ctx context.Context, req dto.TriggerBackfillRequest) (*dto.WorkflowRunResponse, error)

	// TriggerAudit starts an AuditProtocolStats workflow
	TriggerAudit(ctx context.Context) (*dto.WorkflowRunResponse, error)
}

type executor struct {
	store                 store.Store
	orchestrator          temporal.TemporalOrchestrator
	orchestratorTaskQueue string
}

func NewExecutor(store store.Store, orchestrator temporal.TemporalOrchestrator, orchestratorTaskQueue string) Executor {
	if orchestratorTaskQueue == "" {
		orchestratorTaskQueue = workflows.TaskQueueCore
	}
	return &executor{store: store, orchestrator: orchestrator, orchestratorTaskQueue: orchestratorTaskQueue}
}

func (e *executor) GetProtocolStats(ctx context.Context, id string) (*dto.ProtocolStatsResponse, error) {
	stats, err := e.store.GetProtocolStats(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get protocol stats: %v", err))
	}
	if stats == nil {
		return nil, nil
	}
	return dto.MapProtocolStatsToDTO(stats), nil
}

func (e *executor) GetMonthlyStats(ctx context.Context, id string) (*dto.MonthlyStatsResponse, error) {
	if !domain.IsMonthID(id) {
		return nil, apierrors.NewValidationError(fmt.Sprintf("Invalid month id: %s. Must be YYYY-MM", id))
	}

	stats, err := e.store.GetMonthlyStats(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get monthly stats: %v", err))
	}
	if stats == nil {
		return nil, nil
	}
	return dto.MapMonthlyStatsToDTO(stats), nil
}

func (e *executor) ListMonthlyStats(ctx context.Context, query dto.MonthlyStatsQuery) (*dto.MonthlyStatsListResponse, error) {
	limit, offset, err := validatePage(query.Limit, query.Offset)
	if err != nil {
		return nil, err
	}
	order, err := validateOrder(query.OrderDirection)
	if err != nil {
		return nil, err
	}

	if limit == 0 {
		return &dto.MonthlyStatsListResponse{MonthlyStats: []dto.MonthlyStatsResponse{}}, nil
	}

	results, err := e.store.ListMonthlyStats(ctx, store.MonthlyStatsFilter{
		OrderDirection: types.ToStoreOrder(order),
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list monthly stats: %v", err))
	}

	items := make([]dto.MonthlyStatsResponse, len(results))
	for i := range results {
		items[i] = *dto.MapMonthlyStatsToDTO(&results[i])
	}

	return &dto.MonthlyStatsListResponse{
		MonthlyStats: items,
		Offset:       nextOffset(offset, limit, len(results)),
	}, nil
}

func (e *executor) GetUser(ctx context.Context, address string) (*dto.UserResponse, error) {
	if !domain.IsAddress(address) {
		return nil, apierrors.NewValidationError(fmt.Sprintf("Invalid address: %s", address))
	}

	user, err := e.store.GetUser(ctx, domain.NormalizeAddress(address))
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user: %v", err))
	}
	if user == nil {
		return nil, nil
	}
	return dto.MapUserToDTO(user), nil
}

func (e *executor) ListUsers(ctx context.Context, query dto.UserQuery) (*dto.UserListResponse, error) {
	limit, offset, err := validatePage(query.Limit, query.Offset)
	if err != nil {
		return nil, err
	}
	order, err := validateOrder(query.OrderDirection)
	if err != nil {
		return nil, err
	}

	orderBy := types.UserOrderByID
	if query.OrderBy != nil {
		if !query.OrderBy.Valid() {
			return nil, apierrors.NewValidationError(fmt.Sprintf("Invalid order by: %s", *query.OrderBy))
		}
		orderBy = *query.OrderBy
	}

	if limit == 0 {
		return &dto.UserListResponse{Users: []dto.UserResponse{}}, nil
	}

	results, err := e.store.ListUsers(ctx, store.UserFilter{
		OrderBy:        string(orderBy),
		OrderDirection: types.ToStoreOrder(order),
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list users: %v", err))
	}

	items := make([]dto.UserResponse, len(results))
	for i := range results {
		items[i] = *dto.MapUserToDTO(&results[i])
	}

	return &dto.UserListResponse{
		Users:  items,
		Offset: nextOffset(offset, limit, len(results)),
	}, nil
}

func (e *executor) ListInteractions(ctx context.Context, kind types.InteractionKind, query dto.InteractionQuery) (*dto.InteractionListResponse, error) {
	if !kind.Valid() {
		return nil, apierrors.NewBadRequestError(fmt.Sprintf("Unknown interaction kind: %s", kind))
	}

	filter, err := buildInteractionFilter(kind, query)
	if err != nil {
		return nil, err
	}

	// the store treats a zero limit as unset
	if filter.Limit == 0 {
		return &dto.InteractionListResponse{Interactions: []dto.InteractionResponse{}}, nil
	}

	var items []dto.InteractionResponse
	switch kind {
	case types.InteractionMint:
		results, err := e.store.ListMints(ctx, filter)
		if err != nil {
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list mints: %v", err))
		}
		items = make([]dto.InteractionResponse, len(results))
		for i := range results {
			items[i] = dto.MapMintToDTO(&results[i])
		}
	case types.InteractionBurn:
		results, err := e.store.ListBurns(ctx, filter)
		if err != nil {
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list burns: %v", err))
		}
		items = make([]dto.InteractionResponse, len(results))
		for i := range results {
			items[i] = dto.MapBurnToDTO(&results[i])
		}
	case types.InteractionDeposit:
		results, err := e.store.ListCollateralDeposits(ctx, filter)
		if err != nil {
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list collateral deposits: %v", err))
		}
		items = make([]dto.InteractionResponse, len(results))
		for i := range results {
			items[i] = dto.MapCollateralDepositToDTO(&results[i])
		}
	case types.InteractionRedemption:
		results, err := e.store.ListCollateralRedemptions(ctx, filter)
		if err != nil {
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list collateral redemptions: %v", err))
		}
		items = make([]dto.InteractionResponse, len(results))
		for i := range results {
			items[i] = dto.MapCollateralRedemptionToDTO(&results[i])
		}
	}

	return &dto.InteractionListResponse{
		Interactions: items,
		Offset:       nextOffset(filter.Offset, filter.Limit, len(items)),
	}, nil
}

func (e *executor) TriggerBackfill(ctx context.Context, req dto.TriggerBackfillRequest) (*dto.WorkflowRunResponse, error) {
	if req.ToBlock != 0 && req.FromBlock > req.ToBlock {
		return nil, apierrors.NewValidationError(fmt.Sprintf("from_block %d is after to_block %d", req.FromBlock, req.ToBlock))
	}
	if req.ChunkSize > constants.MAX_BACKFILL_CHUNK_SIZE {
		return nil, apierrors.NewValidationError(fmt.Sprintf("chunk_size must not exceed %d", constants.MAX_BACKFILL_CHUNK_SIZE))
	}

	w := workflows.NewWorkerCore(nil, workflows.WorkerCoreConfig{})
	options := client.StartWorkflowOptions{
		ID:                       workflows.BackfillWorkflowID(),
		TaskQueue:                e.orchestratorTaskQueue,
		WorkflowExecutionTimeout: constants.BACKFILL_WORKFLOW_TIMEOUT,
		WorkflowIDReusePolicy:    enums.WORKFLOW_ID_REUSE_POLICY_REJECT_DUPLICATE,
	}
	blockRange := workflows.BlockRange{From: req.FromBlock, To: req.ToBlock, ChunkSize: req.ChunkSize}

	wfRun, err := e.orchestrator.ExecuteWorkflow(ctx, options, w.IndexBlockRange, blockRange)
	if err != nil {
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to trigger backfill: %v", err))
	}

	return &dto.WorkflowRunResponse{
		WorkflowID: wfRun.GetID(),
		RunID:      wfRun.GetRunID(),
	}, nil
}

func (e *executor) TriggerAudit(ctx context.Context) (*dto.WorkflowRunResponse, error) {
	w := workflows.NewWorkerCore(nil, workflows.WorkerCoreConfig{})
	options := client.StartWorkflowOptions{
		ID:                       workflows.AuditWorkflowID(),
		TaskQueue:                e.orchestratorTaskQueue,
		WorkflowExecutionTimeout: constants.AUDIT_WORKFLOW_TIMEOUT,
		WorkflowIDReusePolicy:    enums.WORKFLOW_ID_REUSE_POLICY_REJECT_DUPLICATE,
	}

	wfRun, err := e.orchestrator.ExecuteWorkflow(ctx, options, w.AuditProtocolStats)
	if err != nil {
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to trigger audit: %v", err))
	}

	return &dto.WorkflowRunResponse{
		WorkflowID: wfRun.GetID(),
		RunID:      wfRun.GetRunID(),
	}, nil
}

func buildInteractionFilter(kind types.InteractionKind, query dto.InteractionQuery) (store.InteractionFilter, error) {
	limit, offset, err := validatePage(query.Limit, query.Offset)
	if err != nil {
		return store.InteractionFilter{}, err
	}
	order, err := validateOrder(query.OrderDirection)
	if err != nil {
		return store.InteractionFilter{}, err
	}

	orderBy := types.InteractionOrderByTimestamp
	if query.OrderBy != nil {
		if !query.OrderBy.Valid() {
			return store.InteractionFilter{}, apierrors.NewValidationError(fmt.Sprintf("Invalid order by: %s", *query.OrderBy))
		}
		orderBy = *query.OrderBy
	}

	if query.TimestampGte != nil && query.TimestampLte != nil && *query.TimestampGte > *query.TimestampLte {
		return store.InteractionFilter{}, apierrors.NewValidationError("timestamp_gte must not be after timestamp_lte")
	}

	filter := store.InteractionFilter{
		TimestampGte:   query.TimestampGte,
		TimestampLte:   query.TimestampLte,
		OrderBy:        types.ToStoreInteractionOrderBy(orderBy),
		OrderDirection: types.ToStoreOrder(order),
		Limit:          limit,
		Offset:         offset,
	}

	if query.User != nil {
		if !domain.IsAddress(*query.User) {
			return store.InteractionFilter{}, apierrors.NewValidationError(fmt.Sprintf("Invalid user address: %s", *query.User))
		}
		user := domain.NormalizeAddress(*query.User)
		filter.User = &user
	}

	// mints and burns carry no token, the filter is dropped for them
	if query.Token != nil && kind.HasToken() {
		if !domain.IsAddress(*query.Token) {
			return store.InteractionFilter{}, apierrors.NewValidationError(fmt.Sprintf("Invalid token address: %s", *query.Token))
		}
		token := domain.NormalizeAddress(*query.Token)
		filter.Token = &token
	}

	return filter, nil
}

func validatePage(limit *int, offset *int) (int, int, error) {
	l := constants.DEFAULT_LIMIT
	if limit != nil {
		if *limit < 0 || *limit > constants.MAX_LIMIT {
			return 0, 0, apierrors.NewValidationError(fmt.Sprintf("limit must be between 0 and %d", constants.MAX_LIMIT))
		}
		l = *limit
	}

	o := constants.DEFAULT_OFFSET
	if offset != nil {
		if *offset < 0 {
			return 0, 0, apierrors.NewValidationError("offset must not be negative")
		}
		o = *offset
	}

	return l, o, nil
}

func validateOrder(order *types.Order) (types.Order, error) {
	if order == nil {
		return types.OrderAsc, nil
	}
	if !order.Valid() {
		return "", apierrors.NewValidationError(fmt.Sprintf("Invalid order direction: %s", *order))
	}
	return *order, nil
}

// nextOffset returns the offset of the following page when the current one came back full
func nextOffset(offset, limit, count int) *int {
	if limit == 0 || count < limit {
		return nil
	}
	next := offset + count
	return &next
}
