package workflows

import (
	"context"
	"fmt"

	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/dsc-protocol/dsc-indexer/internal/adapter"
	"github.com/dsc-protocol/dsc-indexer/internal/audit"
	"github.com/dsc-protocol/dsc-indexer/internal/domain"
	"github.com/dsc-protocol/dsc-indexer/internal/indexer"
	"github.com/dsc-protocol/dsc-indexer/internal/logger"
	"github.com/dsc-protocol/dsc-indexer/internal/metrics"
	"github.com/dsc-protocol/dsc-indexer/internal/providers/ethereum"
)

// heartbeatEvery is how many applied events pass between activity heartbeats
const heartbeatEvery = 100

// ApplyResult counts the outcome of an ApplyProtocolEvents activity
type ApplyResult struct {
	Applied    int    `json:"applied"`
	Duplicates int    `json:"duplicates"`
	LastBlock  uint64 `json:"lastBlock"`
}

// Executor defines the interface for executing activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/workflowmocks/executor_core.go -package=workflowmocks -mock_names=Executor=MockCoreExecutor
type Executor interface {
	// GetLatestBlock returns the chain head
	GetLatestBlock(ctx context.Context) (uint64, error)

	// FetchProtocolEvents decodes the protocol events of [fromBlock, toBlock] in chain order
	FetchProtocolEvents(ctx context.Context, fromBlock, toBlock uint64) ([]domain.ProtocolEvent, error)

	// ApplyProtocolEvents runs the events through the aggregation core one at a time.
	// An event that was already applied is counted and skipped
	ApplyProtocolEvents(ctx context.Context, events []domain.ProtocolEvent) (*ApplyResult, error)

	// AuditProtocolTotals checks the protocol stats against the interaction records
	AuditProtocolTotals(ctx context.Context) (*audit.Report, error)

	// AuditMonthlyStats checks every monthly bucket against the interaction records
	AuditMonthlyStats(ctx context.Context) (*audit.Report, error)
}

// executor is the concrete implementation of Executor
type executor struct {
	ethClient        ethereum.EthereumClient
	processor        indexer.Processor
	auditor          audit.Auditor
	temporalActivity adapter.Activity
}

// NewExecutor creates a new executor instance
func NewExecutor(
	ethClient ethereum.EthereumClient,
	processor indexer.Processor,
	auditor audit.Auditor,
	temporalActivity adapter.Activity,
) Executor {
	return &executor{
		ethClient:        ethClient,
		processor:        processor,
		auditor:          auditor,
		temporalActivity: temporalActivity,
	}
}

// GetLatestBlock returns the chain head
func (e *executor) GetLatestBlock(ctx context.Context) (uint64, error) {
	block, err := e.ethClient.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return block, nil
}

// FetchProtocolEvents decodes the protocol events of a block range
func (e *executor) FetchProtocolEvents(ctx context.Context, fromBlock, toBlock uint64) ([]domain.ProtocolEvent, error) {
	if fromBlock > toBlock {
		return nil, temporal.NewNonRetryableApplicationError(
			fmt.Sprintf("invalid block range %d-%d", fromBlock, toBlock),
			"InvalidBlockRange",
			nil,
		)
	}

	events, err := e.ethClient.GetProtocolEvents(ctx, fromBlock, toBlock)
	if err != nil {
		return nil, fmt.Errorf("failed to get protocol events: %w", err)
	}

	logger.InfoCtx(ctx, "Fetched protocol events",
		zap.Uint64("fromBlock", fromBlock),
		zap.Uint64("toBlock", toBlock),
		zap.Int("count", len(events)))

	return events, nil
}

// ApplyProtocolEvents applies events in order. A retried attempt resumes cheaply:
// events applied by an earlier attempt hit the processed-log guard
func (e *executor) ApplyProtocolEvents(ctx context.Context, events []domain.ProtocolEvent) (*ApplyResult, error) {
	result := &ApplyResult{}

	for i := range events {
		event := &events[i]

		applied, err := e.processor.Process(ctx, event)
		if err != nil {
			metrics.RecordEvent(event.EventType, metrics.ResultFailed)
			if indexer.IsPermanent(err) {
				return nil, temporal.NewNonRetryableApplicationError(
					fmt.Sprintf("failed to apply event %s", event.LogID()),
					"InvalidProtocolEvent",
					err,
				)
			}
			return nil, fmt.Errorf("failed to apply event %s: %w", event.LogID(), err)
		}

		if applied {
			result.Applied++
			metrics.RecordEvent(event.EventType, metrics.ResultApplied)
		} else {
			result.Duplicates++
			metrics.RecordEvent(event.EventType, metrics.ResultDuplicate)
		}
		result.LastBlock = event.BlockNumber

		if (i+1)%heartbeatEvery == 0 {
			e.temporalActivity.RecordHeartbeat(ctx, i+1)
		}
	}

	logger.InfoCtx(ctx, "Applied protocol events",
		zap.Int("applied", result.Applied),
		zap.Int("duplicates", result.Duplicates),
		zap.Uint64("lastBlock", result.LastBlock))

	return result, nil
}

// AuditProtocolTotals checks the protocol stats against the interaction records
func (e *executor) AuditProtocolTotals(ctx context.Context) (*audit.Report, error) {
	report, err := e.auditor.AuditProtocol(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to audit protocol stats: %w", err)
	}
	return report, nil
}

// AuditMonthlyStats checks every monthly bucket against the interaction records
func (e *executor) AuditMonthlyStats(ctx context.Context) (*audit.Report, error) {
	report, err := e.auditor.AuditMonths(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to audit monthly stats: %w", err)
	}
	return report, nil
}
