package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/dsc-protocol/dsc-indexer/internal/domain"
	"github.com/dsc-protocol/dsc-indexer/internal/logger"
)

// IndexBlockRange fetches and applies the protocol events of a block range chunk by chunk.
// Chunks run in order and each chunk is applied in a single activity, so events reach
// the aggregation core in chain order
func (w *workerCore) IndexBlockRange(ctx workflow.Context, blockRange BlockRange) (*BackfillResult, error) {
	logger.InfoWf(ctx, "Starting block range backfill",
		zap.String("chain", string(w.config.EthereumChainID)),
		zap.Uint64("from", blockRange.From),
		zap.Uint64("to", blockRange.To),
		zap.Uint64("chunkSize", blockRange.ChunkSize),
	)

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 10 * time.Minute,
		HeartbeatTimeout:    2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    5,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	toBlock := blockRange.To
	if toBlock == 0 {
		if err := workflow.ExecuteActivity(ctx, w.executor.GetLatestBlock).Get(ctx, &toBlock); err != nil {
			logger.ErrorWf(ctx, fmt.Errorf("failed to get latest block"), zap.Error(err))
			return nil, err
		}
	}

	if blockRange.From > toBlock {
		return nil, temporal.NewNonRetryableApplicationError(
			fmt.Sprintf("invalid block range %d-%d", blockRange.From, toBlock),
			"InvalidBlockRange",
			nil,
		)
	}

	chunkSize := blockRange.ChunkSize
	if chunkSize == 0 {
		chunkSize = w.config.DefaultChunkSize
	}

	result := &BackfillResult{FromBlock: blockRange.From, ToBlock: toBlock}

	for start := blockRange.From; start <= toBlock; {
		end := start + chunkSize - 1
		if end > toBlock || end < start {
			end = toBlock
		}

		var events []domain.ProtocolEvent
		err := workflow.ExecuteActivity(ctx, w.executor.FetchProtocolEvents, start, end).Get(ctx, &events)
		if err != nil {
			logger.ErrorWf(ctx,
				fmt.Errorf("failed to fetch protocol events"),
				zap.Error(err),
				zap.Uint64("from", start),
				zap.Uint64("to", end),
			)
			return nil, err
		}

		if len(events) > 0 {
			var applied ApplyResult
			err = workflow.ExecuteActivity(ctx, w.executor.ApplyProtocolEvents, events).Get(ctx, &applied)
			if err != nil {
				logger.ErrorWf(ctx,
					fmt.Errorf("failed to apply protocol events"),
					zap.Error(err),
					zap.Uint64("from", start),
					zap.Uint64("to", end),
				)
				return nil, err
			}
			result.Applied += applied.Applied
			result.Duplicates += applied.Duplicates
		}

		result.Chunks++
		result.Events += len(events)

		logger.InfoWf(ctx, "Backfilled chunk",
			zap.Uint64("from", start),
			zap.Uint64("to", end),
			zap.Int("events", len(events)),
		)

		if end == toBlock {
			break
		}
		start = end + 1
	}

	logger.InfoWf(ctx, "Block range backfill completed",
		zap.Uint64("from", result.FromBlock),
		zap.Uint64("to", result.ToBlock),
		zap.Int("events", result.Events),
		zap.Int("applied", result.Applied),
		zap.Int("duplicates", result.Duplicates),
	)

	return result, nil
}
