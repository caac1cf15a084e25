package ethereum

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/dsc-protocol/dsc-indexer/internal/block"
	"github.com/dsc-protocol/dsc-indexer/internal/domain"
	"github.com/dsc-protocol/dsc-indexer/internal/logger"
	"github.com/dsc-protocol/dsc-indexer/internal/messaging"
	"github.com/dsc-protocol/dsc-indexer/internal/metrics"
)

type ethSubscriber struct {
	client        EthereumClient
	blockProvider block.BlockProvider
}

// NewSubscriber creates a protocol event subscriber
func NewSubscriber(client EthereumClient, blockProvider block.BlockProvider) messaging.Subscriber {
	return &ethSubscriber{
		client:        client,
		blockProvider: blockProvider,
	}
}

// SubscribeEvents opens the live subscription first, replays [fromBlock, head] from history
// and then drains the live channel, skipping logs the replay already delivered
func (s *ethSubscriber) SubscribeEvents(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
	logs := make(chan types.Log, 256)
	sub, err := s.client.SubscribeFilterLogs(ctx, logs)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSubscriptionFailed, err)
	}
	defer func() {
		logger.InfoCtx(ctx, "Unsubscribing from protocol logs")
		sub.Unsubscribe()
	}()

	head, err := s.client.BlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("failed to get latest block: %w", err)
	}

	caughtUp := fromBlock
	if head >= fromBlock {
		logger.InfoCtx(ctx, "Catching up on protocol logs",
			zap.Uint64("fromBlock", fromBlock),
			zap.Uint64("toBlock", head))

		history, err := s.client.FilterLogs(ctx, fromBlock, head)
		if err != nil {
			return fmt.Errorf("failed to catch up: %w", err)
		}
		for _, vLog := range history {
			if err := s.deliver(ctx, vLog, handler); err != nil {
				return err
			}
		}
		caughtUp = head + 1
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-sub.Err():
			return fmt.Errorf("%w: %v", domain.ErrSubscriptionFailed, err)
		case vLog := <-logs:
			if vLog.BlockNumber < caughtUp {
				continue
			}
			if err := s.deliver(ctx, vLog, handler); err != nil {
				return err
			}
		}
	}
}

func (s *ethSubscriber) deliver(ctx context.Context, vLog types.Log, handler messaging.EventHandler) error {
	if vLog.Removed {
		logger.WarnCtx(ctx, "Ignoring removed log",
			zap.String("txHash", vLog.TxHash.Hex()),
			zap.Uint("logIndex", vLog.Index))
		return nil
	}

	event, err := s.client.ParseEventLog(ctx, vLog)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		if isDecodeError(err) {
			metrics.RecordDecodeError(err)
			logger.WarnCtx(ctx, "Skipping undecodable log",
				zap.Error(err),
				zap.String("txHash", vLog.TxHash.Hex()),
				zap.Uint("logIndex", vLog.Index))
			return nil
		}
		return fmt.Errorf("failed to parse log: %w", err)
	}

	if err := handler(event); err != nil {
		return fmt.Errorf("failed to handle event %s: %w", event.LogID(), err)
	}
	return nil
}

// GetLatestBlock returns the latest block number
func (s *ethSubscriber) GetLatestBlock(ctx context.Context) (uint64, error) {
	return s.blockProvider.GetLatestBlock(ctx)
}

// Close closes the connection
func (s *ethSubscriber) Close() {
	if s.client == nil {
		return
	}

	s.client.Close()
	logger.Info("Ethereum connection closed")
}
