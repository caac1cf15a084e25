package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/dsc-protocol/dsc-indexer/internal/adapter"
	"github.com/dsc-protocol/dsc-indexer/internal/block"
	"github.com/dsc-protocol/dsc-indexer/internal/domain"
	"github.com/dsc-protocol/dsc-indexer/internal/logger"
	"github.com/dsc-protocol/dsc-indexer/internal/metrics"
)

const (
	// DEFAULT_LOG_PAGE_SIZE is the block span of a single eth_getLogs call
	DEFAULT_LOG_PAGE_SIZE = 10_000

	// DEFAULT_TIMESTAMP_WORKERS bounds concurrent header lookups during backfill
	DEFAULT_TIMESTAMP_WORKERS = 8
)

// EthereumClient reads and decodes protocol logs
//
//go:generate mockgen -source=client.go -destination=../../mocks/ethereum_client.go -package=mocks -mock_names=EthereumClient=MockEthereumClient
type EthereumClient interface {
	// ParseEventLog decodes a single log into a protocol event
	ParseEventLog(ctx context.Context, vLog types.Log) (*domain.ProtocolEvent, error)

	// SubscribeFilterLogs subscribes to protocol logs of new blocks
	SubscribeFilterLogs(ctx context.Context, ch chan<- types.Log) (ethereum.Subscription, error)

	// FilterLogs returns protocol logs in [fromBlock, toBlock] ordered by block and log index
	FilterLogs(ctx context.Context, fromBlock, toBlock uint64) ([]types.Log, error)

	// GetProtocolEvents returns the decoded protocol events in [fromBlock, toBlock].
	// Logs that fail to decode are counted and skipped
	GetProtocolEvents(ctx context.Context, fromBlock, toBlock uint64) ([]domain.ProtocolEvent, error)

	// BlockNumber returns the latest block number
	BlockNumber(ctx context.Context) (uint64, error)

	// HeaderByNumber returns a header by number, nil means latest
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)

	// Close closes the connection
	Close()
}

// ClientConfig configures the Ethereum client
type ClientConfig struct {
	ChainID          domain.Chain
	Contracts        Contracts
	LogPageSize      uint64
	TimestampWorkers int
}

type ethereumClient struct {
	cfg           ClientConfig
	client        adapter.EthClient
	decoder       *Decoder
	blockProvider block.BlockProvider
}

func NewClient(cfg ClientConfig, client adapter.EthClient, blockProvider block.BlockProvider) EthereumClient {
	if cfg.LogPageSize == 0 {
		cfg.LogPageSize = DEFAULT_LOG_PAGE_SIZE
	}
	if cfg.TimestampWorkers <= 0 {
		cfg.TimestampWorkers = DEFAULT_TIMESTAMP_WORKERS
	}
	return &ethereumClient{
		cfg:           cfg,
		client:        client,
		decoder:       NewDecoder(cfg.ChainID, cfg.Contracts, blockProvider),
		blockProvider: blockProvider,
	}
}

func (c *ethereumClient) query() ethereum.FilterQuery {
	return ethereum.FilterQuery{
		Addresses: c.cfg.Contracts.Addresses(),
		Topics:    [][]common.Hash{EventSignatures()},
	}
}

// ParseEventLog decodes a single log into a protocol event
func (c *ethereumClient) ParseEventLog(ctx context.Context, vLog types.Log) (*domain.ProtocolEvent, error) {
	return c.decoder.Decode(ctx, vLog)
}

// SubscribeFilterLogs subscribes to protocol logs of new blocks.
// Log subscriptions carry no history, callers replay older blocks through FilterLogs
func (c *ethereumClient) SubscribeFilterLogs(ctx context.Context, ch chan<- types.Log) (ethereum.Subscription, error) {
	return c.client.SubscribeFilterLogs(ctx, c.query(), ch)
}

// FilterLogs pages through [fromBlock, toBlock], halving the page whenever the node
// rejects a range for returning too many results
func (c *ethereumClient) FilterLogs(ctx context.Context, fromBlock, toBlock uint64) ([]types.Log, error) {
	if fromBlock > toBlock {
		return nil, nil
	}

	stepSize := c.cfg.LogPageSize
	var allLogs []types.Log
	currentFrom := fromBlock

	for currentFrom <= toBlock {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		currentTo := currentFrom + stepSize - 1
		if currentTo > toBlock || currentTo < currentFrom {
			currentTo = toBlock
		}

		query := c.query()
		query.FromBlock = new(big.Int).SetUint64(currentFrom)
		query.ToBlock = new(big.Int).SetUint64(currentTo)

		logs, err := c.client.FilterLogs(ctx, query)
		if err == nil {
			allLogs = append(allLogs, logs...)
			if currentTo == toBlock {
				break
			}
			currentFrom = currentTo + 1
			continue
		}

		if !isTooManyResultsError(err) {
			return nil, fmt.Errorf("failed to get logs for range %d-%d: %w", currentFrom, currentTo, err)
		}
		if stepSize == 1 {
			return nil, fmt.Errorf("too many results in single block %d: %w", currentFrom, err)
		}

		stepSize /= 2
		logger.WarnCtx(ctx, "Too many results, reducing step size",
			zap.Uint64("oldStepSize", stepSize*2),
			zap.Uint64("newStepSize", stepSize),
			zap.Uint64("fromBlock", currentFrom),
			zap.Uint64("toBlock", currentTo))
	}

	sortLogs(allLogs)
	return allLogs, nil
}

// GetProtocolEvents fetches and decodes every protocol log in the range.
// Block timestamps are prefetched concurrently, decoding itself stays in log order
func (c *ethereumClient) GetProtocolEvents(ctx context.Context, fromBlock, toBlock uint64) ([]domain.ProtocolEvent, error) {
	logs, err := c.FilterLogs(ctx, fromBlock, toBlock)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, nil
	}

	if err := c.prefetchTimestamps(ctx, logs); err != nil {
		return nil, err
	}

	events := make([]domain.ProtocolEvent, 0, len(logs))
	for _, vLog := range logs {
		if vLog.Removed {
			continue
		}
		event, err := c.decoder.Decode(ctx, vLog)
		if err != nil {
			if isDecodeError(err) {
				metrics.RecordDecodeError(err)
				logger.WarnCtx(ctx, "Skipping undecodable log",
					zap.Error(err),
					zap.String("txHash", vLog.TxHash.Hex()),
					zap.Uint("logIndex", vLog.Index))
				continue
			}
			return nil, err
		}
		events = append(events, *event)
	}

	return events, nil
}

func (c *ethereumClient) prefetchTimestamps(ctx context.Context, logs []types.Log) error {
	blocks := make(map[uint64]struct{})
	for _, vLog := range logs {
		blocks[vLog.BlockNumber] = struct{}{}
	}

	pool := pond.NewPool(c.cfg.TimestampWorkers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for number := range blocks {
		group.SubmitErr(func() error {
			_, err := c.blockProvider.GetBlockTimestamp(ctx, number)
			return err
		})
	}

	if err := group.Wait(); err != nil {
		return fmt.Errorf("failed to prefetch block timestamps: %w", err)
	}
	return nil
}

// BlockNumber returns the latest block number
func (c *ethereumClient) BlockNumber(ctx context.Context) (uint64, error) {
	return c.client.BlockNumber(ctx)
}

// HeaderByNumber returns a header by number
func (c *ethereumClient) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return c.client.HeaderByNumber(ctx, number)
}

// Close closes the connection
func (c *ethereumClient) Close() {
	c.client.Close()
}

// isTooManyResultsError checks if the error is related to too many results
func isTooManyResultsError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	return strings.Contains(errStr, "query returned more than 10000 results") ||
		strings.Contains(errStr, "query timeout exceeded") ||
		strings.Contains(errStr, "too many results") ||
		strings.Contains(errStr, "exceeded maximum") ||
		strings.Contains(errStr, "block range is too wide")
}

func isDecodeError(err error) bool {
	return errors.Is(err, domain.ErrUnknownEvent) ||
		errors.Is(err, domain.ErrInvalidEventShape) ||
		errors.Is(err, domain.ErrUnexpectedContract)
}

func sortLogs(logs []types.Log) {
	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].BlockNumber != logs[j].BlockNumber {
			return logs[i].BlockNumber < logs[j].BlockNumber
		}
		return logs[i].Index < logs[j].Index
	})
}

// blockTime converts a header time to UTC
func blockTime(header *types.Header) time.Time {
	return time.Unix(int64(header.Time), 0).UTC() //nolint:gosec,G115
}
