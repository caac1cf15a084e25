package emitter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/dsc-protocol/dsc-indexer/internal/adapter"
	"github.com/dsc-protocol/dsc-indexer/internal/domain"
	"github.com/dsc-protocol/dsc-indexer/internal/logger"
	"github.com/dsc-protocol/dsc-indexer/internal/messaging"
	"github.com/dsc-protocol/dsc-indexer/internal/store"
)

const (
	DEFAULT_RECONNECT_INITIAL_INTERVAL = time.Second
	DEFAULT_RECONNECT_MAX_ELAPSED      = 5 * time.Minute
)

// Config holds the configuration for the event emitter
type Config struct {
	ChainID         domain.Chain
	StartBlock      uint64
	CursorSaveFreq  uint64        // Save cursor every N blocks
	CursorSaveDelay time.Duration // Or save cursor every N seconds

	// ReconnectInitialInterval and ReconnectMaxElapsed bound the resubscribe backoff
	ReconnectInitialInterval time.Duration
	ReconnectMaxElapsed      time.Duration
}

// Emitter defines the interface for the event emitter
//
//go:generate mockgen -source=emitter.go -destination=../mocks/emitter.go -package=mocks -mock_names=Emitter=MockEmitter
type Emitter interface {
	// Run follows the chain and publishes protocol events until ctx is cancelled
	// or the subscription cannot be re-established
	Run(ctx context.Context) error
	// Close closes the emitter and cleans up resources
	Close()
}

type emitter struct {
	subscriber messaging.Subscriber
	publisher  messaging.Publisher
	store      store.Store
	config     Config
	clock      adapter.Clock

	// resumeBlock is where a resubscription starts: the block of the last published event
	resumeBlock    uint64
	lastSavedBlock uint64
	lastSaveTime   time.Time
}

// NewEmitter creates a new event emitter
func NewEmitter(
	sub messaging.Subscriber,
	pub messaging.Publisher,
	st store.Store,
	cfg Config,
	clock adapter.Clock,
) Emitter {
	if cfg.ReconnectInitialInterval == 0 {
		cfg.ReconnectInitialInterval = DEFAULT_RECONNECT_INITIAL_INTERVAL
	}
	if cfg.ReconnectMaxElapsed == 0 {
		cfg.ReconnectMaxElapsed = DEFAULT_RECONNECT_MAX_ELAPSED
	}

	return &emitter{
		subscriber: sub,
		publisher:  pub,
		store:      st,
		config:     cfg,
		clock:      clock,
	}
}

func (e *emitter) startBlock(ctx context.Context) (uint64, error) {
	chain := string(e.config.ChainID)

	if e.config.StartBlock > 0 {
		logger.InfoCtx(ctx, "Starting from configured block", zap.String("chain", chain), zap.Uint64("block", e.config.StartBlock))
		return e.config.StartBlock, nil
	}

	lastBlock, err := e.store.GetBlockCursor(ctx, chain)
	if err != nil {
		return 0, fmt.Errorf("failed to get block cursor: %w", err)
	}
	if lastBlock > 0 {
		logger.InfoCtx(ctx, "Resuming from last processed block", zap.String("chain", chain), zap.Uint64("block", lastBlock+1))
		return lastBlock + 1, nil
	}

	latestBlock, err := e.subscriber.GetLatestBlock(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block number: %w", err)
	}
	logger.InfoCtx(ctx, "Starting from latest block", zap.String("chain", chain), zap.Uint64("block", latestBlock))
	return latestBlock, nil
}

// Run starts the event emitter
func (e *emitter) Run(ctx context.Context) error {
	start, err := e.startBlock(ctx)
	if err != nil {
		return err
	}

	e.resumeBlock = start
	e.lastSavedBlock = 0
	e.lastSaveTime = e.clock.Now()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = e.config.ReconnectInitialInterval
	b.MaxElapsedTime = e.config.ReconnectMaxElapsed

	operation := func() error {
		logger.InfoCtx(ctx, "Starting event subscription",
			zap.String("chain", string(e.config.ChainID)),
			zap.Uint64("fromBlock", e.resumeBlock))

		err := e.subscriber.SubscribeEvents(ctx, e.resumeBlock, e.handle(ctx))
		if err == nil {
			return nil
		}
		if errors.Is(err, domain.ErrSubscriptionFailed) && ctx.Err() == nil {
			return err
		}
		return backoff.Permanent(err)
	}

	notify := func(err error, next time.Duration) {
		logger.WarnCtx(ctx, "Subscription dropped, resubscribing",
			zap.Error(err),
			zap.Uint64("fromBlock", e.resumeBlock),
			zap.Duration("retryIn", next))
	}

	err = backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify)
	if err == nil {
		// the subscriber only returns cleanly when it was stopped
		return ctx.Err()
	}
	return err
}

func (e *emitter) handle(ctx context.Context) messaging.EventHandler {
	return func(event *domain.ProtocolEvent) error {
		if err := e.publisher.PublishEvent(ctx, event); err != nil {
			return fmt.Errorf("failed to publish event %s: %w", event.LogID(), err)
		}

		// a resubscription replays the current block, duplicates are dropped downstream
		e.resumeBlock = event.BlockNumber

		// every block before the current one is fully published
		if event.BlockNumber == 0 {
			return nil
		}
		complete := event.BlockNumber - 1
		if complete <= e.lastSavedBlock {
			return nil
		}

		shouldSave := complete-e.lastSavedBlock >= e.config.CursorSaveFreq ||
			e.clock.Since(e.lastSaveTime) >= e.config.CursorSaveDelay
		if !shouldSave {
			return nil
		}

		if err := e.store.SetBlockCursor(ctx, string(e.config.ChainID), complete); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to save block cursor"), zap.Uint64("block", complete))
			return nil
		}
		e.lastSavedBlock = complete
		e.lastSaveTime = e.clock.Now()
		return nil
	}
}

// Close closes the emitter and cleans up resources
func (e *emitter) Close() {
	e.subscriber.Close()
}
