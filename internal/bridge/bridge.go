package bridge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/dsc-protocol/dsc-indexer/internal/adapter"
	"github.com/dsc-protocol/dsc-indexer/internal/domain"
	"github.com/dsc-protocol/dsc-indexer/internal/indexer"
	"github.com/dsc-protocol/dsc-indexer/internal/logger"
	"github.com/dsc-protocol/dsc-indexer/internal/messaging"
	"github.com/dsc-protocol/dsc-indexer/internal/metrics"
	jsprovider "github.com/dsc-protocol/dsc-indexer/internal/providers/jetstream"
)

const (
	DEFAULT_RETRY_INITIAL_INTERVAL = 200 * time.Millisecond
	DEFAULT_RETRY_MAX_ELAPSED      = 30 * time.Second
)

// Config holds the configuration for the event bridge
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWaitTimeout time.Duration
	MaxDeliver     int

	// RetryInitialInterval and RetryMaxElapsed bound the in-process retry of a failing event
	RetryInitialInterval time.Duration
	RetryMaxElapsed      time.Duration
}

// Bridge defines the interface for the event bridge
type Bridge interface {
	// Run consumes protocol events and applies them one at a time until ctx is cancelled
	Run(ctx context.Context) error
	// Close closes the bridge and cleans up resources
	Close()
}

type bridge struct {
	nc        adapter.NatsConn
	js        adapter.JetStream
	processor indexer.Processor
	json      adapter.JSON
	config    Config
}

// NewBridge connects to NATS and returns a bridge feeding processor
func NewBridge(
	cfg Config,
	natsJS adapter.NatsJetStream,
	processor indexer.Processor,
	jsonAdapter adapter.JSON,
) (Bridge, error) {
	if cfg.RetryInitialInterval == 0 {
		cfg.RetryInitialInterval = DEFAULT_RETRY_INITIAL_INTERVAL
	}
	if cfg.RetryMaxElapsed == 0 {
		cfg.RetryMaxElapsed = DEFAULT_RETRY_MAX_ELAPSED
	}

	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &bridge{
		nc:        nc,
		js:        js,
		processor: processor,
		json:      jsonAdapter,
		config:    cfg,
	}, nil
}

// ConsumerConfig is the durable consumer the bridge reads through. A single
// pending message keeps the feed in chain order
func ConsumerConfig(cfg Config) jetstream.ConsumerConfig {
	return jetstream.ConsumerConfig{
		Durable:       cfg.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       cfg.AckWaitTimeout,
		MaxDeliver:    cfg.MaxDeliver,
		MaxAckPending: 1,
		DeliverPolicy: jetstream.DeliverAllPolicy,
		FilterSubject: messaging.SubjectWildcard,
	}
}

// Run starts the event bridge
func (b *bridge) Run(ctx context.Context) error {
	logger.InfoCtx(ctx, "Starting event bridge", zap.String("stream", b.config.StreamName), zap.String("consumer", b.config.ConsumerName))

	if err := b.js.EnsureStream(ctx, jsprovider.StreamConfig(b.config.StreamName)); err != nil {
		return fmt.Errorf("failed to ensure stream: %w", err)
	}

	consumer, err := b.js.CreateOrUpdateConsumer(ctx, b.config.StreamName, ConsumerConfig(b.config))
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.InfoCtx(ctx, "Consumer created/retrieved",
		zap.String("consumer", consumerInfo.Name),
		zap.Uint64("pending", consumerInfo.NumPending))

	msgChan := make(chan adapter.Message)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		select {
		case msgChan <- msg:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.InfoCtx(ctx, "Started consuming messages")

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Shutting down event bridge")
			return ctx.Err()
		case <-sub.Closed():
			return errors.New("consumer closed")
		case msg := <-msgChan:
			// one at a time, the next message waits for the ack of this one
			b.handleMessage(ctx, msg)
		}
	}
}

// handleMessage applies a single message and settles it with the broker
func (b *bridge) handleMessage(ctx context.Context, msg adapter.Message) {
	var deliveries uint64
	if metadata, err := msg.Metadata(); err == nil && metadata != nil {
		deliveries = metadata.NumDelivered
	}

	var event domain.ProtocolEvent
	if err := b.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to unmarshal event"), zap.String("subject", msg.Subject()))
		b.settle(ctx, msg.Term, "terminate")
		return
	}

	fields := []zap.Field{
		zap.String("chain", string(event.Chain)),
		zap.String("eventType", string(event.EventType)),
		zap.String("logID", event.LogID()),
		zap.Uint64("block", event.BlockNumber),
		zap.Uint64("deliveryCount", deliveries),
	}
	logger.DebugCtx(ctx, "Received event", fields...)

	var applied bool
	operation := func() error {
		var err error
		applied, err = b.processor.Process(ctx, &event)
		if err != nil && indexer.IsPermanent(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = b.config.RetryInitialInterval
	eb.MaxElapsedTime = b.config.RetryMaxElapsed

	notify := func(err error, next time.Duration) {
		metrics.RecordEvent(event.EventType, metrics.ResultRetried)
		logger.WarnCtx(ctx, "Retrying event", append(fields, zap.Error(err), zap.Duration("retryIn", next))...)
		// keep the broker from redelivering while we are still working on it
		if err := msg.InProgress(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to extend ack deadline"))
		}
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(eb, ctx), notify); err != nil {
		metrics.RecordEvent(event.EventType, metrics.ResultFailed)
		logger.ErrorCtx(ctx, err, append(fields, zap.String("message", "Failed to process event"))...)

		if indexer.IsPermanent(err) {
			b.settle(ctx, msg.Term, "terminate")
		} else {
			b.settle(ctx, msg.Nak, "NAK")
		}
		return
	}

	if applied {
		metrics.RecordEvent(event.EventType, metrics.ResultApplied)
		metrics.LastProcessedBlock.Set(float64(event.BlockNumber))
		logger.InfoCtx(ctx, "Event applied", fields...)
	} else {
		metrics.RecordEvent(event.EventType, metrics.ResultDuplicate)
		logger.InfoCtx(ctx, "Event already applied", fields...)
	}

	b.settle(ctx, msg.Ack, "ACK")
}

func (b *bridge) settle(ctx context.Context, fn func() error, action string) {
	if err := fn(); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to "+action+" message"))
	}
}

// Close closes the bridge and cleans up resources
func (b *bridge) Close() {
	if b.nc == nil {
		return
	}

	b.nc.Close()
}
