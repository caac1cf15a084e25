package emitter_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsc-protocol/dsc-indexer/internal/domain"
	"github.com/dsc-protocol/dsc-indexer/internal/emitter"
	"github.com/dsc-protocol/dsc-indexer/internal/logger"
	"github.com/dsc-protocol/dsc-indexer/internal/messaging"
	"github.com/dsc-protocol/dsc-indexer/internal/mocks"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

const chain = string(domain.ChainEthereumSepolia)

func stringPtr(s string) *string {
	return &s
}

func mintAt(block uint64, index uint64) *domain.ProtocolEvent {
	return &domain.ProtocolEvent{
		Chain:           domain.ChainEthereumSepolia,
		EventType:       domain.EventTypeTransfer,
		ContractAddress: "0x1000000000000000000000000000000000000001",
		FromAddress:     stringPtr(domain.ETHEREUM_ZERO_ADDRESS),
		ToAddress:       stringPtr("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
		Amount:          "1",
		TxHash:          fmt.Sprintf("0x%064x", block),
		BlockNumber:     block,
		LogIndex:        index,
		Timestamp:       time.Unix(1710460800+int64(block), 0).UTC(),
	}
}

type testEmitterMocks struct {
	ctrl       *gomock.Controller
	subscriber *mocks.MockSubscriber
	publisher  *mocks.MockPublisher
	store      *mocks.MockStore
	clock      *mocks.MockClock
}

func setupTestEmitter(t *testing.T) *testEmitterMocks {
	ctrl := gomock.NewController(t)
	return &testEmitterMocks{
		ctrl:       ctrl,
		subscriber: mocks.NewMockSubscriber(ctrl),
		publisher:  mocks.NewMockPublisher(ctrl),
		store:      mocks.NewMockStore(ctrl),
		clock:      mocks.NewMockClock(ctrl),
	}
}

func (m *testEmitterMocks) emitter(cfg emitter.Config) emitter.Emitter {
	cfg.ChainID = domain.ChainEthereumSepolia
	if cfg.CursorSaveFreq == 0 {
		cfg.CursorSaveFreq = 10
	}
	if cfg.CursorSaveDelay == 0 {
		cfg.CursorSaveDelay = time.Minute
	}
	cfg.ReconnectInitialInterval = time.Millisecond
	cfg.ReconnectMaxElapsed = time.Second
	return emitter.NewEmitter(m.subscriber, m.publisher, m.store, cfg, m.clock)
}

func TestEmitter_Run_StartBlock(t *testing.T) {
	tests := []struct {
		name       string
		configured uint64
		setup      func(m *testEmitterMocks)
		expected   uint64
	}{
		{
			name:       "configured start block wins",
			configured: 1000,
			setup:      func(m *testEmitterMocks) {},
			expected:   1000,
		},
		{
			name: "resumes after the cursor",
			setup: func(m *testEmitterMocks) {
				m.store.EXPECT().GetBlockCursor(gomock.Any(), chain).Return(uint64(500), nil)
			},
			expected: 501,
		},
		{
			name: "falls back to the chain head",
			setup: func(m *testEmitterMocks) {
				m.store.EXPECT().GetBlockCursor(gomock.Any(), chain).Return(uint64(0), nil)
				m.subscriber.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(2000), nil)
			},
			expected: 2000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setupTestEmitter(t)
			defer m.ctrl.Finish()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			tt.setup(m)
			m.clock.EXPECT().Now().Return(time.Now()).AnyTimes()
			m.subscriber.EXPECT().
				SubscribeEvents(gomock.Any(), tt.expected, gomock.Any()).
				DoAndReturn(func(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
					cancel()
					return ctx.Err()
				})

			err := m.emitter(emitter.Config{StartBlock: tt.configured}).Run(ctx)
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}

func TestEmitter_Run_StartBlockErrors(t *testing.T) {
	m := setupTestEmitter(t)
	defer m.ctrl.Finish()

	m.store.EXPECT().GetBlockCursor(gomock.Any(), chain).Return(uint64(0), errors.New("db down"))
	err := m.emitter(emitter.Config{}).Run(context.Background())
	assert.ErrorContains(t, err, "failed to get block cursor")

	m.store.EXPECT().GetBlockCursor(gomock.Any(), chain).Return(uint64(0), nil)
	m.subscriber.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(0), errors.New("rpc down"))
	err = m.emitter(emitter.Config{}).Run(context.Background())
	assert.ErrorContains(t, err, "failed to get latest block number")
}

func TestEmitter_Run_PublishesAndSavesCompleteBlocks(t *testing.T) {
	m := setupTestEmitter(t)
	defer m.ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := []*domain.ProtocolEvent{mintAt(100, 0), mintAt(100, 1), mintAt(105, 0), mintAt(111, 0), mintAt(112, 0)}

	m.clock.EXPECT().Now().Return(time.Now()).AnyTimes()
	m.clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()
	for _, event := range events {
		m.publisher.EXPECT().PublishEvent(gomock.Any(), event).Return(nil)
	}
	// block 99 and block 110 are the complete blocks at least 10 apart
	m.store.EXPECT().SetBlockCursor(gomock.Any(), chain, uint64(99)).Return(nil)
	m.store.EXPECT().SetBlockCursor(gomock.Any(), chain, uint64(110)).Return(nil)

	m.subscriber.EXPECT().
		SubscribeEvents(gomock.Any(), uint64(100), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
			for _, event := range events {
				require.NoError(t, handler(event))
			}
			cancel()
			return ctx.Err()
		})

	err := m.emitter(emitter.Config{StartBlock: 100}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEmitter_Run_SavesCursorAfterDelay(t *testing.T) {
	m := setupTestEmitter(t)
	defer m.ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.clock.EXPECT().Now().Return(time.Now()).AnyTimes()
	gomock.InOrder(
		m.clock.EXPECT().Since(gomock.Any()).Return(time.Second),
		m.clock.EXPECT().Since(gomock.Any()).Return(2*time.Minute),
	)
	m.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.store.EXPECT().SetBlockCursor(gomock.Any(), chain, uint64(2)).Return(nil)

	m.subscriber.EXPECT().
		SubscribeEvents(gomock.Any(), uint64(1), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
			require.NoError(t, handler(mintAt(2, 0)))
			require.NoError(t, handler(mintAt(3, 0)))
			cancel()
			return ctx.Err()
		})

	err := m.emitter(emitter.Config{StartBlock: 1, CursorSaveFreq: 1000}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEmitter_Run_CursorSaveFailureIsNotFatal(t *testing.T) {
	m := setupTestEmitter(t)
	defer m.ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.clock.EXPECT().Now().Return(time.Now()).AnyTimes()
	m.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(nil)
	m.store.EXPECT().SetBlockCursor(gomock.Any(), chain, uint64(49)).Return(errors.New("db down"))

	m.subscriber.EXPECT().
		SubscribeEvents(gomock.Any(), uint64(40), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
			assert.NoError(t, handler(mintAt(50, 0)))
			cancel()
			return ctx.Err()
		})

	err := m.emitter(emitter.Config{StartBlock: 40, CursorSaveFreq: 1}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEmitter_Run_ResubscribesFromLastPublishedBlock(t *testing.T) {
	m := setupTestEmitter(t)
	defer m.ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.clock.EXPECT().Now().Return(time.Now()).AnyTimes()
	m.clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()
	m.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	gomock.InOrder(
		m.subscriber.EXPECT().
			SubscribeEvents(gomock.Any(), uint64(10), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
				require.NoError(t, handler(mintAt(12, 4)))
				return fmt.Errorf("%w: websocket closed", domain.ErrSubscriptionFailed)
			}),
		m.subscriber.EXPECT().
			SubscribeEvents(gomock.Any(), uint64(12), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
				require.NoError(t, handler(mintAt(12, 4)))
				cancel()
				return ctx.Err()
			}),
	)

	err := m.emitter(emitter.Config{StartBlock: 10, CursorSaveFreq: 100}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEmitter_Run_PublishErrorStops(t *testing.T) {
	m := setupTestEmitter(t)
	defer m.ctrl.Finish()

	publishErr := errors.New("nats unavailable")
	m.clock.EXPECT().Now().Return(time.Now()).AnyTimes()
	m.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(publishErr)

	m.subscriber.EXPECT().
		SubscribeEvents(gomock.Any(), uint64(7), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
			if err := handler(mintAt(7, 0)); err != nil {
				return fmt.Errorf("failed to handle event: %w", err)
			}
			return nil
		})

	err := m.emitter(emitter.Config{StartBlock: 7}).Run(context.Background())
	assert.ErrorIs(t, err, publishErr)
}

func TestEmitter_Close(t *testing.T) {
	m := setupTestEmitter(t)
	defer m.ctrl.Finish()

	m.subscriber.EXPECT().Close()
	m.emitter(emitter.Config{}).Close()
}
