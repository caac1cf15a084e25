package jetstream

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsc-protocol/dsc-indexer/internal/adapter"
	"github.com/dsc-protocol/dsc-indexer/internal/domain"
	"github.com/dsc-protocol/dsc-indexer/internal/logger"
	"github.com/dsc-protocol/dsc-indexer/internal/mocks"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func strPtr(s string) *string {
	return &s
}

func testEvent() *domain.ProtocolEvent {
	return &domain.ProtocolEvent{
		Chain:           domain.ChainAnvil,
		EventType:       domain.EventTypeTransfer,
		ContractAddress: "0x1000000000000000000000000000000000000001",
		FromAddress:     strPtr(domain.ETHEREUM_ZERO_ADDRESS),
		ToAddress:       strPtr("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
		Amount:          "5",
		TxHash:          "0xabc",
		BlockNumber:     7,
		Timestamp:       time.Unix(1710460800, 0).UTC(),
		LogIndex:        3,
	}
}

type publisherMocks struct {
	natsJS *mocks.MockNatsJetStream
	conn   *mocks.MockNatsConn
	js     *mocks.MockJetStream
}

func setupPublisher(t *testing.T) (*publisherMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	m := &publisherMocks{
		natsJS: mocks.NewMockNatsJetStream(ctrl),
		conn:   mocks.NewMockNatsConn(ctrl),
		js:     mocks.NewMockJetStream(ctrl),
	}
	return m, ctrl
}

func TestNewPublisher(t *testing.T) {
	m, ctrl := setupPublisher(t)
	defer ctrl.Finish()

	m.natsJS.EXPECT().Connect("nats://localhost:4222", gomock.Any()).Return(m.conn, m.js, nil)
	m.js.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cfg jetstream.StreamConfig) error {
			assert.Equal(t, "DSC_EVENTS", cfg.Name)
			assert.Equal(t, []string{"events.>"}, cfg.Subjects)
			assert.Equal(t, DEFAULT_DUPLICATE_WINDOW, cfg.Duplicates)
			return nil
		})

	pub, err := NewPublisher(context.Background(), Config{URL: "nats://localhost:4222", StreamName: "DSC_EVENTS"}, m.natsJS, adapter.NewJSON())
	require.NoError(t, err)
	require.NotNil(t, pub)
}

func TestNewPublisherConnectError(t *testing.T) {
	m, ctrl := setupPublisher(t)
	defer ctrl.Finish()

	m.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, nil, errors.New("no servers available"))

	_, err := NewPublisher(context.Background(), Config{URL: "nats://down:4222"}, m.natsJS, adapter.NewJSON())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to NATS")
}

func TestNewPublisherStreamError(t *testing.T) {
	m, ctrl := setupPublisher(t)
	defer ctrl.Finish()

	m.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(m.conn, m.js, nil)
	m.js.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).Return(errors.New("insufficient resources"))
	m.conn.EXPECT().Close()

	_, err := NewPublisher(context.Background(), Config{StreamName: "DSC_EVENTS"}, m.natsJS, adapter.NewJSON())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ensure stream DSC_EVENTS")
}

func TestPublishEvent(t *testing.T) {
	m, ctrl := setupPublisher(t)
	defer ctrl.Finish()

	m.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(m.conn, m.js, nil)
	m.js.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).Return(nil)

	pub, err := NewPublisher(context.Background(), Config{StreamName: "DSC_EVENTS"}, m.natsJS, adapter.NewJSON())
	require.NoError(t, err)

	event := testEvent()
	m.js.EXPECT().
		Publish(gomock.Any(), "events.eip155_31337.transfer", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
			var decoded domain.ProtocolEvent
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, event.LogID(), decoded.LogID())
			assert.Equal(t, "5", decoded.Amount)
			return &jetstream.PubAck{Stream: "DSC_EVENTS", Sequence: 1}, nil
		})

	require.NoError(t, pub.PublishEvent(context.Background(), event))
}

func TestPublishEventErrors(t *testing.T) {
	m, ctrl := setupPublisher(t)
	defer ctrl.Finish()

	jsonMock := mocks.NewMockJSON(ctrl)
	m.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(m.conn, m.js, nil)
	m.js.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).Return(nil)

	pub, err := NewPublisher(context.Background(), Config{StreamName: "DSC_EVENTS"}, m.natsJS, jsonMock)
	require.NoError(t, err)

	jsonMock.EXPECT().Marshal(gomock.Any()).Return(nil, errors.New("unsupported value"))
	err = pub.PublishEvent(context.Background(), testEvent())
	assert.Contains(t, err.Error(), "failed to marshal event")

	jsonMock.EXPECT().Marshal(gomock.Any()).Return([]byte(`{}`), nil)
	m.js.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
	err = pub.PublishEvent(context.Background(), testEvent())
	assert.Contains(t, err.Error(), "failed to publish event")
}

func TestCloseSignalsCloseChan(t *testing.T) {
	m, ctrl := setupPublisher(t)
	defer ctrl.Finish()

	m.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(m.conn, m.js, nil)
	m.js.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).Return(nil)
	m.conn.EXPECT().Close().Times(2)

	pub, err := NewPublisher(context.Background(), Config{StreamName: "DSC_EVENTS"}, m.natsJS, adapter.NewJSON())
	require.NoError(t, err)

	select {
	case <-pub.CloseChan():
		t.Fatal("close channel should be open")
	default:
	}

	pub.Close()
	pub.Close()

	select {
	case <-pub.CloseChan():
	case <-time.After(time.Second):
		t.Fatal("close channel should be closed")
	}
}
