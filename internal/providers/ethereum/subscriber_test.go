package ethereum

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsc-protocol/dsc-indexer/internal/domain"
	"github.com/dsc-protocol/dsc-indexer/internal/mocks"
)

type fakeSubscription struct {
	errCh        chan error
	unsubscribed bool
}

func newFakeSubscription() *fakeSubscription {
	return &fakeSubscription{errCh: make(chan error, 1)}
}

func (s *fakeSubscription) Unsubscribe() {
	s.unsubscribed = true
}

func (s *fakeSubscription) Err() <-chan error {
	return s.errCh
}

func eventFor(vLog types.Log) *domain.ProtocolEvent {
	to := lower(userAddress)
	from := domain.ETHEREUM_ZERO_ADDRESS
	return &domain.ProtocolEvent{
		Chain:       domain.ChainAnvil,
		EventType:   domain.EventTypeTransfer,
		FromAddress: &from,
		ToAddress:   &to,
		Amount:      "1",
		TxHash:      vLog.TxHash.Hex(),
		BlockNumber: vLog.BlockNumber,
		LogIndex:    uint64(vLog.Index),
		Timestamp:   blockTimeUTC,
	}
}

func TestSubscriber_CatchUpThenLive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockEthereumClient(ctrl)
	subscriber := NewSubscriber(client, mocks.NewMockBlockProvider(ctrl))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := newFakeSubscription()
	historical := []types.Log{
		transferLog(common.Address{}, userAddress, 1, 100, 0),
		transferLog(common.Address{}, userAddress, 1, 101, 0),
	}
	duplicate := transferLog(common.Address{}, userAddress, 1, 101, 0)
	live := transferLog(common.Address{}, userAddress, 1, 102, 4)
	removed := transferLog(common.Address{}, userAddress, 1, 103, 0)
	removed.Removed = true

	client.EXPECT().SubscribeFilterLogs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, ch chan<- types.Log) (ethereum.Subscription, error) {
			go func() {
				ch <- duplicate
				ch <- removed
				ch <- live
			}()
			return sub, nil
		})
	client.EXPECT().BlockNumber(gomock.Any()).Return(uint64(101), nil)
	client.EXPECT().FilterLogs(gomock.Any(), uint64(100), uint64(101)).Return(historical, nil)
	client.EXPECT().ParseEventLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, vLog types.Log) (*domain.ProtocolEvent, error) {
			return eventFor(vLog), nil
		}).Times(3)

	var delivered []uint64
	err := subscriber.SubscribeEvents(ctx, 100, func(event *domain.ProtocolEvent) error {
		delivered = append(delivered, event.BlockNumber)
		if event.BlockNumber == 102 {
			cancel()
		}
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []uint64{100, 101, 102}, delivered)
	assert.True(t, sub.unsubscribed)
}

func TestSubscriber_SkipsUndecodableLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockEthereumClient(ctrl)
	subscriber := NewSubscriber(client, mocks.NewMockBlockProvider(ctrl))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := newFakeSubscription()
	first := transferLog(common.Address{}, userAddress, 1, 10, 0)
	second := transferLog(common.Address{}, userAddress, 1, 10, 1)

	client.EXPECT().SubscribeFilterLogs(gomock.Any(), gomock.Any()).Return(sub, nil)
	client.EXPECT().BlockNumber(gomock.Any()).Return(uint64(10), nil)
	client.EXPECT().FilterLogs(gomock.Any(), uint64(10), uint64(10)).Return([]types.Log{first, second}, nil)
	client.EXPECT().ParseEventLog(gomock.Any(), first).Return(nil, domain.ErrInvalidEventShape)
	client.EXPECT().ParseEventLog(gomock.Any(), second).Return(eventFor(second), nil)

	var delivered []uint64
	go func() {
		// the subscription error ends the loop once the replay is done
		sub.errCh <- errors.New("ws closed")
	}()
	err := subscriber.SubscribeEvents(ctx, 10, func(event *domain.ProtocolEvent) error {
		delivered = append(delivered, event.LogIndex)
		return nil
	})

	assert.ErrorIs(t, err, domain.ErrSubscriptionFailed)
	assert.Equal(t, []uint64{1}, delivered)
}

func TestSubscriber_HandlerErrorStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockEthereumClient(ctrl)
	subscriber := NewSubscriber(client, mocks.NewMockBlockProvider(ctrl))

	sub := newFakeSubscription()
	vLog := transferLog(common.Address{}, userAddress, 1, 5, 0)

	client.EXPECT().SubscribeFilterLogs(gomock.Any(), gomock.Any()).Return(sub, nil)
	client.EXPECT().BlockNumber(gomock.Any()).Return(uint64(5), nil)
	client.EXPECT().FilterLogs(gomock.Any(), uint64(5), uint64(5)).Return([]types.Log{vLog}, nil)
	client.EXPECT().ParseEventLog(gomock.Any(), vLog).Return(eventFor(vLog), nil)

	handlerErr := errors.New("publish failed")
	err := subscriber.SubscribeEvents(context.Background(), 5, func(event *domain.ProtocolEvent) error {
		return handlerErr
	})

	assert.ErrorIs(t, err, handlerErr)
}

func TestSubscriber_SubscribeFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockEthereumClient(ctrl)
	subscriber := NewSubscriber(client, mocks.NewMockBlockProvider(ctrl))

	client.EXPECT().SubscribeFilterLogs(gomock.Any(), gomock.Any()).Return(nil, errors.New("dial failed"))

	err := subscriber.SubscribeEvents(context.Background(), 0, func(event *domain.ProtocolEvent) error { return nil })
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSubscriptionFailed)
}

func TestSubscriber_GetLatestBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	blockProvider := mocks.NewMockBlockProvider(ctrl)
	blockProvider.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(77), nil)

	latest, err := NewSubscriber(mocks.NewMockEthereumClient(ctrl), blockProvider).GetLatestBlock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(77), latest)
}
