package indexer

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dsc-protocol/dsc-indexer/internal/adapter"
	"github.com/dsc-protocol/dsc-indexer/internal/domain"
	"github.com/dsc-protocol/dsc-indexer/internal/logger"
	"github.com/dsc-protocol/dsc-indexer/internal/store"
	"github.com/dsc-protocol/dsc-indexer/internal/store/schema"
)

const (
	userA  = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	userB  = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	userC  = "0xcccccccccccccccccccccccccccccccccccccccc"
	weth   = "0xdddddddddddddddddddddddddddddddddddddddd"
	dsc    = "0x1000000000000000000000000000000000000001"
	engine = "0x2000000000000000000000000000000000000002"

	oneEther = "1000000000000000000"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func ptr(s string) *string {
	return &s
}

func txHash(n int) string {
	return fmt.Sprintf("0x%064x", n)
}

func at(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

func transferEvent(n int, from, to, amount string, ts time.Time) *domain.ProtocolEvent {
	return &domain.ProtocolEvent{
		Chain:           domain.ChainAnvil,
		EventType:       domain.EventTypeTransfer,
		ContractAddress: dsc,
		FromAddress:     ptr(from),
		ToAddress:       ptr(to),
		Amount:          amount,
		TxHash:          txHash(n),
		BlockNumber:     uint64(n),
		Timestamp:       ts,
		LogIndex:        0,
	}
}

func mintEvent(n int, to, amount string, ts time.Time) *domain.ProtocolEvent {
	return transferEvent(n, domain.ETHEREUM_ZERO_ADDRESS, to, amount, ts)
}

func burnEvent(n int, from, amount string, ts time.Time) *domain.ProtocolEvent {
	return transferEvent(n, from, domain.ETHEREUM_ZERO_ADDRESS, amount, ts)
}

func depositEvent(n int, user, amount string, ts time.Time) *domain.ProtocolEvent {
	return &domain.ProtocolEvent{
		Chain:           domain.ChainAnvil,
		EventType:       domain.EventTypeCollateralDeposited,
		ContractAddress: engine,
		UserAddress:     ptr(user),
		TokenAddress:    ptr(weth),
		Amount:          amount,
		TxHash:          txHash(n),
		BlockNumber:     uint64(n),
		Timestamp:       ts,
		LogIndex:        1,
	}
}

func redeemEvent(n int, from, to, amount string, ts time.Time) *domain.ProtocolEvent {
	return &domain.ProtocolEvent{
		Chain:           domain.ChainAnvil,
		EventType:       domain.EventTypeCollateralRedeemed,
		ContractAddress: engine,
		FromAddress:     ptr(from),
		ToAddress:       ptr(to),
		TokenAddress:    ptr(weth),
		Amount:          amount,
		TxHash:          txHash(n),
		BlockNumber:     uint64(n),
		Timestamp:       ts,
		LogIndex:        2,
	}
}

func newTestJCS() adapter.JCS {
	return adapter.NewJCS(adapter.NewJSON())
}

func newTestProcessor(cutoff NewUserCutoff) (Processor, store.Store) {
	s := store.NewMemoryStore()
	return NewProcessor(s, newTestJCS(), Config{NewUserCutoff: cutoff}), s
}

func process(t *testing.T, p Processor, events ...*domain.ProtocolEvent) {
	t.Helper()
	for _, event := range events {
		applied, err := p.Process(context.Background(), event)
		require.NoError(t, err)
		require.True(t, applied, "event %s should apply", event.LogID())
	}
}

func protocolStats(t *testing.T, s store.Store) *schema.ProtocolStats {
	t.Helper()
	stats, err := s.GetProtocolStats(context.Background(), domain.PROTOCOL_STATS_ID)
	require.NoError(t, err)
	require.NotNil(t, stats)
	return stats
}

func monthlyStats(t *testing.T, s store.Store, id string) *schema.MonthlyStats {
	t.Helper()
	stats, err := s.GetMonthlyStats(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, stats, "monthly stats %s", id)
	return stats
}

func getUser(t *testing.T, s store.Store, address string) *schema.User {
	t.Helper()
	user, err := s.GetUser(context.Background(), address)
	require.NoError(t, err)
	require.NotNil(t, user, "user %s", address)
	return user
}
