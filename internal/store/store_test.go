package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/dsc-protocol/dsc-indexer/internal/domain"
	"github.com/dsc-protocol/dsc-indexer/internal/store/schema"
)

const (
	alice = "0x1111111111111111111111111111111111111111"
	bob   = "0x2222222222222222222222222222222222222222"
	weth  = "0x3333333333333333333333333333333333333333"
	wbtc  = "0x4444444444444444444444444444444444444444"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func strPtr(s string) *string {
	return &s
}

// RunStoreTests runs the shared Store contract against an implementation.
// initDB returns a clean store for each subtest
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(t *testing.T, s Store)
	}{
		{"users", testUsers},
		{"list users", testListUsers},
		{"protocol stats", testProtocolStats},
		{"monthly stats", testMonthlyStats},
		{"monthly active users", testMonthlyActiveUsers},
		{"interactions are insert only", testInteractionsInsertOnly},
		{"list interactions", testListInteractions},
		{"sum interactions", testSumInteractions},
		{"processed logs", testProcessedLogs},
		{"block cursor", testBlockCursor},
		{"transaction commit", testWithTxCommit},
		{"transaction rollback", testWithTxRollback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, s)
		})
	}
}

func testUsers(t *testing.T, s Store) {
	ctx := context.Background()

	user, err := s.GetUser(ctx, alice)
	require.NoError(t, err)
	assert.Nil(t, user)

	in := &schema.User{
		ID:                        alice,
		TotalDeposited:            "10000000000000000000",
		TotalMinted:               "0",
		TotalBurned:               "0",
		FirstInteractionTimestamp: 1710460800,
		LastInteractionTimestamp:  1710460800,
	}
	require.NoError(t, s.UpsertUser(ctx, in))
	require.NoError(t, s.UpsertUser(ctx, in))

	user, err = s.GetUser(ctx, alice)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "10000000000000000000", user.TotalDeposited)
	assert.Equal(t, int64(1710460800), user.FirstInteractionTimestamp)

	user.TotalMinted = "5"
	user.LastInteractionTimestamp = 1710547200
	require.NoError(t, s.UpsertUser(ctx, user))

	user, err = s.GetUser(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, "5", user.TotalMinted)
	assert.Equal(t, int64(1710547200), user.LastInteractionTimestamp)

	count, err := s.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func testListUsers(t *testing.T, s Store) {
	ctx := context.Background()

	require.NoError(t, s.UpsertUser(ctx, &schema.User{ID: alice, TotalDeposited: "0", TotalMinted: "9", TotalBurned: "0", FirstInteractionTimestamp: 1, LastInteractionTimestamp: 1}))
	require.NoError(t, s.UpsertUser(ctx, &schema.User{ID: bob, TotalDeposited: "0", TotalMinted: "10", TotalBurned: "0", FirstInteractionTimestamp: 2, LastInteractionTimestamp: 2}))

	users, err := s.ListUsers(ctx, UserFilter{OrderBy: "totalMinted", OrderDirection: OrderDesc})
	require.NoError(t, err)
	require.Len(t, users, 2)
	// numeric, not lexical, ordering
	assert.Equal(t, bob, users[0].ID)

	users, err = s.ListUsers(ctx, UserFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, bob, users[0].ID)
}

func testProtocolStats(t *testing.T, s Store) {
	ctx := context.Background()

	stats, err := s.GetProtocolStats(ctx, domain.PROTOCOL_STATS_ID)
	require.NoError(t, err)
	assert.Nil(t, stats)

	require.NoError(t, s.UpsertProtocolStats(ctx, &schema.ProtocolStats{
		ID:                   domain.PROTOCOL_STATS_ID,
		TotalMintVolume:      "5",
		TotalBurnVolume:      "10",
		TotalNetMinted:       "-5",
		TotalCollateral:      "115792089237316195423570985008687907853269984665640564039457584007913129639935",
		TotalUsers:           2,
		LastUpdatedTimestamp: 1710460800,
	}))

	stats, err = s.GetProtocolStats(ctx, domain.PROTOCOL_STATS_ID)
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, "-5", stats.TotalNetMinted)
	assert.Equal(t, "115792089237316195423570985008687907853269984665640564039457584007913129639935", stats.TotalCollateral)
	assert.Equal(t, int64(2), stats.TotalUsers)

	stats.TotalUsers = 3
	require.NoError(t, s.UpsertProtocolStats(ctx, stats))
	stats, err = s.GetProtocolStats(ctx, domain.PROTOCOL_STATS_ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalUsers)
}

func newMonthlyStats(id string, year, month int, timestamp int64) *schema.MonthlyStats {
	return &schema.MonthlyStats{
		ID:                  id,
		Year:                year,
		Month:               month,
		MintVolume:          "0",
		BurnVolume:          "0",
		NetMintVolume:       "0",
		CollateralDeposited: "0",
		CollateralRedeemed:  "0",
		NetCollateral:       "0",
		Timestamp:           timestamp,
	}
}

func testMonthlyStats(t *testing.T, s Store) {
	ctx := context.Background()

	stats, err := s.GetMonthlyStats(ctx, "2024-03")
	require.NoError(t, err)
	assert.Nil(t, stats)

	march := newMonthlyStats("2024-03", 2024, 3, 1710460800)
	require.NoError(t, s.UpsertMonthlyStats(ctx, march))
	require.NoError(t, s.UpsertMonthlyStats(ctx, newMonthlyStats("2024-04", 2024, 4, 1711929600)))

	march.MintVolume = "5"
	march.NetMintVolume = "5"
	march.ActiveUsers = 1
	march.Timestamp = 1711000000
	require.NoError(t, s.UpsertMonthlyStats(ctx, march))

	stats, err = s.GetMonthlyStats(ctx, "2024-03")
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, "5", stats.MintVolume)
	assert.Equal(t, int64(1), stats.ActiveUsers)
	assert.Equal(t, int64(1710460800), stats.Timestamp, "bucket timestamp is fixed at creation")

	list, err := s.ListMonthlyStats(ctx, MonthlyStatsFilter{OrderDirection: OrderDesc})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2024-04", list[0].ID)
	assert.Equal(t, "2024-03", list[1].ID)
}

func testMonthlyActiveUsers(t *testing.T, s Store) {
	ctx := context.Background()
	id := domain.ActiveUserMarkerID("2024-03", alice)

	marker, err := s.GetMonthlyActiveUser(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, marker)

	require.NoError(t, s.CreateMonthlyActiveUser(ctx, &schema.MonthlyActiveUser{ID: id, UserAddress: alice, Month: "2024-03"}))
	require.NoError(t, s.CreateMonthlyActiveUser(ctx, &schema.MonthlyActiveUser{ID: id, UserAddress: alice, Month: "2024-03"}))
	require.NoError(t, s.CreateMonthlyActiveUser(ctx, &schema.MonthlyActiveUser{
		ID: domain.ActiveUserMarkerID("2024-04", alice), UserAddress: alice, Month: "2024-04",
	}))

	marker, err = s.GetMonthlyActiveUser(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, marker)
	assert.Equal(t, alice, marker.UserAddress)

	count, err := s.CountMonthlyActiveUsers(ctx, "2024-03")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func testInteractionsInsertOnly(t *testing.T, s Store) {
	ctx := context.Background()
	id := domain.LogID("0xabc", 1)

	require.NoError(t, s.CreateMint(ctx, &schema.Mint{ID: id, UserAddress: alice, Amount: "5", Timestamp: 100, BlockNumber: 1, TransactionHash: "0xabc"}))
	require.NoError(t, s.CreateMint(ctx, &schema.Mint{ID: id, UserAddress: bob, Amount: "999", Timestamp: 200, BlockNumber: 2, TransactionHash: "0xabc"}))

	mints, err := s.ListMints(ctx, InteractionFilter{})
	require.NoError(t, err)
	require.Len(t, mints, 1)
	assert.Equal(t, "5", mints[0].Amount)
	assert.Equal(t, alice, mints[0].UserAddress)

	require.NoError(t, s.CreateBurn(ctx, &schema.Burn{ID: id, UserAddress: alice, Amount: "2", Timestamp: 100, BlockNumber: 1, TransactionHash: "0xabc"}))
	require.NoError(t, s.CreateBurn(ctx, &schema.Burn{ID: id, UserAddress: alice, Amount: "3", Timestamp: 100, BlockNumber: 1, TransactionHash: "0xabc"}))
	burns, err := s.ListBurns(ctx, InteractionFilter{})
	require.NoError(t, err)
	require.Len(t, burns, 1)
	assert.Equal(t, "2", burns[0].Amount)
}

func seedCollateral(t *testing.T, s Store) {
	ctx := context.Background()
	deposits := []schema.CollateralDeposit{
		{ID: "0xa-0", UserAddress: alice, Token: weth, Amount: "9", Timestamp: 100, BlockNumber: 10, TransactionHash: "0xa"},
		{ID: "0xb-0", UserAddress: alice, Token: wbtc, Amount: "10", Timestamp: 200, BlockNumber: 20, TransactionHash: "0xb"},
		{ID: "0xc-0", UserAddress: bob, Token: weth, Amount: "1", Timestamp: 300, BlockNumber: 30, TransactionHash: "0xc"},
	}
	for i := range deposits {
		require.NoError(t, s.CreateCollateralDeposit(ctx, &deposits[i]))
	}
	require.NoError(t, s.CreateCollateralRedemption(ctx, &schema.CollateralRedemption{
		ID: "0xd-1", UserAddress: alice, Recipient: strPtr(bob), Token: weth, Amount: "4", Timestamp: 400, BlockNumber: 40, TransactionHash: "0xd",
	}))
}

func testListInteractions(t *testing.T, s Store) {
	ctx := context.Background()
	seedCollateral(t, s)

	tests := []struct {
		name     string
		filter   InteractionFilter
		expected []string
	}{
		{
			name:     "default order is timestamp ascending",
			filter:   InteractionFilter{},
			expected: []string{"0xa-0", "0xb-0", "0xc-0"},
		},
		{
			name:     "by user",
			filter:   InteractionFilter{User: strPtr(alice)},
			expected: []string{"0xa-0", "0xb-0"},
		},
		{
			name:     "by token",
			filter:   InteractionFilter{Token: strPtr(weth)},
			expected: []string{"0xa-0", "0xc-0"},
		},
		{
			name:     "timestamp window",
			filter:   InteractionFilter{TimestampGte: int64Ptr(150), TimestampLte: int64Ptr(300)},
			expected: []string{"0xb-0", "0xc-0"},
		},
		{
			name:     "amount descending is numeric",
			filter:   InteractionFilter{OrderBy: OrderByAmount, OrderDirection: OrderDesc},
			expected: []string{"0xb-0", "0xa-0", "0xc-0"},
		},
		{
			name:     "block number descending with paging",
			filter:   InteractionFilter{OrderBy: OrderByBlockNumber, OrderDirection: OrderDesc, Limit: 1, Offset: 1},
			expected: []string{"0xb-0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deposits, err := s.ListCollateralDeposits(ctx, tt.filter)
			require.NoError(t, err)
			ids := make([]string, 0, len(deposits))
			for _, d := range deposits {
				ids = append(ids, d.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}

	redemptions, err := s.ListCollateralRedemptions(ctx, InteractionFilter{User: strPtr(alice), Token: strPtr(weth)})
	require.NoError(t, err)
	require.Len(t, redemptions, 1)
	require.NotNil(t, redemptions[0].Recipient)
	assert.Equal(t, bob, *redemptions[0].Recipient)
}

func testSumInteractions(t *testing.T, s Store) {
	ctx := context.Background()
	seedCollateral(t, s)
	require.NoError(t, s.CreateMint(ctx, &schema.Mint{ID: "0xe-0", UserAddress: bob, Amount: "7", Timestamp: 150, BlockNumber: 15, TransactionHash: "0xe"}))
	require.NoError(t, s.CreateBurn(ctx, &schema.Burn{ID: "0xf-0", UserAddress: bob, Amount: "2", Timestamp: 450, BlockNumber: 45, TransactionHash: "0xf"}))

	sums, err := s.SumInteractions(ctx, TimeRange{})
	require.NoError(t, err)
	assert.Equal(t, "7", sums.MintVolume)
	assert.Equal(t, "2", sums.BurnVolume)
	assert.Equal(t, "20", sums.CollateralDeposited)
	assert.Equal(t, "4", sums.CollateralRedeemed)
	assert.Equal(t, int64(2), sums.DistinctUsers)

	sums, err = s.SumInteractions(ctx, TimeRange{From: int64Ptr(150), To: int64Ptr(400)})
	require.NoError(t, err)
	assert.Equal(t, "7", sums.MintVolume)
	assert.Equal(t, "0", sums.BurnVolume)
	assert.Equal(t, "11", sums.CollateralDeposited)
	assert.Equal(t, "0", sums.CollateralRedeemed)
	assert.Equal(t, int64(2), sums.DistinctUsers)

	sums, err = s.SumInteractions(ctx, TimeRange{From: int64Ptr(1000)})
	require.NoError(t, err)
	assert.Equal(t, "0", sums.MintVolume)
	assert.Equal(t, int64(0), sums.DistinctUsers)
}

func testProcessedLogs(t *testing.T, s Store) {
	ctx := context.Background()
	id := domain.LogID("0xabc", 3)

	processed, err := s.IsLogProcessed(ctx, id)
	require.NoError(t, err)
	assert.False(t, processed)

	log := &schema.ProcessedLog{
		ID:              id,
		Chain:           domain.ChainEthereumSepolia,
		EventType:       domain.EventTypeTransfer,
		ContractAddress: weth,
		TransactionHash: "0xabc",
		LogIndex:        3,
		BlockNumber:     12,
		Raw:             datatypes.JSON(`{"amount":"1"}`),
	}
	require.NoError(t, s.MarkLogProcessed(ctx, log))
	require.NoError(t, s.MarkLogProcessed(ctx, log))

	processed, err = s.IsLogProcessed(ctx, id)
	require.NoError(t, err)
	assert.True(t, processed)
}

func testBlockCursor(t *testing.T, s Store) {
	ctx := context.Background()
	chain := string(domain.ChainEthereumSepolia)

	cursor, err := s.GetBlockCursor(ctx, chain)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), cursor)

	require.NoError(t, s.SetBlockCursor(ctx, chain, 100))
	require.NoError(t, s.SetBlockCursor(ctx, chain, 250))

	cursor, err = s.GetBlockCursor(ctx, chain)
	require.NoError(t, err)
	assert.Equal(t, uint64(250), cursor)

	other, err := s.GetBlockCursor(ctx, string(domain.ChainAnvil))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), other)
}

func testWithTxCommit(t *testing.T, s Store) {
	ctx := context.Background()

	err := s.WithTx(ctx, func(tx Store) error {
		if err := tx.UpsertUser(ctx, &schema.User{ID: alice, TotalDeposited: "1", TotalMinted: "0", TotalBurned: "0", FirstInteractionTimestamp: 1, LastInteractionTimestamp: 1}); err != nil {
			return err
		}
		// reads inside the unit of work see its own writes
		user, err := tx.GetUser(ctx, alice)
		if err != nil {
			return err
		}
		assert.NotNil(t, user)
		return tx.MarkLogProcessed(ctx, &schema.ProcessedLog{ID: "0x1-0", Chain: domain.ChainAnvil, EventType: domain.EventTypeTransfer, ContractAddress: weth, TransactionHash: "0x1"})
	})
	require.NoError(t, err)

	user, err := s.GetUser(ctx, alice)
	require.NoError(t, err)
	assert.NotNil(t, user)

	processed, err := s.IsLogProcessed(ctx, "0x1-0")
	require.NoError(t, err)
	assert.True(t, processed)
}

func testWithTxRollback(t *testing.T, s Store) {
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.WithTx(ctx, func(tx Store) error {
		if err := tx.UpsertUser(ctx, &schema.User{ID: bob, TotalDeposited: "1", TotalMinted: "0", TotalBurned: "0", FirstInteractionTimestamp: 1, LastInteractionTimestamp: 1}); err != nil {
			return err
		}
		if err := tx.SetBlockCursor(ctx, "eip155:31337", 9); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	user, err := s.GetUser(ctx, bob)
	require.NoError(t, err)
	assert.Nil(t, user)

	cursor, err := s.GetBlockCursor(ctx, "eip155:31337")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), cursor)
}

func TestNormalizeConnectionPoolSettings(t *testing.T) {
	open, idle, lifetime, idleTime := NormalizeConnectionPoolSettings(0, 0, 0, 0)
	assert.Equal(t, 20, open)
	assert.Equal(t, 5, idle)
	assert.NotZero(t, lifetime)
	assert.NotZero(t, idleTime)

	open, idle, _, _ = NormalizeConnectionPoolSettings(4, 10, 0, 0)
	assert.Equal(t, 4, open)
	assert.Equal(t, 4, idle)
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, normalizeLimit(0))
	assert.Equal(t, MaxListLimit, normalizeLimit(5000))
	assert.Equal(t, 7, normalizeLimit(7))
	assert.Equal(t, 0, normalizeOffset(-3))
}
