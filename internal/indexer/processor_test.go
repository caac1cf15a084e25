package indexer

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsc-protocol/dsc-indexer/internal/domain"
	"github.com/dsc-protocol/dsc-indexer/internal/metrics"
	"github.com/dsc-protocol/dsc-indexer/internal/mocks"
	"github.com/dsc-protocol/dsc-indexer/internal/store"
	"github.com/dsc-protocol/dsc-indexer/internal/store/schema"
)

func TestConservationOfNetMinted(t *testing.T) {
	p, s := newTestProcessor(CutoffCalendarMonth)
	ts := at(2024, time.March, 1, 0)

	steps := []struct {
		event     *domain.ProtocolEvent
		mintVol   string
		burnVol   string
		netMinted string
	}{
		{mintEvent(1, userA, "10", ts), "10", "0", "10"},
		{burnEvent(2, userA, "3", ts.Add(time.Hour)), "10", "3", "7"},
		{mintEvent(3, userB, "1", ts.Add(2*time.Hour)), "11", "3", "8"},
		// burns of tokens minted before indexing started drive net minted negative
		{burnEvent(4, userB, "20", ts.Add(3*time.Hour)), "11", "23", "-12"},
	}

	for _, step := range steps {
		process(t, p, step.event)
		stats := protocolStats(t, s)
		assert.Equal(t, step.mintVol, stats.TotalMintVolume)
		assert.Equal(t, step.burnVol, stats.TotalBurnVolume)
		assert.Equal(t, step.netMinted, stats.TotalNetMinted)
	}

	march := monthlyStats(t, s, "2024-03")
	assert.Equal(t, "11", march.MintVolume)
	assert.Equal(t, "23", march.BurnVolume)
	assert.Equal(t, "-12", march.NetMintVolume)
}

func TestCollateralAccounting(t *testing.T) {
	p, s := newTestProcessor(CutoffCalendarMonth)
	ts := at(2024, time.March, 15, 10)

	process(t, p, depositEvent(1, userA, "10"+oneEther[1:], ts))
	assert.Equal(t, "10"+oneEther[1:], protocolStats(t, s).TotalCollateral)

	process(t, p, redeemEvent(2, userA, userB, "4"+oneEther[1:], ts.Add(time.Hour)))
	stats := protocolStats(t, s)
	assert.Equal(t, "6"+oneEther[1:], stats.TotalCollateral)

	user := getUser(t, s, userA)
	assert.Equal(t, "6"+oneEther[1:], user.TotalDeposited)

	march := monthlyStats(t, s, "2024-03")
	assert.Equal(t, "10"+oneEther[1:], march.CollateralDeposited)
	assert.Equal(t, "4"+oneEther[1:], march.CollateralRedeemed)
	assert.Equal(t, "6"+oneEther[1:], march.NetCollateral)

	redemptions, err := s.ListCollateralRedemptions(context.Background(), store.InteractionFilter{})
	require.NoError(t, err)
	require.Len(t, redemptions, 1)
	assert.Equal(t, userA, redemptions[0].UserAddress)
	require.NotNil(t, redemptions[0].Recipient)
	assert.Equal(t, userB, *redemptions[0].Recipient)
	assert.Equal(t, weth, redemptions[0].Token)

	// the recipient is not a protocol user
	recipient, err := s.GetUser(context.Background(), userB)
	require.NoError(t, err)
	assert.Nil(t, recipient)
}

func TestUserLedgerGetOrCreate(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	ledger := NewUserLedger()
	ts := at(2024, time.March, 15, 0).Unix()

	user, created, err := ledger.GetOrCreate(ctx, s, userA, ts)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, ts, user.FirstInteractionTimestamp)
	assert.Equal(t, ts, user.LastInteractionTimestamp)
	assert.Equal(t, "0", user.TotalDeposited)
	assert.Equal(t, int64(1), protocolStats(t, s).TotalUsers)
	assert.Equal(t, ts, protocolStats(t, s).LastUpdatedTimestamp)

	// returned unsaved
	stored, err := s.GetUser(ctx, userA)
	require.NoError(t, err)
	assert.Nil(t, stored)

	require.NoError(t, s.UpsertUser(ctx, user))

	again, created, err := ledger.GetOrCreate(ctx, s, userA, ts+100)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, user.ID, again.ID)
	assert.Equal(t, ts, again.FirstInteractionTimestamp)
	assert.Equal(t, int64(1), protocolStats(t, s).TotalUsers)
}

func TestMonthlyBucketing(t *testing.T) {
	p, s := newTestProcessor(CutoffCalendarMonth)

	process(t, p,
		mintEvent(1, userA, "1", at(2024, time.March, 15, 12)),
		mintEvent(2, userA, "2", time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC)),
		mintEvent(3, userA, "4", time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)),
	)

	march := monthlyStats(t, s, "2024-03")
	assert.Equal(t, 2024, march.Year)
	assert.Equal(t, 3, march.Month)
	assert.Equal(t, "3", march.MintVolume)
	assert.Equal(t, at(2024, time.March, 15, 12).Unix(), march.Timestamp)

	april := monthlyStats(t, s, "2024-04")
	assert.Equal(t, 4, april.Month)
	assert.Equal(t, "4", april.MintVolume)
	assert.Equal(t, int64(1), april.ActiveUsers)
	// the user first appeared in March
	assert.Equal(t, int64(0), april.NewUsers)

	list, err := s.ListMonthlyStats(context.Background(), store.MonthlyStatsFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestActiveUserDeduplication(t *testing.T) {
	p, s := newTestProcessor(CutoffCalendarMonth)
	ts := at(2024, time.March, 2, 0)

	process(t, p,
		depositEvent(1, userA, "5", ts),
		mintEvent(2, userA, "1", ts.Add(time.Hour)),
		burnEvent(3, userA, "1", ts.Add(2*time.Hour)),
	)
	assert.Equal(t, int64(1), monthlyStats(t, s, "2024-03").ActiveUsers)

	process(t, p, depositEvent(4, userB, "5", ts.Add(3*time.Hour)))
	assert.Equal(t, int64(2), monthlyStats(t, s, "2024-03").ActiveUsers)

	count, err := s.CountMonthlyActiveUsers(context.Background(), "2024-03")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestNewUserFlag(t *testing.T) {
	for _, cutoff := range []NewUserCutoff{CutoffCalendarMonth, CutoffFirstSeen} {
		t.Run(string(cutoff), func(t *testing.T) {
			p, s := newTestProcessor(cutoff)

			process(t, p,
				// A is first seen in February
				depositEvent(1, userA, "1", at(2024, time.February, 20, 0)),
				// B opens the March bucket and is new twice over, counted once
				depositEvent(2, userB, "1", at(2024, time.March, 3, 0)),
				mintEvent(3, userB, "1", at(2024, time.March, 4, 0)),
				// A returns in March
				mintEvent(4, userA, "1", at(2024, time.March, 5, 0)),
			)

			march := monthlyStats(t, s, "2024-03")
			assert.Equal(t, int64(2), march.ActiveUsers)
			assert.Equal(t, int64(1), march.NewUsers)

			feb := monthlyStats(t, s, "2024-02")
			assert.Equal(t, int64(1), feb.NewUsers)
		})
	}
}

func TestNewUserCutoffPolicies(t *testing.T) {
	// C is indexed after the March bucket exists, from a block older than the bucket's first event
	events := func() []*domain.ProtocolEvent {
		return []*domain.ProtocolEvent{
			depositEvent(1, userB, "1", at(2024, time.March, 10, 0)),
			depositEvent(2, userC, "1", at(2024, time.March, 5, 0)),
		}
	}

	tests := []struct {
		cutoff   NewUserCutoff
		newUsers int64
	}{
		{CutoffCalendarMonth, 2},
		{CutoffFirstSeen, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.cutoff), func(t *testing.T) {
			p, s := newTestProcessor(tt.cutoff)
			process(t, p, events()...)
			assert.Equal(t, tt.newUsers, monthlyStats(t, s, "2024-03").NewUsers)
		})
	}
}

func TestEndToEndScenario(t *testing.T) {
	p, s := newTestProcessor(CutoffCalendarMonth)
	t0 := at(2024, time.March, 15, 9)
	t1 := t0.Add(48 * time.Hour)
	tenWeth := "10" + oneEther[1:]
	fiveDSC := "5" + oneEther[1:]

	process(t, p, depositEvent(1, userA, tenWeth, t0))

	deposits, err := s.ListCollateralDeposits(context.Background(), store.InteractionFilter{})
	require.NoError(t, err)
	require.Len(t, deposits, 1)
	assert.Equal(t, domain.LogID(txHash(1), 1), deposits[0].ID)

	user := getUser(t, s, userA)
	assert.Equal(t, tenWeth, user.TotalDeposited)
	assert.Equal(t, tenWeth, protocolStats(t, s).TotalCollateral)
	march := monthlyStats(t, s, "2024-03")
	assert.Equal(t, tenWeth, march.CollateralDeposited)
	assert.Equal(t, int64(1), march.ActiveUsers)
	assert.Equal(t, int64(1), march.NewUsers)

	process(t, p, mintEvent(2, userA, fiveDSC, t1))

	mints, err := s.ListMints(context.Background(), store.InteractionFilter{User: ptr(userA)})
	require.NoError(t, err)
	require.Len(t, mints, 1)
	assert.Equal(t, fiveDSC, mints[0].Amount)

	user = getUser(t, s, userA)
	assert.Equal(t, fiveDSC, user.TotalMinted)
	assert.Equal(t, t0.Unix(), user.FirstInteractionTimestamp)
	assert.Equal(t, t1.Unix(), user.LastInteractionTimestamp)

	stats := protocolStats(t, s)
	assert.Equal(t, fiveDSC, stats.TotalNetMinted)
	assert.Equal(t, int64(1), stats.TotalUsers)
	assert.Equal(t, t1.Unix(), stats.LastUpdatedTimestamp)

	march = monthlyStats(t, s, "2024-03")
	assert.Equal(t, fiveDSC, march.MintVolume)
	assert.Equal(t, int64(1), march.ActiveUsers)
	assert.Equal(t, int64(1), march.NewUsers)
}

func TestReplayIsNoop(t *testing.T) {
	p, s := newTestProcessor(CutoffCalendarMonth)
	ctx := context.Background()
	event := depositEvent(1, userA, "7", at(2024, time.May, 1, 0))

	process(t, p, event)

	applied, err := p.Process(ctx, event)
	require.NoError(t, err)
	assert.False(t, applied)

	assert.Equal(t, "7", protocolStats(t, s).TotalCollateral)
	assert.Equal(t, int64(1), protocolStats(t, s).TotalUsers)
	assert.Equal(t, "7", getUser(t, s, userA).TotalDeposited)
	assert.Equal(t, "7", monthlyStats(t, s, "2024-05").CollateralDeposited)

	processed, err := s.IsLogProcessed(ctx, event.LogID())
	require.NoError(t, err)
	assert.True(t, processed)
}

func TestHolderTransferChangesNothing(t *testing.T) {
	p, s := newTestProcessor(CutoffCalendarMonth)
	ctx := context.Background()
	event := transferEvent(1, userA, userB, "9", at(2024, time.May, 1, 0))

	process(t, p, event)

	stats, err := s.GetProtocolStats(ctx, domain.PROTOCOL_STATS_ID)
	require.NoError(t, err)
	assert.Nil(t, stats)

	user, err := s.GetUser(ctx, userA)
	require.NoError(t, err)
	assert.Nil(t, user)

	processed, err := s.IsLogProcessed(ctx, event.LogID())
	require.NoError(t, err)
	assert.True(t, processed)
}

func TestZeroToZeroTransferMintsAndBurns(t *testing.T) {
	p, s := newTestProcessor(CutoffCalendarMonth)
	zero := domain.ETHEREUM_ZERO_ADDRESS

	process(t, p, transferEvent(1, zero, zero, "3", at(2024, time.May, 1, 0)))

	stats := protocolStats(t, s)
	assert.Equal(t, "3", stats.TotalMintVolume)
	assert.Equal(t, "3", stats.TotalBurnVolume)
	assert.Equal(t, "0", stats.TotalNetMinted)
	assert.Equal(t, int64(1), stats.TotalUsers)

	user := getUser(t, s, zero)
	assert.Equal(t, "3", user.TotalMinted)
	assert.Equal(t, "3", user.TotalBurned)
	assert.Equal(t, int64(1), monthlyStats(t, s, "2024-05").ActiveUsers)
}

func TestRedemptionUnderflowClamps(t *testing.T) {
	p, s := newTestProcessor(CutoffCalendarMonth)
	collateralBefore := testutil.ToFloat64(metrics.ClampedTotal.WithLabelValues(FieldTotalCollateral))
	depositedBefore := testutil.ToFloat64(metrics.ClampedTotal.WithLabelValues(FieldTotalDeposited))

	process(t, p,
		depositEvent(1, userA, "2", at(2024, time.June, 1, 0)),
		redeemEvent(2, userA, userA, "5", at(2024, time.June, 2, 0)),
	)

	assert.Equal(t, "0", protocolStats(t, s).TotalCollateral)
	assert.Equal(t, "0", getUser(t, s, userA).TotalDeposited)

	june := monthlyStats(t, s, "2024-06")
	assert.Equal(t, "5", june.CollateralRedeemed)
	assert.Equal(t, "-3", june.NetCollateral)

	assert.Equal(t, collateralBefore+1, testutil.ToFloat64(metrics.ClampedTotal.WithLabelValues(FieldTotalCollateral)))
	assert.Equal(t, depositedBefore+1, testutil.ToFloat64(metrics.ClampedTotal.WithLabelValues(FieldTotalDeposited)))
}

func TestOutOfOrderEventsWidenInteractionWindow(t *testing.T) {
	p, s := newTestProcessor(CutoffCalendarMonth)
	late := at(2024, time.June, 10, 0)
	early := late.Add(-24 * time.Hour)

	process(t, p,
		depositEvent(1, userA, "1", late),
		mintEvent(2, userA, "1", early),
	)

	user := getUser(t, s, userA)
	assert.Equal(t, early.Unix(), user.FirstInteractionTimestamp)
	assert.Equal(t, late.Unix(), user.LastInteractionTimestamp)

	// a later event in between leaves both ends alone
	process(t, p, burnEvent(3, userA, "1", early.Add(time.Hour)))

	user = getUser(t, s, userA)
	assert.Equal(t, early.Unix(), user.FirstInteractionTimestamp)
	assert.Equal(t, late.Unix(), user.LastInteractionTimestamp)
	assert.LessOrEqual(t, user.FirstInteractionTimestamp, user.LastInteractionTimestamp)
}

func TestMonthlyAggregatorRequiresUser(t *testing.T) {
	s := store.NewMemoryStore()
	m := NewMonthlyAggregator("")

	err := m.Apply(context.Background(), s, at(2024, time.March, 1, 0).Unix(), userA, Deltas{})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	stats, err := s.GetMonthlyStats(context.Background(), "2024-03")
	require.NoError(t, err)
	assert.Nil(t, stats)
}

func TestProcessRejectsMalformedEvents(t *testing.T) {
	ts := at(2024, time.March, 1, 0)

	noToken := depositEvent(1, userA, "1", ts)
	noToken.TokenAddress = nil

	badType := depositEvent(2, userA, "1", ts)
	badType.EventType = "approval"

	tests := []struct {
		name  string
		event *domain.ProtocolEvent
		err   error
	}{
		{"nil event", nil, domain.ErrInvalidEventShape},
		{"amount is not a number", mintEvent(3, userA, "abc", ts), domain.ErrInvalidAmount},
		{"amount overflows uint256", mintEvent(4, userA, "115792089237316195423570985008687907853269984665640564039457584007913129639936", ts), domain.ErrInvalidAmount},
		{"deposit without token", noToken, domain.ErrInvalidEventShape},
		{"unknown event type", badType, domain.ErrInvalidEventShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, s := newTestProcessor(CutoffCalendarMonth)
			applied, err := p.Process(context.Background(), tt.event)
			assert.ErrorIs(t, err, tt.err)
			assert.False(t, applied)

			stats, err := s.GetProtocolStats(context.Background(), domain.PROTOCOL_STATS_ID)
			require.NoError(t, err)
			assert.Nil(t, stats)
		})
	}
}

func TestProtocolVolumeOverflow(t *testing.T) {
	p, s := newTestProcessor(CutoffCalendarMonth)
	maxAmount := "115792089237316195423570985008687907853269984665640564039457584007913129639935"
	ts := at(2024, time.March, 1, 0)

	process(t, p, mintEvent(1, userA, maxAmount, ts))

	applied, err := p.Process(context.Background(), mintEvent(2, userB, "1", ts))
	assert.ErrorIs(t, err, domain.ErrAmountOverflow)
	assert.False(t, applied)

	// the failed event left nothing behind
	user, err := s.GetUser(context.Background(), userB)
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Equal(t, int64(1), protocolStats(t, s).TotalUsers)
}

// failingStore fails monthly upserts, inside and outside units of work
type failingStore struct {
	store.Store
	err error
}

func (f *failingStore) WithTx(ctx context.Context, fn func(tx store.Store) error) error {
	return f.Store.WithTx(ctx, func(tx store.Store) error {
		return fn(&failingStore{Store: tx, err: f.err})
	})
}

func (f *failingStore) UpsertMonthlyStats(ctx context.Context, stats *schema.MonthlyStats) error {
	return f.err
}

func TestProcessRollsBackOnPersistenceError(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	boom := errors.New("connection reset")
	p := NewProcessor(&failingStore{Store: mem, err: boom}, newTestJCS(), Config{})
	event := depositEvent(1, userA, "5", at(2024, time.March, 1, 0))

	applied, err := p.Process(ctx, event)
	assert.ErrorIs(t, err, boom)
	assert.False(t, applied)

	user, err := mem.GetUser(ctx, userA)
	require.NoError(t, err)
	assert.Nil(t, user)

	stats, err := mem.GetProtocolStats(ctx, domain.PROTOCOL_STATS_ID)
	require.NoError(t, err)
	assert.Nil(t, stats)

	processed, err := mem.IsLogProcessed(ctx, event.LogID())
	require.NoError(t, err)
	assert.False(t, processed)

	deposits, err := mem.ListCollateralDeposits(ctx, store.InteractionFilter{})
	require.NoError(t, err)
	assert.Empty(t, deposits)
}

func TestProcessPropagatesStoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	boom := errors.New("store unavailable")
	event := depositEvent(1, userA, "5", at(2024, time.March, 1, 0))

	mockStore.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(store.Store) error) error {
			return fn(mockStore)
		})
	mockStore.EXPECT().IsLogProcessed(gomock.Any(), event.LogID()).Return(false, nil)
	mockStore.EXPECT().GetUser(gomock.Any(), userA).Return(nil, boom)

	p := NewProcessor(mockStore, newTestJCS(), Config{})
	applied, err := p.Process(context.Background(), event)
	assert.ErrorIs(t, err, boom)
	assert.False(t, applied)
}

func TestProcessCanonicalizeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockJCS := mocks.NewMockJCS(ctrl)
	mockJCS.EXPECT().Canonicalize(gomock.Any()).Return(nil, errors.New("bad json"))

	p := NewProcessor(mockStore, mockJCS, Config{})
	applied, err := p.Process(context.Background(), depositEvent(1, userA, "5", at(2024, time.March, 1, 0)))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to canonicalize event")
	assert.False(t, applied)
}

func TestIsPermanent(t *testing.T) {
	assert.True(t, IsPermanent(domain.ErrInvalidAmount))
	assert.True(t, IsPermanent(domain.ErrInvalidEventShape))
	assert.True(t, IsPermanent(fmt.Errorf("failed to apply monthly stats: %w", domain.ErrUserNotFound)))
	assert.True(t, IsPermanent(fmt.Errorf("failed to apply protocol stats: %w", domain.ErrAmountOverflow)))
	assert.False(t, IsPermanent(errors.New("connection reset by peer")))
	assert.False(t, IsPermanent(context.DeadlineExceeded))
}
