package block_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsc-protocol/dsc-indexer/internal/block"
	"github.com/dsc-protocol/dsc-indexer/internal/logger"
	"github.com/dsc-protocol/dsc-indexer/internal/mocks"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type testBlockProviderMocks struct {
	ctrl     *gomock.Controller
	fetcher  *mocks.MockBlockFetcher
	clock    *mocks.MockClock
	provider block.BlockProvider
}

func setupTest(t *testing.T, cfg block.Config) *testBlockProviderMocks {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockBlockFetcher(ctrl)
	clock := mocks.NewMockClock(ctrl)

	return &testBlockProviderMocks{
		ctrl:     ctrl,
		fetcher:  fetcher,
		clock:    clock,
		provider: block.NewBlockProvider(fetcher, cfg, clock),
	}
}

func defaultConfig() block.Config {
	return block.Config{
		TTL:         10 * time.Second,
		StaleWindow: 2 * time.Minute,
	}
}

func TestBlockProvider_GetLatestBlock(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	networkErr := errors.New("network error")

	tests := []struct {
		name        string
		secondAt    time.Duration
		secondFetch func(tm *testBlockProviderMocks)
		expected    uint64
		expectError bool
	}{
		{
			name:        "uses cache within ttl",
			secondAt:    5 * time.Second,
			secondFetch: func(tm *testBlockProviderMocks) {},
			expected:    1000,
		},
		{
			name:     "refreshes after ttl",
			secondAt: 15 * time.Second,
			secondFetch: func(tm *testBlockProviderMocks) {
				tm.fetcher.EXPECT().FetchLatestBlock(gomock.Any()).Return(uint64(1100), nil)
			},
			expected: 1100,
		},
		{
			name:     "serves stale value within stale window on error",
			secondAt: 30 * time.Second,
			secondFetch: func(tm *testBlockProviderMocks) {
				tm.fetcher.EXPECT().FetchLatestBlock(gomock.Any()).Return(uint64(0), networkErr)
			},
			expected: 1000,
		},
		{
			name:     "errors beyond stale window",
			secondAt: 5 * time.Minute,
			secondFetch: func(tm *testBlockProviderMocks) {
				tm.fetcher.EXPECT().FetchLatestBlock(gomock.Any()).Return(uint64(0), networkErr)
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTest(t, defaultConfig())
			defer tm.ctrl.Finish()
			ctx := context.Background()

			tm.clock.EXPECT().Now().Return(now)
			tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(1000), nil)
			first, err := tm.provider.GetLatestBlock(ctx)
			require.NoError(t, err)
			assert.Equal(t, uint64(1000), first)

			tm.clock.EXPECT().Now().Return(now.Add(tt.secondAt))
			tt.secondFetch(tm)
			second, err := tm.provider.GetLatestBlock(ctx)

			if tt.expectError {
				assert.ErrorIs(t, err, networkErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, second)
		})
	}
}

func TestBlockProvider_GetLatestBlock_NoCacheAndFetchFails(t *testing.T) {
	tm := setupTest(t, defaultConfig())
	defer tm.ctrl.Finish()

	tm.clock.EXPECT().Now().Return(time.Now())
	tm.fetcher.EXPECT().FetchLatestBlock(gomock.Any()).Return(uint64(0), errors.New("down"))

	_, err := tm.provider.GetLatestBlock(context.Background())
	assert.Error(t, err)
}

func TestBlockProvider_GetBlockTimestamp_CachesForever(t *testing.T) {
	tm := setupTest(t, defaultConfig())
	defer tm.ctrl.Finish()

	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	blockTime := time.Unix(1710460800, 0).UTC()

	tm.clock.EXPECT().Now().Return(now)
	tm.fetcher.EXPECT().FetchBlockTimestamp(ctx, uint64(42)).Return(blockTime, nil)

	ts, err := tm.provider.GetBlockTimestamp(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, blockTime, ts)

	tm.clock.EXPECT().Now().Return(now.Add(365 * 24 * time.Hour))
	ts, err = tm.provider.GetBlockTimestamp(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, blockTime, ts)
}

func TestBlockProvider_GetBlockTimestamp_RefreshesAfterTTL(t *testing.T) {
	cfg := defaultConfig()
	cfg.BlockTimestampTTL = time.Minute
	tm := setupTest(t, cfg)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	blockTime := time.Unix(1710460800, 0).UTC()

	tm.clock.EXPECT().Now().Return(now)
	tm.fetcher.EXPECT().FetchBlockTimestamp(ctx, uint64(7)).Return(blockTime, nil)
	_, err := tm.provider.GetBlockTimestamp(ctx, 7)
	require.NoError(t, err)

	tm.clock.EXPECT().Now().Return(now.Add(2 * time.Minute))
	tm.fetcher.EXPECT().FetchBlockTimestamp(ctx, uint64(7)).Return(blockTime.Add(time.Second), nil)
	ts, err := tm.provider.GetBlockTimestamp(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, blockTime.Add(time.Second), ts)
}

func TestBlockProvider_GetBlockTimestamp_EvictsOldestBeyondCapacity(t *testing.T) {
	cfg := defaultConfig()
	cfg.MaxCachedTimestamps = 2
	tm := setupTest(t, cfg)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()

	for _, n := range []uint64{1, 2, 3} {
		tm.fetcher.EXPECT().FetchBlockTimestamp(ctx, n).Return(time.Unix(int64(n), 0), nil)
		_, err := tm.provider.GetBlockTimestamp(ctx, n)
		require.NoError(t, err)
	}

	// block 3 and 2 are cached, block 1 was evicted and is fetched again
	_, err := tm.provider.GetBlockTimestamp(ctx, 3)
	require.NoError(t, err)
	tm.fetcher.EXPECT().FetchBlockTimestamp(ctx, uint64(1)).Return(time.Unix(1, 0), nil)
	_, err = tm.provider.GetBlockTimestamp(ctx, 1)
	require.NoError(t, err)
}

func TestBlockProvider_GetBlockTimestamp_FetchFailsWithoutCache(t *testing.T) {
	tm := setupTest(t, defaultConfig())
	defer tm.ctrl.Finish()

	tm.clock.EXPECT().Now().Return(time.Now())
	tm.fetcher.EXPECT().FetchBlockTimestamp(gomock.Any(), uint64(9)).Return(time.Time{}, errors.New("not found"))

	_, err := tm.provider.GetBlockTimestamp(context.Background(), 9)
	assert.ErrorContains(t, err, "block 9")
}

func TestBlockProvider_ConcurrentAccess(t *testing.T) {
	tm := setupTest(t, defaultConfig())
	defer tm.ctrl.Finish()

	ctx := context.Background()
	tm.clock.EXPECT().Now().Return(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).AnyTimes()
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(1000), nil).AnyTimes()
	tm.fetcher.EXPECT().FetchBlockTimestamp(ctx, gomock.Any()).Return(time.Unix(100, 0), nil).AnyTimes()

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func(n uint64) {
			defer wg.Done()
			blockNum, err := tm.provider.GetLatestBlock(ctx)
			assert.NoError(t, err)
			assert.Equal(t, uint64(1000), blockNum)
			_, err = tm.provider.GetBlockTimestamp(ctx, n%3)
			assert.NoError(t, err)
		}(uint64(i))
	}
	wg.Wait()
}
