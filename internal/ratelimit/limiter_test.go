package ratelimit_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsc-protocol/dsc-indexer/internal/logger"
	"github.com/dsc-protocol/dsc-indexer/internal/mocks"
	"github.com/dsc-protocol/dsc-indexer/internal/ratelimit"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type testLimiterMocks struct {
	redisClient      *mocks.MockRedisClient
	redisRateLimiter *mocks.MockRedisRateLimiter
	clock            *mocks.MockClock
	now              time.Time
}

func setupTestLimiter(t *testing.T) *testLimiterMocks {
	ctrl := gomock.NewController(t)
	tm := &testLimiterMocks{
		redisClient:      mocks.NewMockRedisClient(ctrl),
		redisRateLimiter: mocks.NewMockRedisRateLimiter(ctrl),
		clock:            mocks.NewMockClock(ctrl),
		now:              time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC),
	}

	// the health monitor waits on a channel that never fires
	tm.clock.EXPECT().After(gomock.Any()).Return(make(chan time.Time)).AnyTimes()
	tm.clock.EXPECT().Now().DoAndReturn(func() time.Time { return tm.now }).AnyTimes()

	return tm
}

func TestLimiter_LocalOnly(t *testing.T) {
	tm := setupTestLimiter(t)
	ctx := context.Background()

	l, err := ratelimit.NewLimiter(ratelimit.Config{RequestsPerSecond: 1, Burst: 2}, nil, tm.clock)
	require.NoError(t, err)
	defer func() { _ = l.Close() }()

	for i := 0; i < 2; i++ {
		d, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	}

	d, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, time.Second, d.RetryAfter)

	// other clients have their own bucket
	d, err = l.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	tm.now = tm.now.Add(time.Second)
	d, err = l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestLimiter_Distributed(t *testing.T) {
	tm := setupTestLimiter(t)
	ctx := context.Background()

	tm.redisClient.EXPECT().NewRateLimiter().Return(tm.redisRateLimiter)
	tm.redisClient.EXPECT().Ping(gomock.Any()).Return(nil)

	limit := redis_rate.Limit{Rate: 5, Burst: 10, Period: time.Second}
	gomock.InOrder(
		tm.redisRateLimiter.EXPECT().
			Allow(gomock.Any(), "dsc:indexer:ratelimit:10.0.0.1", limit).
			Return(&redis_rate.Result{Limit: limit, Allowed: 1, Remaining: 9, RetryAfter: -1}, nil),
		tm.redisRateLimiter.EXPECT().
			Allow(gomock.Any(), "dsc:indexer:ratelimit:10.0.0.1", limit).
			Return(&redis_rate.Result{Limit: limit, Allowed: 0, Remaining: 0, RetryAfter: 200 * time.Millisecond}, nil),
	)

	l, err := ratelimit.NewLimiter(ratelimit.Config{RequestsPerSecond: 5, Burst: 10}, tm.redisClient, tm.clock)
	require.NoError(t, err)
	defer func() { _ = l.Close() }()

	d, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, &ratelimit.Decision{Allowed: true, Remaining: 9}, d)

	d, err = l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 200*time.Millisecond, d.RetryAfter)
}

func TestLimiter_FallsBackOnRedisError(t *testing.T) {
	tm := setupTestLimiter(t)
	ctx := context.Background()

	tm.redisClient.EXPECT().NewRateLimiter().Return(tm.redisRateLimiter)
	tm.redisClient.EXPECT().Ping(gomock.Any()).Return(nil)
	tm.redisRateLimiter.EXPECT().
		Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset")).
		Times(1)

	l, err := ratelimit.NewLimiter(ratelimit.Config{RequestsPerSecond: 1, Burst: 1}, tm.redisClient, tm.clock)
	require.NoError(t, err)
	defer func() { _ = l.Close() }()

	d, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	// Redis stays bypassed until the health monitor sees it again
	d, err = l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
}

func TestLimiter_RedisDownAtStart(t *testing.T) {
	tm := setupTestLimiter(t)

	tm.redisClient.EXPECT().NewRateLimiter().Return(tm.redisRateLimiter)
	tm.redisClient.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

	l, err := ratelimit.NewLimiter(ratelimit.Config{RequestsPerSecond: 10}, tm.redisClient, tm.clock)
	require.NoError(t, err)
	defer func() { _ = l.Close() }()

	d, err := l.Allow(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestLimiter_InvalidConfig(t *testing.T) {
	_, err := ratelimit.NewLimiter(ratelimit.Config{RequestsPerSecond: 0}, nil, nil)
	assert.Error(t, err)
}
