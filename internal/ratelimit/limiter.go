// Package ratelimit throttles API clients with a Redis-backed GCRA limiter shared by every API
// replica, falling back to per-process token buckets while Redis is unreachable.
package ratelimit

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/dsc-protocol/dsc-indexer/internal/adapter"
	"github.com/dsc-protocol/dsc-indexer/internal/logger"
)

const (
	DEFAULT_KEY_PREFIX            = "dsc:indexer:ratelimit:"
	DEFAULT_HEALTH_CHECK_INTERVAL = 10 * time.Second
	DEFAULT_IDLE_TTL              = 10 * time.Minute
)

// Config holds the per-key limits
type Config struct {
	RequestsPerSecond   float64
	Burst               int
	KeyPrefix           string
	HealthCheckInterval time.Duration
	// IdleTTL is how long an unused local bucket is kept
	IdleTTL time.Duration
}

// Decision is the outcome of one Allow call
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter takes one token per call for a key, typically a client IP
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Allow reports whether the key may proceed now
	Allow(ctx context.Context, key string) (*Decision, error)

	// Close stops the Redis health monitor
	Close() error
}

type localBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type limiter struct {
	config         Config
	limit          redis_rate.Limit
	redis          adapter.RedisClient
	distributed    adapter.RedisRateLimiter
	clock          adapter.Clock
	redisAvailable atomic.Bool

	mu    sync.Mutex
	local map[string]*localBucket

	done      chan struct{}
	closeOnce sync.Once
}

// NewLimiter creates a limiter. A nil rc keeps every bucket in process
func NewLimiter(cfg Config, rc adapter.RedisClient, clock adapter.Clock) (Limiter, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	l := &limiter{
		config: cfg,
		limit:  redisLimit(cfg.RequestsPerSecond, cfg.Burst),
		redis:  rc,
		clock:  clock,
		local:  make(map[string]*localBucket),
		done:   make(chan struct{}),
	}

	if rc != nil {
		l.distributed = rc.NewRateLimiter()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rc.Ping(ctx); err != nil {
			logger.Warn("Redis unavailable, rate limiting in process", zap.Error(err))
		} else {
			l.redisAvailable.Store(true)
		}
	}

	go l.monitor()

	logger.Info("Rate limiter initialized",
		zap.Float64("requests_per_second", cfg.RequestsPerSecond),
		zap.Int("burst", cfg.Burst),
		zap.Bool("distributed", l.redisAvailable.Load()),
	)

	return l, nil
}

func (l *limiter) Allow(ctx context.Context, key string) (*Decision, error) {
	if l.redisAvailable.Load() {
		decision, err := l.allowDistributed(ctx, key)
		if err == nil {
			return decision, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		l.redisAvailable.Store(false)
		logger.Warn("Redis rate limiter error, falling back to local", zap.Error(err))
	}

	return l.allowLocal(key), nil
}

func (l *limiter) allowDistributed(ctx context.Context, key string) (*Decision, error) {
	res, err := l.distributed.Allow(ctx, l.config.KeyPrefix+key, l.limit)
	if err != nil {
		return nil, err
	}
	return &Decision{
		Allowed:    res.Allowed > 0,
		Remaining:  res.Remaining,
		RetryAfter: max(res.RetryAfter, 0),
	}, nil
}

func (l *limiter) allowLocal(key string) *Decision {
	now := l.clock.Now()

	l.mu.Lock()
	bucket, ok := l.local[key]
	if !ok {
		bucket = &localBucket{limiter: rate.NewLimiter(rate.Limit(l.config.RequestsPerSecond), l.config.Burst)}
		l.local[key] = bucket
	}
	bucket.lastSeen = now
	l.mu.Unlock()

	reservation := bucket.limiter.ReserveN(now, 1)
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		return &Decision{Allowed: false, RetryAfter: delay}
	}

	return &Decision{
		Allowed:   true,
		Remaining: int(math.Max(bucket.limiter.TokensAt(now), 0)),
	}
}

// monitor re-enables the distributed limiter once Redis answers again and drops idle local buckets
func (l *limiter) monitor() {
	for {
		select {
		case <-l.done:
			return
		case <-l.clock.After(l.config.HealthCheckInterval):
		}

		l.evictIdle()

		if l.redis == nil {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := l.redis.Ping(ctx)
		cancel()

		wasAvailable := l.redisAvailable.Swap(err == nil)
		if !wasAvailable && err == nil {
			logger.Info("Redis connection restored, rate limiting distributed again")
		}
	}
}

func (l *limiter) evictIdle() {
	cutoff := l.clock.Now().Add(-l.config.IdleTTL)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, bucket := range l.local {
		if bucket.lastSeen.Before(cutoff) {
			delete(l.local, key)
		}
	}
}

func (l *limiter) Close() error {
	l.closeOnce.Do(func() {
		close(l.done)
	})
	return nil
}

// redisLimit converts a fractional per-second rate into a GCRA limit
func redisLimit(requestsPerSecond float64, burst int) redis_rate.Limit {
	if requestsPerSecond >= 1 {
		return redis_rate.Limit{Rate: int(math.Round(requestsPerSecond)), Burst: burst, Period: time.Second}
	}
	return redis_rate.Limit{Rate: 1, Burst: burst, Period: time.Duration(float64(time.Second) / requestsPerSecond)}
}

// validateConfig validates and sets defaults for the configuration
func validateConfig(cfg *Config) error {
	if cfg.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests_per_second must be positive")
	}
	if cfg.Burst <= 0 {
		cfg.Burst = int(math.Ceil(cfg.RequestsPerSecond))
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DEFAULT_KEY_PREFIX
	}
	if cfg.HealthCheckInterval <= 0 {
		cfg.HealthCheckInterval = DEFAULT_HEALTH_CHECK_INTERVAL
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = DEFAULT_IDLE_TTL
	}
	return nil
}
