package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dsc-protocol/dsc-indexer/internal/adapter"
	"github.com/dsc-protocol/dsc-indexer/internal/logger"
)

const (
	CACHE_KEY_PREFIX = "dsc:indexer:response:"
	CACHE_HEADER     = "X-Cache"

	// SKIP_CACHE_KEY is set by handlers whose response must not be stored
	SKIP_CACHE_KEY = "skip_cache"
)

type cachedResponse struct {
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// bodyRecorder tees the response body so it can be stored after the handler ran
type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// SkipCache marks the current response as uncacheable
func SkipCache(c *gin.Context) {
	c.Set(SKIP_CACHE_KEY, true)
}

// Cache serves repeated requests from Redis. Only 200 responses are stored, keyed by the
// sha256 of method, path, query and body. A nil client disables caching
func Cache(rc adapter.RedisClient, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rc == nil || ttl <= 0 || c.GetHeader("Cache-Control") == "no-cache" {
			c.Next()
			return
		}

		var body []byte
		if c.Request.Body != nil {
			var err error
			body, err = io.ReadAll(c.Request.Body)
			if err != nil {
				c.Next()
				return
			}
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
		}

		ctx := c.Request.Context()
		key := cacheKey(c.Request, body)

		if raw, err := rc.Get(ctx, key); err == nil {
			var cached cachedResponse
			if err := json.Unmarshal(raw, &cached); err == nil {
				c.Header(CACHE_HEADER, "HIT")
				c.Data(http.StatusOK, cached.ContentType, cached.Body)
				c.Abort()
				return
			}
		} else if !errors.Is(err, adapter.ErrCacheMiss) {
			logger.DebugCtx(ctx, "Response cache read failed", zap.Error(err))
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = recorder
		c.Header(CACHE_HEADER, "MISS")

		c.Next()

		if c.Writer.Status() != http.StatusOK || c.GetBool(SKIP_CACHE_KEY) {
			return
		}

		raw, err := json.Marshal(cachedResponse{
			ContentType: c.Writer.Header().Get("Content-Type"),
			Body:        recorder.body.Bytes(),
		})
		if err != nil {
			return
		}
		if err := rc.Set(ctx, key, raw, ttl); err != nil {
			logger.DebugCtx(ctx, "Response cache write failed", zap.Error(err))
		}
	}
}

func cacheKey(r *http.Request, body []byte) string {
	h := sha256.New()
	h.Write([]byte(r.Method))
	h.Write([]byte{0})
	h.Write([]byte(r.URL.Path))
	h.Write([]byte{0})
	h.Write([]byte(r.URL.RawQuery))
	h.Write([]byte{0})
	h.Write(body)
	return CACHE_KEY_PREFIX + hex.EncodeToString(h.Sum(nil))
}
