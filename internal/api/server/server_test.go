package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsc-protocol/dsc-indexer/internal/adapter"
	"github.com/dsc-protocol/dsc-indexer/internal/api/server"
	"github.com/dsc-protocol/dsc-indexer/internal/mocks"
	"github.com/dsc-protocol/dsc-indexer/internal/ratelimit"
	"github.com/dsc-protocol/dsc-indexer/internal/store"
	"github.com/dsc-protocol/dsc-indexer/internal/store/schema"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newServer(t *testing.T, redis adapter.RedisClient, burst int) (*server.Server, *gin.Engine) {
	t.Helper()
	ctrl := gomock.NewController(t)

	s := store.NewMemoryStore()
	require.NoError(t, s.UpsertProtocolStats(context.Background(), &schema.ProtocolStats{
		ID:                   "1",
		TotalMintVolume:      "100",
		TotalBurnVolume:      "0",
		TotalNetMinted:       "100",
		TotalCollateral:      "1000",
		TotalUsers:           1,
		LastUpdatedTimestamp: 1719792000,
	}))

	srv := server.New(server.Config{
		CacheTTL:  time.Minute,
		RateLimit: ratelimit.Config{RequestsPerSecond: 1, Burst: burst},
	}, s, mocks.NewMockTemporalOrchestrator(ctrl), redis, adapter.NewClock())

	router, err := srv.Router()
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Shutdown(context.Background()) })
	return srv, router
}

func graphqlRequest(query string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{"query": "`+query+`"}`))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRouterServesEveryEndpoint(t *testing.T) {
	_, router := newServer(t, nil, 100)

	for _, target := range []string{"/health", "/metrics", "/api/v1/protocol-stats", "/graphql/playground"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusOK, w.Code, target)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), target)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, graphqlRequest(`{ protocolStats(id: \"1\") { totalCollateral } }`))
	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.JSONEq(t, `{"protocolStats": {"totalCollateral": "1000"}}`, string(resp.Data))
	// no redis, no cache
	assert.Empty(t, w.Header().Get("X-Cache"))
}

func TestRouterCachesQueries(t *testing.T) {
	mr := miniredis.RunT(t)
	_, router := newServer(t, adapter.NewRedisClient(mr.Addr(), "", 0), 100)

	query := `{ protocolStats(id: \"1\") { totalNetMinted } }`

	first := httptest.NewRecorder()
	router.ServeHTTP(first, graphqlRequest(query))
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

	second := httptest.NewRecorder()
	router.ServeHTTP(second, graphqlRequest(query))
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	rest := httptest.NewRecorder()
	router.ServeHTTP(rest, httptest.NewRequest(http.MethodGet, "/api/v1/protocol-stats", nil))
	assert.Equal(t, "MISS", rest.Header().Get("X-Cache"))
}

func TestRouterRateLimits(t *testing.T) {
	_, router := newServer(t, nil, 2)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/protocol-stats", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// metrics scraping is outside the limiter
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
