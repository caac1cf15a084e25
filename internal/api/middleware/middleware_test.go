package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsc-protocol/dsc-indexer/internal/adapter"
	"github.com/dsc-protocol/dsc-indexer/internal/api/middleware"
	apierrors "github.com/dsc-protocol/dsc-indexer/internal/api/shared/errors"
	"github.com/dsc-protocol/dsc-indexer/internal/mocks"
	"github.com/dsc-protocol/dsc-indexer/internal/ratelimit"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRSAKey(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func decodeAPIError(t *testing.T, w *httptest.ResponseRecorder) apierrors.APIError {
	t.Helper()
	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	return apiErr
}

func TestAuthenticate(t *testing.T) {
	key, publicPEM := newRSAKey(t)
	otherKey, _ := newRSAKey(t)

	auth, err := middleware.NewAuthenticator(middleware.AuthConfig{
		JWTPublicKey: publicPEM,
		APIKeys:      []string{"key-1", "", "key-2"},
	})
	require.NoError(t, err)

	valid := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "ops",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	expired := signToken(t, key, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	foreign := signToken(t, otherKey, jwt.RegisteredClaims{})
	hmac, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		success  bool
		authType string
		subject  string
	}{
		{name: "valid jwt", header: "Bearer " + valid, success: true, authType: middleware.AuthTypeJWT, subject: "ops"},
		{name: "lowercase scheme", header: "bearer " + valid, success: true, authType: middleware.AuthTypeJWT, subject: "ops"},
		{name: "expired jwt", header: "Bearer " + expired},
		{name: "wrong signer", header: "Bearer " + foreign},
		{name: "hmac jwt", header: "Bearer " + hmac},
		{name: "api key", header: "ApiKey key-2", success: true, authType: middleware.AuthTypeAPIKey},
		{name: "unknown api key", header: "ApiKey key-3"},
		{name: "missing header", header: ""},
		{name: "no credentials", header: "Bearer"},
		{name: "unsupported scheme", header: "Basic dXNlcjpwYXNz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := auth.Authenticate(tt.header)
			assert.Equal(t, tt.success, result.Success)
			if tt.success {
				assert.NoError(t, result.Error)
				assert.Equal(t, tt.authType, result.AuthType)
				assert.Equal(t, tt.subject, result.AuthSubject)
			} else {
				assert.Error(t, result.Error)
			}
		})
	}
}

func TestAuthenticate_NothingConfigured(t *testing.T) {
	auth, err := middleware.NewAuthenticator(middleware.AuthConfig{})
	require.NoError(t, err)

	assert.False(t, auth.Authenticate("ApiKey anything").Success)
	assert.False(t, auth.Authenticate("Bearer a.b.c").Success)
}

func TestNewAuthenticator_InvalidKey(t *testing.T) {
	_, err := middleware.NewAuthenticator(middleware.AuthConfig{JWTPublicKey: "not a pem"})
	assert.Error(t, err)
}

func TestAuthMiddleware(t *testing.T) {
	auth, err := middleware.NewAuthenticator(middleware.AuthConfig{APIKeys: []string{"secret"}})
	require.NoError(t, err)

	router := gin.New()
	router.POST("/protected", middleware.Auth(auth), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(string(middleware.AUTH_TYPE_KEY)))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "ApiKey secret")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, middleware.AuthTypeAPIKey, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apierrors.ErrCodeUnauthorized, decodeAPIError(t, w).Code)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.REQUEST_ID_KEY))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(middleware.REQUEST_ID_HEADER)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.REQUEST_ID_HEADER, "upstream-id")
	router.ServeHTTP(w, req)
	assert.Equal(t, "upstream-id", w.Header().Get(middleware.REQUEST_ID_HEADER))
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(middleware.Recovery(), middleware.Logger(), middleware.Metrics())
	router.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apierrors.ErrCodeInternalError, decodeAPIError(t, w).Code)
}

func TestRateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	limiter := mocks.NewMockRateLimiter(ctrl)

	router := gin.New()
	router.Use(middleware.RateLimit(limiter))
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	gomock.InOrder(
		limiter.EXPECT().Allow(gomock.Any(), "192.0.2.1").Return(&ratelimit.Decision{Allowed: true, Remaining: 4}, nil),
		limiter.EXPECT().Allow(gomock.Any(), "192.0.2.1").Return(&ratelimit.Decision{Allowed: false, RetryAfter: 1500 * time.Millisecond}, nil),
		limiter.EXPECT().Allow(gomock.Any(), "192.0.2.1").Return(nil, errors.New("limiter down")),
	)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "2", w.Header().Get("Retry-After"))
	assert.Equal(t, apierrors.ErrCodeRateLimited, decodeAPIError(t, w).Code)

	// a failing limiter lets the request through
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func newCachedRouter(t *testing.T, rc adapter.RedisClient) (*gin.Engine, *int) {
	t.Helper()
	calls := 0

	router := gin.New()
	cache := middleware.Cache(rc, time.Minute)
	router.GET("/stats", cache, func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"calls": calls})
	})
	router.POST("/graphql", cache, func(c *gin.Context) {
		calls++
		if strings.Contains(c.Query("op"), "mutation") {
			middleware.SkipCache(c)
		}
		c.JSON(http.StatusOK, gin.H{"calls": calls})
	})
	router.GET("/missing", cache, func(c *gin.Context) {
		calls++
		c.JSON(http.StatusNotFound, gin.H{"calls": calls})
	})
	return router, &calls
}

func TestCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rc := adapter.NewRedisClient(mr.Addr(), "", 0)
	defer func() { _ = rc.Close() }()

	router, calls := newCachedRouter(t, rc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", nil))
	assert.Equal(t, "MISS", w.Header().Get(middleware.CACHE_HEADER))
	assert.JSONEq(t, `{"calls":1}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", nil))
	assert.Equal(t, "HIT", w.Header().Get(middleware.CACHE_HEADER))
	assert.JSONEq(t, `{"calls":1}`, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, 1, *calls)

	// a different query string is a different entry
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats?limit=5", nil))
	assert.Equal(t, "MISS", w.Header().Get(middleware.CACHE_HEADER))
	assert.Equal(t, 2, *calls)

	// no-cache bypasses the lookup
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	req.Header.Set("Cache-Control", "no-cache")
	router.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get(middleware.CACHE_HEADER))
	assert.Equal(t, 3, *calls)
}

func TestCache_BodyAndSkip(t *testing.T) {
	mr := miniredis.RunT(t)
	rc := adapter.NewRedisClient(mr.Addr(), "", 0)
	defer func() { _ = rc.Close() }()

	router, calls := newCachedRouter(t, rc)

	post := func(url, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, url, strings.NewReader(body)))
		return w
	}

	post("/graphql", `{"query":"{ a }"}`)
	assert.Equal(t, "HIT", post("/graphql", `{"query":"{ a }"}`).Header().Get(middleware.CACHE_HEADER))
	assert.Equal(t, "MISS", post("/graphql", `{"query":"{ b }"}`).Header().Get(middleware.CACHE_HEADER))
	assert.Equal(t, 2, *calls)

	post("/graphql?op=mutation", `{"query":"mutation { c }"}`)
	assert.Equal(t, "MISS", post("/graphql?op=mutation", `{"query":"mutation { c }"}`).Header().Get(middleware.CACHE_HEADER))
	assert.Equal(t, 4, *calls)

	// errors are never stored
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 6, *calls)
}

func TestCache_Disabled(t *testing.T) {
	router, calls := newCachedRouter(t, nil)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", nil))
		assert.Empty(t, w.Header().Get(middleware.CACHE_HEADER))
	}
	assert.Equal(t, 2, *calls)
}

func TestCache_RedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	rc := adapter.NewRedisClient(mr.Addr(), "", 0)
	defer func() { _ = rc.Close() }()
	mr.Close()

	router, calls := newCachedRouter(t, rc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, *calls)
}
