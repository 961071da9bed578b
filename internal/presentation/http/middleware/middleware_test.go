package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/abs-inventory-api/internal/domain/entity"
	"github.com/sangkips/abs-inventory-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memoryIdempotencyRepo struct {
	mu   sync.Mutex
	keys map[string]*entity.IdempotencyKey
}

func newMemoryIdempotencyRepo() *memoryIdempotencyRepo {
	return &memoryIdempotencyRepo{keys: map[string]*entity.IdempotencyKey{}}
}

func (r *memoryIdempotencyRepo) GetByKey(_ context.Context, key, scope string) (*entity.IdempotencyKey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.keys[scope+"|"+key], nil
}

func (r *memoryIdempotencyRepo) Create(_ context.Context, ikey *entity.IdempotencyKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys[ikey.Scope+"|"+ikey.Key] = ikey
	return nil
}

func (r *memoryIdempotencyRepo) DeleteExpired(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, v := range r.keys {
		if v.IsExpired() {
			delete(r.keys, k)
		}
	}
	return nil
}

func serve(r *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestClientRateLimiter(t *testing.T) {
	rl := NewClientRateLimiter(RateLimiterConfig{Requests: 2, Window: time.Hour})
	defer rl.Stop()

	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", nil).Code)

	w := serve(r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
}

func TestAuthMiddleware(t *testing.T) {
	jwt := utils.NewJWTManager("secret", time.Hour)
	userID := uuid.New()
	token, err := jwt.GenerateAccessToken(userID, "clerk", entity.RoleUser)
	require.NoError(t, err)

	var seen interface{}
	r := gin.New()
	r.GET("/strict", AuthMiddleware(jwt), func(c *gin.Context) {
		seen, _ = c.Get("user_id")
		c.Status(http.StatusOK)
	})
	r.GET("/optional", OptionalAuthMiddleware(jwt), func(c *gin.Context) {
		_, ok := c.Get("user_id")
		if ok {
			c.Status(http.StatusOK)
			return
		}
		c.Status(http.StatusNoContent)
	})

	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/strict", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/strict", map[string]string{"Authorization": "Token abc"}).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/strict", map[string]string{"Authorization": "Bearer garbage"}).Code)

	w := serve(r, http.MethodGet, "/strict", map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, seen)

	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodGet, "/optional", nil).Code)
	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodGet, "/optional", map[string]string{"Authorization": "Bearer garbage"}).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/optional", map[string]string{"Authorization": "Bearer " + token}).Code)
}

func TestIdempotency(t *testing.T) {
	repo := newMemoryIdempotencyRepo()
	calls := 0

	r := gin.New()
	r.POST("/orders", Idempotency(IdempotencyConfig{Repo: repo}), func(c *gin.Context) {
		calls++
		if c.Query("fail") != "" {
			c.JSON(http.StatusConflict, gin.H{"calls": calls})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"calls": calls})
	})

	key := map[string]string{IdempotencyKeyHeader: "abc"}

	first := serve(r, http.MethodPost, "/orders", key)
	require.Equal(t, http.StatusCreated, first.Code)

	replay := serve(r, http.MethodPost, "/orders", key)
	assert.Equal(t, http.StatusCreated, replay.Code)
	assert.Equal(t, "true", replay.Header().Get(IdempotencyReplayedHeader))
	assert.JSONEq(t, `{"calls":1}`, replay.Body.String())
	assert.Equal(t, 1, calls)

	serve(r, http.MethodPost, "/orders", nil)
	assert.Equal(t, 2, calls)

	failKey := map[string]string{IdempotencyKeyHeader: "failing"}
	serve(r, http.MethodPost, "/orders?fail=1", failKey)
	serve(r, http.MethodPost, "/orders?fail=1", failKey)
	assert.Equal(t, 4, calls, "non-2xx responses are not stored")
}

func TestIdempotencyExpiredKeyIsReplaced(t *testing.T) {
	repo := newMemoryIdempotencyRepo()
	scope := "ip:192.0.2.1"
	require.NoError(t, repo.Create(context.Background(), &entity.IdempotencyKey{
		Key:          "abc",
		Scope:        scope,
		ResponseCode: http.StatusCreated,
		ResponseBody: `{"stale":true}`,
		ExpiresAt:    time.Now().Add(-time.Minute),
	}))

	r := gin.New()
	r.POST("/orders", Idempotency(IdempotencyConfig{Repo: repo}), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"fresh": true})
	})

	w := serve(r, http.MethodPost, "/orders", map[string]string{IdempotencyKeyHeader: "abc"})
	assert.Empty(t, w.Header().Get(IdempotencyReplayedHeader))
	assert.JSONEq(t, `{"fresh":true}`, w.Body.String())

	stored, err := repo.GetByKey(context.Background(), "abc", scope)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, stored.IsExpired())
}

func TestIdempotencyScope(t *testing.T) {
	userID := uuid.New()
	var scopes []string

	r := gin.New()
	r.GET("/anon", func(c *gin.Context) { scopes = append(scopes, idempotencyScope(c)) })
	r.GET("/user", func(c *gin.Context) {
		c.Set("user_id", userID)
		scopes = append(scopes, idempotencyScope(c))
	})

	serve(r, http.MethodGet, "/anon", nil)
	serve(r, http.MethodGet, "/user", nil)

	require.Len(t, scopes, 2)
	assert.Equal(t, "ip:192.0.2.1", scopes[0])
	assert.Equal(t, userID.String(), scopes[1])
}

func TestLoggerMiddlewarePropagatesRequestID(t *testing.T) {
	var fromCtx string
	r := gin.New()
	r.Use(LoggerMiddleware())
	r.GET("/", func(c *gin.Context) {
		fromCtx = c.GetString("request_id")
		c.Status(http.StatusOK)
	})

	w := serve(r, http.MethodGet, "/", map[string]string{"X-Request-ID": "req-123"})
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "req-123", fromCtx)

	w = serve(r, http.MethodGet, "/", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
