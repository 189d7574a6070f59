package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_Allow(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	limiter := NewMemoryLimiter()
	limiter.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		allowed, _, err := limiter.Allow(context.Background(), "api:1.1.1.1", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, retryAfter, err := limiter.Allow(context.Background(), "api:1.1.1.1", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, time.Minute, retryAfter)

	// outra chave não é afetada
	allowed, _, _ = limiter.Allow(context.Background(), "api:2.2.2.2", 3, time.Minute)
	assert.True(t, allowed)

	// após a janela a chave é liberada
	now = now.Add(61 * time.Second)
	allowed, _, _ = limiter.Allow(context.Background(), "api:1.1.1.1", 3, time.Minute)
	assert.True(t, allowed)
}

func TestMemoryLimiter_Cleanup(t *testing.T) {
	now := time.Now()
	limiter := NewMemoryLimiter()
	limiter.now = func() time.Time { return now }

	_, _, _ = limiter.Allow(context.Background(), "form:1.1.1.1", 10, time.Minute)
	now = now.Add(2 * time.Minute)
	limiter.Cleanup(time.Minute)

	assert.Empty(t, limiter.requests)
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string, int, time.Duration) (bool, time.Duration, error) {
	return false, 0, errors.New("redis indisponível")
}

func TestRateLimitMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("bloqueia após o limite com Retry-After", func(t *testing.T) {
		handler := RateLimit(NewMemoryLimiter(), PresetForm, 1, time.Minute)(ok)

		req := httptest.NewRequest(http.MethodPost, "/v1/tracking/identify", nil)
		req.RemoteAddr = "200.1.1.1:4321"

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	})

	t.Run("falha do limitador libera a requisição", func(t *testing.T) {
		handler := RateLimit(failingLimiter{}, PresetAPI, 1, time.Minute)(ok)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/tracking/session", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
