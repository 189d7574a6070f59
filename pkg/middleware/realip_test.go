package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/attraveiculos/visitor-identity-api/pkg/utils"
)

func TestRealIP(t *testing.T) {
	var seen string
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.ClientIP(r)
	})

	t.Run("atrás de um proxy usa o salto adicionado por ele", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/tracking/session", nil)
		req.RemoteAddr = "10.0.0.1:4321"
		req.Header.Set("X-Forwarded-For", "6.6.6.6, 200.1.2.3")

		RealIP(1)(echo).ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, "200.1.2.3", seen)
	})

	t.Run("sem proxy configurado mantém a conexão", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/tracking/session", nil)
		req.RemoteAddr = "177.7.7.7:5555"
		req.Header.Set("X-Forwarded-For", "200.1.2.3")

		RealIP(0)(echo).ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, "177.7.7.7", seen)
	})
}

func TestRealIP_XForwardedForNaoBurlaRateLimit(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RealIP(1)(RateLimit(NewMemoryLimiter(), PresetForm, 1, time.Minute)(ok))

	send := func(forwarded string) int {
		req := httptest.NewRequest(http.MethodPost, "/v1/tracking/identify", nil)
		req.RemoteAddr = "10.0.0.1:4321"
		req.Header.Set("X-Forwarded-For", forwarded)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("200.1.2.3"))
	// o cliente inventa saltos à esquerda, mas o proxy sempre acrescenta o IP real
	assert.Equal(t, http.StatusTooManyRequests, send("1.1.1.1, 200.1.2.3"))
	assert.Equal(t, http.StatusTooManyRequests, send("2.2.2.2, 200.1.2.3"))
}
