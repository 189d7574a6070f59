package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCors(t *testing.T) {
	handler := Cors([]string{"https://attraveiculos.com.br", "https://*.vercel.app"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name        string
		method      string
		origin      string
		wantStatus  int
		wantAllowed bool
	}{
		{name: "origem exata", method: http.MethodPost, origin: "https://attraveiculos.com.br", wantStatus: http.StatusOK, wantAllowed: true},
		{name: "subdomínio de preview", method: http.MethodPost, origin: "https://site-git-main.vercel.app", wantStatus: http.StatusOK, wantAllowed: true},
		{name: "esquema diferente", method: http.MethodPost, origin: "http://site.vercel.app", wantStatus: http.StatusOK},
		{name: "origem desconhecida", method: http.MethodPost, origin: "https://outro.com", wantStatus: http.StatusOK},
		{name: "preflight", method: http.MethodOptions, origin: "https://attraveiculos.com.br", wantStatus: http.StatusNoContent, wantAllowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/session", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantAllowed {
				assert.Equal(t, tt.origin, rec.Header().Get("Access-Control-Allow-Origin"))
				assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "Retry-After")
			} else {
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}
