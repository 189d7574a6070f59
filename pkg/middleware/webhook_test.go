package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWebhookSecret(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		secret     string
		production bool
		header     string
		wantStatus int
	}{
		{"segredo correto", "s3cr3t", true, "Bearer s3cr3t", http.StatusOK},
		{"segredo incorreto", "s3cr3t", true, "Bearer errado", http.StatusUnauthorized},
		{"sem header", "s3cr3t", false, "", http.StatusUnauthorized},
		{"sem segredo fora de produção", "", false, "", http.StatusOK},
		{"sem segredo em produção", "", true, "Bearer qualquer", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/enrichment", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			WebhookSecret(tt.secret, tt.production)(ok).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
