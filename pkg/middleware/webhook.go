package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/attraveiculos/visitor-identity-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// WebhookSecret exige "Authorization: Bearer <secret>" nos webhooks de entrada.
// Sem segredo configurado a chamada só é aceita fora de produção.
func WebhookSecret(secret string, production bool) func(http.Handler) http.Handler {
	expected := []byte("Bearer " + secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				if production {
					logrus.Error("N8N_WEBHOOK_SECRET não configurado em produção")
					apiErrors.WriteError(w, apiErrors.ErrMisconfiguration, "Server misconfiguration", nil)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			got := []byte(r.Header.Get("Authorization"))
			if subtle.ConstantTimeCompare(got, expected) != 1 {
				logrus.WithField("path", r.URL.Path).Warn("Webhook com segredo inválido")
				apiErrors.WriteError(w, apiErrors.ErrInvalidWebhookSecret, "Unauthorized", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
