package middleware

import (
	"net/http"

	"github.com/attraveiculos/visitor-identity-api/pkg/utils"
)

// RealIP troca o RemoteAddr pelo IP do visitante resolvido a partir dos proxies confiáveis.
// Com trustedProxies = 0 os cabeçalhos X-Forwarded-For e X-Real-IP são ignorados.
func RealIP(trustedProxies int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if trustedProxies > 0 {
				r.RemoteAddr = utils.ForwardedClientIP(r, trustedProxies)
			}
			next.ServeHTTP(w, r)
		})
	}
}
