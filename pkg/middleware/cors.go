package middleware

import (
	"net/http"
	"strings"
)

const (
	corsAllowMethods  = "GET, POST, OPTIONS"
	corsAllowHeaders  = "Accept, Authorization, Content-Type, X-Requested-With, X-Request-ID"
	corsExposeHeaders = "Retry-After, X-Request-ID"
	corsMaxAge        = "86400"
)

// Cors libera as origens configuradas. Uma entrada "https://*.dominio" aceita qualquer subdomínio,
// usado para os previews do site.
func Cors(allowedOrigins []string) func(http.Handler) http.Handler {
	type wildcard struct{ prefix, suffix string }

	exact := make(map[string]struct{}, len(allowedOrigins))
	var wildcards []wildcard
	for _, origin := range allowedOrigins {
		origin = strings.TrimSpace(origin)
		if scheme, host, ok := strings.Cut(origin, "://*."); ok {
			wildcards = append(wildcards, wildcard{prefix: scheme + "://", suffix: "." + host})
			continue
		}
		exact[origin] = struct{}{}
	}

	isAllowed := func(origin string) bool {
		if origin == "" {
			return false
		}
		if _, ok := exact[origin]; ok {
			return true
		}
		for _, wc := range wildcards {
			if strings.HasPrefix(origin, wc.prefix) && strings.HasSuffix(origin, wc.suffix) {
				return true
			}
		}
		return false
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			w.Header().Add("Vary", "Origin")

			if isAllowed(origin) {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", corsAllowMethods)
				h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
				h.Set("Access-Control-Expose-Headers", corsExposeHeaders)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Set("Access-Control-Max-Age", corsMaxAge)
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
