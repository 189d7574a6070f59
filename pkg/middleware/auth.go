package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/attraveiculos/visitor-identity-api/pkg/apiErrors"
	"github.com/attraveiculos/visitor-identity-api/pkg/log"
	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// TokenValidator valida tokens emitidos pelo CRM
type TokenValidator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

// AuthMiddleware exige um Bearer token válido e guarda as claims no contexto
func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token é obrigatório", nil)
				return
			}

			claims, err := validator.ValidateToken(tokenString)
			if err != nil {
				writeAuthError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// codedError é implementado pelos erros do validador que já sabem seu código de API
type codedError interface {
	APICode() string
}

func writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	code := apiErrors.ErrInvalidToken
	var coded codedError
	if errors.As(err, &coded) {
		code = coded.APICode()
	} else if errors.Is(err, jwt.ErrTokenExpired) {
		code = apiErrors.ErrExpiredToken
	}

	switch code {
	case apiErrors.ErrExpiredToken:
		apiErrors.WriteError(w, code, "Token expirado", nil)
	case apiErrors.ErrMisconfiguration:
		log.ForContext(r.Context()).WithError(err).Error("Validação de token sem AUTH_SECRET")
		apiErrors.WriteError(w, code, "Autenticação não configurada", nil)
	default:
		log.ForContext(r.Context()).WithError(err).Debug("Token inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
	}
}

// ClaimsFromContext devolve as claims gravadas pelo AuthMiddleware
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok && claims != nil
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}
	return tokenString, true
}
