package authenticating

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/attraveiculos/visitor-identity-api/pkg/apiErrors"
)

var (
	ErrInvalidToken  = errors.New("token inválido")
	ErrExpiredToken  = errors.New("token expirado")
	ErrMissingSecret = errors.New("AUTH_SECRET não configurado")
)

// AuthError carrega o código de API e a falha original do parser de JWT
type AuthError struct {
	Err   error
	Code  string
	Cause error
}

func (e *AuthError) Error() string {
	return e.Err.Error()
}

func (e *AuthError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// APICode é lido pelo AuthMiddleware
func (e *AuthError) APICode() string {
	return e.Code
}

func NewAuthError(baseErr error, code string, cause error) *AuthError {
	return &AuthError{Err: baseErr, Code: code, Cause: cause}
}

// classify traduz as falhas do jwt/v5 para os códigos da API
func classify(err error) *AuthError {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, err)
	}
	return NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err)
}
