package authenticating

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/attraveiculos/visitor-identity-api/internal/config"
	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/attraveiculos/visitor-identity-api/pkg/apiErrors"
)

// Tolerância para diferença de relógio entre o CRM e esta API
const clockSkew = 30 * time.Second

// Authenticator valida os tokens que o CRM emite para a equipe interna.
// Esta API não emite tokens.
type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		cfg: cfg,
	}
}

func (s *Service) parserOptions() []jwt.ParserOption {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(clockSkew),
	}
	if s.cfg.Auth.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.cfg.Auth.Issuer))
	}
	return opts
}

// ValidateToken aceita só HS256 assinado com AUTH_SECRET, com exp obrigatório
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	secret := []byte(s.cfg.Auth.Secret)
	if len(secret) == 0 {
		return nil, NewAuthError(ErrMissingSecret, apiErrors.ErrMisconfiguration, nil)
	}

	claims := &domain.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}, s.parserOptions()...)
	if err != nil {
		return nil, classify(err)
	}

	if !token.Valid || claims.AdminID == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, nil)
	}
	return claims, nil
}
