package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

type fakeValidator struct {
	claims *domain.Claims
	err    error
}

func (f fakeValidator) ValidateToken(string) (*domain.Claims, error) {
	return f.claims, f.err
}

func TestAuthAndRoleMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		header     string
		validator  fakeValidator
		wantStatus int
	}{
		{
			name:       "sem token",
			validator:  fakeValidator{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token expirado",
			header:     "Bearer abc",
			validator:  fakeValidator{err: jwt.ErrTokenExpired},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token inválido",
			header:     "Bearer abc",
			validator:  fakeValidator{err: errors.New("assinatura inválida")},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "role sem permissão",
			header:     "Bearer abc",
			validator:  fakeValidator{claims: &domain.Claims{AdminID: "1", Role: "seller"}},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "admin",
			header:     "Bearer abc",
			validator:  fakeValidator{claims: &domain.Claims{AdminID: "1", Role: domain.RoleAdmin}},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := AuthMiddleware(tt.validator)(AdminOnly()(ok))

			req := httptest.NewRequest(http.MethodGet, "/v1/admin/visitors", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRoleMiddleware_WithoutClaims(t *testing.T) {
	rec := httptest.NewRecorder()
	AdminOnly()(http.NotFoundHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/admin/visitors", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole_MultipleRoles(t *testing.T) {
	validator := fakeValidator{claims: &domain.Claims{AdminID: "7", Role: "marketing"}}
	handler := AuthMiddleware(validator)(RequireRole(domain.RoleAdmin, "marketing")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, "7", claims.AdminID)
		w.WriteHeader(http.StatusNoContent)
	})))

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/visitors/metrics", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

type codedErr string

func (c codedErr) Error() string   { return string(c) }
func (c codedErr) APICode() string { return string(c) }

func TestAuthMiddleware_CodedErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "expirado", err: codedErr("AUTH_007"), wantStatus: http.StatusUnauthorized, wantCode: "AUTH_007"},
		{name: "sem segredo", err: codedErr("SRV_005"), wantStatus: http.StatusInternalServerError, wantCode: "SRV_005"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := AuthMiddleware(fakeValidator{err: tt.err})(http.NotFoundHandler())

			req := httptest.NewRequest(http.MethodGet, "/v1/admin/visitors", nil)
			req.Header.Set("Authorization", "Bearer abc")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
		})
	}
}
