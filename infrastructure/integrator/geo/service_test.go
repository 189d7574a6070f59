package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/attraveiculos/visitor-identity-api/internal/config"
	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func geoConfig(primary, secondary string) *config.Config {
	return &config.Config{
		Tracking: config.Tracking{OutboundTimeout: 2 * time.Second},
		GeoIP: config.GeoIP{
			HTTPFallback:     true,
			PrimaryURL:       primary,
			SecondaryURL:     secondary,
			DefaultCountry:   "Brasil",
			UnknownPlaceName: "Não identificada",
		},
	}
}

func jsonServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGeoService_Locate(t *testing.T) {
	unknown := domain.Geolocation{City: "Não identificada", Region: "Não identificada", Country: "Brasil"}

	tests := []struct {
		name      string
		ip        string
		primary   func(t *testing.T) *httptest.Server
		secondary func(t *testing.T) *httptest.Server
		want      domain.Geolocation
	}{
		{
			name: "IP privado usa valores padrão",
			ip:   "192.168.0.10",
			want: unknown,
		},
		{
			name: "ipapi.co responde",
			ip:   "177.10.20.30",
			primary: func(t *testing.T) *httptest.Server {
				return jsonServer(t, 200, `{"city":"Campinas","region":"São Paulo","country_name":"Brazil"}`)
			},
			want: domain.Geolocation{City: "Campinas", Region: "São Paulo", Country: "Brazil"},
		},
		{
			name: "fallback para ip-api.com",
			ip:   "177.10.20.30",
			primary: func(t *testing.T) *httptest.Server {
				return jsonServer(t, 200, `{"error":true,"reason":"RateLimited"}`)
			},
			secondary: func(t *testing.T) *httptest.Server {
				return jsonServer(t, 200, `{"status":"success","city":"Sorocaba","regionName":"São Paulo","country":"Brasil"}`)
			},
			want: domain.Geolocation{City: "Sorocaba", Region: "São Paulo", Country: "Brasil"},
		},
		{
			name: "todos falham",
			ip:   "177.10.20.30",
			primary: func(t *testing.T) *httptest.Server {
				return jsonServer(t, 500, `{}`)
			},
			secondary: func(t *testing.T) *httptest.Server {
				return jsonServer(t, 200, `{"status":"fail"}`)
			},
			want: unknown,
		},
		{
			name: "campos vazios recebem valores padrão",
			ip:   "177.10.20.30",
			primary: func(t *testing.T) *httptest.Server {
				return jsonServer(t, 200, `{"city":"","region":"Minas Gerais","country_name":""}`)
			},
			want: domain.Geolocation{City: "Não identificada", Region: "Minas Gerais", Country: "Brasil"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primaryURL, secondaryURL := "http://127.0.0.1:1", "http://127.0.0.1:1"
			if tt.primary != nil {
				primaryURL = tt.primary(t).URL
			}
			if tt.secondary != nil {
				secondaryURL = tt.secondary(t).URL
			}

			locator := New(geoConfig(primaryURL, secondaryURL))
			defer locator.Close()

			assert.Equal(t, tt.want, locator.Locate(context.Background(), tt.ip))
		})
	}
}
