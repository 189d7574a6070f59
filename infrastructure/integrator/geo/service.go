package geo

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/attraveiculos/visitor-identity-api/internal/config"
	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/attraveiculos/visitor-identity-api/pkg/utils"
	"github.com/oschwald/geoip2-golang"
	"github.com/sirupsen/logrus"
)

// GeoLocator resolve cidade, estado e país a partir do IP do visitante
type GeoLocator interface {
	Locate(ctx context.Context, ip string) domain.Geolocation
	Close() error
}

type ipapiResponse struct {
	City        string `json:"city"`
	Region      string `json:"region"`
	CountryName string `json:"country_name"`
	Error       bool   `json:"error"`
}

type ipAPIResponse struct {
	Status     string `json:"status"`
	City       string `json:"city"`
	RegionName string `json:"regionName"`
	Country    string `json:"country"`
}

type GeoService struct {
	cfg        config.GeoIP
	reader     *geoip2.Reader
	httpClient *http.Client
}

// New abre a base MaxMind quando configurada. Sem ela, apenas o fallback HTTP é usado.
func New(cfg *config.Config) GeoLocator {
	s := &GeoService{
		cfg: cfg.GeoIP,
		httpClient: &http.Client{
			Timeout: cfg.Tracking.Timeout(),
		},
	}

	if cfg.GeoIP.DatabasePath != "" {
		reader, err := geoip2.Open(cfg.GeoIP.DatabasePath)
		if err != nil {
			logrus.WithError(err).Warn("Não foi possível abrir a base GeoIP, usando apenas fallback HTTP")
		} else {
			s.reader = reader
		}
	}

	return s
}

// Locate nunca falha: sem resultado devolve os valores padrão
func (s *GeoService) Locate(ctx context.Context, ip string) domain.Geolocation {
	parsed := net.ParseIP(ip)
	if parsed == nil || parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsUnspecified() {
		return s.fallback()
	}

	if geo, ok := s.fromDatabase(parsed); ok {
		return geo
	}

	if !s.cfg.HTTPFallback {
		return s.fallback()
	}

	if geo, ok := s.fromIPAPICo(ctx, ip); ok {
		return geo
	}

	if geo, ok := s.fromIPAPICom(ctx, ip); ok {
		return geo
	}

	return s.fallback()
}

func (s *GeoService) fromDatabase(ip net.IP) (domain.Geolocation, bool) {
	if s.reader == nil {
		return domain.Geolocation{}, false
	}

	record, err := s.reader.City(ip)
	if err != nil {
		logrus.WithError(err).Debug("GeoIP: falha na consulta local")
		return domain.Geolocation{}, false
	}

	geo := domain.Geolocation{
		City:    localizedName(record.City.Names),
		Country: localizedName(record.Country.Names),
	}
	if len(record.Subdivisions) > 0 {
		geo.Region = localizedName(record.Subdivisions[0].Names)
	}

	if geo.City == "" && geo.Country == "" {
		return domain.Geolocation{}, false
	}

	return s.withDefaults(geo), true
}

func (s *GeoService) fromIPAPICo(ctx context.Context, ip string) (domain.Geolocation, bool) {
	var resp ipapiResponse
	if err := utils.GetJSON(ctx, s.httpClient, fmt.Sprintf("%s/%s/json/", s.cfg.PrimaryURL, ip), &resp); err != nil {
		logrus.WithError(err).Warn("GeoIP: ipapi.co falhou")
		return domain.Geolocation{}, false
	}

	if resp.Error {
		return domain.Geolocation{}, false
	}

	return s.withDefaults(domain.Geolocation{
		City:    resp.City,
		Region:  resp.Region,
		Country: resp.CountryName,
	}), true
}

func (s *GeoService) fromIPAPICom(ctx context.Context, ip string) (domain.Geolocation, bool) {
	var resp ipAPIResponse
	endpoint := fmt.Sprintf("%s/json/%s?fields=status,city,regionName,country,query", s.cfg.SecondaryURL, ip)
	if err := utils.GetJSON(ctx, s.httpClient, endpoint, &resp); err != nil {
		logrus.WithError(err).Warn("GeoIP: ip-api.com falhou")
		return domain.Geolocation{}, false
	}

	if resp.Status != "success" {
		return domain.Geolocation{}, false
	}

	return s.withDefaults(domain.Geolocation{
		City:    resp.City,
		Region:  resp.RegionName,
		Country: resp.Country,
	}), true
}

func (s *GeoService) withDefaults(geo domain.Geolocation) domain.Geolocation {
	if geo.City == "" {
		geo.City = s.cfg.UnknownPlaceName
	}
	if geo.Region == "" {
		geo.Region = s.cfg.UnknownPlaceName
	}
	if geo.Country == "" {
		geo.Country = s.cfg.DefaultCountry
	}
	return geo
}

func (s *GeoService) fallback() domain.Geolocation {
	return s.withDefaults(domain.Geolocation{})
}

func (s *GeoService) Close() error {
	if s.reader != nil {
		return s.reader.Close()
	}
	return nil
}

func localizedName(names map[string]string) string {
	if name, ok := names["pt-BR"]; ok {
		return name
	}
	return names["en"]
}
