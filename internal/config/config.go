package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/crypto/blake2b"
)

const EnvProduction = "production"

var (
	ErrMissingWebhookSecret = errors.New("N8N_WEBHOOK_SECRET é obrigatório em produção")
	ErrMissingAuthSecret    = errors.New("AUTH_SECRET é obrigatório em produção")
	ErrMissingDatabaseURL   = errors.New("DATABASE_URL não configurada")
	ErrInvalidTrustedProxy  = errors.New("TRUSTED_PROXIES não pode ser negativo")
	ErrInvalidHashKey       = fmt.Errorf("IDENTITY_HASH_KEY deve ter entre %d e %d bytes", MinIdentityHashKeyBytes, blake2b.Size)
)

// MinIdentityHashKeyBytes é o tamanho mínimo da chave do hash de CPF em produção
const MinIdentityHashKeyBytes = 16

type Config struct {
	App                  App                  `mapstructure:",squash"`
	Server               Server               `mapstructure:",squash"`
	Database             Database             `mapstructure:",squash"`
	Tracking             Tracking             `mapstructure:",squash"`
	N8N                  N8N                  `mapstructure:",squash"`
	GoogleAds            GoogleAds            `mapstructure:",squash"`
	Meta                 Meta                 `mapstructure:",squash"`
	GeoIP                GeoIP                `mapstructure:",squash"`
	RateLimit            RateLimit            `mapstructure:",squash"`
	Redis                Redis                `mapstructure:",squash"`
	Kafka                Kafka                `mapstructure:",squash"`
	Auth                 Auth                 `mapstructure:",squash"`
	ConversionRedelivery ConversionRedelivery `mapstructure:",squash"`
}

type App struct {
	Env            string   `mapstructure:"app_env"`
	LogLevel       string   `mapstructure:"log_level"`
	SiteURL        string   `mapstructure:"site_url"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	// proxies reversos à frente da API; 0 ignora X-Forwarded-For
	TrustedProxies int `mapstructure:"trusted_proxies"`
}

type Database struct {
	DSN         string `mapstructure:"-"`
	Driver      string `mapstructure:"database_driver"`
	Password    string `mapstructure:"database_password"`
	URL         string `mapstructure:"database_url"`
	User        string `mapstructure:"database_user"`
	AutoMigrate bool   `mapstructure:"database_auto_migrate"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

// Tracking reúne os limites de engajamento e parâmetros do pipeline de identidade
type Tracking struct {
	MinProductViews int           `mapstructure:"enrichment_min_product_views"`
	MinSessionPages int           `mapstructure:"enrichment_min_session_pages"`
	MinDwellTimeMs  int64         `mapstructure:"enrichment_min_dwell_time_ms"`
	OutboundTimeout time.Duration `mapstructure:"outbound_timeout"`
	IdentityHashKey string        `mapstructure:"identity_hash_key"`
}

// DefaultOutboundTimeout limita chamadas externas quando OUTBOUND_TIMEOUT não está configurado
const DefaultOutboundTimeout = 5 * time.Second

func (t Tracking) Timeout() time.Duration {
	if t.OutboundTimeout <= 0 {
		return DefaultOutboundTimeout
	}
	return t.OutboundTimeout
}

type N8N struct {
	EnrichmentWebhookURL    string `mapstructure:"n8n_enrichment_webhook_url"`
	AbandonedLeadWebhookURL string `mapstructure:"n8n_abandoned_lead_webhook_url"`
	WebhookSecret           string `mapstructure:"n8n_webhook_secret"`
}

type GoogleAds struct {
	BaseURL            string `mapstructure:"google_ads_base_url"`
	APIVersion         string `mapstructure:"google_ads_api_version"`
	CustomerID         string `mapstructure:"google_ads_customer_id"`
	ConversionActionID string `mapstructure:"google_ads_conversion_action_id"`
	APIToken           string `mapstructure:"google_ads_api_token"`
	DeveloperToken     string `mapstructure:"google_ads_developer_token"`
}

func (g GoogleAds) IsConfigured() bool {
	return g.CustomerID != "" && g.APIToken != ""
}

type Meta struct {
	BaseURL          string `mapstructure:"meta_base_url"`
	URL              string `mapstructure:"-"`
	Version          string `mapstructure:"meta_version"`
	PixelID          string `mapstructure:"meta_pixel_id"`
	ConversionsToken string `mapstructure:"meta_conversions_token"`
}

func (m Meta) IsConfigured() bool {
	return m.PixelID != "" && m.ConversionsToken != ""
}

type GeoIP struct {
	DatabasePath     string `mapstructure:"geoip_database_path"`
	HTTPFallback     bool   `mapstructure:"geoip_http_fallback"`
	PrimaryURL       string `mapstructure:"geoip_primary_url"`
	SecondaryURL     string `mapstructure:"geoip_secondary_url"`
	DefaultCountry   string `mapstructure:"geoip_default_country"`
	UnknownPlaceName string `mapstructure:"geoip_unknown_place_name"`
}

type RateLimit struct {
	Backend       string `mapstructure:"rate_limit_backend"`
	APIPerMinute  int    `mapstructure:"rate_limit_api_per_minute"`
	FormPerMinute int    `mapstructure:"rate_limit_form_per_minute"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

type Kafka struct {
	Brokers       []string `mapstructure:"kafka_brokers"`
	IdentityTopic string   `mapstructure:"kafka_identity_topic"`
}

func (k Kafka) IsConfigured() bool {
	return len(k.Brokers) > 0 && k.Brokers[0] != "" && k.IdentityTopic != ""
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
	Issuer string `mapstructure:"auth_issuer"`
}

type ConversionRedelivery struct {
	CronSchedule  string `mapstructure:"conversion_redelivery_cron"`
	Enabled       bool   `mapstructure:"conversion_redelivery_enabled"`
	MaxAttempts   int    `mapstructure:"conversion_redelivery_max_attempts"`
	MinAgeMinutes int    `mapstructure:"conversion_redelivery_min_age_minutes"`
	BatchSize     int    `mapstructure:"conversion_redelivery_batch_size"`
}

func SetDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("SITE_URL", "https://attraveiculos.com.br")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://attraveiculos.com.br")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("TRUSTED_PROXIES", 0)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/visitors?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_AUTO_MIGRATE", true)
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	// Limites mínimos de engajamento para enriquecimento
	viper.SetDefault("ENRICHMENT_MIN_PRODUCT_VIEWS", 3)
	viper.SetDefault("ENRICHMENT_MIN_SESSION_PAGES", 4)
	viper.SetDefault("ENRICHMENT_MIN_DWELL_TIME_MS", 60000)
	viper.SetDefault("OUTBOUND_TIMEOUT", "5s")
	viper.SetDefault("IDENTITY_HASH_KEY", "")

	viper.SetDefault("N8N_ENRICHMENT_WEBHOOK_URL", "")
	viper.SetDefault("N8N_ABANDONED_LEAD_WEBHOOK_URL", "")
	viper.SetDefault("N8N_WEBHOOK_SECRET", "")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_API_VERSION", "v18")
	viper.SetDefault("GOOGLE_ADS_CUSTOMER_ID", "")
	viper.SetDefault("GOOGLE_ADS_CONVERSION_ACTION_ID", "")
	viper.SetDefault("GOOGLE_ADS_API_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v21.0")
	viper.SetDefault("META_PIXEL_ID", "")
	viper.SetDefault("META_CONVERSIONS_TOKEN", "")

	viper.SetDefault("GEOIP_DATABASE_PATH", "")
	viper.SetDefault("GEOIP_HTTP_FALLBACK", true)
	viper.SetDefault("GEOIP_PRIMARY_URL", "https://ipapi.co")
	viper.SetDefault("GEOIP_SECONDARY_URL", "http://ip-api.com")
	viper.SetDefault("GEOIP_DEFAULT_COUNTRY", "Brasil")
	viper.SetDefault("GEOIP_UNKNOWN_PLACE_NAME", "Não identificada")

	viper.SetDefault("RATE_LIMIT_BACKEND", "memory") // memory ou redis
	viper.SetDefault("RATE_LIMIT_API_PER_MINUTE", 60)
	viper.SetDefault("RATE_LIMIT_FORM_PER_MINUTE", 10)

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("KAFKA_BROKERS", "")
	viper.SetDefault("KAFKA_IDENTITY_TOPIC", "identity-events")

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("AUTH_ISSUER", "")

	// Reenvio de conversões não entregues
	viper.SetDefault("CONVERSION_REDELIVERY_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("CONVERSION_REDELIVERY_ENABLED", false)
	viper.SetDefault("CONVERSION_REDELIVERY_MAX_ATTEMPTS", 3)
	viper.SetDefault("CONVERSION_REDELIVERY_MIN_AGE_MINUTES", 10)
	viper.SetDefault("CONVERSION_REDELIVERY_BATCH_SIZE", 100)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)
	config.Kafka.Brokers = compact(config.Kafka.Brokers)
	config.App.AllowedOrigins = compact(config.App.AllowedOrigins)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Env, EnvProduction)
}

// Validate verifica as primitivas de segurança obrigatórias.
// Credenciais de plataformas de anúncio e automações ausentes nunca são fatais.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return ErrMissingDatabaseURL
	}

	if c.Server.TrustedProxies < 0 {
		return ErrInvalidTrustedProxy
	}

	// acima de 64 bytes o BLAKE2b recusa a chave e todo identify com CPF falharia
	if len(c.Tracking.IdentityHashKey) > blake2b.Size {
		return ErrInvalidHashKey
	}

	if !c.IsProduction() {
		if c.N8N.WebhookSecret == "" {
			logrus.Warn("N8N_WEBHOOK_SECRET não configurado, webhook de enriquecimento sem autenticação")
		}
		if c.Tracking.IdentityHashKey == "" {
			logrus.Warn("IDENTITY_HASH_KEY não configurada, hash de CPF sem chave")
		}
		return nil
	}

	if c.N8N.WebhookSecret == "" {
		return ErrMissingWebhookSecret
	}

	if c.Auth.Secret == "" {
		return ErrMissingAuthSecret
	}

	if len(c.Tracking.IdentityHashKey) < MinIdentityHashKeyBytes {
		return ErrInvalidHashKey
	}

	return nil
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
