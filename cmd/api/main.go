package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"
	_ "time/tzdata"

	"github.com/sirupsen/logrus"

	"github.com/attraveiculos/visitor-identity-api/infrastructure/cache/redislimiter"
	"github.com/attraveiculos/visitor-identity-api/infrastructure/database/migrations"
	"github.com/attraveiculos/visitor-identity-api/infrastructure/database/postgres"
	"github.com/attraveiculos/visitor-identity-api/infrastructure/integrator/geo"
	"github.com/attraveiculos/visitor-identity-api/infrastructure/integrator/google"
	"github.com/attraveiculos/visitor-identity-api/infrastructure/integrator/google/googleclient"
	"github.com/attraveiculos/visitor-identity-api/infrastructure/integrator/meta"
	"github.com/attraveiculos/visitor-identity-api/infrastructure/integrator/meta/metaclient"
	"github.com/attraveiculos/visitor-identity-api/infrastructure/integrator/n8n"
	"github.com/attraveiculos/visitor-identity-api/infrastructure/messaging/kafka"
	"github.com/attraveiculos/visitor-identity-api/infrastructure/repository"
	"github.com/attraveiculos/visitor-identity-api/internal/api"
	"github.com/attraveiculos/visitor-identity-api/internal/config"
	"github.com/attraveiculos/visitor-identity-api/internal/scheduler"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/auditing"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/authenticating"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/converting"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/enriching"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/identifying"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/recovering"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/reporting"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/tracking"
	"github.com/attraveiculos/visitor-identity-api/pkg/background"
	"github.com/attraveiculos/visitor-identity-api/pkg/middleware"
)

const (
	limiterBackendRedis    = "redis"
	limiterCleanupInterval = 5 * time.Minute
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Fatal("Configuração inválida")
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(pgConn.DB); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	fingerprintRepo := repository.NewFingerprintRepository(pgConn)
	sessionRepo := repository.NewSessionRepository(pgConn)
	pageViewRepo := repository.NewPageViewRepository(pgConn)
	profileRepo := repository.NewProfileRepository(pgConn)
	identityEventRepo := repository.NewIdentityEventRepository(pgConn)
	conversionRepo := repository.NewConversionRepository(pgConn)
	visitorReportRepo := repository.NewVisitorReportRepository(pgConn)

	var publisher auditing.Publisher
	if cfg.Kafka.IsConfigured() {
		identityPublisher := kafka.NewIdentityPublisher(cfg.Kafka)
		defer identityPublisher.Close()
		publisher = identityPublisher
		logrus.WithField("topic", cfg.Kafka.IdentityTopic).Info("Publicação de eventos de identidade no Kafka habilitada")
	}
	eventLog := auditing.NewService(identityEventRepo, publisher)

	geoLocator := geo.New(cfg)
	defer geoLocator.Close()

	n8nIntegrator := n8n.New(cfg)
	googleIntegrator := google.New(cfg, googleclient.NewClient(cfg))
	metaIntegrator := meta.New(cfg, metaclient.NewClient(cfg))

	limiter := rateLimiter(ctx, cfg)

	runner := background.NewRunner()

	tracker := tracking.NewService(fingerprintRepo, sessionRepo, pageViewRepo, eventLog, geoLocator, runner, cfg)
	resolver := identifying.NewService(fingerprintRepo, profileRepo, eventLog, n8nIntegrator, runner, cfg)
	gate := enriching.NewGateService(fingerprintRepo, sessionRepo, pageViewRepo, profileRepo, tracker, eventLog, n8nIntegrator, runner, cfg)
	ingestor := enriching.NewIngestService(profileRepo, pageViewRepo, eventLog)
	dispatcher := converting.NewService(
		conversionRepo,
		sessionRepo,
		fingerprintRepo,
		profileRepo,
		eventLog,
		runner,
		cfg,
		googleIntegrator,
		metaIntegrator,
	)
	recoverer := recovering.NewService(fingerprintRepo, profileRepo, eventLog, n8nIntegrator, runner, cfg)
	reporter := reporting.NewService(visitorReportRepo)
	authenticator := authenticating.NewService(cfg)

	redeliveryService := scheduler.NewConversionRedeliveryService(dispatcher, cfg)
	if err := redeliveryService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reenvio de conversões")
	}

	server, err := api.New(
		cfg,
		api.Services{
			Tracker:    tracker,
			Resolver:   resolver,
			Gate:       gate,
			Ingestor:   ingestor,
			Dispatcher: dispatcher,
			Recoverer:  recoverer,
			Reporter:   reporter,
			Validator:  authenticator,
			Redelivery: redeliveryService,
			Database:   pgConn,
		},
		limiter,
		runner,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// rateLimiter escolhe o backend do rate limit; Redis indisponível cai para memória
func rateLimiter(ctx context.Context, cfg *config.Config) middleware.Limiter {
	if cfg.RateLimit.Backend == limiterBackendRedis {
		client := redislimiter.NewClient(cfg.Redis)
		if err := client.Ping(ctx).Err(); err != nil {
			logrus.WithError(err).Warn("Redis indisponível, rate limit em memória")
			client.Close()
		} else {
			logrus.WithField("addr", cfg.Redis.Addr).Info("Rate limit usando Redis")
			return redislimiter.New(client)
		}
	}

	limiter := middleware.NewMemoryLimiter()
	limiter.StartCleanup(ctx, limiterCleanupInterval, time.Minute)
	return limiter
}
