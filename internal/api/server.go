package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/attraveiculos/visitor-identity-api/internal/api/handler"
	"github.com/attraveiculos/visitor-identity-api/internal/api/handler/router"
	"github.com/attraveiculos/visitor-identity-api/internal/config"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/converting"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/enriching"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/identifying"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/recovering"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/reporting"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/tracking"
	"github.com/attraveiculos/visitor-identity-api/pkg/background"
	"github.com/attraveiculos/visitor-identity-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services reúne os casos de uso expostos via HTTP
type Services struct {
	Tracker    tracking.Tracker
	Resolver   identifying.Resolver
	Gate       enriching.Gate
	Ingestor   enriching.Ingestor
	Dispatcher converting.Dispatcher
	Recoverer  recovering.Recoverer
	Reporter   reporting.Reporter
	Validator  middleware.TokenValidator
	Redelivery handler.RedeliveryJob
	Database   handler.Pinger
}

type Server struct {
	httpServer *http.Server
	runner     background.Runner
}

func New(
	config *config.Config,
	services Services,
	limiter middleware.Limiter,
	runner background.Runner,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithRoutes(handler.Tracking(
			config,
			limiter,
			services.Tracker,
			services.Resolver,
			services.Gate,
			services.Dispatcher,
			services.Recoverer,
		)...),
		router.WithRoutes(handler.Webhooks(config, services.Ingestor)...),
		router.WithRoutes(handler.AdminVisitors(services.Validator, services.Reporter)...),
		router.WithRoutes(handler.CronJobs(services.Validator, services.Redelivery)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.RealIP(config.Server.TrustedProxies),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.App.AllowedOrigins),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
		runner: runner,
	}

	return srv, nil
}

// Handler expõe a cadeia HTTP completa
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown para de aceitar requisições e aguarda as tarefas em background
func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	logrus.Info("Servidor HTTP desligado com sucesso")

	if s.runner == nil {
		return nil
	}

	if err := s.runner.Wait(ctx); err != nil {
		logrus.WithError(err).Warn("Tarefas em background não finalizaram dentro do prazo")
		return err
	}

	logrus.Info("Tarefas em background finalizadas")
	return nil
}
