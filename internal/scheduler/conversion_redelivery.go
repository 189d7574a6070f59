package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/attraveiculos/visitor-identity-api/infrastructure/repository"
	"github.com/attraveiculos/visitor-identity-api/internal/config"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/converting"
)

const redeliveryRunTimeout = 10 * time.Minute

// ConversionRedeliveryConfig representa a configuração do reenvio de conversões
type ConversionRedeliveryConfig struct {
	CronSchedule string
	MaxAttempts  int
	MinAge       time.Duration
	BatchSize    int
	Enabled      bool
}

// RedeliveryStatus é o estado exposto da última execução
type RedeliveryStatus struct {
	Running           bool      `json:"running"`
	LastStartedAt     time.Time `json:"last_started_at"`
	LastCompletedAt   time.Time `json:"last_completed_at"`
	LastRedelivered   int       `json:"last_redelivered"`
	TotalRedelivered  int       `json:"total_redelivered"`
	LastErrorOccurred bool      `json:"last_error_occurred"`
}

// ConversionRedeliveryService reenvia conversões não entregues fora do caminho da requisição
type ConversionRedeliveryService struct {
	scheduler  *gocron.Scheduler
	config     ConversionRedeliveryConfig
	dispatcher converting.Dispatcher
	timeout    time.Duration
	now        func() time.Time

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRedelivered     int
	totalRedelivered    int
	lastFailed          bool
}

func NewConversionRedeliveryService(dispatcher converting.Dispatcher, appConfig *config.Config) *ConversionRedeliveryService {
	redeliveryConfig := ConversionRedeliveryConfig{
		CronSchedule: appConfig.ConversionRedelivery.CronSchedule,
		MaxAttempts:  appConfig.ConversionRedelivery.MaxAttempts,
		MinAge:       time.Duration(appConfig.ConversionRedelivery.MinAgeMinutes) * time.Minute,
		BatchSize:    appConfig.ConversionRedelivery.BatchSize,
		Enabled:      appConfig.ConversionRedelivery.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": redeliveryConfig.CronSchedule,
		"max_attempts":  redeliveryConfig.MaxAttempts,
		"min_age":       redeliveryConfig.MinAge.String(),
		"batch_size":    redeliveryConfig.BatchSize,
		"enabled":       redeliveryConfig.Enabled,
	}).Info("Configuração do reenvio de conversões carregada")

	return &ConversionRedeliveryService{
		scheduler:  gocron.NewScheduler(time.UTC),
		config:     redeliveryConfig,
		dispatcher: dispatcher,
		timeout:    redeliveryRunTimeout,
		now:        time.Now,
	}
}

// Start inicia o agendador
func (s *ConversionRedeliveryService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Reenvio de conversões desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reenvio de conversões")

	s.scheduler.SingletonModeAll()

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RedeliverPending(ctx); err != nil {
			logrus.WithError(err).Error("Erro no reenvio de conversões")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reenvio de conversões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reenvio de conversões")
		s.scheduler.Stop()
	}()

	return nil
}

// RedeliverPending executa uma rodada de reenvio. Rodadas concorrentes são ignoradas.
func (s *ConversionRedeliveryService) RedeliverPending(ctx context.Context) (int, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reenvio de conversões já em andamento, ignorando")
		return 0, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	var (
		count int
		err   error
	)

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.lastRedelivered = count
		s.totalRedelivered += count
		s.lastFailed = err != nil
		s.syncMutex.Unlock()
	}()

	filter := repository.UndeliveredFilter{
		MaxAttempts: s.config.MaxAttempts,
		OlderThan:   s.now().Add(-s.config.MinAge),
		Limit:       uint64(s.config.BatchSize),
	}

	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := s.now()
	count, err = s.dispatcher.Redeliver(runCtx, filter)
	if err != nil {
		return count, err
	}

	logrus.WithFields(logrus.Fields{
		"redelivered": count,
		"duration":    s.now().Sub(start).String(),
	}).Info("Reenvio de conversões concluído")

	return count, nil
}

func (s *ConversionRedeliveryService) GetStatus() RedeliveryStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return RedeliveryStatus{
		Running:           s.syncRunning,
		LastStartedAt:     s.lastSyncStartedAt,
		LastCompletedAt:   s.lastSyncCompletedAt,
		LastRedelivered:   s.lastRedelivered,
		TotalRedelivered:  s.totalRedelivered,
		LastErrorOccurred: s.lastFailed,
	}
}

// TriggerManualSync dispara uma rodada fora do cron
func (s *ConversionRedeliveryService) TriggerManualSync() {
	go func() {
		if _, err := s.RedeliverPending(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro no reenvio manual de conversões")
		}
	}()
}
