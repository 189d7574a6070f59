package enriching

import (
	"context"
	"strings"
	"time"

	"github.com/attraveiculos/visitor-identity-api/infrastructure/integrator/n8n"
	"github.com/attraveiculos/visitor-identity-api/infrastructure/repository"
	"github.com/attraveiculos/visitor-identity-api/internal/config"
	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/auditing"
	"github.com/attraveiculos/visitor-identity-api/pkg/apiErrors"
	"github.com/attraveiculos/visitor-identity-api/pkg/background"
	"github.com/attraveiculos/visitor-identity-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

const (
	behavioralEnrichmentType = "behavioral_enrichment"
	webhookNotConfigured     = "Webhook not configured"
	unknownValue             = "unknown"
	directTraffic            = "direct"
)

// SignalAggregator calcula os sinais de engajamento gravados para um fingerprint
type SignalAggregator interface {
	AggregateSignals(ctx context.Context, fingerprintID string, sessionID *string) (*domain.BehavioralSignals, error)
}

type Gate interface {
	CheckAndTrigger(ctx context.Context, req *domain.EnrichCheckRequest) (*domain.EnrichCheckResult, error)
}

type GateService struct {
	fingerprintRepository repository.FingerprintRepository
	sessionRepository     repository.SessionRepository
	pageViewRepository    repository.PageViewRepository
	profileRepository     repository.ProfileRepository
	aggregator            SignalAggregator
	eventLog              auditing.EventLog
	n8n                   n8n.N8NIntegrator
	runner                background.Runner
	cfg                   *config.Config
	now                   func() time.Time
}

func NewGateService(
	fingerprintRepository repository.FingerprintRepository,
	sessionRepository repository.SessionRepository,
	pageViewRepository repository.PageViewRepository,
	profileRepository repository.ProfileRepository,
	aggregator SignalAggregator,
	eventLog auditing.EventLog,
	n8nService n8n.N8NIntegrator,
	runner background.Runner,
	cfg *config.Config,
) *GateService {
	return &GateService{
		fingerprintRepository: fingerprintRepository,
		sessionRepository:     sessionRepository,
		pageViewRepository:    pageViewRepository,
		profileRepository:     profileRepository,
		aggregator:            aggregator,
		eventLog:              eventLog,
		n8n:                   n8nService,
		runner:                runner,
		cfg:                   cfg,
		now:                   time.Now,
	}
}

// CheckAndTrigger avalia o engajamento do visitante e, quando qualificado, garante um perfil
// e dispara o enriquecimento comportamental em background.
func (s *GateService) CheckAndTrigger(ctx context.Context, req *domain.EnrichCheckRequest) (*domain.EnrichCheckResult, error) {
	if strings.TrimSpace(req.FingerprintID) == "" {
		return nil, NewEnrichmentError(ErrFingerprintIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	fingerprint, err := s.fingerprintRepository.GetByID(ctx, req.FingerprintID)
	if err != nil {
		logrus.WithError(err).WithField("fingerprint_id", req.FingerprintID).Error("Erro ao buscar fingerprint")
		return nil, NewEnrichmentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar fingerprint")
	}
	if fingerprint == nil {
		return nil, NewEnrichmentError(ErrFingerprintNotFound, apiErrors.ErrNotFound, req.FingerprintID)
	}

	signals := req.Signals
	if signals == nil {
		signals, err = s.aggregator.AggregateSignals(ctx, fingerprint.ID, req.SessionID)
		if err != nil {
			logrus.WithError(err).WithField("fingerprint_id", fingerprint.ID).Error("Erro ao calcular sinais de engajamento")
			return nil, NewEnrichmentError(ErrSignalsUnavailable, apiErrors.ErrDatabaseOperation, "")
		}
	}

	qualifies, report := Qualifies(*signals, ThresholdsFromConfig(s.cfg.Tracking))
	if !qualifies {
		return &domain.EnrichCheckResult{
			Success:    true,
			Triggered:  false,
			Reason:     domain.ReasonBelowThreshold,
			Thresholds: report,
		}, nil
	}

	profileID, err := s.ensureProfile(ctx, fingerprint, signals)
	if err != nil {
		return nil, err
	}

	if !s.n8n.EnrichmentConfigured() {
		logrus.WithField("profile_id", profileID).Warn("Webhook de enriquecimento não configurado")
		return &domain.EnrichCheckResult{
			Success:   true,
			Triggered: true,
			ProfileID: profileID,
			SentToN8N: false,
			Error:     webhookNotConfigured,
		}, nil
	}

	session := s.session(ctx, fingerprint.ID, req.SessionID)
	payload := s.payload(fingerprint, session, profileID, req.ClientIP)

	s.runner.Go("n8n_behavioral_enrichment", s.cfg.Tracking.Timeout(), func(ctx context.Context) error {
		return s.n8n.SendBehavioralEnrichment(ctx, payload)
	})

	s.eventLog.Record(ctx, auditing.NewEvent(
		domain.EventEnrichmentRequested,
		fingerprint.ID,
		profileID,
		domain.SourceBehavioralEnrichment,
		map[string]any{
			"source":         "behavioral",
			"ip":             payload.IPAddress,
			"device_type":    utils.Deref(payload.DeviceSignals["device_type"]),
			"traffic_source": trafficSource(payload.TrafficSignals["utm_source"]),
		},
	))

	return &domain.EnrichCheckResult{
		Success:   true,
		Triggered: true,
		ProfileID: profileID,
		SentToN8N: true,
	}, nil
}

// ensureProfile devolve o perfil vinculado ao fingerprint, criando um perfil anônimo quando não há nenhum
func (s *GateService) ensureProfile(ctx context.Context, fingerprint *domain.Fingerprint, signals *domain.BehavioralSignals) (string, error) {
	if fingerprint.IsResolved() {
		profileID := *fingerprint.ResolvedProfileID
		s.refreshCounters(ctx, profileID)
		return profileID, nil
	}

	profileID, created, err := s.profileRepository.CreateAnonymousFor(ctx, fingerprint.ID, domain.BasisBehavioralEngagement)
	if err != nil {
		logrus.WithError(err).WithField("fingerprint_id", fingerprint.ID).Error("Erro ao criar perfil anônimo")
		return "", NewEnrichmentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar perfil")
	}
	if !created {
		// outra requisição vinculou o fingerprint primeiro
		current, err := s.fingerprintRepository.GetByID(ctx, fingerprint.ID)
		if err != nil || current == nil || !current.IsResolved() {
			return "", NewEnrichmentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao vincular perfil")
		}
		return *current.ResolvedProfileID, nil
	}

	now := s.now().UTC()
	totals := domain.PageViewTotals{
		PageViews:        signals.CurrentSessionPages,
		ProductViews:     signals.ProductPagesViewed,
		DwellTimeSeconds: int(signals.TotalDwellTimeMs / 1000),
		Sessions:         signals.VisitCount,
		LastActiveAt:     &now,
	}
	if err := s.profileRepository.UpdateCounters(ctx, profileID, totals); err != nil {
		logrus.WithError(err).WithField("profile_id", profileID).Warn("Erro ao gravar contadores do perfil anônimo")
	}

	s.eventLog.Record(ctx, auditing.NewEvent(
		domain.EventAnonymousProfile,
		fingerprint.ID,
		profileID,
		domain.SourceBehavioralEnrichment,
		map[string]any{
			"reason":                "behavioral_threshold_met",
			"product_pages_viewed":  signals.ProductPagesViewed,
			"current_session_pages": signals.CurrentSessionPages,
			"total_dwell_time_ms":   signals.TotalDwellTimeMs,
		},
	))

	return profileID, nil
}

func (s *GateService) refreshCounters(ctx context.Context, profileID string) {
	totals, err := s.pageViewRepository.TotalsByProfile(ctx, profileID)
	if err != nil {
		logrus.WithError(err).WithField("profile_id", profileID).Warn("Erro ao agregar contadores do perfil")
		return
	}
	if totals == nil {
		return
	}
	if err := s.profileRepository.UpdateCounters(ctx, profileID, *totals); err != nil {
		logrus.WithError(err).WithField("profile_id", profileID).Warn("Erro ao atualizar contadores do perfil")
	}
}

func (s *GateService) session(ctx context.Context, fingerprintID string, sessionID *string) *domain.Session {
	var (
		session *domain.Session
		err     error
	)
	if sessionID != nil && *sessionID != "" {
		session, err = s.sessionRepository.GetByID(ctx, *sessionID)
	} else {
		session, err = s.sessionRepository.GetLatestByFingerprint(ctx, fingerprintID)
	}
	if err != nil {
		logrus.WithError(err).WithField("fingerprint_id", fingerprintID).Warn("Erro ao buscar sessão para enriquecimento")
		return nil
	}
	return session
}

func (s *GateService) payload(fingerprint *domain.Fingerprint, session *domain.Session, profileID string, clientIP string) *domain.BehavioralEnrichmentRequest {
	device := fingerprint.Device
	deviceType := device.DeviceType
	if deviceType == nil {
		deviceType = utils.StringPtr(unknownValue)
	}

	traffic := map[string]*string{
		"utm_source":      nil,
		"utm_medium":      nil,
		"utm_campaign":    nil,
		"referrer_domain": nil,
		"gclid":           nil,
		"fbclid":          nil,
	}

	ip := clientIP
	if session != nil {
		traffic["utm_source"] = session.UTM.Source
		traffic["utm_medium"] = session.UTM.Medium
		traffic["utm_campaign"] = session.UTM.Campaign
		traffic["referrer_domain"] = session.ReferrerDomain
		traffic["gclid"] = session.ClickIDs.GCLID
		traffic["fbclid"] = session.ClickIDs.FBCLID
		if session.IPAddress != nil && *session.IPAddress != "" {
			ip = *session.IPAddress
		}
	}

	return &domain.BehavioralEnrichmentRequest{
		Type:          behavioralEnrichmentType,
		ProfileID:     profileID,
		FingerprintID: fingerprint.ID,
		IPAddress:     ip,
		DeviceSignals: map[string]*string{
			"browser":     device.BrowserName,
			"os":          device.OSName,
			"device_type": deviceType,
			"timezone":    device.Timezone,
			"language":    device.Language,
		},
		TrafficSignals: traffic,
		Timestamp:      s.now().UTC().Format(time.RFC3339),
	}
}

func trafficSource(utmSource *string) string {
	if utmSource == nil || *utmSource == "" {
		return directTraffic
	}
	return *utmSource
}
