package recovering

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
	"github.com/sirupsen/logrus"
)

const (
	localTimezone    = "America/Sao_Paulo"
	localTimeLayout  = "02/01/2006, 15:04:05"
	brasiliaOffsetHr = -3
)

// saoPaulo cai para UTC-3 fixo quando o tzdata não está disponível
var saoPaulo = func() *time.Location {
	loc, err := time.LoadLocation(localTimezone)
	if err != nil {
		return time.FixedZone("BRT", brasiliaOffsetHr*60*60)
	}
	return loc
}()

type Recoverer interface {
	OnAbandon(ctx context.Context, req *domain.AbandonRequest) (*domain.AbandonOutcome, error)
}

type Service struct {
	fingerprintRepository repository.FingerprintRepository
	profileRepository     repository.ProfileRepository
	eventLog              auditing.EventLog
	n8n                   n8n.N8NIntegrator
	runner                background.Runner
	cfg                   *config.Config
	now                   func() time.Time
}

func NewService(
	fingerprintRepository repository.FingerprintRepository,
	profileRepository repository.ProfileRepository,
	eventLog auditing.EventLog,
	n8nService n8n.N8NIntegrator,
	runner background.Runner,
	cfg *config.Config,
) *Service {
	return &Service{
		fingerprintRepository: fingerprintRepository,
		profileRepository:     profileRepository,
		eventLog:              eventLog,
		n8n:                   n8nService,
		runner:                runner,
		cfg:                   cfg,
		now:                   time.Now,
	}
}

// OnAbandon encaminha o visitante para recuperação apenas quando o perfil tem email ou telefone
func (s *Service) OnAbandon(ctx context.Context, req *domain.AbandonRequest) (*domain.AbandonOutcome, error) {
	if strings.TrimSpace(req.FingerprintID) == "" {
		return nil, NewRecoveryError(ErrFingerprintIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	fingerprint, err := s.fingerprintRepository.GetByID(ctx, req.FingerprintID)
	if err != nil {
		logrus.WithError(err).WithField("fingerprint_id", req.FingerprintID).Error("Erro ao buscar fingerprint")
		return nil, NewRecoveryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar fingerprint")
	}
	if !fingerprint.IsResolved() {
		return ineligible(domain.AbandonNoProfile), nil
	}

	profileID := *fingerprint.ResolvedProfileID
	profile, err := s.profileRepository.GetByID(ctx, profileID)
	if err != nil {
		logrus.WithError(err).WithField("profile_id", profileID).Error("Erro ao buscar perfil")
		return nil, NewRecoveryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar perfil")
	}
	if profile == nil {
		return ineligible(domain.AbandonProfileNotFound), nil
	}
	if !profile.HasContact() {
		return ineligible(domain.AbandonNoIdentifiableData), nil
	}

	signals := req.Signals
	if signals == nil {
		signals = &domain.BehavioralSignals{PageHistory: []string{}}
	}

	s.eventLog.Record(ctx, auditing.NewEvent(
		domain.EventSessionAbandoned,
		fingerprint.ID,
		profile.ID,
		domain.SourceAbandonmentDetection,
		map[string]any{
			"reason":         req.Reason,
			"pages_viewed":   signals.CurrentSessionPages,
			"total_dwell_ms": signals.TotalDwellTimeMs,
			"product_pages":  signals.ProductPagesViewed,
		},
	))

	if s.n8n.AbandonedLeadConfigured() {
		payload := s.payload(req, fingerprint.ID, profile, signals)
		s.runner.Go("n8n_abandoned_lead", s.cfg.Tracking.Timeout(), func(ctx context.Context) error {
			return s.n8n.SendAbandonedLead(ctx, payload)
		})
		logrus.WithFields(logrus.Fields{
			"profile_id": profile.ID,
			"reason":     req.Reason,
		}).Info("Lead abandonado encaminhado para recuperação")
	} else {
		logrus.Warn("Webhook de leads abandonados não configurado")
	}

	return &domain.AbandonOutcome{
		Success:   true,
		ProfileID: profile.ID,
		Reason:    req.Reason,
	}, nil
}

func (s *Service) payload(
	req *domain.AbandonRequest,
	fingerprintID string,
	profile *domain.Profile,
	signals *domain.BehavioralSignals,
) *domain.AbandonedLeadPayload {
	now := s.now()

	return &domain.AbandonedLeadPayload{
		ProfileID:      profile.ID,
		FingerprintID:  fingerprintID,
		SessionID:      req.SessionID,
		Reason:         req.Reason,
		Timestamp:      now.UTC().Format(time.RFC3339),
		LocalTimestamp: now.In(saoPaulo).Format(localTimeLayout),
		Visitor: domain.AbandonedVisitor{
			Email:            profile.Email,
			Phone:            profile.Phone,
			Name:             profile.DisplayName(),
			Status:           profile.Status,
			EnrichmentSource: profile.EnrichmentSource,
		},
		BehavioralSignals: signals,
		Geolocation:       req.Geolocation,
		UTMParams:         req.UTM,
		ClickIDs:          req.ClickIDs,
	}
}

func ineligible(reason domain.AbandonIneligibleReason) *domain.AbandonOutcome {
	return &domain.AbandonOutcome{
		Success: false,
		Reason:  string(reason),
	}
}
