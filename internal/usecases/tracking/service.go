package tracking

import (
	"context"
	"strings"

	"github.com/attraveiculos/visitor-identity-api/infrastructure/integrator/geo"
	"github.com/attraveiculos/visitor-identity-api/infrastructure/repository"
	"github.com/attraveiculos/visitor-identity-api/internal/config"
	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/auditing"
	"github.com/attraveiculos/visitor-identity-api/pkg/apiErrors"
	"github.com/attraveiculos/visitor-identity-api/pkg/background"
	"github.com/attraveiculos/visitor-identity-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type Tracker interface {
	StartSession(ctx context.Context, req *domain.StartSessionRequest) (*domain.StartSessionResponse, error)
	RecordPageView(ctx context.Context, req *domain.PageViewRequest) error
	RecordPageTime(ctx context.Context, req *domain.PageTimeRequest) error
	RecordInteraction(ctx context.Context, req *domain.InteractionRequest) error
	AggregateSignals(ctx context.Context, fingerprintID string, sessionID *string) (*domain.BehavioralSignals, error)
}

type Service struct {
	fingerprintRepository repository.FingerprintRepository
	sessionRepository     repository.SessionRepository
	pageViewRepository    repository.PageViewRepository
	eventLog              auditing.EventLog
	geoLocator            geo.GeoLocator
	runner                background.Runner
	cfg                   *config.Config
}

func NewService(
	fingerprintRepository repository.FingerprintRepository,
	sessionRepository repository.SessionRepository,
	pageViewRepository repository.PageViewRepository,
	eventLog auditing.EventLog,
	geoLocator geo.GeoLocator,
	runner background.Runner,
	cfg *config.Config,
) *Service {
	return &Service{
		fingerprintRepository: fingerprintRepository,
		sessionRepository:     sessionRepository,
		pageViewRepository:    pageViewRepository,
		eventLog:              eventLog,
		geoLocator:            geoLocator,
		runner:                runner,
		cfg:                   cfg,
	}
}

// StartSession registra o fingerprint do dispositivo e abre uma nova sessão.
// A geolocalização é resolvida depois, fora do caminho da resposta.
func (s *Service) StartSession(ctx context.Context, req *domain.StartSessionRequest) (*domain.StartSessionResponse, error) {
	visitorID := strings.TrimSpace(req.VisitorID)
	sessionKey := strings.TrimSpace(req.SessionID)
	if visitorID == "" || sessionKey == "" {
		return nil, NewTrackingError(ErrVisitorIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	device := fillDevice(req.Device, req.UserAgent)

	fingerprint, err := s.fingerprintRepository.Upsert(ctx, visitorID, device, domain.DeviceFingerprintConfidence)
	if err != nil {
		logrus.WithError(err).Error("Erro ao registrar fingerprint")
		return nil, NewTrackingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao registrar fingerprint")
	}

	if fingerprint.Created {
		s.eventLog.Record(ctx, auditing.NewEvent(domain.EventVisitorFirstSeen, fingerprint.ID, "", domain.SourceTracking, map[string]any{
			"visitor_id":  visitorID,
			"device_type": utils.Deref(device.DeviceType),
		}))
	}

	ip := strings.TrimSpace(req.ClientIP)
	sessionID, err := s.sessionRepository.Open(ctx, domain.OpenSessionRequest{
		FingerprintID:  fingerprint.ID,
		SessionID:      sessionKey,
		ReferrerURL:    utils.NonEmpty(req.ReferrerURL),
		ReferrerDomain: utils.HostFromURL(req.ReferrerURL),
		UTM:            req.UTM,
		ClickIDs:       req.ClickIDs,
		IPAddress:      utils.NonEmpty(&ip),
	})
	if err != nil {
		logrus.WithError(err).WithField("fingerprint_id", fingerprint.ID).Error("Erro ao abrir sessão")
		return nil, NewTrackingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao abrir sessão")
	}

	s.eventLog.Record(ctx, auditing.NewEvent(domain.EventSessionStarted, fingerprint.ID, "", domain.SourceTracking, map[string]any{
		"session_id":   sessionID,
		"visit_number": fingerprint.TotalVisits,
		"utm_source":   utils.Deref(req.UTM.Source),
		"utm_campaign": utils.Deref(req.UTM.Campaign),
		"has_click_id": !req.ClickIDs.IsEmpty(),
	}))

	if ip != "" {
		s.runner.Go("session_geolocation", s.cfg.Tracking.Timeout(), func(ctx context.Context) error {
			location := s.geoLocator.Locate(ctx, ip)
			return s.sessionRepository.UpdateGeolocation(ctx, sessionID, location)
		})
	}

	return &domain.StartSessionResponse{
		Success:       true,
		FingerprintID: fingerprint.ID,
		SessionID:     sessionID,
	}, nil
}

func (s *Service) RecordPageView(ctx context.Context, req *domain.PageViewRequest) error {
	if err := validateRefs(req.FingerprintID, req.SessionID); err != nil {
		return err
	}
	if strings.TrimSpace(req.PagePath) == "" {
		return NewTrackingError(ErrPagePathRequired, apiErrors.ErrMissingRequiredData, "")
	}

	pageView := &domain.PageView{
		FingerprintID: req.FingerprintID,
		SessionID:     req.SessionID,
		PageURL:       utils.NonEmpty(req.PageURL),
		PagePath:      req.PagePath,
		PageTitle:     utils.NonEmpty(req.PageTitle),
		PageType:      utils.NonEmpty(req.PageType),
		VehicleRefs:   req.VehicleRefs,
	}

	if _, err := s.pageViewRepository.Insert(ctx, pageView); err != nil {
		logrus.WithError(err).WithField("session_id", req.SessionID).Error("Erro ao registrar page view")
		return NewTrackingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao registrar page view")
	}

	if err := s.sessionRepository.IncrementPageViews(ctx, req.SessionID, pageView.IsProductView()); err != nil {
		logrus.WithError(err).WithField("session_id", req.SessionID).Error("Erro ao atualizar contadores da sessão")
		return NewTrackingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar sessão")
	}

	return nil
}

// RecordPageTime grava o tempo na page view mais recente do caminho dentro da sessão
func (s *Service) RecordPageTime(ctx context.Context, req *domain.PageTimeRequest) error {
	if strings.TrimSpace(req.SessionID) == "" {
		return NewTrackingError(ErrSessionIDRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if strings.TrimSpace(req.PagePath) == "" {
		return NewTrackingError(ErrPagePathRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if req.TimeOnPageSeconds == nil || *req.TimeOnPageSeconds < 0 {
		return NewTrackingError(ErrInvalidPageTime, apiErrors.ErrInvalidFormat, "")
	}

	updated, err := s.pageViewRepository.SetTimeOnLatest(ctx, req.SessionID, req.PagePath, *req.TimeOnPageSeconds)
	if err != nil {
		logrus.WithError(err).WithField("session_id", req.SessionID).Error("Erro ao registrar tempo na página")
		return NewTrackingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao registrar tempo na página")
	}

	if !updated {
		logrus.WithFields(logrus.Fields{
			"session_id": req.SessionID,
			"path":       req.PagePath,
		}).Debug("Nenhuma page view encontrada para registrar o tempo")
	}

	return nil
}

func (s *Service) RecordInteraction(ctx context.Context, req *domain.InteractionRequest) error {
	effect, ok := interactions[req.Type]
	if !ok {
		return NewTrackingError(ErrUnknownInteraction, apiErrors.ErrUnknownInteraction, string(req.Type))
	}
	if err := validateRefs(req.FingerprintID, req.SessionID); err != nil {
		return err
	}

	logger := logrus.WithFields(logrus.Fields{
		"session_id": req.SessionID,
		"type":       req.Type,
	})

	if effect.sessionFlag != "" {
		if err := s.sessionRepository.SetFlag(ctx, req.SessionID, effect.sessionFlag); err != nil {
			logger.WithError(err).Error("Erro ao marcar flag da sessão")
			return NewTrackingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao registrar interação")
		}
	}

	if effect.pageViewFlag != "" && req.PagePath != "" {
		updated, err := s.pageViewRepository.SetFlagOnLatest(ctx, req.SessionID, req.PagePath, effect.pageViewFlag)
		if err != nil {
			logger.WithError(err).Error("Erro ao marcar flag da page view")
			return NewTrackingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao registrar interação")
		}
		if !updated {
			logger.WithField("path", req.PagePath).Debug("Nenhuma page view encontrada para a interação")
		}
	}

	if effect.eventType != "" {
		s.eventLog.Record(ctx, auditing.NewEvent(effect.eventType, req.FingerprintID, s.resolvedProfileID(ctx, req.FingerprintID), domain.SourceInteraction, map[string]any{
			"session_id": req.SessionID,
			"page_path":  req.PagePath,
			"metadata":   req.Metadata,
		}))
	}

	return nil
}

// resolvedProfileID devolve o perfil já vinculado ao fingerprint, ou vazio
func (s *Service) resolvedProfileID(ctx context.Context, fingerprintID string) string {
	fp, err := s.fingerprintRepository.GetByID(ctx, fingerprintID)
	if err != nil {
		logrus.WithError(err).WithField("fingerprint_id", fingerprintID).Warn("Erro ao buscar fingerprint da interação")
		return ""
	}
	if fp == nil || !fp.IsResolved() {
		return ""
	}
	return *fp.ResolvedProfileID
}

func validateRefs(fingerprintID, sessionID string) error {
	if strings.TrimSpace(fingerprintID) == "" {
		return NewTrackingError(ErrFingerprintIDRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if strings.TrimSpace(sessionID) == "" {
		return NewTrackingError(ErrSessionIDRequired, apiErrors.ErrMissingRequiredData, "")
	}
	return nil
}
