package converting

import (
	"context"
	"strings"

	"github.com/attraveiculos/visitor-identity-api/infrastructure/repository"
	"github.com/attraveiculos/visitor-identity-api/internal/config"
	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/auditing"
	"github.com/attraveiculos/visitor-identity-api/pkg/apiErrors"
	"github.com/attraveiculos/visitor-identity-api/pkg/background"
	"github.com/attraveiculos/visitor-identity-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// PlatformSender entrega conversões a uma plataforma de anúncios
type PlatformSender interface {
	Platform() domain.Platform
	Eligible(event *domain.ConversionEvent) bool
	Send(ctx context.Context, event *domain.ConversionEvent) (*domain.DeliveryResult, error)
}

type Dispatcher interface {
	RecordConversion(ctx context.Context, req *domain.ConversionRequest) (*domain.ConversionResponse, error)
	Redeliver(ctx context.Context, filter repository.UndeliveredFilter) (int, error)
}

type Service struct {
	conversionRepository  repository.ConversionRepository
	sessionRepository     repository.SessionRepository
	fingerprintRepository repository.FingerprintRepository
	profileRepository     repository.ProfileRepository
	eventLog              auditing.EventLog
	runner                background.Runner
	cfg                   *config.Config
	senders               []PlatformSender
}

func NewService(
	conversionRepository repository.ConversionRepository,
	sessionRepository repository.SessionRepository,
	fingerprintRepository repository.FingerprintRepository,
	profileRepository repository.ProfileRepository,
	eventLog auditing.EventLog,
	runner background.Runner,
	cfg *config.Config,
	senders ...PlatformSender,
) *Service {
	return &Service{
		conversionRepository:  conversionRepository,
		sessionRepository:     sessionRepository,
		fingerprintRepository: fingerprintRepository,
		profileRepository:     profileRepository,
		eventLog:              eventLog,
		runner:                runner,
		cfg:                   cfg,
		senders:               senders,
	}
}

// RecordConversion grava a conversão antes de qualquer entrega e agenda o envio para cada
// plataforma elegível. As entregas são independentes entre si.
func (s *Service) RecordConversion(ctx context.Context, req *domain.ConversionRequest) (*domain.ConversionResponse, error) {
	event, err := s.buildEvent(ctx, req)
	if err != nil {
		return nil, err
	}

	if _, err := s.conversionRepository.Insert(ctx, event); err != nil {
		logrus.WithError(err).WithField("fingerprint_id", event.FingerprintID).Error("Erro ao registrar conversão")
		return nil, NewConversionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao registrar conversão")
	}

	profileID := utils.Deref(event.ProfileID)
	if profileID != "" && domain.AdvancesToConverted(event.EventName) {
		if err := s.profileRepository.AdvanceStatus(ctx, profileID, domain.ProfileStatusConverted); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"profile_id":    profileID,
				"conversion_id": event.ID,
			}).Warn("Erro ao avançar status do perfil para convertido")
		}
	}

	s.eventLog.Record(ctx, auditing.NewEvent(
		domain.EventConversionRecorded,
		event.FingerprintID,
		profileID,
		domain.SourceConversion,
		map[string]any{
			"conversion_id": event.ID,
			"event_name":    event.EventName,
			"event_value":   event.EventValue,
			"has_gclid":     event.GCLID != nil,
			"has_fbclid":    event.FBCLID != nil,
		},
	))

	resp := &domain.ConversionResponse{
		Success:      true,
		ConversionID: event.ID,
	}

	for _, sender := range s.senders {
		if !sender.Eligible(event) {
			continue
		}

		sender := sender
		s.runner.Go("conversion_"+string(sender.Platform()), s.cfg.Tracking.Timeout(), func(ctx context.Context) error {
			return s.deliver(ctx, sender, event)
		})

		switch sender.Platform() {
		case domain.PlatformGoogle:
			resp.SentToGoogle = true
		case domain.PlatformMeta:
			resp.SentToMeta = true
		}
	}

	return resp, nil
}

func (s *Service) buildEvent(ctx context.Context, req *domain.ConversionRequest) (*domain.ConversionEvent, error) {
	if strings.TrimSpace(req.FingerprintID) == "" {
		return nil, NewConversionError(ErrFingerprintIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	eventName := strings.TrimSpace(req.EventName)
	if eventName == "" {
		return nil, NewConversionError(ErrEventNameRequired, apiErrors.ErrMissingRequiredData, "")
	}

	hashedEmail, err := hashedIdentifier(req.HashedEmail, "hashed_email")
	if err != nil {
		return nil, err
	}
	hashedPhone, err := hashedIdentifier(req.HashedPhone, "hashed_phone")
	if err != nil {
		return nil, err
	}

	fingerprint, err := s.fingerprintRepository.GetByID(ctx, req.FingerprintID)
	if err != nil {
		logrus.WithError(err).WithField("fingerprint_id", req.FingerprintID).Error("Erro ao buscar fingerprint")
		return nil, NewConversionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar fingerprint")
	}
	if fingerprint == nil {
		return nil, NewConversionError(ErrFingerprintNotFound, apiErrors.ErrNotFound, req.FingerprintID)
	}

	metaEventID, err := utils.GenerateEventID()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar event_id")
		return nil, NewConversionError(ErrEventIDGeneration, apiErrors.ErrInternalServer, "")
	}

	event := &domain.ConversionEvent{
		FingerprintID: fingerprint.ID,
		ProfileID:     fingerprint.ResolvedProfileID,
		EventName:     eventName,
		EventValue:    req.EventValue,
		HashedEmail:   hashedEmail,
		HashedPhone:   hashedPhone,
		PagePath:      utils.NonEmpty(req.PagePath),
		VehicleID:     utils.NonEmpty(req.VehicleID),
		ClientIP:      utils.NonEmpty(&req.ClientIP),
		MetaEventID:   metaEventID,
		Metadata:      req.Metadata,
	}
	if event.Metadata == nil {
		event.Metadata = map[string]any{}
	}

	if req.SessionID != nil && *req.SessionID != "" {
		session, err := s.sessionRepository.GetByID(ctx, *req.SessionID)
		if err != nil {
			logrus.WithError(err).WithField("session_id", *req.SessionID).Warn("Erro ao buscar sessão da conversão")
		}
		if session != nil {
			event.SessionID = &session.ID
			event.ClickIDs = session.ClickIDs
			if event.ClientIP == nil {
				event.ClientIP = session.IPAddress
			}
		}
	}

	return event, nil
}

// hashedIdentifier aceita apenas SHA-256 em hexadecimal. Texto puro nunca é persistido.
func hashedIdentifier(value *string, field string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	hashed := strings.ToLower(strings.TrimSpace(*value))
	if hashed == "" {
		return nil, nil
	}
	if !utils.IsSHA256Hex(hashed) {
		return nil, NewConversionError(ErrPlaintextIdentifier, apiErrors.ErrPlaintextIdentifier, field)
	}
	return &hashed, nil
}

// deliver envia a conversão e anexa o resultado da tentativa, mesmo em falha de transporte
func (s *Service) deliver(ctx context.Context, sender PlatformSender, event *domain.ConversionEvent) error {
	platform := sender.Platform()

	result, sendErr := sender.Send(ctx, event)
	if sendErr != nil || result == nil {
		result = &domain.DeliveryResult{Platform: platform}
	}

	fields := logrus.Fields{
		"conversion_id": event.ID,
		"platform":      platform,
		"status_code":   result.StatusCode,
	}

	if err := s.conversionRepository.RecordDelivery(ctx, event.ID, *result); err != nil {
		logrus.WithError(err).WithFields(fields).Error("Erro ao registrar entrega da conversão")
	}

	s.eventLog.Record(ctx, auditing.NewEvent(
		domain.EventConversionDispatched,
		event.FingerprintID,
		utils.Deref(event.ProfileID),
		domain.SourceConversion,
		map[string]any{
			"conversion_id": event.ID,
			"platform":      string(platform),
			"status_code":   result.StatusCode,
			"delivered":     result.Delivered(),
		},
	))

	if sendErr != nil {
		return errors.Wrapf(sendErr, "falha ao enviar conversão para %s", platform)
	}
	if !result.Delivered() {
		logrus.WithFields(fields).Warn("Plataforma recusou a conversão")
		return errors.Errorf("conversão não aceita por %s", platform)
	}

	logrus.WithFields(fields).Info("Conversão entregue")
	return nil
}
