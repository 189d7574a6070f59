package enriching

import (
	"context"
	"strings"
	"time"

	"github.com/attraveiculos/visitor-identity-api/infrastructure/repository"
	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/auditing"
	"github.com/attraveiculos/visitor-identity-api/pkg/apiErrors"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	messageEnriched         = "Profile enriched successfully"
	messageFailureLogged    = "Enrichment failed logged"
	unknownEnrichmentError  = "Unknown error"
	unknownEnrichmentSource = "unknown"
)

type Ingestor interface {
	Ingest(ctx context.Context, result *domain.EnrichmentResult) (*domain.EnrichmentIngestResponse, error)
}

type IngestService struct {
	profileRepository  repository.ProfileRepository
	pageViewRepository repository.PageViewRepository
	eventLog           auditing.EventLog
	now                func() time.Time
}

func NewIngestService(
	profileRepository repository.ProfileRepository,
	pageViewRepository repository.PageViewRepository,
	eventLog auditing.EventLog,
) *IngestService {
	return &IngestService{
		profileRepository:  profileRepository,
		pageViewRepository: pageViewRepository,
		eventLog:           eventLog,
		now:                time.Now,
	}
}

// Ingest aplica o resultado do enriquecimento ao perfil e recalcula o lead score
func (s *IngestService) Ingest(ctx context.Context, result *domain.EnrichmentResult) (*domain.EnrichmentIngestResponse, error) {
	if strings.TrimSpace(result.ProfileID) == "" {
		return nil, NewEnrichmentError(ErrProfileIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	source := strings.ToLower(strings.TrimSpace(result.Source))
	if source == "" {
		source = unknownEnrichmentSource
	}

	profile, err := s.profileRepository.GetByID(ctx, result.ProfileID)
	if err != nil {
		logrus.WithError(err).WithField("profile_id", result.ProfileID).Error("Erro ao buscar perfil")
		return nil, NewEnrichmentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar perfil")
	}
	if profile == nil {
		return nil, NewEnrichmentError(ErrProfileNotFound, apiErrors.ErrNotFound, result.ProfileID)
	}

	fingerprintID := ""
	if result.FingerprintID != nil {
		fingerprintID = *result.FingerprintID
	}

	if !result.Success {
		providerError := unknownEnrichmentError
		if msg, ok := result.Data["error"].(string); ok && msg != "" {
			providerError = msg
		}

		logrus.WithFields(logrus.Fields{
			"profile_id": profile.ID,
			"source":     source,
			"error":      providerError,
		}).Warn("Enriquecimento falhou no provedor")

		s.eventLog.Record(ctx, auditing.NewEvent(
			domain.EventEnrichmentFailed,
			fingerprintID,
			profile.ID,
			source,
			map[string]any{"source": source, "error": providerError},
		))

		return &domain.EnrichmentIngestResponse{
			Success: false,
			Message: messageFailureLogged,
		}, nil
	}

	normalized := Normalize(source, result.Data)

	raw, err := json.Marshal(result.Data)
	if err != nil {
		logrus.WithError(err).WithField("profile_id", profile.ID).Warn("Erro ao serializar payload de enriquecimento")
		raw = nil
	}

	if err := s.profileRepository.ApplyEnrichment(ctx, profile.ID, source, raw, normalized); err != nil {
		logrus.WithError(err).WithField("profile_id", profile.ID).Error("Erro ao aplicar enriquecimento")
		return nil, NewEnrichmentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar perfil")
	}

	if totals, err := s.pageViewRepository.TotalsByProfile(ctx, profile.ID); err != nil {
		logrus.WithError(err).WithField("profile_id", profile.ID).Warn("Erro ao agregar contadores do perfil")
	} else if totals != nil {
		if err := s.profileRepository.UpdateCounters(ctx, profile.ID, *totals); err != nil {
			logrus.WithError(err).WithField("profile_id", profile.ID).Warn("Erro ao atualizar contadores do perfil")
		}
	}

	updated, err := s.profileRepository.GetByID(ctx, profile.ID)
	if err != nil || updated == nil {
		logrus.WithError(err).WithField("profile_id", profile.ID).Error("Erro ao recarregar perfil enriquecido")
		return nil, NewEnrichmentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao recarregar perfil")
	}

	score := ScoreLead(updated, s.now())
	if err := s.profileRepository.UpdateLeadScore(ctx, profile.ID, score); err != nil {
		logrus.WithError(err).WithField("profile_id", profile.ID).Error("Erro ao gravar lead score")
		return nil, NewEnrichmentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao gravar lead score")
	}

	s.eventLog.Record(ctx, auditing.NewEvent(
		domain.EventEnrichmentSuccess,
		fingerprintID,
		profile.ID,
		source,
		map[string]any{
			"source":          source,
			"fields_enriched": normalized.Fields(),
			"lead_score":      score,
		},
	))

	return &domain.EnrichmentIngestResponse{
		Success:   true,
		Message:   messageEnriched,
		LeadScore: &score,
	}, nil
}
