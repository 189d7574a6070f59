package identifying

import (
	"context"
	"errors"
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

// DefaultSource é usada quando o cliente não informa a origem da identificação
const DefaultSource = "form"

type Resolver interface {
	Identify(ctx context.Context, req *domain.IdentifyRequest) (*domain.IdentifyResponse, error)
	Resolve(ctx context.Context, fingerprint *domain.Fingerprint, signals domain.IdentitySignals, source string) (*domain.ResolveResult, error)
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

func (s *Service) Identify(ctx context.Context, req *domain.IdentifyRequest) (*domain.IdentifyResponse, error) {
	if strings.TrimSpace(req.FingerprintID) == "" {
		return nil, NewIdentifyError(ErrFingerprintIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	source := strings.TrimSpace(req.Source)
	if source == "" {
		source = DefaultSource
	}

	signals, err := s.normalize(req, source)
	if err != nil {
		return nil, err
	}

	fingerprint, err := s.fingerprintRepository.GetByID(ctx, req.FingerprintID)
	if err != nil {
		logrus.WithError(err).WithField("fingerprint_id", req.FingerprintID).Error("Erro ao buscar fingerprint")
		return nil, NewIdentifyError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar fingerprint")
	}
	if fingerprint == nil {
		return nil, NewIdentifyError(ErrFingerprintNotFound, apiErrors.ErrNotFound, req.FingerprintID)
	}

	result, err := s.Resolve(ctx, fingerprint, signals, source)
	if err != nil {
		return nil, err
	}

	if s.n8n.EnrichmentConfigured() {
		payload := &domain.IdentifyEnrichmentRequest{
			ProfileID:     result.ProfileID,
			FingerprintID: fingerprint.ID,
			Email:         signals.Email,
			Phone:         signals.Phone,
			Name:          signals.FullName,
			Source:        source,
			Timestamp:     s.now().UTC().Format(time.RFC3339),
		}
		s.runner.Go("n8n_identify_enrichment", s.cfg.Tracking.Timeout(), func(ctx context.Context) error {
			return s.n8n.SendIdentifyEnrichment(ctx, payload)
		})
	}

	return &domain.IdentifyResponse{
		Success:   true,
		ProfileID: result.ProfileID,
		WasMerged: result.WasMerged,
	}, nil
}

func (s *Service) normalize(req *domain.IdentifyRequest, source string) (domain.IdentitySignals, error) {
	explicitConsent := req.ExplicitConsent != nil && *req.ExplicitConsent

	signals := domain.IdentitySignals{
		Email:           utils.NormalizeEmail(req.Email),
		Phone:           utils.OnlyDigits(req.Phone),
		ExplicitConsent: explicitConsent,
		Basis:           legalBasis(source, explicitConsent),
	}
	if signals.Email == nil && signals.Phone == nil {
		return signals, NewIdentifyError(ErrContactRequired, apiErrors.ErrMissingRequiredData, "")
	}

	signals.FullName, signals.FirstName, signals.LastName = utils.SplitName(req.Name)

	hash, err := hashNationalID([]byte(s.cfg.Tracking.IdentityHashKey), req.NationalID)
	if err != nil {
		if errors.Is(err, ErrInvalidNationalID) {
			return signals, NewIdentifyError(ErrInvalidNationalID, apiErrors.ErrInvalidFormat, "")
		}
		logrus.WithError(err).Error("Erro ao gerar hash do CPF")
		return signals, NewIdentifyError(ErrHashNationalID, apiErrors.ErrInternalServer, "")
	}
	signals.NationalIDHash = hash

	return signals, nil
}

// legalBasis registra por que os dados são mantidos quando não há consentimento explícito
func legalBasis(source string, explicitConsent bool) string {
	switch {
	case explicitConsent:
		return domain.BasisExplicitConsent
	case source == domain.SourceURLParam:
		return domain.BasisURLParameter
	default:
		return domain.BasisFormSubmission
	}
}

// Resolve associa o fingerprint a um perfil. O email tem prioridade sobre o telefone na busca
// e campos já preenchidos nunca são sobrescritos.
func (s *Service) Resolve(
	ctx context.Context,
	fingerprint *domain.Fingerprint,
	signals domain.IdentitySignals,
	source string,
) (*domain.ResolveResult, error) {
	logger := logrus.WithField("fingerprint_id", fingerprint.ID)

	existing, err := s.findExisting(ctx, fingerprint, signals)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar perfil existente")
		return nil, NewIdentifyError(ErrResolutionFailed, apiErrors.ErrDatabaseOperation, "Falha ao buscar perfil")
	}

	result := &domain.ResolveResult{}

	if existing == nil {
		id, err := s.profileRepository.Create(ctx, signals, domain.ProfileStatusIdentified)
		if err != nil {
			logger.WithError(err).Error("Erro ao criar perfil")
			return nil, NewIdentifyError(ErrResolutionFailed, apiErrors.ErrDatabaseOperation, "Falha ao criar perfil")
		}

		if id == "" {
			// outra requisição criou o perfil com o mesmo contato
			existing, err = s.findExisting(ctx, fingerprint, signals)
			if err != nil || existing == nil {
				logger.WithError(err).Error("Perfil concorrente não encontrado após conflito")
				return nil, NewIdentifyError(ErrResolutionFailed, apiErrors.ErrDatabaseOperation, "Falha ao criar perfil")
			}
		}
		result.ProfileID = id
	}

	if existing != nil {
		if err := s.merge(ctx, existing, signals); err != nil {
			logger.WithError(err).WithField("profile_id", existing.ID).Error("Erro ao mesclar perfil")
			return nil, NewIdentifyError(ErrResolutionFailed, apiErrors.ErrDatabaseOperation, "Falha ao atualizar perfil")
		}
		result.ProfileID = existing.ID
		result.WasMerged = true
	}

	conflict, err := s.link(ctx, fingerprint, result.ProfileID, source)
	if err != nil {
		logger.WithError(err).WithField("profile_id", result.ProfileID).Error("Erro ao vincular fingerprint ao perfil")
		return nil, NewIdentifyError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao vincular fingerprint")
	}
	result.Conflict = conflict

	s.eventLog.Record(ctx, auditing.NewEvent(captureEventType(result.WasMerged, source, signals), fingerprint.ID, result.ProfileID, source, map[string]any{
		"source":           source,
		"was_merged":       result.WasMerged,
		"has_email":        signals.Email != nil,
		"has_phone":        signals.Phone != nil,
		"has_name":         signals.FullName != nil,
		"has_national_id":  signals.NationalIDHash != nil,
		"explicit_consent": signals.ExplicitConsent,
	}))

	return result, nil
}

// findExisting procura por email, depois por telefone. Sem correspondência, um perfil anônimo
// já vinculado ao fingerprint é promovido em vez de criar outro perfil.
func (s *Service) findExisting(ctx context.Context, fingerprint *domain.Fingerprint, signals domain.IdentitySignals) (*domain.Profile, error) {
	if signals.Email != nil {
		profile, err := s.profileRepository.FindByEmail(ctx, *signals.Email)
		if err != nil || profile != nil {
			return profile, err
		}
	}

	if signals.Phone != nil {
		profile, err := s.profileRepository.FindByPhone(ctx, *signals.Phone)
		if err != nil || profile != nil {
			return profile, err
		}
	}

	if !fingerprint.IsResolved() {
		return nil, nil
	}

	linked, err := s.profileRepository.GetByID(ctx, *fingerprint.ResolvedProfileID)
	if err != nil || linked == nil {
		return nil, err
	}
	if linked.HasContact() {
		return nil, nil
	}

	return linked, nil
}

func (s *Service) merge(ctx context.Context, existing *domain.Profile, signals domain.IdentitySignals) error {
	// um perfil enriquecido ou convertido continua onde está
	patch := domain.ProfileIdentityPatch{Status: existing.Status.Advance(domain.ProfileStatusIdentified)}

	if existing.Email == nil {
		patch.Email = signals.Email
	}

	if existing.Phone == nil && signals.Phone != nil {
		owner, err := s.profileRepository.FindByPhone(ctx, *signals.Phone)
		if err != nil {
			return err
		}
		if owner == nil {
			patch.Phone = signals.Phone
		} else if owner.ID != existing.ID {
			logrus.WithFields(logrus.Fields{
				"profile_id":       existing.ID,
				"owner_profile_id": owner.ID,
			}).Warn("Telefone já pertence a outro perfil, mantendo o perfil do email")
		}
	}

	if existing.FullName == nil {
		patch.FullName = signals.FullName
	}
	if existing.FirstName == nil {
		patch.FirstName = signals.FirstName
	}
	if existing.LastName == nil {
		patch.LastName = signals.LastName
	}
	if existing.NationalIDHash == nil {
		patch.NationalIDHash = signals.NationalIDHash
	}

	if signals.ExplicitConsent && !existing.ConsentGiven {
		now := s.now().UTC()
		patch.ConsentAt = &now
	}
	if existing.LegitimateInterestBasis == nil || *existing.LegitimateInterestBasis == domain.BasisBehavioralEngagement {
		basis := signals.Basis
		patch.Basis = &basis
	}

	err := s.profileRepository.ApplyIdentity(ctx, existing.ID, patch)
	if errors.Is(err, repository.ErrDuplicateContact) {
		logrus.WithField("profile_id", existing.ID).Warn("Contato registrado por outra requisição, aplicando sem email e telefone")
		patch.Email, patch.Phone = nil, nil
		err = s.profileRepository.ApplyIdentity(ctx, existing.ID, patch)
	}

	return err
}

// link vincula o fingerprint ao perfil. Um fingerprint já vinculado a outro perfil
// nunca é reatribuído: o conflito é registrado na trilha de auditoria.
func (s *Service) link(ctx context.Context, fingerprint *domain.Fingerprint, profileID string, source string) (bool, error) {
	if fingerprint.IsResolved() {
		if *fingerprint.ResolvedProfileID == profileID {
			return false, nil
		}
		s.recordConflict(ctx, fingerprint.ID, *fingerprint.ResolvedProfileID, profileID, source)
		return true, nil
	}

	linked, err := s.fingerprintRepository.LinkProfile(ctx, fingerprint.ID, profileID)
	if err != nil {
		return false, err
	}
	if linked {
		return false, nil
	}

	current, err := s.fingerprintRepository.GetByID(ctx, fingerprint.ID)
	if err != nil {
		return false, err
	}
	if current.IsResolved() && *current.ResolvedProfileID != profileID {
		s.recordConflict(ctx, fingerprint.ID, *current.ResolvedProfileID, profileID, source)
		return true, nil
	}

	return false, nil
}

// recordConflict registra o vínculo mantido. Quando o perfil preso ao fingerprint é anônimo
// (criado pela gate, sem contato), o evento é próprio: abandono e conversões desse visitante
// continuarão caindo no perfil anônimo, não no perfil do contato informado.
func (s *Service) recordConflict(ctx context.Context, fingerprintID, resolvedProfileID, candidateProfileID, source string) {
	eventType := domain.EventProfileLinkConflict
	resolved, err := s.profileRepository.GetByID(ctx, resolvedProfileID)
	if err != nil {
		logrus.WithError(err).WithField("profile_id", resolvedProfileID).Warn("Erro ao buscar perfil vinculado ao fingerprint")
	} else if resolved != nil && !resolved.HasContact() {
		eventType = domain.EventAnonymousProfileStranded
	}

	logrus.WithFields(logrus.Fields{
		"fingerprint_id":       fingerprintID,
		"profile_id":           resolvedProfileID,
		"candidate_profile_id": candidateProfileID,
		"event_type":           eventType,
	}).Warn("Fingerprint já vinculado a outro perfil, vínculo mantido")

	s.eventLog.Record(ctx, auditing.NewEvent(eventType, fingerprintID, resolvedProfileID, source, map[string]any{
		"resolved_profile_id":  resolvedProfileID,
		"candidate_profile_id": candidateProfileID,
	}))
}

func captureEventType(wasMerged bool, source string, signals domain.IdentitySignals) domain.IdentityEventType {
	switch {
	case wasMerged:
		return domain.EventProfileMerged
	case source == domain.SourceURLParam:
		return domain.EventURLParamCaptured
	case signals.Email != nil:
		return domain.EventEmailCaptured
	default:
		return domain.EventPhoneCaptured
	}
}
