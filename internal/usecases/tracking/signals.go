package tracking

import (
	"context"

	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/attraveiculos/visitor-identity-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// AggregateSignals calcula os sinais de engajamento a partir das sessões e page views gravadas.
// Sem sessionID a sessão mais recente do fingerprint é usada.
func (s *Service) AggregateSignals(ctx context.Context, fingerprintID string, sessionID *string) (*domain.BehavioralSignals, error) {
	fingerprint, err := s.fingerprintRepository.GetByID(ctx, fingerprintID)
	if err != nil {
		logrus.WithError(err).WithField("fingerprint_id", fingerprintID).Error("Erro ao buscar fingerprint")
		return nil, NewTrackingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar fingerprint")
	}
	if fingerprint == nil {
		return nil, NewTrackingError(ErrFingerprintNotFound, apiErrors.ErrNotFound, fingerprintID)
	}

	var session *domain.Session
	if sessionID != nil && *sessionID != "" {
		session, err = s.sessionRepository.GetByID(ctx, *sessionID)
	} else {
		session, err = s.sessionRepository.GetLatestByFingerprint(ctx, fingerprint.ID)
	}
	if err != nil {
		return nil, NewTrackingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar sessão")
	}

	history := []string{}
	if session != nil {
		history, err = s.pageViewRepository.ListSessionPaths(ctx, session.ID)
		if err != nil {
			return nil, NewTrackingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar page views da sessão")
		}
		if history == nil {
			history = []string{}
		}
	}

	totals, err := s.pageViewRepository.TotalsByFingerprint(ctx, fingerprint.ID)
	if err != nil {
		return nil, NewTrackingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao agregar page views")
	}
	if totals == nil {
		totals = &domain.PageViewTotals{}
	}

	return &domain.BehavioralSignals{
		PageHistory:         history,
		TotalDwellTimeMs:    int64(totals.DwellTimeSeconds) * 1000,
		VisitCount:          fingerprint.TotalVisits,
		ProductPagesViewed:  totals.ProductViews,
		CurrentSessionPages: len(history),
	}, nil
}
