package reporting

import (
	"context"
	"strings"

	"github.com/attraveiculos/visitor-identity-api/infrastructure/repository"
	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/attraveiculos/visitor-identity-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

const (
	DefaultPage  = 1
	DefaultLimit = 50
	MaxLimit     = 100
)

type Reporter interface {
	ListVisitors(ctx context.Context, filter domain.VisitorFilter) (*VisitorPage, error)
	Metrics(ctx context.Context) (*domain.VisitorMetrics, error)
}

type VisitorPage struct {
	Visitors []*domain.VisitorSummary `json:"visitors"`
	Page     int                      `json:"page"`
	Limit    int                      `json:"limit"`
}

type Service struct {
	reportRepository repository.VisitorReportRepository
}

func NewService(reportRepository repository.VisitorReportRepository) *Service {
	return &Service{
		reportRepository: reportRepository,
	}
}

func (s *Service) ListVisitors(ctx context.Context, filter domain.VisitorFilter) (*VisitorPage, error) {
	filter, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	visitors, err := s.reportRepository.ListVisitors(ctx, filter)
	if err != nil {
		logrus.WithError(err).WithField("status", filter.Status).Error("Erro ao listar visitantes")
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar visitantes")
	}
	if visitors == nil {
		visitors = []*domain.VisitorSummary{}
	}

	return &VisitorPage{
		Visitors: visitors,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}, nil
}

func (s *Service) Metrics(ctx context.Context) (*domain.VisitorMetrics, error) {
	metrics, err := s.reportRepository.GetMetrics(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao calcular métricas de visitantes")
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao calcular métricas")
	}
	if metrics.TopVehicles == nil {
		metrics.TopVehicles = []domain.TopVehicle{}
	}
	return metrics, nil
}

// normalizeFilter aplica os padrões de paginação e rejeita filtros desconhecidos
func normalizeFilter(filter domain.VisitorFilter) (domain.VisitorFilter, error) {
	filter.Status = strings.ToLower(strings.TrimSpace(filter.Status))
	switch filter.Status {
	case "":
		filter.Status = domain.VisitorFilterAll
	case domain.VisitorFilterAll, domain.VisitorFilterIdentified, domain.VisitorFilterEnriched:
	default:
		return filter, NewReportError(ErrInvalidStatusFilter, apiErrors.ErrInvalidFormat, filter.Status)
	}

	if filter.Page < 0 || filter.Limit < 0 {
		return filter, NewReportError(ErrInvalidPagination, apiErrors.ErrInvalidFormat, "")
	}
	if filter.Page == 0 {
		filter.Page = DefaultPage
	}
	if filter.Limit == 0 {
		filter.Limit = DefaultLimit
	}
	if filter.Limit > MaxLimit {
		filter.Limit = MaxLimit
	}

	return filter, nil
}
