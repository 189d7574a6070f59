package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/attraveiculos/visitor-identity-api/infrastructure/database/postgres"
	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/pkg/errors"
)

const topVehiclesLimit = 10

var identifiedStatuses = []domain.ProfileStatus{
	domain.ProfileStatusIdentified,
	domain.ProfileStatusEnriched,
	domain.ProfileStatusConverted,
}

type VisitorReportRepository interface {
	ListVisitors(ctx context.Context, filter domain.VisitorFilter) ([]*domain.VisitorSummary, error)
	GetMetrics(ctx context.Context) (*domain.VisitorMetrics, error)
}

type visitorReportRepository struct {
	conn *postgres.Connection
}

func NewVisitorReportRepository(conn *postgres.Connection) VisitorReportRepository {
	return &visitorReportRepository{
		conn: conn,
	}
}

func (r *visitorReportRepository) ListVisitors(ctx context.Context, filter domain.VisitorFilter) ([]*domain.VisitorSummary, error) {
	columns := make([]string, 0, len(profileColumns))
	for _, c := range profileColumns {
		columns = append(columns, "p."+c)
	}

	builder := squirrel.
		Select(columns...).
		Column(`(SELECT COUNT(s.id) FROM visitor_sessions s
			JOIN visitor_fingerprints f ON f.id = s.fingerprint_id
			WHERE f.resolved_profile_id = p.id)`).
		Column(`(SELECT COALESCE(SUM(s.vehicles_viewed), 0) FROM visitor_sessions s
			JOIN visitor_fingerprints f ON f.id = s.fingerprint_id
			WHERE f.resolved_profile_id = p.id)`).
		From(profilesTable + " p").
		OrderBy("p.updated_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset()))

	switch filter.Status {
	case domain.VisitorFilterIdentified:
		builder = builder.Where(squirrel.Eq{"p.status": identifiedStatuses})
	case domain.VisitorFilterEnriched:
		builder = builder.Where(squirrel.Eq{"p.status": domain.ProfileStatusEnriched})
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar visitantes")
	}
	defer rows.Close()

	visitors := make([]*domain.VisitorSummary, 0)
	for rows.Next() {
		summary := &domain.VisitorSummary{}
		profile, err := scanProfile(rows, &summary.AggregatedSessions, &summary.TotalVehiclesViewed)
		if err != nil {
			return nil, err
		}
		summary.Profile = *profile
		visitors = append(visitors, summary)
	}

	return visitors, rows.Err()
}

func (r *visitorReportRepository) GetMetrics(ctx context.Context) (*domain.VisitorMetrics, error) {
	query, args, err := squirrel.
		Select().
		Column("(SELECT COUNT(*) FROM visitor_fingerprints)").
		Column(squirrel.Expr("(SELECT COUNT(*) FROM visitor_profiles WHERE status IN (?, ?, ?))",
			domain.ProfileStatusIdentified, domain.ProfileStatusEnriched, domain.ProfileStatusConverted)).
		Column(squirrel.Expr("(SELECT COUNT(*) FROM visitor_profiles WHERE status = ?)", domain.ProfileStatusEnriched)).
		Column("(SELECT COUNT(*) FROM visitor_sessions)").
		Column("(SELECT COUNT(*) FROM visitor_page_views)").
		Column(`(SELECT COALESCE(ROUND(AVG(d.total)), 0)::int FROM (
			SELECT SUM(time_on_page_seconds) AS total FROM visitor_page_views
			WHERE time_on_page_seconds IS NOT NULL GROUP BY session_id) d)`).
		Column("(SELECT COUNT(*) FROM visitor_sessions WHERE contacted_whatsapp)").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	metrics := &domain.VisitorMetrics{}
	err = r.conn.RunInSnapshot(ctx, func(q postgres.Queryer) error {
		if err := q.QueryRowContext(ctx, query, args...).Scan(
			&metrics.TotalVisitors,
			&metrics.IdentifiedVisitors,
			&metrics.EnrichedVisitors,
			&metrics.TotalSessions,
			&metrics.TotalPageViews,
			&metrics.AvgSessionDuration,
			&metrics.WhatsappClicks,
		); err != nil {
			return errors.Wrap(err, "erro ao calcular métricas de visitantes")
		}

		var err error
		metrics.TopVehicles, err = topVehicles(ctx, q)
		return err
	})
	if err != nil {
		return nil, err
	}

	return metrics, nil
}

func topVehicles(ctx context.Context, q postgres.Queryer) ([]domain.TopVehicle, error) {
	query, args, err := squirrel.
		Select("vehicle_slug", "COALESCE(MAX(vehicle_brand), '')", "COALESCE(MAX(vehicle_model), '')", "COUNT(*) AS views").
		From(pageViewsTable).
		Where(squirrel.NotEq{"vehicle_slug": nil}).
		GroupBy("vehicle_slug").
		OrderBy("views DESC").
		Limit(topVehiclesLimit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar veículos mais vistos")
	}
	defer rows.Close()

	vehicles := make([]domain.TopVehicle, 0, topVehiclesLimit)
	for rows.Next() {
		var v domain.TopVehicle
		if err := rows.Scan(&v.Slug, &v.Brand, &v.Model, &v.Views); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, rows.Err()
}
