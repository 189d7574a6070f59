package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/attraveiculos/visitor-identity-api/infrastructure/database/postgres"
	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/pkg/errors"
)

const (
	pageViewsTable = "visitor_page_views"

	byFingerprint = "fingerprint_id = ?"
	byProfile     = "fingerprint_id IN (SELECT id FROM visitor_fingerprints WHERE resolved_profile_id = ?)"

	latestPageView = "id = (SELECT id FROM visitor_page_views WHERE session_id = ? AND page_path = ? ORDER BY viewed_at DESC LIMIT 1)"
)

type PageViewRepository interface {
	Insert(ctx context.Context, pv *domain.PageView) (string, error)
	SetFlagOnLatest(ctx context.Context, sessionID string, path string, flag domain.PageViewFlag) (bool, error)
	SetTimeOnLatest(ctx context.Context, sessionID string, path string, seconds int) (bool, error)
	ListSessionPaths(ctx context.Context, sessionID string) ([]string, error)
	TotalsByFingerprint(ctx context.Context, fingerprintID string) (*domain.PageViewTotals, error)
	TotalsByProfile(ctx context.Context, profileID string) (*domain.PageViewTotals, error)
}

type pageViewRepository struct {
	conn *postgres.Connection
}

func NewPageViewRepository(conn *postgres.Connection) PageViewRepository {
	return &pageViewRepository{
		conn: conn,
	}
}

func (r *pageViewRepository) Insert(ctx context.Context, pv *domain.PageView) (string, error) {
	query, args, err := squirrel.
		Insert(pageViewsTable).
		Columns(
			"fingerprint_id", "session_id", "page_url", "page_path", "page_title", "page_type",
			"vehicle_id", "vehicle_slug", "vehicle_brand", "vehicle_model", "vehicle_price",
		).
		Values(
			pv.FingerprintID, pv.SessionID, pv.PageURL, pv.PagePath, pv.PageTitle, pv.PageType,
			pv.VehicleID, pv.VehicleSlug, pv.VehicleBrand, pv.VehicleModel, pv.VehiclePrice,
		).
		Suffix("RETURNING id, viewed_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", err
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&pv.ID, &pv.ViewedAt); err != nil {
		return "", errors.Wrap(err, "erro ao registrar page view")
	}

	return pv.ID, nil
}

var pageViewFlags = map[domain.PageViewFlag]struct{}{
	domain.PageViewFlagClickedWhatsapp:   {},
	domain.PageViewFlagClickedPhone:      {},
	domain.PageViewFlagClickedForm:       {},
	domain.PageViewFlagPlayedEngineSound: {},
}

// SetFlagOnLatest altera apenas a page view mais recente do caminho na sessão
func (r *pageViewRepository) SetFlagOnLatest(ctx context.Context, sessionID string, path string, flag domain.PageViewFlag) (bool, error) {
	if _, ok := pageViewFlags[flag]; !ok {
		return false, fmt.Errorf("flag de page view desconhecida: %s", flag)
	}

	return r.updateLatest(ctx, squirrel.
		Update(pageViewsTable).
		Set(string(flag), true).
		Where(latestPageView, sessionID, path))
}

func (r *pageViewRepository) SetTimeOnLatest(ctx context.Context, sessionID string, path string, seconds int) (bool, error) {
	return r.updateLatest(ctx, squirrel.
		Update(pageViewsTable).
		Set("time_on_page_seconds", seconds).
		Where(latestPageView, sessionID, path))
}

func (r *pageViewRepository) updateLatest(ctx context.Context, builder squirrel.UpdateBuilder) (bool, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrap(err, "erro ao atualizar page view")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *pageViewRepository) ListSessionPaths(ctx context.Context, sessionID string) ([]string, error) {
	query, args, err := squirrel.
		Select("page_path").
		From(pageViewsTable).
		Where(squirrel.Eq{"session_id": sessionID}).
		OrderBy("viewed_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar páginas da sessão")
	}
	defer rows.Close()

	paths := make([]string, 0)
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, rows.Err()
}

func (r *pageViewRepository) TotalsByFingerprint(ctx context.Context, fingerprintID string) (*domain.PageViewTotals, error) {
	return r.totals(ctx, byFingerprint, fingerprintID)
}

// TotalsByProfile soma os contadores de todos os fingerprints vinculados ao perfil
func (r *pageViewRepository) TotalsByProfile(ctx context.Context, profileID string) (*domain.PageViewTotals, error) {
	return r.totals(ctx, byProfile, profileID)
}

func (r *pageViewRepository) totals(ctx context.Context, cond string, arg string) (*domain.PageViewTotals, error) {
	query, args, err := squirrel.
		Select().
		Column(squirrel.Expr("(SELECT COUNT(*) FROM visitor_sessions WHERE "+cond+")", arg)).
		Column("COUNT(id)").
		Column(squirrel.Expr("COUNT(id) FILTER (WHERE page_type = ?)", domain.PageTypeVehicle)).
		Column("COALESCE(SUM(time_on_page_seconds), 0)").
		Column("MAX(viewed_at)").
		From(pageViewsTable).
		Where(cond, arg).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	totals := &domain.PageViewTotals{}
	var lastActive sql.NullTime

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(
		&totals.Sessions,
		&totals.PageViews,
		&totals.ProductViews,
		&totals.DwellTimeSeconds,
		&lastActive,
	); err != nil {
		return nil, errors.Wrap(err, "erro ao agregar page views")
	}

	if lastActive.Valid {
		totals.LastActiveAt = &lastActive.Time
	}

	return totals, nil
}
