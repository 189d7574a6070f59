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

const sessionsTable = "visitor_sessions"

var sessionColumns = []string{
	"id", "fingerprint_id", "session_id", "referrer_url", "referrer_domain",
	"utm_source", "utm_medium", "utm_campaign", "utm_content", "utm_term",
	"gclid", "fbclid", "ttclid", "ip_address", "city", "region", "country",
	"contacted_whatsapp", "submitted_form", "used_calculator",
	"page_views_count", "vehicles_viewed", "started_at",
}

type SessionRepository interface {
	Open(ctx context.Context, req domain.OpenSessionRequest) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	GetLatestByFingerprint(ctx context.Context, fingerprintID string) (*domain.Session, error)
	SetFlag(ctx context.Context, id string, flag domain.SessionFlag) error
	UpdateGeolocation(ctx context.Context, id string, geo domain.Geolocation) error
	IncrementPageViews(ctx context.Context, id string, productView bool) error
}

type sessionRepository struct {
	conn *postgres.Connection
}

func NewSessionRepository(conn *postgres.Connection) SessionRepository {
	return &sessionRepository{
		conn: conn,
	}
}

// Open sempre cria uma nova sessão, uma por visita
func (r *sessionRepository) Open(ctx context.Context, req domain.OpenSessionRequest) (string, error) {
	query, args, err := squirrel.
		Insert(sessionsTable).
		Columns(
			"fingerprint_id", "session_id", "referrer_url", "referrer_domain",
			"utm_source", "utm_medium", "utm_campaign", "utm_content", "utm_term",
			"gclid", "fbclid", "ttclid", "ip_address",
		).
		Values(
			req.FingerprintID, req.SessionID, req.ReferrerURL, req.ReferrerDomain,
			req.UTM.Source, req.UTM.Medium, req.UTM.Campaign, req.UTM.Content, req.UTM.Term,
			req.ClickIDs.GCLID, req.ClickIDs.FBCLID, req.ClickIDs.TTCLID, req.IPAddress,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", err
	}

	var id string
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return "", errors.Wrap(err, "erro ao criar sessão")
	}

	return id, nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	return r.getSession(ctx, squirrel.
		Select(sessionColumns...).
		From(sessionsTable).
		Where(squirrel.Eq{"id": id}))
}

func (r *sessionRepository) GetLatestByFingerprint(ctx context.Context, fingerprintID string) (*domain.Session, error) {
	return r.getSession(ctx, squirrel.
		Select(sessionColumns...).
		From(sessionsTable).
		Where(squirrel.Eq{"fingerprint_id": fingerprintID}).
		OrderBy("started_at DESC").
		Limit(1))
}

func (r *sessionRepository) getSession(ctx context.Context, builder squirrel.SelectBuilder) (*domain.Session, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	s, err := r.deserializeSession(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao buscar sessão")
	}

	return s, nil
}

func (r *sessionRepository) deserializeSession(row *sql.Row) (*domain.Session, error) {
	s := &domain.Session{}
	var city, region, country sql.NullString

	if err := row.Scan(
		&s.ID,
		&s.FingerprintID,
		&s.SessionID,
		&s.ReferrerURL,
		&s.ReferrerDomain,
		&s.UTM.Source,
		&s.UTM.Medium,
		&s.UTM.Campaign,
		&s.UTM.Content,
		&s.UTM.Term,
		&s.ClickIDs.GCLID,
		&s.ClickIDs.FBCLID,
		&s.ClickIDs.TTCLID,
		&s.IPAddress,
		&city,
		&region,
		&country,
		&s.ContactedWhatsapp,
		&s.SubmittedForm,
		&s.UsedCalculator,
		&s.PageViewsCount,
		&s.VehiclesViewed,
		&s.StartedAt,
	); err != nil {
		return nil, err
	}

	if city.Valid || region.Valid || country.Valid {
		s.Geolocation = &domain.Geolocation{
			City:    city.String,
			Region:  region.String,
			Country: country.String,
		}
	}

	return s, nil
}

var sessionFlags = map[domain.SessionFlag]struct{}{
	domain.SessionFlagContactedWhatsapp: {},
	domain.SessionFlagSubmittedForm:     {},
	domain.SessionFlagUsedCalculator:    {},
}

func (r *sessionRepository) SetFlag(ctx context.Context, id string, flag domain.SessionFlag) error {
	if _, ok := sessionFlags[flag]; !ok {
		return fmt.Errorf("flag de sessão desconhecida: %s", flag)
	}

	query, args, err := squirrel.
		Update(sessionsTable).
		Set(string(flag), true).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "erro ao marcar %s na sessão", flag)
	}

	return nil
}

func (r *sessionRepository) UpdateGeolocation(ctx context.Context, id string, geo domain.Geolocation) error {
	query, args, err := squirrel.
		Update(sessionsTable).
		Set("city", geo.City).
		Set("region", geo.Region).
		Set("country", geo.Country).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao atualizar geolocalização da sessão")
	}

	return nil
}

// IncrementPageViews incrementa os contadores de forma atômica
func (r *sessionRepository) IncrementPageViews(ctx context.Context, id string, productView bool) error {
	builder := squirrel.
		Update(sessionsTable).
		Set("page_views_count", squirrel.Expr("page_views_count + 1")).
		Where(squirrel.Eq{"id": id})

	if productView {
		builder = builder.Set("vehicles_viewed", squirrel.Expr("vehicles_viewed + 1"))
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao incrementar page views da sessão")
	}

	return nil
}
