package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/attraveiculos/visitor-identity-api/infrastructure/database/postgres"
	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

const (
	profilesTable = "visitor_profiles"

	uniqueViolation = "23505"
)

// ErrDuplicateContact indica que email ou telefone já pertencem a outro perfil
var ErrDuplicateContact = errors.New("contato já pertence a outro perfil")

var profileColumns = []string{
	"id", "status", "email", "phone", "national_id_hash", "full_name", "first_name", "last_name",
	"consent_given", "consent_at", "legitimate_interest_basis",
	"enrichment_source", "enrichment_data", "enriched_at",
	"company_name", "company_domain", "company_industry", "company_size", "job_title", "linkedin_url",
	"lead_score", "total_sessions", "total_page_views", "total_product_views", "total_dwell_time_seconds",
	"last_active_at", "created_at", "updated_at",
}

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	FindByEmail(ctx context.Context, email string) (*domain.Profile, error)
	FindByPhone(ctx context.Context, phone string) (*domain.Profile, error)
	Create(ctx context.Context, signals domain.IdentitySignals, status domain.ProfileStatus) (string, error)
	CreateAnonymousFor(ctx context.Context, fingerprintID, basis string) (string, bool, error)
	ApplyIdentity(ctx context.Context, id string, patch domain.ProfileIdentityPatch) error
	ApplyEnrichment(ctx context.Context, id string, source string, raw []byte, fields domain.NormalizedEnrichment) error
	AdvanceStatus(ctx context.Context, id string, status domain.ProfileStatus) error
	UpdateCounters(ctx context.Context, id string, totals domain.PageViewTotals) error
	UpdateLeadScore(ctx context.Context, id string, score int) error
}

type profileRepository struct {
	conn *postgres.Connection
}

func NewProfileRepository(conn *postgres.Connection) ProfileRepository {
	return &profileRepository{
		conn: conn,
	}
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	return r.getProfile(ctx, squirrel.Eq{"id": id})
}

func (r *profileRepository) FindByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	return r.getProfile(ctx, squirrel.Eq{"email": email})
}

func (r *profileRepository) FindByPhone(ctx context.Context, phone string) (*domain.Profile, error) {
	return r.getProfile(ctx, squirrel.Eq{"phone": phone})
}

func (r *profileRepository) getProfile(ctx context.Context, where squirrel.Sqlizer) (*domain.Profile, error) {
	query, args, err := squirrel.
		Select(profileColumns...).
		From(profilesTable).
		Where(where).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	p, err := scanProfile(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao buscar perfil")
	}

	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner, extra ...any) (*domain.Profile, error) {
	p := &domain.Profile{}
	var raw []byte

	dest := []any{
		&p.ID,
		&p.Status,
		&p.Email,
		&p.Phone,
		&p.NationalIDHash,
		&p.FullName,
		&p.FirstName,
		&p.LastName,
		&p.ConsentGiven,
		&p.ConsentAt,
		&p.LegitimateInterestBasis,
		&p.EnrichmentSource,
		&raw,
		&p.EnrichedAt,
		&p.CompanyName,
		&p.CompanyDomain,
		&p.CompanyIndustry,
		&p.CompanySize,
		&p.JobTitle,
		&p.LinkedinURL,
		&p.LeadScore,
		&p.TotalSessions,
		&p.TotalPageViews,
		&p.TotalProductViews,
		&p.TotalDwellTimeSeconds,
		&p.LastActiveAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	}

	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	if len(raw) > 0 {
		p.EnrichmentData = raw
	}

	return p, nil
}

// Create insere um perfil novo. Retorna id vazio quando email ou telefone
// já existem, para que o chamador refaça a busca.
func (r *profileRepository) Create(ctx context.Context, signals domain.IdentitySignals, status domain.ProfileStatus) (string, error) {
	var consentAt *time.Time
	if signals.ExplicitConsent {
		now := time.Now().UTC()
		consentAt = &now
	}

	query, args, err := squirrel.
		Insert(profilesTable).
		Columns(
			"status", "email", "phone", "national_id_hash", "full_name", "first_name", "last_name",
			"consent_given", "consent_at", "legitimate_interest_basis",
		).
		Values(
			status, signals.Email, signals.Phone, signals.NationalIDHash, signals.FullName, signals.FirstName, signals.LastName,
			signals.ExplicitConsent, consentAt, signals.Basis,
		).
		Suffix("ON CONFLICT DO NOTHING RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", err
	}

	var id string
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", wrapPQ(err, "erro ao criar perfil")
	}

	return id, nil
}

// createAnonymousLinkedSQL cria o perfil anônimo e o vincula ao fingerprint no mesmo comando.
// Se o fingerprint já tiver perfil nenhuma linha é inserida.
const createAnonymousLinkedSQL = `WITH fp AS (
	SELECT id FROM ` + fingerprintsTable + ` WHERE id = $1 AND resolved_profile_id IS NULL FOR UPDATE
), ins AS (
	INSERT INTO ` + profilesTable + ` (status, legitimate_interest_basis) SELECT $2, $3 FROM fp RETURNING id
), upd AS (
	UPDATE ` + fingerprintsTable + ` f SET resolved_profile_id = ins.id FROM ins WHERE f.id = $1 RETURNING f.id
)
SELECT id FROM ins`

func createAnonymousLinkedArgs(fingerprintID, basis string) []interface{} {
	return []interface{}{fingerprintID, domain.ProfileStatusAnonymous, basis}
}

// CreateAnonymousFor cria um perfil sem PII, mantido apenas por engajamento, já vinculado ao fingerprint.
// created=false indica que outra requisição vinculou o fingerprint antes.
func (r *profileRepository) CreateAnonymousFor(ctx context.Context, fingerprintID, basis string) (string, bool, error) {
	var id string
	err := r.conn.QueryRowContext(ctx, createAnonymousLinkedSQL, createAnonymousLinkedArgs(fingerprintID, basis)...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrapPQ(err, "erro ao criar perfil anônimo")
	}

	return id, true, nil
}

// ApplyIdentity preenche apenas colunas nulas. O status nunca regride.
func (r *profileRepository) ApplyIdentity(ctx context.Context, id string, patch domain.ProfileIdentityPatch) error {
	return r.exec(ctx, applyIdentityUpdate(id, patch), "erro ao atualizar identidade do perfil")
}

// ApplyEnrichment aplica os campos normalizados não nulos e guarda o payload bruto
func (r *profileRepository) ApplyEnrichment(
	ctx context.Context,
	id string,
	source string,
	raw []byte,
	fields domain.NormalizedEnrichment,
) error {
	builder := squirrel.
		Update(profilesTable).
		Set("status", squirrel.Expr("GREATEST(status, ?::profile_status)", domain.ProfileStatusEnriched)).
		Set("enrichment_source", source).
		Set("enriched_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if len(raw) > 0 {
		builder = builder.Set("enrichment_data", squirrel.Expr("?::jsonb", string(raw)))
	}

	values := map[string]*string{
		"company_name":     fields.CompanyName,
		"company_domain":   fields.CompanyDomain,
		"company_industry": fields.CompanyIndustry,
		"company_size":     fields.CompanySize,
		"job_title":        fields.JobTitle,
		"linkedin_url":     fields.LinkedinURL,
		"full_name":        fields.FullName,
		"first_name":       fields.FirstName,
		"last_name":        fields.LastName,
	}
	for _, column := range fields.Fields() {
		builder = builder.Set(column, *values[column])
	}

	return r.exec(ctx, builder, "erro ao aplicar enriquecimento")
}

func (r *profileRepository) AdvanceStatus(ctx context.Context, id string, status domain.ProfileStatus) error {
	return r.exec(ctx, advanceStatusUpdate(id, status), "erro ao avançar status do perfil")
}

// advanceStatusUpdate depende da ordem do enum profile_status no banco
func advanceStatusUpdate(id string, status domain.ProfileStatus) squirrel.UpdateBuilder {
	return squirrel.
		Update(profilesTable).
		Set("status", squirrel.Expr("GREATEST(status, ?::profile_status)", status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})
}

func applyIdentityUpdate(id string, patch domain.ProfileIdentityPatch) squirrel.UpdateBuilder {
	builder := squirrel.
		Update(profilesTable).
		Set("status", squirrel.Expr("GREATEST(status, ?::profile_status)", patch.Status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	fillNull := map[string]*string{
		"email":            patch.Email,
		"phone":            patch.Phone,
		"full_name":        patch.FullName,
		"first_name":       patch.FirstName,
		"last_name":        patch.LastName,
		"national_id_hash": patch.NationalIDHash,
	}
	for _, column := range []string{"email", "phone", "full_name", "first_name", "last_name", "national_id_hash"} {
		if v := fillNull[column]; v != nil {
			builder = builder.Set(column, squirrel.Expr(fmt.Sprintf("COALESCE(%s, ?)", column), *v))
		}
	}

	// a base comportamental só vale enquanto o perfil não tem PII
	if patch.Basis != nil {
		builder = builder.Set("legitimate_interest_basis", squirrel.Expr(
			"CASE WHEN legitimate_interest_basis IS NULL OR legitimate_interest_basis = ? THEN ? ELSE legitimate_interest_basis END",
			domain.BasisBehavioralEngagement, *patch.Basis,
		))
	}

	if patch.ConsentAt != nil {
		builder = builder.
			Set("consent_given", true).
			Set("consent_at", squirrel.Expr("COALESCE(consent_at, ?)", *patch.ConsentAt))
	}

	return builder
}

func (r *profileRepository) UpdateCounters(ctx context.Context, id string, totals domain.PageViewTotals) error {
	builder := squirrel.
		Update(profilesTable).
		Set("total_sessions", totals.Sessions).
		Set("total_page_views", totals.PageViews).
		Set("total_product_views", totals.ProductViews).
		Set("total_dwell_time_seconds", totals.DwellTimeSeconds).
		Set("last_active_at", squirrel.Expr("GREATEST(last_active_at, ?)", totals.LastActiveAt)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	return r.exec(ctx, builder, "erro ao atualizar contadores do perfil")
}

func (r *profileRepository) UpdateLeadScore(ctx context.Context, id string, score int) error {
	builder := squirrel.
		Update(profilesTable).
		Set("lead_score", score).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	return r.exec(ctx, builder, "erro ao atualizar lead score")
}

func (r *profileRepository) exec(ctx context.Context, builder squirrel.UpdateBuilder, msg string) error {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapPQ(err, msg)
	}

	return nil
}

func wrapPQ(err error, msg string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == uniqueViolation {
			return errors.Wrap(ErrDuplicateContact, msg)
		}
		return errors.Wrapf(err, "%s (code: %s)", msg, pqErr.Code)
	}
	return errors.Wrap(err, msg)
}
