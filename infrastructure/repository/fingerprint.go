package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/attraveiculos/visitor-identity-api/infrastructure/database/postgres"
	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/pkg/errors"
)

const fingerprintsTable = "visitor_fingerprints"

type FingerprintRepository interface {
	Upsert(ctx context.Context, visitorID string, device domain.DeviceMetadata, confidence float64) (*domain.FingerprintUpsert, error)
	GetByID(ctx context.Context, id string) (*domain.Fingerprint, error)
	LinkProfile(ctx context.Context, fingerprintID string, profileID string) (bool, error)
}

type fingerprintRepository struct {
	conn *postgres.Connection
}

func NewFingerprintRepository(conn *postgres.Connection) FingerprintRepository {
	return &fingerprintRepository{
		conn: conn,
	}
}

// Upsert cria o fingerprint ou incrementa total_visits de forma atômica.
// xmax = 0 apenas para linhas recém inseridas.
func (r *fingerprintRepository) Upsert(
	ctx context.Context,
	visitorID string,
	device domain.DeviceMetadata,
	confidence float64,
) (*domain.FingerprintUpsert, error) {
	query, args, err := fingerprintUpsertInsert(visitorID, device, confidence).ToSql()
	if err != nil {
		return nil, err
	}

	result := &domain.FingerprintUpsert{}
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&result.ID, &result.TotalVisits, &result.Created); err != nil {
		return nil, errors.Wrap(err, "erro ao salvar fingerprint")
	}

	return result, nil
}

func (r *fingerprintRepository) GetByID(ctx context.Context, id string) (*domain.Fingerprint, error) {
	query, args, err := squirrel.
		Select(
			"id", "visitor_id", "browser_name", "browser_version", "os_name", "os_version",
			"device_type", "screen_resolution", "timezone", "language", "confidence_score",
			"first_seen_at", "last_seen_at", "total_visits", "resolved_profile_id",
		).
		From(fingerprintsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	fp := &domain.Fingerprint{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&fp.ID,
		&fp.VisitorID,
		&fp.Device.BrowserName,
		&fp.Device.BrowserVersion,
		&fp.Device.OSName,
		&fp.Device.OSVersion,
		&fp.Device.DeviceType,
		&fp.Device.ScreenResolution,
		&fp.Device.Timezone,
		&fp.Device.Language,
		&fp.ConfidenceScore,
		&fp.FirstSeenAt,
		&fp.LastSeenAt,
		&fp.TotalVisits,
		&fp.ResolvedProfileID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao buscar fingerprint")
	}

	return fp, nil
}

// LinkProfile define o perfil resolvido apenas se ainda não houver vínculo ou se for o mesmo perfil.
// Retorna false quando o fingerprint já pertence a outro perfil.
func (r *fingerprintRepository) LinkProfile(ctx context.Context, fingerprintID string, profileID string) (bool, error) {
	query, args, err := linkProfileUpdate(fingerprintID, profileID).ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrap(err, "erro ao vincular fingerprint ao perfil")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// fingerprintUpsertInsert soma uma visita por chamada e só sobrescreve metadados com valores não nulos
func fingerprintUpsertInsert(visitorID string, device domain.DeviceMetadata, confidence float64) squirrel.InsertBuilder {
	return squirrel.
		Insert(fingerprintsTable).
		Columns(
			"visitor_id", "browser_name", "browser_version", "os_name", "os_version",
			"device_type", "screen_resolution", "timezone", "language", "confidence_score",
		).
		Values(
			visitorID, device.BrowserName, device.BrowserVersion, device.OSName, device.OSVersion,
			device.DeviceType, device.ScreenResolution, device.Timezone, device.Language, confidence,
		).
		Suffix(`ON CONFLICT (visitor_id) DO UPDATE SET
			total_visits = visitor_fingerprints.total_visits + 1,
			last_seen_at = GREATEST(visitor_fingerprints.last_seen_at, NOW()),
			browser_name = COALESCE(EXCLUDED.browser_name, visitor_fingerprints.browser_name),
			browser_version = COALESCE(EXCLUDED.browser_version, visitor_fingerprints.browser_version),
			os_name = COALESCE(EXCLUDED.os_name, visitor_fingerprints.os_name),
			os_version = COALESCE(EXCLUDED.os_version, visitor_fingerprints.os_version),
			device_type = COALESCE(EXCLUDED.device_type, visitor_fingerprints.device_type),
			screen_resolution = COALESCE(EXCLUDED.screen_resolution, visitor_fingerprints.screen_resolution),
			timezone = COALESCE(EXCLUDED.timezone, visitor_fingerprints.timezone),
			language = COALESCE(EXCLUDED.language, visitor_fingerprints.language)
		RETURNING id, total_visits, (xmax = 0) AS inserted`).
		PlaceholderFormat(squirrel.Dollar)
}

// linkProfileUpdate só grava quando o fingerprint está livre ou já aponta para o mesmo perfil
func linkProfileUpdate(fingerprintID string, profileID string) squirrel.UpdateBuilder {
	return squirrel.
		Update(fingerprintsTable).
		Set("resolved_profile_id", profileID).
		Where(squirrel.Eq{"id": fingerprintID}).
		Where(squirrel.Or{
			squirrel.Eq{"resolved_profile_id": nil},
			squirrel.Eq{"resolved_profile_id": profileID},
		}).
		PlaceholderFormat(squirrel.Dollar)
}
