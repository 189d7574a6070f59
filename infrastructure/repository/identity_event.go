package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/attraveiculos/visitor-identity-api/infrastructure/database/postgres"
	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

const identityEventsTable = "identity_events"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// IdentityEventRepository é somente inserção, eventos nunca são alterados
type IdentityEventRepository interface {
	Insert(ctx context.Context, event *domain.IdentityEvent) error
}

type identityEventRepository struct {
	conn *postgres.Connection
}

func NewIdentityEventRepository(conn *postgres.Connection) IdentityEventRepository {
	return &identityEventRepository{
		conn: conn,
	}
}

func (r *identityEventRepository) Insert(ctx context.Context, event *domain.IdentityEvent) error {
	data, err := marshalJSONB(event.EventData)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar dados do evento")
	}

	query, args, err := squirrel.
		Insert(identityEventsTable).
		Columns("id", "fingerprint_id", "profile_id", "event_type", "event_data", "source", "created_at").
		Values(
			event.ID,
			event.FingerprintID,
			event.ProfileID,
			event.EventType,
			squirrel.Expr("?::jsonb", data),
			event.Source,
			event.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "erro ao registrar evento %s", event.EventType)
	}

	return nil
}

func marshalJSONB(v map[string]any) (string, error) {
	if len(v) == 0 {
		return "{}", nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	return string(b), nil
}
