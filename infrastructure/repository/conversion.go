package repository

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/attraveiculos/visitor-identity-api/infrastructure/database/postgres"
	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/pkg/errors"
)

const conversionsTable = "conversion_events"

var conversionColumns = []string{
	"id", "fingerprint_id", "profile_id", "session_id", "event_name", "event_value",
	"gclid", "fbclid", "ttclid", "hashed_email", "hashed_phone", "page_path", "vehicle_id",
	"client_ip", "meta_event_id", "metadata",
	"sent_to_google", "google_sent_at", "google_response", "google_attempts",
	"sent_to_meta", "meta_sent_at", "meta_response", "meta_attempts",
	"created_at",
}

// UndeliveredFilter seleciona conversões pendentes para reenvio
type UndeliveredFilter struct {
	MaxAttempts int
	OlderThan   time.Time
	Limit       uint64
}

type ConversionRepository interface {
	Insert(ctx context.Context, event *domain.ConversionEvent) (string, error)
	RecordDelivery(ctx context.Context, id string, result domain.DeliveryResult) error
	ListUndelivered(ctx context.Context, filter UndeliveredFilter) ([]*domain.ConversionEvent, error)
}

type conversionRepository struct {
	conn *postgres.Connection
}

func NewConversionRepository(conn *postgres.Connection) ConversionRepository {
	return &conversionRepository{
		conn: conn,
	}
}

// Insert persiste os fatos de negócio antes de qualquer tentativa de entrega
func (r *conversionRepository) Insert(ctx context.Context, event *domain.ConversionEvent) (string, error) {
	metadata, err := marshalJSONB(event.Metadata)
	if err != nil {
		return "", errors.Wrap(err, "erro ao serializar metadata da conversão")
	}

	query, args, err := squirrel.
		Insert(conversionsTable).
		Columns(
			"fingerprint_id", "profile_id", "session_id", "event_name", "event_value",
			"gclid", "fbclid", "ttclid", "hashed_email", "hashed_phone",
			"page_path", "vehicle_id", "client_ip", "meta_event_id", "metadata",
		).
		Values(
			event.FingerprintID, event.ProfileID, event.SessionID, event.EventName, event.EventValue,
			event.GCLID, event.FBCLID, event.TTCLID, event.HashedEmail, event.HashedPhone,
			event.PagePath, event.VehicleID, event.ClientIP, event.MetaEventID, squirrel.Expr("?::jsonb", metadata),
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", err
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&event.ID, &event.CreatedAt); err != nil {
		return "", errors.Wrap(err, "erro ao registrar conversão")
	}

	return event.ID, nil
}

// RecordDelivery anexa o resultado de uma tentativa. sent_to_* só vira true em respostas 2xx
// e nunca volta para false.
func (r *conversionRepository) RecordDelivery(ctx context.Context, id string, result domain.DeliveryResult) error {
	builder, err := recordDeliveryUpdate(id, result)
	if err != nil {
		return err
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "erro ao registrar entrega %s", result.Platform)
	}

	return nil
}

func recordDeliveryUpdate(id string, result domain.DeliveryResult) (squirrel.UpdateBuilder, error) {
	prefix := string(result.Platform)
	if result.Platform != domain.PlatformGoogle && result.Platform != domain.PlatformMeta {
		return squirrel.UpdateBuilder{}, fmt.Errorf("plataforma desconhecida: %s", result.Platform)
	}

	builder := squirrel.
		Update(conversionsTable).
		Set(prefix+"_attempts", squirrel.Expr(prefix+"_attempts + 1")).
		Where(squirrel.Eq{"id": id})

	if len(result.Response) > 0 {
		builder = builder.Set(prefix+"_response", squirrel.Expr("?::jsonb", deliveryResponseJSONB(result.Response)))
	}

	if result.Delivered() {
		builder = builder.
			Set("sent_to_"+prefix, true).
			Set(prefix+"_sent_at", squirrel.Expr("NOW()"))
	}

	return builder, nil
}

// deliveryResponseJSONB garante um valor aceito pelo jsonb. Corpos que não são JSON
// (HTML de proxy, texto solto) vão embrulhados em {"raw": ...}, senão o UPDATE inteiro
// falha e o contador de tentativas não anda.
func deliveryResponseJSONB(body []byte) string {
	if json.Valid(body) && !bytes.Contains(body, []byte(`\u0000`)) {
		return string(body)
	}

	raw := strings.ToValidUTF8(strings.ReplaceAll(string(body), "\x00", ""), "\uFFFD")
	wrapped, err := json.Marshal(map[string]string{"raw": raw})
	if err != nil {
		return "{}"
	}
	return string(wrapped)
}

func (r *conversionRepository) ListUndelivered(ctx context.Context, filter UndeliveredFilter) ([]*domain.ConversionEvent, error) {
	query, args, err := squirrel.
		Select(conversionColumns...).
		From(conversionsTable).
		Where(squirrel.Or{
			squirrel.And{
				squirrel.Eq{"sent_to_google": false},
				squirrel.NotEq{"gclid": nil},
				squirrel.Lt{"google_attempts": filter.MaxAttempts},
			},
			squirrel.And{
				squirrel.Eq{"sent_to_meta": false},
				squirrel.Lt{"meta_attempts": filter.MaxAttempts},
			},
		}).
		Where(squirrel.Lt{"created_at": filter.OlderThan}).
		OrderBy("created_at ASC").
		Limit(filter.Limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar conversões pendentes")
	}
	defer rows.Close()

	events := make([]*domain.ConversionEvent, 0)
	for rows.Next() {
		event, err := r.deserializeConversion(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

func (r *conversionRepository) deserializeConversion(rows *sql.Rows) (*domain.ConversionEvent, error) {
	e := &domain.ConversionEvent{}
	var metadata, googleResponse, metaResponse []byte

	if err := rows.Scan(
		&e.ID,
		&e.FingerprintID,
		&e.ProfileID,
		&e.SessionID,
		&e.EventName,
		&e.EventValue,
		&e.GCLID,
		&e.FBCLID,
		&e.TTCLID,
		&e.HashedEmail,
		&e.HashedPhone,
		&e.PagePath,
		&e.VehicleID,
		&e.ClientIP,
		&e.MetaEventID,
		&metadata,
		&e.Google.Sent,
		&e.Google.SentAt,
		&googleResponse,
		&e.Google.Attempts,
		&e.Meta.Sent,
		&e.Meta.SentAt,
		&metaResponse,
		&e.Meta.Attempts,
		&e.CreatedAt,
	); err != nil {
		return nil, err
	}

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &e.Metadata); err != nil {
			return nil, errors.Wrap(err, "metadata inválida")
		}
	}
	e.Google.Response = googleResponse
	e.Meta.Response = metaResponse

	return e, nil
}
