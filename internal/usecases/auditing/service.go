package auditing

import (
	"context"
	"time"

	"github.com/attraveiculos/visitor-identity-api/infrastructure/repository"
	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/attraveiculos/visitor-identity-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// EventLog registra eventos de identidade. O registro é best-effort:
// uma falha de auditoria nunca desfaz nem bloqueia a operação que a gerou.
type EventLog interface {
	Record(ctx context.Context, event *domain.IdentityEvent)
}

// Publisher espelha os eventos num stream externo
type Publisher interface {
	Publish(ctx context.Context, event *domain.IdentityEvent) error
}

type Service struct {
	eventRepository repository.IdentityEventRepository
	publisher       Publisher
	now             func() time.Time
}

// NewService cria o log de eventos. publisher pode ser nil quando o Kafka não está configurado.
func NewService(eventRepository repository.IdentityEventRepository, publisher Publisher) *Service {
	return &Service{
		eventRepository: eventRepository,
		publisher:       publisher,
		now:             time.Now,
	}
}

func (s *Service) Record(ctx context.Context, event *domain.IdentityEvent) {
	if event.ID == "" {
		event.ID = utils.NewID()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = s.now().UTC()
	}
	if event.EventData == nil {
		event.EventData = map[string]any{}
	}

	logger := logrus.WithFields(logrus.Fields{
		"event_type":     event.EventType,
		"fingerprint_id": utils.Deref(event.FingerprintID),
		"profile_id":     utils.Deref(event.ProfileID),
	})

	if err := s.eventRepository.Insert(ctx, event); err != nil {
		logger.WithError(err).Error("Erro ao registrar evento de identidade")
		return
	}

	if s.publisher == nil {
		return
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.WithError(err).Warn("Erro ao publicar evento de identidade")
	}
}

// NewEvent monta um evento com as referências opcionais já preenchidas
func NewEvent(eventType domain.IdentityEventType, fingerprintID, profileID string, source string, data map[string]any) *domain.IdentityEvent {
	return &domain.IdentityEvent{
		FingerprintID: utils.NonEmpty(&fingerprintID),
		ProfileID:     utils.NonEmpty(&profileID),
		EventType:     eventType,
		EventData:     data,
		Source:        utils.NonEmpty(&source),
	}
}
