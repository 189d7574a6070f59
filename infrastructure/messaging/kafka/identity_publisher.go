package kafka

import (
	"context"
	"time"

	"github.com/attraveiculos/visitor-identity-api/internal/config"
	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// IdentityPublisher espelha os eventos de identidade num tópico para replay.
// O registro no banco continua sendo a fonte da verdade.
type IdentityPublisher struct {
	writer *kafka.Writer
}

func NewIdentityPublisher(cfg config.Kafka) *IdentityPublisher {
	return &IdentityPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.IdentityTopic,
			Balancer:     &kafka.Hash{},
			BatchSize:    100,
			BatchTimeout: 100 * time.Millisecond,
			Async:        true,
			Completion: func(messages []kafka.Message, err error) {
				if err != nil {
					logrus.WithError(err).WithField("messages", len(messages)).
						Warn("Falha ao publicar eventos de identidade no Kafka")
				}
			},
		},
	}
}

func (p *IdentityPublisher) Publish(ctx context.Context, event *domain.IdentityEvent) error {
	msg, err := messageFor(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, msg)
}

// messageFor usa o fingerprint como chave para manter a ordem por dispositivo
func messageFor(event *domain.IdentityEvent) (kafka.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}

	var key string
	switch {
	case event.FingerprintID != nil:
		key = *event.FingerprintID
	case event.ProfileID != nil:
		key = *event.ProfileID
	default:
		key = event.ID
	}

	return kafka.Message{
		Key:   []byte(key),
		Value: data,
		Time:  event.CreatedAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	}, nil
}

func (p *IdentityPublisher) Close() error {
	return p.writer.Close()
}
