package converting

import (
	"context"

	"github.com/attraveiculos/visitor-identity-api/infrastructure/repository"
	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// Redeliver reenvia conversões pendentes fora do caminho da requisição.
// Retorna quantas entregas foram aceitas.
func (s *Service) Redeliver(ctx context.Context, filter repository.UndeliveredFilter) (int, error) {
	events, err := s.conversionRepository.ListUndelivered(ctx, filter)
	if err != nil {
		return 0, err
	}

	delivered := 0
	for _, event := range events {
		for _, sender := range s.senders {
			state := deliveryState(event, sender.Platform())
			if state.Sent || state.Attempts >= filter.MaxAttempts || !sender.Eligible(event) {
				continue
			}

			if ctx.Err() != nil {
				return delivered, ctx.Err()
			}

			sendCtx, cancel := context.WithTimeout(ctx, s.cfg.Tracking.Timeout())
			err := s.deliver(sendCtx, sender, event)
			cancel()
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"conversion_id": event.ID,
					"platform":      sender.Platform(),
					"attempt":       state.Attempts + 1,
				}).Warn("Reenvio de conversão falhou")
				continue
			}
			delivered++
		}
	}

	return delivered, nil
}

func deliveryState(event *domain.ConversionEvent, platform domain.Platform) domain.DeliveryState {
	switch platform {
	case domain.PlatformGoogle:
		return event.Google
	case domain.PlatformMeta:
		return event.Meta
	default:
		return domain.DeliveryState{Sent: true}
	}
}
