package meta

import (
	"context"
	"fmt"

	metadomain "github.com/attraveiculos/visitor-identity-api/infrastructure/integrator/meta/domain"
	"github.com/attraveiculos/visitor-identity-api/infrastructure/integrator/meta/metaclient"
	"github.com/attraveiculos/visitor-identity-api/internal/config"
	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/attraveiculos/visitor-identity-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// eventNames mapeia os eventos internos para a taxonomia padrão do Meta
var eventNames = map[string]string{
	domain.ConversionLead:          metadomain.EventLead,
	domain.ConversionContact:       metadomain.EventContact,
	domain.ConversionWhatsappClick: metadomain.EventContact,
	domain.ConversionPurchase:      metadomain.EventPurchase,
	domain.ConversionFormSubmit:    metadomain.EventSubmitApplication,
}

// EventName devolve o evento padrão do Meta. Eventos desconhecidos viram Lead.
func EventName(internal string) string {
	if name, ok := eventNames[internal]; ok {
		return name
	}
	return metadomain.EventLead
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MetaIntegrator) Platform() domain.Platform {
	return domain.PlatformMeta
}

// Eligible exige apenas pixel e token configurados
func (s *MetaIntegrator) Eligible(_ *domain.ConversionEvent) bool {
	return s.cfg.Meta.IsConfigured()
}

func (s *MetaIntegrator) Send(ctx context.Context, event *domain.ConversionEvent) (*domain.DeliveryResult, error) {
	req := &metadomain.EventsRequest{
		Data: []metadomain.ServerEvent{s.BuildServerEvent(event)},
	}

	resp, err := s.Client.SendEvents(ctx, req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"conversion_id": event.ID,
			"error":         err.Error(),
		}).Error("conversions: failed to send event to Meta")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"conversion_id": event.ID,
		"status_code":   resp.StatusCode,
	}).Debug("conversions: Meta responded")

	return &domain.DeliveryResult{
		Platform:   domain.PlatformMeta,
		StatusCode: resp.StatusCode,
		Response:   resp.Body,
	}, nil
}

// BuildServerEvent monta o evento apenas com identificadores já em hash
func (s *MetaIntegrator) BuildServerEvent(event *domain.ConversionEvent) metadomain.ServerEvent {
	userData := metadomain.UserData{}
	if email := utils.Deref(event.HashedEmail); email != "" {
		userData.Emails = []string{email}
	}
	if phone := utils.Deref(event.HashedPhone); phone != "" {
		userData.Phones = []string{phone}
	}
	if fbclid := utils.Deref(event.FBCLID); fbclid != "" {
		userData.ClickID = fmt.Sprintf("fb.1.%d.%s", event.CreatedAt.UnixMilli(), fbclid)
	}
	userData.ClientIPAddress = utils.Deref(event.ClientIP)

	serverEvent := metadomain.ServerEvent{
		EventName:    EventName(event.EventName),
		EventTime:    event.CreatedAt.Unix(),
		EventID:      event.MetaEventID,
		ActionSource: metadomain.ActionSourceWebsite,
		UserData:     userData,
	}

	if path := utils.Deref(event.PagePath); path != "" {
		serverEvent.EventSourceURL = s.cfg.App.SiteURL + path
	}

	if event.EventValue != nil && *event.EventValue > 0 {
		serverEvent.CustomData = &metadomain.CustomData{
			Currency: metadomain.CurrencyBRL,
			Value:    *event.EventValue,
		}
	}

	return serverEvent
}
