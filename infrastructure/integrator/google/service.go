package google

import (
	"context"
	"fmt"

	googledomain "github.com/attraveiculos/visitor-identity-api/infrastructure/integrator/google/domain"
	"github.com/attraveiculos/visitor-identity-api/infrastructure/integrator/google/googleclient"
	"github.com/attraveiculos/visitor-identity-api/internal/config"
	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/attraveiculos/visitor-identity-api/pkg/utils"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type GoogleAdsIntegrator struct {
	cfg    *config.Config
	Client googleclient.Client
}

func New(cfg *config.Config, client googleclient.Client) *GoogleAdsIntegrator {
	return &GoogleAdsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *GoogleAdsIntegrator) Platform() domain.Platform {
	return domain.PlatformGoogle
}

// Eligible exige credenciais configuradas e um gclid capturado na sessão
func (s *GoogleAdsIntegrator) Eligible(event *domain.ConversionEvent) bool {
	return s.cfg.GoogleAds.IsConfigured() && utils.Deref(event.GCLID) != ""
}

func (s *GoogleAdsIntegrator) Send(ctx context.Context, event *domain.ConversionEvent) (*domain.DeliveryResult, error) {
	req := &googledomain.UploadClickConversionsRequest{
		Conversions:    []googledomain.ClickConversion{s.BuildClickConversion(event)},
		PartialFailure: true,
	}

	resp, err := s.Client.UploadClickConversions(ctx, req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"conversion_id": event.ID,
			"error":         err.Error(),
		}).Error("conversions: failed to upload click conversion to Google Ads")
		return nil, err
	}

	result := &domain.DeliveryResult{
		Platform:   domain.PlatformGoogle,
		StatusCode: resp.StatusCode,
		Response:   resp.Body,
	}

	if resp.OK() {
		var body googledomain.UploadClickConversionsResponse
		if err := json.Unmarshal(resp.Body, &body); err == nil && body.PartialFailureError != nil {
			result.Rejected = true
			logrus.WithFields(logrus.Fields{
				"conversion_id": event.ID,
				"code":          body.PartialFailureError.Code,
			}).Warn("conversions: Google Ads rejected click conversion: " + body.PartialFailureError.Message)
		}
	}

	return result, nil
}

func (s *GoogleAdsIntegrator) BuildClickConversion(event *domain.ConversionEvent) googledomain.ClickConversion {
	identifiers := make([]googledomain.UserIdentifier, 0, 2)
	if email := utils.Deref(event.HashedEmail); email != "" {
		identifiers = append(identifiers, googledomain.UserIdentifier{HashedEmail: email})
	}
	if phone := utils.Deref(event.HashedPhone); phone != "" {
		identifiers = append(identifiers, googledomain.UserIdentifier{HashedPhoneNumber: phone})
	}

	var value float64
	if event.EventValue != nil {
		value = *event.EventValue
	}

	conversion := googledomain.ClickConversion{
		ConversionAction: fmt.Sprintf(
			"customers/%s/conversionActions/%s",
			s.cfg.GoogleAds.CustomerID,
			s.cfg.GoogleAds.ConversionActionID,
		),
		GCLID:              utils.Deref(event.GCLID),
		ConversionDateTime: event.CreatedAt.UTC().Format(googledomain.DateTimeLayout),
		ConversionValue:    value,
		CurrencyCode:       googledomain.CurrencyBRL,
		OrderID:            event.ID,
	}
	if len(identifiers) > 0 {
		conversion.UserIdentifiers = identifiers
	}

	return conversion
}
