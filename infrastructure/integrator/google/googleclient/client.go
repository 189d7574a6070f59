package googleclient

import (
	"context"
	"fmt"
	"net/http"

	googledomain "github.com/attraveiculos/visitor-identity-api/infrastructure/integrator/google/domain"
	"github.com/attraveiculos/visitor-identity-api/internal/config"
	"github.com/attraveiculos/visitor-identity-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type Client interface {
	UploadClickConversions(ctx context.Context, req *googledomain.UploadClickConversionsRequest) (*utils.Response, error)
}

type GoogleAdsClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &GoogleAdsClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: cfg.Tracking.Timeout(),
		},
	}
}

// UploadClickConversions envia conversões associadas a um gclid
func (c *GoogleAdsClient) UploadClickConversions(
	ctx context.Context,
	req *googledomain.UploadClickConversionsRequest,
) (*utils.Response, error) {
	endpoint := fmt.Sprintf(
		"%s/%s/customers/%s:uploadClickConversions",
		c.Cfg.GoogleAds.BaseURL,
		c.Cfg.GoogleAds.APIVersion,
		c.Cfg.GoogleAds.CustomerID,
	)

	headers := map[string]string{
		"Authorization":   "Bearer " + c.Cfg.GoogleAds.APIToken,
		"developer-token": c.Cfg.GoogleAds.DeveloperToken,
	}

	resp, err := utils.PostJSON(ctx, c.HTTPClient, endpoint, headers, req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição para o Google Ads")
		return nil, err
	}

	return resp, nil
}
