package metaclient

import (
	"context"
	"net/http"

	metadomain "github.com/attraveiculos/visitor-identity-api/infrastructure/integrator/meta/domain"
	"github.com/attraveiculos/visitor-identity-api/internal/config"
	"github.com/attraveiculos/visitor-identity-api/pkg/utils"
)

type Client interface {
	SendEvents(ctx context.Context, req *metadomain.EventsRequest) (*utils.Response, error)
}

type MetaClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: cfg.Tracking.Timeout(),
		},
	}
}
