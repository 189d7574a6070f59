package n8n

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/attraveiculos/visitor-identity-api/internal/config"
	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/attraveiculos/visitor-identity-api/pkg/utils"
)

var (
	ErrNotConfigured    = errors.New("webhook não configurado")
	ErrUnexpectedStatus = errors.New("status inesperado do n8n")
)

// N8NIntegrator envia payloads para os fluxos de automação (enriquecimento e recuperação de leads)
type N8NIntegrator interface {
	EnrichmentConfigured() bool
	AbandonedLeadConfigured() bool
	SendBehavioralEnrichment(ctx context.Context, req *domain.BehavioralEnrichmentRequest) error
	SendIdentifyEnrichment(ctx context.Context, req *domain.IdentifyEnrichmentRequest) error
	SendAbandonedLead(ctx context.Context, payload *domain.AbandonedLeadPayload) error
}

type N8NService struct {
	cfg        *config.Config
	httpClient *http.Client
}

func New(cfg *config.Config) N8NIntegrator {
	return &N8NService{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Tracking.Timeout(),
		},
	}
}

func (s *N8NService) EnrichmentConfigured() bool {
	return s.cfg.N8N.EnrichmentWebhookURL != ""
}

func (s *N8NService) AbandonedLeadConfigured() bool {
	return s.cfg.N8N.AbandonedLeadWebhookURL != ""
}

func (s *N8NService) SendBehavioralEnrichment(ctx context.Context, req *domain.BehavioralEnrichmentRequest) error {
	return s.post(ctx, s.cfg.N8N.EnrichmentWebhookURL, req)
}

func (s *N8NService) SendIdentifyEnrichment(ctx context.Context, req *domain.IdentifyEnrichmentRequest) error {
	return s.post(ctx, s.cfg.N8N.EnrichmentWebhookURL, req)
}

func (s *N8NService) SendAbandonedLead(ctx context.Context, payload *domain.AbandonedLeadPayload) error {
	return s.post(ctx, s.cfg.N8N.AbandonedLeadWebhookURL, payload)
}

func (s *N8NService) post(ctx context.Context, url string, payload any) error {
	if url == "" {
		return ErrNotConfigured
	}

	headers := map[string]string{}
	if s.cfg.N8N.WebhookSecret != "" {
		headers["Authorization"] = "Bearer " + s.cfg.N8N.WebhookSecret
	}

	resp, err := utils.PostJSON(ctx, s.httpClient, url, headers, payload)
	if err != nil {
		return err
	}

	if !resp.OK() {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return nil
}
