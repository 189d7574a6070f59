package enriching

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/attraveiculos/visitor-identity-api/infrastructure/repository/mocks"
	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	auditmocks "github.com/attraveiculos/visitor-identity-api/internal/usecases/auditing/mocks"
	"github.com/attraveiculos/visitor-identity-api/pkg/apiErrors"
	"github.com/attraveiculos/visitor-identity-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type ingestFixture struct {
	profiles  *mocks.MockProfileRepository
	pageViews *mocks.MockPageViewRepository
	eventLog  *auditmocks.MockEventLog
	service   *IngestService
}

func newIngestFixture(t *testing.T) *ingestFixture {
	ctrl := gomock.NewController(t)
	f := &ingestFixture{
		profiles:  mocks.NewMockProfileRepository(ctrl),
		pageViews: mocks.NewMockPageViewRepository(ctrl),
		eventLog:  auditmocks.NewMockEventLog(ctrl),
	}
	f.service = NewIngestService(f.profiles, f.pageViews, f.eventLog)
	f.service.now = func() time.Time { return fixedNow }
	return f
}

func TestIngestService_Sucesso(t *testing.T) {
	f := newIngestFixture(t)
	ctx := context.Background()
	lastActive := fixedNow.Add(-2 * time.Hour)

	f.profiles.EXPECT().GetByID(ctx, "p-1").Return(&domain.Profile{ID: "p-1", Status: domain.ProfileStatusIdentified}, nil)
	f.profiles.EXPECT().ApplyEnrichment(ctx, "p-1", "clearbit", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ string, raw []byte, fields domain.NormalizedEnrichment) error {
			assert.Contains(t, string(raw), "Attra")
			require.NotNil(t, fields.CompanyName)
			assert.Equal(t, "Attra Veículos", *fields.CompanyName)
			require.NotNil(t, fields.LinkedinURL)
			assert.Equal(t, "https://linkedin.com/in/joao", *fields.LinkedinURL)
			return nil
		})
	f.pageViews.EXPECT().TotalsByProfile(ctx, "p-1").Return(&domain.PageViewTotals{Sessions: 2}, nil)
	f.profiles.EXPECT().UpdateCounters(ctx, "p-1", gomock.Any()).Return(nil)
	f.profiles.EXPECT().GetByID(ctx, "p-1").Return(&domain.Profile{
		ID:          "p-1",
		Email:       utils.StringPtr("joao@exemplo.com"),
		CompanyName: utils.StringPtr("Attra Veículos"),
		LinkedinURL: utils.StringPtr("https://linkedin.com/in/joao"),
		BehavioralCounters: domain.BehavioralCounters{
			TotalSessions: 2,
			LastActiveAt:  &lastActive,
		},
	}, nil)
	// sessões 10 + email 10 + empresa 5 + linkedin 5 + recência 10
	f.profiles.EXPECT().UpdateLeadScore(ctx, "p-1", 40).Return(nil)
	f.eventLog.EXPECT().Record(ctx, gomock.Any()).Do(func(_ context.Context, event *domain.IdentityEvent) {
		assert.Equal(t, domain.EventEnrichmentSuccess, event.EventType)
		assert.Equal(t, []string{"company_name", "linkedin_url"}, event.EventData["fields_enriched"])
	})

	resp, err := f.service.Ingest(ctx, &domain.EnrichmentResult{
		ProfileID: "p-1",
		Source:    "clearbit",
		Success:   true,
		Data: map[string]any{
			"company": map[string]any{"name": "Attra Veículos"},
			"person":  map[string]any{"linkedin": map[string]any{"handle": "joao"}},
		},
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Profile enriched successfully", resp.Message)
	require.NotNil(t, resp.LeadScore)
	assert.Equal(t, 40, *resp.LeadScore)
}

func TestIngestService_FalhaDoProvedor(t *testing.T) {
	f := newIngestFixture(t)
	ctx := context.Background()

	f.profiles.EXPECT().GetByID(ctx, "p-1").Return(&domain.Profile{ID: "p-1"}, nil)
	f.eventLog.EXPECT().Record(ctx, gomock.Any()).Do(func(_ context.Context, event *domain.IdentityEvent) {
		assert.Equal(t, domain.EventEnrichmentFailed, event.EventType)
		assert.Equal(t, "quota exceeded", event.EventData["error"])
	})

	resp, err := f.service.Ingest(ctx, &domain.EnrichmentResult{
		ProfileID: "p-1",
		Source:    "snov",
		Success:   false,
		Data:      map[string]any{"error": "quota exceeded"},
	})

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Enrichment failed logged", resp.Message)
	assert.Nil(t, resp.LeadScore)
}

func TestIngestService_Erros(t *testing.T) {
	ctx := context.Background()

	t.Run("sem perfil", func(t *testing.T) {
		f := newIngestFixture(t)
		_, err := f.service.Ingest(ctx, &domain.EnrichmentResult{})
		assertCode(t, err, apiErrors.ErrMissingRequiredData)
	})

	t.Run("perfil inexistente", func(t *testing.T) {
		f := newIngestFixture(t)
		f.profiles.EXPECT().GetByID(ctx, "p-x").Return(nil, nil)
		_, err := f.service.Ingest(ctx, &domain.EnrichmentResult{ProfileID: "p-x", Success: true})
		assertCode(t, err, apiErrors.ErrNotFound)
	})

	t.Run("falha ao aplicar enriquecimento", func(t *testing.T) {
		f := newIngestFixture(t)
		f.profiles.EXPECT().GetByID(ctx, "p-1").Return(&domain.Profile{ID: "p-1"}, nil)
		f.profiles.EXPECT().ApplyEnrichment(ctx, "p-1", "bigdata", gomock.Any(), gomock.Any()).Return(errors.New("timeout"))
		_, err := f.service.Ingest(ctx, &domain.EnrichmentResult{ProfileID: "p-1", Source: "BigData", Success: true})
		assertCode(t, err, apiErrors.ErrDatabaseOperation)
	})
}
