package tracking

import (
	"context"
	"testing"

	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/attraveiculos/visitor-identity-api/pkg/apiErrors"
	"github.com/attraveiculos/visitor-identity-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_AggregateSignals(t *testing.T) {
	t.Run("usa a sessão mais recente quando não informada", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		f.fingerprints.EXPECT().GetByID(ctx, "fp-1").Return(&domain.Fingerprint{ID: "fp-1", TotalVisits: 3}, nil)
		f.sessions.EXPECT().GetLatestByFingerprint(ctx, "fp-1").Return(&domain.Session{ID: "sess-9"}, nil)
		f.pageViews.EXPECT().ListSessionPaths(ctx, "sess-9").Return([]string{"/", "/estoque", "/veiculos/onix"}, nil)
		f.pageViews.EXPECT().TotalsByFingerprint(ctx, "fp-1").Return(&domain.PageViewTotals{
			PageViews:        12,
			ProductViews:     4,
			DwellTimeSeconds: 95,
		}, nil)

		signals, err := f.service.AggregateSignals(ctx, "fp-1", nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"/", "/estoque", "/veiculos/onix"}, signals.PageHistory)
		assert.Equal(t, int64(95000), signals.TotalDwellTimeMs)
		assert.Equal(t, 3, signals.VisitCount)
		assert.Equal(t, 4, signals.ProductPagesViewed)
		assert.Equal(t, 3, signals.CurrentSessionPages)
	})

	t.Run("sessão informada sem page views", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		f.fingerprints.EXPECT().GetByID(ctx, "fp-1").Return(&domain.Fingerprint{ID: "fp-1", TotalVisits: 1}, nil)
		f.sessions.EXPECT().GetByID(ctx, "sess-1").Return(&domain.Session{ID: "sess-1"}, nil)
		f.pageViews.EXPECT().ListSessionPaths(ctx, "sess-1").Return(nil, nil)
		f.pageViews.EXPECT().TotalsByFingerprint(ctx, "fp-1").Return(nil, nil)

		signals, err := f.service.AggregateSignals(ctx, "fp-1", utils.StringPtr("sess-1"))

		require.NoError(t, err)
		assert.Empty(t, signals.PageHistory)
		assert.NotNil(t, signals.PageHistory)
		assert.Zero(t, signals.ProductPagesViewed)
	})

	t.Run("fingerprint inexistente", func(t *testing.T) {
		f := newFixture(t)

		f.fingerprints.EXPECT().GetByID(gomock.Any(), "fp-x").Return(nil, nil)

		_, err := f.service.AggregateSignals(context.Background(), "fp-x", nil)

		assertCode(t, err, apiErrors.ErrNotFound)
	})
}
