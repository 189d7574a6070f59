package reporting

import (
	"context"
	"errors"
	"testing"

	"github.com/attraveiculos/visitor-identity-api/infrastructure/repository/mocks"
	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/attraveiculos/visitor-identity-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_ListVisitors(t *testing.T) {
	ctx := context.Background()

	t.Run("aplica padrões de paginação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockVisitorReportRepository(ctrl)
		service := NewService(repo)

		repo.EXPECT().
			ListVisitors(ctx, domain.VisitorFilter{Status: "all", Page: 1, Limit: 50}).
			Return(nil, nil)

		page, err := service.ListVisitors(ctx, domain.VisitorFilter{})

		require.NoError(t, err)
		assert.NotNil(t, page.Visitors)
		assert.Empty(t, page.Visitors)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 50, page.Limit)
	})

	t.Run("limita o tamanho da página", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockVisitorReportRepository(ctrl)
		service := NewService(repo)

		repo.EXPECT().
			ListVisitors(ctx, domain.VisitorFilter{Status: "enriched", Page: 3, Limit: 100}).
			Return([]*domain.VisitorSummary{{Profile: domain.Profile{ID: "p-1"}, AggregatedSessions: 2}}, nil)

		page, err := service.ListVisitors(ctx, domain.VisitorFilter{Status: "Enriched", Page: 3, Limit: 500})

		require.NoError(t, err)
		require.Len(t, page.Visitors, 1)
		assert.Equal(t, "p-1", page.Visitors[0].ID)
	})

	t.Run("filtro desconhecido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewService(mocks.NewMockVisitorReportRepository(ctrl))

		_, err := service.ListVisitors(ctx, domain.VisitorFilter{Status: "converted"})

		var reportErr *ReportError
		require.ErrorAs(t, err, &reportErr)
		assert.Equal(t, apiErrors.ErrInvalidFormat, reportErr.Code)
	})

	t.Run("página negativa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewService(mocks.NewMockVisitorReportRepository(ctrl))

		_, err := service.ListVisitors(ctx, domain.VisitorFilter{Page: -1})

		assert.ErrorIs(t, err, ErrInvalidPagination)
	})

	t.Run("erro no banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockVisitorReportRepository(ctrl)
		service := NewService(repo)
		repo.EXPECT().ListVisitors(ctx, gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := service.ListVisitors(ctx, domain.VisitorFilter{})

		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})
}

func TestService_Metrics(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockVisitorReportRepository(ctrl)
	service := NewService(repo)

	repo.EXPECT().GetMetrics(ctx).Return(&domain.VisitorMetrics{TotalVisitors: 10, IdentifiedVisitors: 4}, nil)

	metrics, err := service.Metrics(ctx)

	require.NoError(t, err)
	assert.Equal(t, 10, metrics.TotalVisitors)
	assert.NotNil(t, metrics.TopVehicles)
}
