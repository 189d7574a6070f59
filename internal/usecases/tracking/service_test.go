package tracking

import (
	"context"
	"errors"
	"testing"
	"time"

	integratormocks "github.com/attraveiculos/visitor-identity-api/infrastructure/integrator/mocks"
	"github.com/attraveiculos/visitor-identity-api/infrastructure/repository/mocks"
	"github.com/attraveiculos/visitor-identity-api/internal/config"
	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	auditmocks "github.com/attraveiculos/visitor-identity-api/internal/usecases/auditing/mocks"
	"github.com/attraveiculos/visitor-identity-api/pkg/apiErrors"
	"github.com/attraveiculos/visitor-identity-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// inlineRunner executa as tarefas de background na hora, para os testes
type inlineRunner struct{}

func (inlineRunner) Go(_ string, _ time.Duration, fn func(ctx context.Context) error) {
	_ = fn(context.Background())
}

func (inlineRunner) Wait(context.Context) error { return nil }

type fixture struct {
	fingerprints *mocks.MockFingerprintRepository
	sessions     *mocks.MockSessionRepository
	pageViews    *mocks.MockPageViewRepository
	eventLog     *auditmocks.MockEventLog
	geo          *integratormocks.MockGeoLocator
	service      *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		fingerprints: mocks.NewMockFingerprintRepository(ctrl),
		sessions:     mocks.NewMockSessionRepository(ctrl),
		pageViews:    mocks.NewMockPageViewRepository(ctrl),
		eventLog:     auditmocks.NewMockEventLog(ctrl),
		geo:          integratormocks.NewMockGeoLocator(ctrl),
	}
	f.service = NewService(f.fingerprints, f.sessions, f.pageViews, f.eventLog, f.geo, inlineRunner{}, &config.Config{})
	return f
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var trackingErr *TrackingError
	require.ErrorAs(t, err, &trackingErr)
	assert.Equal(t, code, trackingErr.Code)
}

const chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func TestService_StartSession(t *testing.T) {
	t.Run("primeira visita registra fingerprint, sessão e geolocalização", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		f.fingerprints.EXPECT().
			Upsert(ctx, "v-123", gomock.Any(), domain.DeviceFingerprintConfidence).
			DoAndReturn(func(_ context.Context, _ string, device domain.DeviceMetadata, _ float64) (*domain.FingerprintUpsert, error) {
				require.NotNil(t, device.BrowserName)
				assert.Equal(t, "Chrome", *device.BrowserName)
				assert.Equal(t, "desktop", *device.DeviceType)
				assert.Equal(t, "1920x1080", *device.ScreenResolution)
				return &domain.FingerprintUpsert{ID: "fp-1", TotalVisits: 1, Created: true}, nil
			})

		f.sessions.EXPECT().Open(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, req domain.OpenSessionRequest) (string, error) {
				assert.Equal(t, "fp-1", req.FingerprintID)
				assert.Equal(t, "s-abc", req.SessionID)
				assert.Equal(t, "www.google.com", *req.ReferrerDomain)
				assert.Equal(t, "abc", *req.ClickIDs.GCLID)
				assert.Equal(t, "200.1.2.3", *req.IPAddress)
				return "sess-1", nil
			})

		f.eventLog.EXPECT().Record(ctx, gomock.Any()).Times(2).Do(func(_ context.Context, event *domain.IdentityEvent) {
			assert.Contains(t, []domain.IdentityEventType{domain.EventVisitorFirstSeen, domain.EventSessionStarted}, event.EventType)
		})

		location := domain.Geolocation{City: "São Paulo", Region: "SP", Country: "Brasil"}
		f.geo.EXPECT().Locate(gomock.Any(), "200.1.2.3").Return(location)
		f.sessions.EXPECT().UpdateGeolocation(gomock.Any(), "sess-1", location).Return(nil)

		resp, err := f.service.StartSession(ctx, &domain.StartSessionRequest{
			VisitorID:   "v-123",
			SessionID:   "s-abc",
			Device:      domain.DeviceMetadata{ScreenResolution: utils.StringPtr("1920x1080")},
			ClickIDs:    domain.ClickIDs{GCLID: utils.StringPtr("abc")},
			ReferrerURL: utils.StringPtr("https://www.google.com/search?q=suv"),
			ClientIP:    "200.1.2.3",
			UserAgent:   chromeUA,
		})

		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "fp-1", resp.FingerprintID)
		assert.Equal(t, "sess-1", resp.SessionID)
	})

	t.Run("visita recorrente sem IP não registra first seen nem geolocaliza", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		f.fingerprints.EXPECT().Upsert(ctx, "v-123", gomock.Any(), gomock.Any()).
			Return(&domain.FingerprintUpsert{ID: "fp-1", TotalVisits: 4}, nil)
		f.sessions.EXPECT().Open(ctx, gomock.Any()).Return("sess-2", nil)
		f.eventLog.EXPECT().Record(ctx, gomock.Any()).Do(func(_ context.Context, event *domain.IdentityEvent) {
			assert.Equal(t, domain.EventSessionStarted, event.EventType)
			assert.Equal(t, 4, event.EventData["visit_number"])
		})

		resp, err := f.service.StartSession(ctx, &domain.StartSessionRequest{VisitorID: "v-123", SessionID: "s-2"})

		require.NoError(t, err)
		assert.Equal(t, "sess-2", resp.SessionID)
	})

	t.Run("sem visitor_id", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.StartSession(context.Background(), &domain.StartSessionRequest{SessionID: "s-1"})

		assertCode(t, err, apiErrors.ErrMissingRequiredData)
		assert.ErrorIs(t, err, ErrVisitorIDRequired)
	})

	t.Run("erro no banco", func(t *testing.T) {
		f := newFixture(t)

		f.fingerprints.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("timeout"))

		_, err := f.service.StartSession(context.Background(), &domain.StartSessionRequest{VisitorID: "v", SessionID: "s"})

		assertCode(t, err, apiErrors.ErrDatabaseOperation)
	})
}

func TestService_RecordPageView(t *testing.T) {
	t.Run("página de veículo incrementa visualização de produto", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		f.pageViews.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, pv *domain.PageView) (string, error) {
			assert.Equal(t, "/veiculos/onix-2022", pv.PagePath)
			assert.Equal(t, "onix-2022", *pv.VehicleSlug)
			return "pv-1", nil
		})
		f.sessions.EXPECT().IncrementPageViews(ctx, "sess-1", true).Return(nil)

		err := f.service.RecordPageView(ctx, &domain.PageViewRequest{
			FingerprintID: "fp-1",
			SessionID:     "sess-1",
			PagePath:      "/veiculos/onix-2022",
			PageType:      utils.StringPtr(domain.PageTypeVehicle),
			VehicleRefs:   domain.VehicleRefs{VehicleSlug: utils.StringPtr("onix-2022")},
		})

		assert.NoError(t, err)
	})

	t.Run("página comum", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		f.pageViews.EXPECT().Insert(ctx, gomock.Any()).Return("pv-2", nil)
		f.sessions.EXPECT().IncrementPageViews(ctx, "sess-1", false).Return(nil)

		err := f.service.RecordPageView(ctx, &domain.PageViewRequest{FingerprintID: "fp-1", SessionID: "sess-1", PagePath: "/"})

		assert.NoError(t, err)
	})

	t.Run("validações sem efeitos colaterais", func(t *testing.T) {
		f := newFixture(t)

		err := f.service.RecordPageView(context.Background(), &domain.PageViewRequest{SessionID: "sess-1", PagePath: "/"})
		assert.ErrorIs(t, err, ErrFingerprintIDRequired)

		err = f.service.RecordPageView(context.Background(), &domain.PageViewRequest{FingerprintID: "fp-1", PagePath: "/"})
		assert.ErrorIs(t, err, ErrSessionIDRequired)

		err = f.service.RecordPageView(context.Background(), &domain.PageViewRequest{FingerprintID: "fp-1", SessionID: "sess-1"})
		assert.ErrorIs(t, err, ErrPagePathRequired)
	})
}

func TestService_RecordPageTime(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.pageViews.EXPECT().SetTimeOnLatest(ctx, "sess-1", "/estoque", 42).Return(false, nil)

	err := f.service.RecordPageTime(ctx, &domain.PageTimeRequest{SessionID: "sess-1", PagePath: "/estoque", TimeOnPageSeconds: intPtr(42)})
	assert.NoError(t, err)

	err = f.service.RecordPageTime(ctx, &domain.PageTimeRequest{SessionID: "sess-1", PagePath: "/estoque", TimeOnPageSeconds: intPtr(-1)})
	assertCode(t, err, apiErrors.ErrInvalidFormat)

	err = f.service.RecordPageTime(ctx, &domain.PageTimeRequest{SessionID: "sess-1", PagePath: "/estoque"})
	assert.ErrorIs(t, err, ErrInvalidPageTime)
}

func TestService_RecordInteraction(t *testing.T) {
	t.Run("whatsapp marca sessão, page view e registra evento", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		f.sessions.EXPECT().SetFlag(ctx, "sess-1", domain.SessionFlagContactedWhatsapp).Return(nil)
		f.pageViews.EXPECT().SetFlagOnLatest(ctx, "sess-1", "/veiculos/hb20", domain.PageViewFlagClickedWhatsapp).Return(true, nil)
		f.fingerprints.EXPECT().GetByID(ctx, "fp-1").Return(&domain.Fingerprint{ID: "fp-1", ResolvedProfileID: utils.StringPtr("p-9")}, nil)
		f.eventLog.EXPECT().Record(ctx, gomock.Any()).Do(func(_ context.Context, event *domain.IdentityEvent) {
			assert.Equal(t, domain.EventWhatsappClicked, event.EventType)
			assert.Equal(t, domain.SourceInteraction, *event.Source)
			require.NotNil(t, event.ProfileID)
			assert.Equal(t, "p-9", *event.ProfileID)
		})

		err := f.service.RecordInteraction(ctx, &domain.InteractionRequest{
			FingerprintID: "fp-1",
			SessionID:     "sess-1",
			Type:          domain.InteractionWhatsappClick,
			PagePath:      "/veiculos/hb20",
		})

		assert.NoError(t, err)
	})

	t.Run("formulário de fingerprint anônimo vai sem perfil", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		f.sessions.EXPECT().SetFlag(ctx, "sess-1", domain.SessionFlagSubmittedForm).Return(nil)
		f.fingerprints.EXPECT().GetByID(ctx, "fp-1").Return(&domain.Fingerprint{ID: "fp-1"}, nil)
		f.eventLog.EXPECT().Record(ctx, gomock.Any()).Do(func(_ context.Context, event *domain.IdentityEvent) {
			assert.Equal(t, domain.EventFormSubmitted, event.EventType)
			assert.Nil(t, event.ProfileID)
		})

		err := f.service.RecordInteraction(ctx, &domain.InteractionRequest{
			FingerprintID: "fp-1",
			SessionID:     "sess-1",
			Type:          domain.InteractionFormSubmit,
			PagePath:      "/contato",
		})

		assert.NoError(t, err)
	})

	t.Run("telefone altera apenas a page view", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		f.pageViews.EXPECT().SetFlagOnLatest(ctx, "sess-1", "/contato", domain.PageViewFlagClickedPhone).Return(true, nil)

		err := f.service.RecordInteraction(ctx, &domain.InteractionRequest{
			FingerprintID: "fp-1",
			SessionID:     "sess-1",
			Type:          domain.InteractionPhoneClick,
			PagePath:      "/contato",
		})

		assert.NoError(t, err)
	})

	t.Run("calculadora altera apenas a sessão", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		f.sessions.EXPECT().SetFlag(ctx, "sess-1", domain.SessionFlagUsedCalculator).Return(nil)

		err := f.service.RecordInteraction(ctx, &domain.InteractionRequest{
			FingerprintID: "fp-1",
			SessionID:     "sess-1",
			Type:          domain.InteractionCalculatorUse,
			PagePath:      "/financiamento",
		})

		assert.NoError(t, err)
	})

	t.Run("tipo desconhecido", func(t *testing.T) {
		f := newFixture(t)

		err := f.service.RecordInteraction(context.Background(), &domain.InteractionRequest{
			FingerprintID: "fp-1",
			SessionID:     "sess-1",
			Type:          "double_click",
		})

		assertCode(t, err, apiErrors.ErrUnknownInteraction)
	})
}

func intPtr(v int) *int {
	return &v
}
