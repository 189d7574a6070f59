package converting

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/attraveiculos/visitor-identity-api/infrastructure/integrator/google"
	"github.com/attraveiculos/visitor-identity-api/infrastructure/integrator/meta"
	"github.com/attraveiculos/visitor-identity-api/infrastructure/repository"
	"github.com/attraveiculos/visitor-identity-api/infrastructure/repository/mocks"
	"github.com/attraveiculos/visitor-identity-api/internal/config"
	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	auditmocks "github.com/attraveiculos/visitor-identity-api/internal/usecases/auditing/mocks"
	convmocks "github.com/attraveiculos/visitor-identity-api/internal/usecases/converting/mocks"
	"github.com/attraveiculos/visitor-identity-api/pkg/apiErrors"
	"github.com/attraveiculos/visitor-identity-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type inlineRunner struct{}

func (inlineRunner) Go(_ string, _ time.Duration, fn func(ctx context.Context) error) {
	_ = fn(context.Background())
}

func (inlineRunner) Wait(context.Context) error { return nil }

var hashedEmail = strings.Repeat("a1", 32)

type fixture struct {
	conversions  *mocks.MockConversionRepository
	sessions     *mocks.MockSessionRepository
	fingerprints *mocks.MockFingerprintRepository
	profiles     *mocks.MockProfileRepository
	eventLog     *auditmocks.MockEventLog
	cfg          *config.Config
}

func newFixture(t *testing.T) (*fixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	return &fixture{
		conversions:  mocks.NewMockConversionRepository(ctrl),
		sessions:     mocks.NewMockSessionRepository(ctrl),
		fingerprints: mocks.NewMockFingerprintRepository(ctrl),
		profiles:     mocks.NewMockProfileRepository(ctrl),
		eventLog:     auditmocks.NewMockEventLog(ctrl),
		cfg:          &config.Config{},
	}, ctrl
}

func (f *fixture) service(senders ...PlatformSender) *Service {
	return NewService(f.conversions, f.sessions, f.fingerprints, f.profiles, f.eventLog, inlineRunner{}, f.cfg, senders...)
}

func newSender(ctrl *gomock.Controller, platform domain.Platform) *convmocks.MockPlatformSender {
	sender := convmocks.NewMockPlatformSender(ctrl)
	sender.EXPECT().Platform().Return(platform).AnyTimes()
	return sender
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, code, convErr.Code)
}

func TestService_RecordConversion_SemCredenciais(t *testing.T) {
	f, _ := newFixture(t)
	ctx := context.Background()

	// integrações sem credenciais não são elegíveis
	service := f.service(google.New(f.cfg, nil), meta.New(f.cfg, nil))

	f.fingerprints.EXPECT().GetByID(ctx, "fp-1").Return(&domain.Fingerprint{ID: "fp-1"}, nil)
	f.conversions.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event *domain.ConversionEvent) (string, error) {
			assert.Equal(t, "contact", event.EventName)
			assert.Nil(t, event.ProfileID)
			assert.True(t, event.ClickIDs.IsEmpty())
			assert.Len(t, event.MetaEventID, 21)
			event.ID = "conv-1"
			return event.ID, nil
		})
	f.eventLog.EXPECT().Record(ctx, gomock.Any()).Do(func(_ context.Context, event *domain.IdentityEvent) {
		assert.Equal(t, domain.EventConversionRecorded, event.EventType)
	})

	resp, err := service.RecordConversion(ctx, &domain.ConversionRequest{
		FingerprintID: "fp-1",
		EventName:     "contact",
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "conv-1", resp.ConversionID)
	assert.False(t, resp.SentToGoogle)
	assert.False(t, resp.SentToMeta)
}

func TestService_RecordConversion_EntregasIndependentes(t *testing.T) {
	f, ctrl := newFixture(t)
	ctx := context.Background()
	googleSender := newSender(ctrl, domain.PlatformGoogle)
	metaSender := newSender(ctrl, domain.PlatformMeta)
	service := f.service(googleSender, metaSender)

	f.fingerprints.EXPECT().GetByID(ctx, "fp-1").Return(&domain.Fingerprint{
		ID:                "fp-1",
		ResolvedProfileID: utils.StringPtr("p-1"),
	}, nil)
	f.sessions.EXPECT().GetByID(ctx, "s-1").Return(&domain.Session{
		ID:        "s-1",
		IPAddress: utils.StringPtr("200.1.2.3"),
		ClickIDs:  domain.ClickIDs{GCLID: utils.StringPtr("gclid-1")},
	}, nil)
	f.conversions.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event *domain.ConversionEvent) (string, error) {
			assert.Equal(t, "gclid-1", *event.GCLID)
			assert.Equal(t, "200.1.2.3", *event.ClientIP)
			assert.Equal(t, hashedEmail, *event.HashedEmail)
			event.ID = "conv-1"
			return event.ID, nil
		})
	f.profiles.EXPECT().AdvanceStatus(ctx, "p-1", domain.ProfileStatusConverted).Return(nil)

	googleSender.EXPECT().Eligible(gomock.Any()).Return(true)
	googleSender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(&domain.DeliveryResult{
		Platform:   domain.PlatformGoogle,
		StatusCode: 200,
	}, nil)
	metaSender.EXPECT().Eligible(gomock.Any()).Return(true)
	metaSender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	f.conversions.EXPECT().RecordDelivery(gomock.Any(), "conv-1", domain.DeliveryResult{
		Platform:   domain.PlatformGoogle,
		StatusCode: 200,
	}).Return(nil)
	// falha de transporte também conta como tentativa
	f.conversions.EXPECT().RecordDelivery(gomock.Any(), "conv-1", domain.DeliveryResult{
		Platform: domain.PlatformMeta,
	}).Return(nil)

	var dispatched []bool
	f.eventLog.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, event *domain.IdentityEvent) {
		if event.EventType == domain.EventConversionDispatched {
			dispatched = append(dispatched, event.EventData["delivered"].(bool))
		}
	}).Times(3)

	resp, err := service.RecordConversion(ctx, &domain.ConversionRequest{
		FingerprintID: "fp-1",
		SessionID:     utils.StringPtr("s-1"),
		EventName:     "lead",
		HashedEmail:   utils.StringPtr(strings.ToUpper(hashedEmail)),
	})

	require.NoError(t, err)
	assert.True(t, resp.SentToGoogle)
	assert.True(t, resp.SentToMeta)
	assert.Equal(t, []bool{true, false}, dispatched)
}

func TestService_RecordConversion_Validacao(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		req  *domain.ConversionRequest
		code string
	}{
		{"sem fingerprint", &domain.ConversionRequest{EventName: "lead"}, apiErrors.ErrMissingRequiredData},
		{"sem evento", &domain.ConversionRequest{FingerprintID: "fp-1"}, apiErrors.ErrMissingRequiredData},
		{
			name: "email em texto puro",
			req:  &domain.ConversionRequest{FingerprintID: "fp-1", EventName: "lead", HashedEmail: utils.StringPtr("joao@exemplo.com")},
			code: apiErrors.ErrPlaintextIdentifier,
		},
		{
			name: "telefone em texto puro",
			req:  &domain.ConversionRequest{FingerprintID: "fp-1", EventName: "lead", HashedPhone: utils.StringPtr("11999998888")},
			code: apiErrors.ErrPlaintextIdentifier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := newFixture(t)
			_, err := f.service().RecordConversion(ctx, tt.req)
			assertCode(t, err, tt.code)
		})
	}

	t.Run("fingerprint inexistente", func(t *testing.T) {
		f, _ := newFixture(t)
		f.fingerprints.EXPECT().GetByID(ctx, "fp-x").Return(nil, nil)
		_, err := f.service().RecordConversion(ctx, &domain.ConversionRequest{FingerprintID: "fp-x", EventName: "lead"})
		assertCode(t, err, apiErrors.ErrNotFound)
	})

	t.Run("falha ao gravar não agenda entregas", func(t *testing.T) {
		f, ctrl := newFixture(t)
		sender := newSender(ctrl, domain.PlatformMeta)
		f.fingerprints.EXPECT().GetByID(ctx, "fp-1").Return(&domain.Fingerprint{ID: "fp-1"}, nil)
		f.conversions.EXPECT().Insert(ctx, gomock.Any()).Return("", errors.New("conexão perdida"))
		_, err := f.service(sender).RecordConversion(ctx, &domain.ConversionRequest{FingerprintID: "fp-1", EventName: "lead"})
		assertCode(t, err, apiErrors.ErrDatabaseOperation)
	})
}

func TestService_Redeliver(t *testing.T) {
	f, ctrl := newFixture(t)
	ctx := context.Background()
	googleSender := newSender(ctrl, domain.PlatformGoogle)
	metaSender := newSender(ctrl, domain.PlatformMeta)
	service := f.service(googleSender, metaSender)

	pending := &domain.ConversionEvent{
		ID:       "conv-1",
		ClickIDs: domain.ClickIDs{GCLID: utils.StringPtr("gclid-1")},
		Google:   domain.DeliveryState{Attempts: 1},
		Meta:     domain.DeliveryState{Sent: true, Attempts: 1},
	}
	exhausted := &domain.ConversionEvent{
		ID:     "conv-2",
		Google: domain.DeliveryState{Sent: true},
		Meta:   domain.DeliveryState{Attempts: 3},
	}
	filter := repository.UndeliveredFilter{MaxAttempts: 3, Limit: 50}

	f.conversions.EXPECT().ListUndelivered(ctx, filter).Return([]*domain.ConversionEvent{pending, exhausted}, nil)
	googleSender.EXPECT().Eligible(pending).Return(true)
	googleSender.EXPECT().Send(gomock.Any(), pending).Return(&domain.DeliveryResult{
		Platform:   domain.PlatformGoogle,
		StatusCode: 200,
	}, nil)
	f.conversions.EXPECT().RecordDelivery(gomock.Any(), "conv-1", gomock.Any()).Return(nil)
	f.eventLog.EXPECT().Record(gomock.Any(), gomock.Any())

	delivered, err := service.Redeliver(ctx, filter)

	require.NoError(t, err)
	assert.Equal(t, 1, delivered)
}

func TestService_Redeliver_ErroNaListagem(t *testing.T) {
	f, _ := newFixture(t)
	ctx := context.Background()
	f.conversions.EXPECT().ListUndelivered(ctx, gomock.Any()).Return(nil, errors.New("timeout"))

	delivered, err := f.service().Redeliver(ctx, repository.UndeliveredFilter{MaxAttempts: 3})

	assert.Error(t, err)
	assert.Zero(t, delivered)
}
