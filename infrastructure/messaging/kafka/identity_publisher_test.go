package kafka

import (
	"testing"
	"time"

	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/attraveiculos/visitor-identity-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageFor(t *testing.T) {
	createdAt := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		event   *domain.IdentityEvent
		wantKey string
	}{
		{
			name: "chave pelo fingerprint",
			event: &domain.IdentityEvent{
				ID:            "e1",
				FingerprintID: utils.StringPtr("fp-1"),
				ProfileID:     utils.StringPtr("p-1"),
				EventType:     domain.EventProfileMerged,
				CreatedAt:     createdAt,
			},
			wantKey: "fp-1",
		},
		{
			name: "sem fingerprint usa o perfil",
			event: &domain.IdentityEvent{
				ID:        "e2",
				ProfileID: utils.StringPtr("p-2"),
				EventType: domain.EventEnrichmentSuccess,
				CreatedAt: createdAt,
			},
			wantKey: "p-2",
		},
		{
			name:    "sem referências usa o id do evento",
			event:   &domain.IdentityEvent{ID: "e3", EventType: domain.EventEnrichmentFailed, CreatedAt: createdAt},
			wantKey: "e3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := messageFor(tt.event)
			require.NoError(t, err)

			assert.Equal(t, tt.wantKey, string(msg.Key))
			assert.Equal(t, createdAt, msg.Time)
			require.Len(t, msg.Headers, 1)
			assert.Equal(t, string(tt.event.EventType), string(msg.Headers[0].Value))
			assert.Contains(t, string(msg.Value), `"event_type":"`+string(tt.event.EventType)+`"`)
		})
	}
}
