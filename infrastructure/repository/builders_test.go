package repository

import (
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/attraveiculos/visitor-identity-api/pkg/utils"
)

func TestFingerprintUpsertInsert_SomaUmaVisita(t *testing.T) {
	query, args, err := fingerprintUpsertInsert("visitor-abc", domain.DeviceMetadata{BrowserName: utils.StringPtr("Chrome")}, 0.97).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "ON CONFLICT (visitor_id) DO UPDATE SET")
	assert.Contains(t, query, "total_visits = visitor_fingerprints.total_visits + 1")
	assert.Contains(t, query, "browser_name = COALESCE(EXCLUDED.browser_name, visitor_fingerprints.browser_name)")
	assert.Contains(t, query, "RETURNING id, total_visits, (xmax = 0) AS inserted")
	require.Len(t, args, 10)
	assert.Equal(t, "visitor-abc", args[0])
}

func TestLinkProfileUpdate_NaoReatribui(t *testing.T) {
	query, args, err := linkProfileUpdate("fp-1", "p-1").ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE visitor_fingerprints SET resolved_profile_id = $1 WHERE id = $2 AND (resolved_profile_id IS NULL OR resolved_profile_id = $3)",
		query)
	assert.Equal(t, []interface{}{"p-1", "fp-1", "p-1"}, args)
}

func TestCreateAnonymousLinked_CriaEVinculaNoMesmoComando(t *testing.T) {
	assert.Contains(t, createAnonymousLinkedSQL, "WHERE id = $1 AND resolved_profile_id IS NULL FOR UPDATE")
	assert.Contains(t, createAnonymousLinkedSQL, "INSERT INTO visitor_profiles (status, legitimate_interest_basis) SELECT $2, $3 FROM fp")
	assert.Contains(t, createAnonymousLinkedSQL, "UPDATE visitor_fingerprints f SET resolved_profile_id = ins.id FROM ins WHERE f.id = $1")
	assert.Contains(t, createAnonymousLinkedSQL, "SELECT id FROM ins")

	args := createAnonymousLinkedArgs("fp-1", domain.BasisBehavioralEngagement)
	assert.Equal(t, []interface{}{"fp-1", domain.ProfileStatusAnonymous, domain.BasisBehavioralEngagement}, args)
}

func TestApplyIdentityUpdate_PreencheSoNulos(t *testing.T) {
	query, args, err := applyIdentityUpdate("p-1", domain.ProfileIdentityPatch{
		Status: domain.ProfileStatusIdentified,
		Email:  utils.StringPtr("a@x.com"),
	}).PlaceholderFormat(squirrel.Dollar).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "status = GREATEST(status, $1::profile_status)")
	assert.Contains(t, query, "email = COALESCE(email, $2)")
	assert.NotContains(t, query, "phone =")
	assert.NotContains(t, query, "consent_given")
	assert.Contains(t, query, "WHERE id = $3")
	assert.Equal(t, []interface{}{domain.ProfileStatusIdentified, "a@x.com", "p-1"}, args)
}

func TestApplyIdentityUpdate_BaseEConsentimento(t *testing.T) {
	consentAt := time.Date(2025, 4, 2, 15, 30, 0, 0, time.UTC)
	basis := domain.BasisExplicitConsent

	query, args, err := applyIdentityUpdate("p-1", domain.ProfileIdentityPatch{
		Status:    domain.ProfileStatusEnriched,
		Basis:     &basis,
		ConsentAt: &consentAt,
	}).PlaceholderFormat(squirrel.Dollar).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "legitimate_interest_basis = CASE WHEN legitimate_interest_basis IS NULL OR legitimate_interest_basis = $2 THEN $3")
	assert.Contains(t, query, "consent_at = COALESCE(consent_at, $5)")
	assert.Contains(t, args, domain.BasisBehavioralEngagement)
	assert.Contains(t, args, consentAt)
	assert.Equal(t, domain.ProfileStatusEnriched, args[0])
}

func TestAdvanceStatusUpdate_NuncaRegride(t *testing.T) {
	query, args, err := advanceStatusUpdate("p-1", domain.ProfileStatusConverted).PlaceholderFormat(squirrel.Dollar).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "UPDATE visitor_profiles SET status = GREATEST(status, $1::profile_status), updated_at = NOW() WHERE id = $2", query)
	assert.Equal(t, []interface{}{domain.ProfileStatusConverted, "p-1"}, args)
}

func TestRecordDeliveryUpdate(t *testing.T) {
	t.Run("resposta 2xx marca entregue", func(t *testing.T) {
		query, args, err := mustDeliveryBuilder(t, domain.DeliveryResult{
			Platform:   domain.PlatformGoogle,
			StatusCode: 200,
			Response:   []byte(`{"results":[{}]}`),
		})
		require.NoError(t, err)

		assert.Contains(t, query, "google_attempts = google_attempts + 1")
		assert.Contains(t, query, "google_response = $1::jsonb")
		assert.Contains(t, query, "sent_to_google = $2")
		assert.Contains(t, query, "google_sent_at = NOW()")
		assert.Equal(t, `{"results":[{}]}`, args[0])
	})

	t.Run("502 em HTML ainda conta a tentativa", func(t *testing.T) {
		query, args, err := mustDeliveryBuilder(t, domain.DeliveryResult{
			Platform:   domain.PlatformMeta,
			StatusCode: 502,
			Response:   []byte("<html><body>Bad Gateway</body></html>"),
		})
		require.NoError(t, err)

		assert.Contains(t, query, "meta_attempts = meta_attempts + 1")
		assert.NotContains(t, query, "sent_to_meta")

		stored, ok := args[0].(string)
		require.True(t, ok)
		var wrapped map[string]string
		require.NoError(t, json.Unmarshal([]byte(stored), &wrapped))
		assert.Equal(t, "<html><body>Bad Gateway</body></html>", wrapped["raw"])
	})

	t.Run("plataforma desconhecida", func(t *testing.T) {
		_, err := recordDeliveryUpdate("c-1", domain.DeliveryResult{Platform: "tiktok"})
		assert.Error(t, err)
	})
}

func mustDeliveryBuilder(t *testing.T, result domain.DeliveryResult) (string, []interface{}, error) {
	t.Helper()
	builder, err := recordDeliveryUpdate("c-1", result)
	require.NoError(t, err)
	return builder.PlaceholderFormat(squirrel.Dollar).ToSql()
}

func TestDeliveryResponseJSONB(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantRaw string
		keep    bool
	}{
		{name: "json válido", body: `{"events_received":1}`, keep: true},
		{name: "texto puro", body: "upstream connect error", wantRaw: "upstream connect error"},
		{name: "só espaços", body: "   ", wantRaw: "   "},
		{name: "byte nulo", body: "a\x00b", wantRaw: "ab"},
		{name: "json com escape nulo", body: `{"a":"\u0000"}`, wantRaw: `{"a":"\u0000"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deliveryResponseJSONB([]byte(tt.body))
			require.True(t, json.Valid([]byte(got)))

			if tt.keep {
				assert.Equal(t, tt.body, got)
				return
			}
			var wrapped map[string]string
			require.NoError(t, json.Unmarshal([]byte(got), &wrapped))
			assert.Equal(t, tt.wantRaw, wrapped["raw"])
		})
	}
}
