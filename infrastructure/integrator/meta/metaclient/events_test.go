package metaclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	metadomain "github.com/attraveiculos/visitor-identity-api/infrastructure/integrator/meta/domain"
	"github.com/attraveiculos/visitor-identity-api/internal/config"
)

const testToken = "TOKEN-DO-PIXEL-123"

func newTestClient(baseURL string) Client {
	return NewClient(&config.Config{
		Meta: config.Meta{URL: baseURL, PixelID: "987", ConversionsToken: testToken},
	})
}

func TestSendEvents_TokenNoHeader(t *testing.T) {
	var gotAuth, gotQuery, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		gotPath = r.URL.Path
		w.Write([]byte(`{"events_received":1}`))
	}))
	defer srv.Close()

	resp, err := newTestClient(srv.URL).SendEvents(context.Background(), &metadomain.EventsRequest{})
	require.NoError(t, err)

	assert.True(t, resp.OK())
	assert.Equal(t, "/987/events", gotPath)
	assert.Equal(t, "Bearer "+testToken, gotAuth)
	assert.NotContains(t, gotQuery, testToken)
}

func TestSendEvents_FalhaDeTransporteNaoExpoeToken(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	_, err := newTestClient(baseURL).SendEvents(context.Background(), &metadomain.EventsRequest{})
	require.Error(t, err)

	assert.NotContains(t, err.Error(), testToken)
}
