package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestMaskPersonalData(t *testing.T) {
	tests := []struct {
		key   string
		value string
		want  string
	}{
		{key: "client_ip", value: "189.45.12.201", want: "189.45.12.0"},
		{key: "client_ip", value: "2804:14c:5b:1234::1", want: "2804:14c:5b::"},
		{key: "client_ip", value: "lixo", want: "invalid"},
		{key: "email", value: "maria.souza@gmail.com", want: "m***@gmail.com"},
		{key: "phone", value: "+5511987654321", want: "****4321"},
		{key: "cpf", value: "123", want: "****"},
		{key: "path", value: "/v1/session", want: "/v1/session"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"/"+tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, redact(tt.key, tt.value))
		})
	}
}

func TestWithFields_RedactsInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})

	l := &logger{entry: logrus.NewEntry(base)}
	l.WithFields(Fields{"email": "joao@attra.com.br", "method": "POST"}).Info("teste")

	assert.Contains(t, buf.String(), `"email":"j***@attra.com.br"`)
	assert.NotContains(t, buf.String(), "joao@")
}

func TestWithFields_DevelopmentFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	SetupTestLogger()

	l := &logger{entry: logrus.NewEntry(logrus.New())}

	assert.Same(t, l, l.WithFields(Fields{"user_agent": "Mozilla"}))
	assert.NotSame(t, l, l.WithFields(Fields{"fingerprint_id": "fp-1"}))
	assert.NotSame(t, l, l.WithField("session_id", "s-1"))
}

func TestWithCorrelationID(t *testing.T) {
	incoming := "5f0c4a3e-8b1d-4e2a-9c77-0d2f1b6a9e10"

	ctx, id := WithCorrelationID(context.Background(), incoming)
	assert.Equal(t, incoming, id)
	assert.Equal(t, incoming, GetCorrelationID(ctx))

	_, generated := WithCorrelationID(context.Background(), "nao-e-uuid")
	assert.NotEqual(t, "nao-e-uuid", generated)
	assert.Len(t, generated, 36)

	assert.Empty(t, GetCorrelationID(context.Background()))
}
