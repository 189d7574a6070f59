package handler

import (
	"errors"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/attraveiculos/visitor-identity-api/internal/usecases/authenticating"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/converting"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/enriching"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/identifying"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/recovering"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/reporting"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/tracking"
	"github.com/attraveiculos/visitor-identity-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

type successResponse struct {
	Success bool `json:"success"`
}

// decodeBody lê o corpo JSON; corpo vazio ou inválido responde VAL_001
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição vazio", nil)
			return false
		}
		logrus.WithError(err).Debug("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "JSON inválido", nil)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// codedError extrai o código de API dos erros tipados dos casos de uso
func codedError(err error) (code string, message string, ok bool) {
	var (
		trackingErr   *tracking.TrackingError
		identifyErr   *identifying.IdentifyError
		enrichErr     *enriching.EnrichmentError
		conversionErr *converting.ConversionError
		recoveryErr   *recovering.RecoveryError
		reportErr     *reporting.ReportError
		authErr       *authenticating.AuthError
	)

	switch {
	case errors.As(err, &trackingErr):
		return trackingErr.Code, trackingErr.Error(), true
	case errors.As(err, &identifyErr):
		return identifyErr.Code, identifyErr.Error(), true
	case errors.As(err, &enrichErr):
		return enrichErr.Code, enrichErr.Error(), true
	case errors.As(err, &conversionErr):
		return conversionErr.Code, conversionErr.Error(), true
	case errors.As(err, &recoveryErr):
		return recoveryErr.Code, recoveryErr.Error(), true
	case errors.As(err, &reportErr):
		return reportErr.Code, reportErr.Error(), true
	case errors.As(err, &authErr):
		return authErr.Code, authErr.Error(), true
	}
	return "", "", false
}

// writeUsecaseError traduz o erro do caso de uso para a resposta padronizada
func writeUsecaseError(w http.ResponseWriter, err error, fallback string) {
	code, message, ok := codedError(err)
	if !ok {
		logrus.WithError(err).Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
		return
	}

	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logrus.WithError(err).WithField("code", code).Error(fallback)
		apiErrors.WriteError(w, code, fallback, nil)
		return
	}

	apiErrors.WriteError(w, code, message, nil)
}
