package handler

import (
	"net/http"

	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/converting"
	"github.com/attraveiculos/visitor-identity-api/pkg/utils"
)

// RecordConversion persiste a conversão e agenda o envio às plataformas de anúncio
func RecordConversion(service converting.Dispatcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.ConversionRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ClientIP = utils.ClientIP(r)

		resp, err := service.RecordConversion(r.Context(), &req)
		if err != nil {
			writeUsecaseError(w, err, "Erro ao registrar conversão")
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}
