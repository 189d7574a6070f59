package handler

import (
	"net/http"

	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/enriching"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/identifying"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/recovering"
	"github.com/attraveiculos/visitor-identity-api/pkg/utils"
)

func Identify(service identifying.Resolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.IdentifyRequest
		if !decodeBody(w, r, &req) {
			return
		}

		resp, err := service.Identify(r.Context(), &req)
		if err != nil {
			writeUsecaseError(w, err, "Erro ao identificar visitante")
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

// CheckEnrichment avalia o engajamento e dispara o enriquecimento comportamental
func CheckEnrichment(gate enriching.Gate) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.EnrichCheckRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ClientIP = utils.ClientIP(r)

		resp, err := gate.CheckAndTrigger(r.Context(), &req)
		if err != nil {
			writeUsecaseError(w, err, "Erro ao verificar enriquecimento")
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

// EnrichmentWebhook recebe o resultado do pipeline externo de enriquecimento
func EnrichmentWebhook(ingestor enriching.Ingestor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var result domain.EnrichmentResult
		if !decodeBody(w, r, &result) {
			return
		}

		resp, err := ingestor.Ingest(r.Context(), &result)
		if err != nil {
			writeUsecaseError(w, err, "Erro ao processar enriquecimento")
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

func Abandoned(service recovering.Recoverer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.AbandonRequest
		if !decodeBody(w, r, &req) {
			return
		}

		resp, err := service.OnAbandon(r.Context(), &req)
		if err != nil {
			writeUsecaseError(w, err, "Erro ao processar abandono")
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}
