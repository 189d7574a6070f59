package handler

import (
	"net/http"

	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/tracking"
	"github.com/attraveiculos/visitor-identity-api/pkg/utils"
)

// StartSession registra o fingerprint e abre a sessão do visitante
func StartSession(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.StartSessionRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ClientIP = utils.ClientIP(r)
		req.UserAgent = r.UserAgent()

		resp, err := service.StartSession(r.Context(), &req)
		if err != nil {
			writeUsecaseError(w, err, "Erro ao iniciar sessão")
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

func RecordPageView(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.PageViewRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := service.RecordPageView(r.Context(), &req); err != nil {
			writeUsecaseError(w, err, "Erro ao registrar visualização de página")
			return
		}

		writeJSON(w, http.StatusOK, successResponse{Success: true})
	})
}

func RecordPageTime(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.PageTimeRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := service.RecordPageTime(r.Context(), &req); err != nil {
			writeUsecaseError(w, err, "Erro ao registrar tempo na página")
			return
		}

		writeJSON(w, http.StatusOK, successResponse{Success: true})
	})
}

// RecordInteraction aceita apenas os tipos de interação do catálogo
func RecordInteraction(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.InteractionRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := service.RecordInteraction(r.Context(), &req); err != nil {
			writeUsecaseError(w, err, "Erro ao registrar interação")
			return
		}

		writeJSON(w, http.StatusOK, successResponse{Success: true})
	})
}
