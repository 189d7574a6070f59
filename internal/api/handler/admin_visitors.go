package handler

import (
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/attraveiculos/visitor-identity-api/internal/usecases/reporting"
	"github.com/attraveiculos/visitor-identity-api/pkg/apiErrors"
	"github.com/attraveiculos/visitor-identity-api/pkg/middleware"
)

// ListVisitors lista os perfis com filtro de status e paginação
func ListVisitors(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		page, err := intParam(query.Get("page"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro page inválido", nil)
			return
		}

		limit, err := intParam(query.Get("limit"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
			return
		}

		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			logrus.WithField("admin_id", claims.AdminID).Debug("Listando visitantes")
		}

		result, err := service.ListVisitors(r.Context(), domain.VisitorFilter{
			Status: query.Get("status"),
			Page:   page,
			Limit:  limit,
		})
		if err != nil {
			writeUsecaseError(w, err, "Erro ao listar visitantes")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func VisitorMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics, err := service.Metrics(r.Context())
		if err != nil {
			writeUsecaseError(w, err, "Erro ao calcular métricas de visitantes")
			return
		}

		writeJSON(w, http.StatusOK, metrics)
	})
}

// intParam trata ausência como zero para o caso de uso aplicar o padrão
func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
