package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/attraveiculos/visitor-identity-api/internal/scheduler"
	"github.com/attraveiculos/visitor-identity-api/pkg/apiErrors"
)

// RedeliveryJob é o job de reenvio de conversões controlado pelo admin
type RedeliveryJob interface {
	TriggerManualSync()
	GetStatus() scheduler.RedeliveryStatus
}

// RunRedelivery executa manualmente o reenvio de conversões pendentes
func RunRedelivery(job RedeliveryJob) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de reenvio de conversões não disponível", nil)
			return
		}

		if job.GetStatus().Running {
			writeJSON(w, http.StatusConflict, map[string]string{"message": "Reenvio de conversões já em andamento"})
			return
		}

		logrus.Info("Reenvio manual de conversões solicitado")
		job.TriggerManualSync()

		writeJSON(w, http.StatusAccepted, map[string]string{"message": "Reenvio de conversões iniciado"})
	})
}

func RedeliveryStatus(job RedeliveryJob) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de reenvio de conversões não disponível", nil)
			return
		}

		writeJSON(w, http.StatusOK, job.GetStatus())
	})
}
