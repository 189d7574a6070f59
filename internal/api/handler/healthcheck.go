package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/attraveiculos/visitor-identity-api/pkg/log"
)

const healthcheckPingTimeout = 2 * time.Second

// Pinger é satisfeito pela conexão do PostgreSQL
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthcheckResponse struct {
	Status   string `json:"status"`
	Time     string `json:"time"`
	Database string `json:"database,omitempty"`
}

// HealthcheckHandler devolve a hora do servidor. Com um Pinger, também testa o banco e responde 503 se ele estiver fora.
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := healthcheckResponse{
			Status: "ok",
			Time:   time.Now().UTC().Format(time.RFC3339),
		}
		status := http.StatusOK

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthcheckPingTimeout)
			defer cancel()

			resp.Database = "ok"
			if err := db.Ping(ctx); err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Healthcheck sem acesso ao banco")
				resp.Status = "degraded"
				resp.Database = "unavailable"
				status = http.StatusServiceUnavailable
			}
		}

		writeJSON(w, status, resp)
	})
}
