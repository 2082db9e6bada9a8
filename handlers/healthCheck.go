package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"LOJA_PIX_GO/logger"
)

// Pinger é satisfeito por *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthCheckHandler lida com a verificação de saúde do sistema
func HealthCheckHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.Warn("Health check: banco indisponível", zap.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status":   "degraded",
				"database": "offline",
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"status":   "online",
			"database": "online",
		})
	}
}
