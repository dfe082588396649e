// internal/api/healthz.go
//
// Liveness endpoint for load balancers and uptime checks.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/yanizio/gamedex/internal/games"
)

// HealthzHandler returns the GET /healthz handler: plain-text "ok" when the
// store answers a bounded ping, 503 otherwise.  The 2-second cap keeps a
// hung backend from stalling the probe itself.
func HealthzHandler(svc *games.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := svc.Ping(ctx); err != nil {
			http.Error(w, "store unreachable", http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
