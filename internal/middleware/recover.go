// internal/middleware/recover.go
//
// Panic recovery middleware.
//
// A panicking handler must not take the whole process down, and the client
// still gets the service's JSON error shape instead of a severed
// connection.  Recover logs the panic value and stack at ERROR, then
// writes `500 {"message": "internal server error"}`.
package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

// Recover converts handler panics into 500 responses.  http.ErrAbortHandler
// is re-raised so net/http can abort the connection as intended.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			zap.S().Errorw("handler panic",
				"panic", rec,
				"method", r.Method,
				"path", r.URL.Path,
				"stack", string(debug.Stack()),
			)

			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]any{"message": "internal server error"})
		}()

		next.ServeHTTP(w, r)
	})
}
