// internal/api/respond.go
//
// JSON response helpers shared by all handlers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/yanizio/gamedex/internal/games"
)

// ErrorResponse is the uniform error body.  Validation, backend, and
// not-found failures all use it; clients tell them apart by status code.
type ErrorResponse struct {
	Message string `json:"message"`
}

// writeJSON encodes v with the proper content type.  Encode failures are
// logged; the status line is already gone at that point.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.S().Errorw("response encode failed", "err", err)
	}
}

// writeError maps an operation error onto the wire: NotFoundError → 404,
// everything else (validation included) → 500.  The message passes through
// verbatim.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, games.ErrNotFound) {
		status = http.StatusNotFound
	}
	writeJSON(w, status, ErrorResponse{Message: err.Error()})
}
