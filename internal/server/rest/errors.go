package rest

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/whattowear/internal/server/apperr"
)

// writeError is the only place failures are rendered. The body carries the
// sanitized message; the cause goes to the log.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	ae := apperr.From(err)
	ctx := r.Context()

	args := []any{"kind", ae.Kind.String(), "status", ae.Status(), "error", err.Error()}
	if ae.Kind == apperr.KindInternal {
		s.logger.Error(ctx, "request failed", args...)
	} else {
		s.logger.Info(ctx, "request rejected", args...)
	}

	writeJSON(w, ae.Status(), messageResponse{Message: ae.Message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
