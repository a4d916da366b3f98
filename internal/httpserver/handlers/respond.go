package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/launchdeck/internal/domain"
	"github.com/MrSnakeDoc/launchdeck/internal/httpserver/deps"
	"github.com/MrSnakeDoc/launchdeck/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a service failure to a response. DataUnavailable always
// carries the same user-facing message; raw causes stay in the logs.
func writeError(w http.ResponseWriter, r *http.Request, d deps.Deps, err error) {
	if errors.Is(err, domain.ErrDataUnavailable) {
		d.Logger.Warn("no launch data to serve",
			logger.String("path", r.URL.Path),
			logger.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{
			Error: domain.UnavailableMessage,
			Kind:  domain.DataUnavailable.String(),
		})
		return
	}

	d.Logger.Error("request failed",
		logger.String("path", r.URL.Path),
		logger.Error(err))
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: http.StatusText(http.StatusInternalServerError)})
}
