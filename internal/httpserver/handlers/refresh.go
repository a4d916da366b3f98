package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/launchdeck/internal/httpserver/deps"
	"github.com/MrSnakeDoc/launchdeck/internal/logger"
)

type refreshResponse struct {
	Triggered bool   `json:"triggered"`
	Message   string `json:"message"`
}

// Refresh serves POST /api/refresh. It only queues a refresh; the
// background refresher does the work.
func Refresh(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.RefreshTrigger == nil {
			writeJSON(w, http.StatusServiceUnavailable, refreshResponse{Message: "refresher is not running"})
			return
		}

		select {
		case d.RefreshTrigger <- struct{}{}:
			d.Logger.Info("manual refresh triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
			writeJSON(w, http.StatusAccepted, refreshResponse{Triggered: true, Message: "refresh queued"})
		default:
			d.Logger.Warn("refresh already pending",
				logger.String("remote_ip", r.RemoteAddr))
			writeJSON(w, http.StatusTooManyRequests, refreshResponse{Message: "refresh already pending, please wait"})
		}
	}
}
