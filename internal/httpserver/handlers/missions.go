package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/launchdeck/internal/domain"
	"github.com/MrSnakeDoc/launchdeck/internal/httpserver/deps"
)

type missionView struct {
	domain.Mission
	Label string `json:"label"`
}

func newMissionViews(d deps.Deps) []missionView {
	if d.Missions == nil {
		return []missionView{}
	}
	missions := d.Missions.Missions()
	out := make([]missionView, 0, len(missions))
	for _, m := range missions {
		out = append(out, missionView{Mission: m, Label: m.ElapsedLabel()})
	}
	return out
}

// Missions serves GET /api/missions.
func Missions(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, newMissionViews(d))
	}
}
