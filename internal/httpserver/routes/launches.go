package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/launchdeck/internal/httpserver/deps"
	"github.com/MrSnakeDoc/launchdeck/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/launchdeck/internal/httpserver/mw"
)

func init() { Register("launches", registerLaunches) }

func registerLaunches(r chi.Router, d deps.Deps) {
	api := r.With(mw.EnforceHost(d.AllowedHosts, d.Logger))
	api.Get("/api/overview", handlers.Overview(d))
	api.Get("/api/launches", handlers.ListLaunches(d))
	// Static segments take precedence over {id} in chi.
	api.Get("/api/launches/next", handlers.NextLaunch(d))
	api.Get("/api/launches/latest", handlers.LatestLaunch(d))
	api.Get("/api/launches/{id}", handlers.GetLaunch(d))
	api.Get("/api/missions", handlers.Missions(d))
}
