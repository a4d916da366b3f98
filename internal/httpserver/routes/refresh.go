package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/launchdeck/internal/httpserver/deps"
	"github.com/MrSnakeDoc/launchdeck/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/launchdeck/internal/httpserver/mw"
)

func init() { Register("refresh", registerRefresh) }

func registerRefresh(r chi.Router, d deps.Deps) {
	r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger), mw.EnforceHost(d.AllowedHosts, d.Logger)).Post("/api/refresh", handlers.Refresh(d))
}
