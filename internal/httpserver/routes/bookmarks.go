package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/launchdeck/internal/httpserver/deps"
	"github.com/MrSnakeDoc/launchdeck/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/launchdeck/internal/httpserver/mw"
)

func init() { Register("bookmarks", registerBookmarks) }

func registerBookmarks(r chi.Router, d deps.Deps) {
	host := mw.EnforceHost(d.AllowedHosts, d.Logger)
	r.With(host).Get("/api/bookmarks", handlers.ListBookmarks(d))
	r.With(host).Post("/api/bookmarks/{id}", handlers.ToggleBookmark(d))
}
