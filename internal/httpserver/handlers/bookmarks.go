package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/launchdeck/internal/bookmarks"
	"github.com/MrSnakeDoc/launchdeck/internal/httpserver/deps"
	"github.com/MrSnakeDoc/launchdeck/internal/logger"
)

type bookmarksResponse struct {
	IDs []string `json:"ids"`
}

type toggleResponse struct {
	ID         string   `json:"id"`
	Bookmarked bool     `json:"bookmarked"`
	IDs        []string `json:"ids"`
}

// ListBookmarks serves GET /api/bookmarks.
func ListBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, bookmarksResponse{IDs: d.Bookmarks.Bookmarks(r.Context()).IDs()})
	}
}

// ToggleBookmark serves POST /api/bookmarks/{id}.
func ToggleBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		set, err := d.Bookmarks.Toggle(r.Context(), id)
		if err != nil {
			if errors.Is(err, bookmarks.ErrEmptyID) {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
				return
			}
			d.Logger.Error("bookmark toggle failed", logger.String("id", id), logger.Error(err))
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to save bookmark"})
			return
		}

		writeJSON(w, http.StatusOK, toggleResponse{ID: id, Bookmarked: set.Has(id), IDs: set.IDs()})
	}
}
