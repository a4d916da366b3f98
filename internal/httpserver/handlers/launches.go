package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/launchdeck/internal/domain"
	"github.com/MrSnakeDoc/launchdeck/internal/httpserver/deps"
)

type launchListResponse struct {
	View     string       `json:"view"`
	Query    string       `json:"query,omitempty"`
	Count    int          `json:"count"`
	Launches []launchView `json:"launches"`
}

// ListLaunches serves GET /api/launches?q=&view=all|upcoming|completed.
func ListLaunches(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		view := domain.NormalizeView(r.URL.Query().Get("view"))

		launches, err := d.Launches.FetchLaunches(ctx)
		if err != nil {
			writeError(w, r, d, err)
			return
		}

		now := d.Now()
		selected := domain.SelectView(launches, view, query, now)
		marks := d.Bookmarks.Bookmarks(ctx)

		writeJSON(w, http.StatusOK, launchListResponse{
			View:     view,
			Query:    query,
			Count:    len(selected),
			Launches: newLaunchViews(selected, now, d.PlaceholderImage, marks),
		})
	}
}

// GetLaunch serves GET /api/launches/{id}.
func GetLaunch(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := chi.URLParam(r, "id")

		l, err := d.Launches.FetchLaunch(ctx, id)
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		writeJSON(w, http.StatusOK, newLaunchView(l, d.Now(), d.PlaceholderImage, d.Bookmarks.Bookmarks(ctx)))
	}
}

type nextLaunchResponse struct {
	launchView
	Countdown countdownView `json:"countdown"`
}

// NextLaunch serves GET /api/launches/next.
func NextLaunch(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		l, err := d.Launches.FetchNextLaunch(ctx)
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		now := d.Now()
		writeJSON(w, http.StatusOK, nextLaunchResponse{
			launchView: newLaunchView(l, now, d.PlaceholderImage, d.Bookmarks.Bookmarks(ctx)),
			Countdown:  newCountdownView(l.DateUTC, now),
		})
	}
}

// LatestLaunch serves GET /api/launches/latest.
func LatestLaunch(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		l, err := d.Launches.FetchLatestLaunch(ctx)
		if err != nil {
			writeError(w, r, d, err)
			return
		}
		writeJSON(w, http.StatusOK, newLaunchView(l, d.Now(), d.PlaceholderImage, d.Bookmarks.Bookmarks(ctx)))
	}
}

type overviewResponse struct {
	Next      *nextLaunchResponse `json:"next"`
	Latest    *launchView         `json:"latest"`
	Upcoming  []launchView        `json:"upcoming"`
	Completed []launchView        `json:"completed"`
	Missions  []missionView       `json:"missions"`
}

// Overview serves GET /api/overview: everything the landing screen shows in
// one call. Next and latest are null when unavailable.
func Overview(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		snap, err := d.Launches.FetchAll(ctx)
		if err != nil {
			writeError(w, r, d, err)
			return
		}

		now := d.Now()
		marks := d.Bookmarks.Bookmarks(ctx)
		upcoming, completed := domain.Partition(snap.Launches, now)

		resp := overviewResponse{
			Upcoming:  newLaunchViews(domain.SortByDate(upcoming, true), now, d.PlaceholderImage, marks),
			Completed: newLaunchViews(domain.SortByDate(completed, false), now, d.PlaceholderImage, marks),
			Missions:  newMissionViews(d),
		}
		if snap.Next != nil {
			resp.Next = &nextLaunchResponse{
				launchView: newLaunchView(*snap.Next, now, d.PlaceholderImage, marks),
				Countdown:  newCountdownView(snap.Next.DateUTC, now),
			}
		}
		if snap.Latest != nil {
			v := newLaunchView(*snap.Latest, now, d.PlaceholderImage, marks)
			resp.Latest = &v
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
