package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/launchdeck/internal/httpserver/deps"
	"github.com/MrSnakeDoc/launchdeck/internal/store"
)

type componentStatus struct {
	OK          bool   `json:"ok"`
	Mode        string `json:"mode,omitempty"`
	LastRefresh string `json:"last_refresh,omitempty"`
	Launches    *int   `json:"launches,omitempty"`
	Impact      string `json:"impact,omitempty"`
	Error       string `json:"error,omitempty"`
}

type infraResponse struct {
	ServingMode string                     `json:"serving_mode"`
	Components  map[string]componentStatus `json:"components"`
}

// Infra reports the state of the store, the cached snapshot and the
// background refresher.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		components := map[string]componentStatus{
			"store":     checkStore(ctx, d),
			"cache":     checkCache(ctx, d),
			"refresher": checkRefresher(d),
		}

		writeJSON(w, http.StatusOK, infraResponse{
			ServingMode: servingMode(components),
			Components:  components,
		})
	}
}

// servingMode is "live" whenever the API answered the last refresh, even
// with an unusable cache. Otherwise it is "cached" while the snapshot can be
// served and "critical" when nothing can.
func servingMode(components map[string]componentStatus) string {
	switch {
	case components["refresher"].OK:
		return "live"
	case components["store"].OK && components["cache"].OK:
		return "cached"
	default:
		return "critical"
	}
}

func checkStore(ctx context.Context, d deps.Deps) componentStatus {
	if err := d.Store.Ping(ctx); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   d.StoreKind,
			Impact: "no-cache-fallback",
			Error:  err.Error(),
		}
	}
	return componentStatus{OK: true, Mode: d.StoreKind}
}

func checkCache(ctx context.Context, d deps.Deps) componentStatus {
	_, ok, err := d.Store.Get(ctx, store.KeyLaunches)
	switch {
	case err != nil:
		return componentStatus{OK: false, Error: err.Error()}
	case !ok:
		return componentStatus{OK: false, Impact: "api-outage-means-no-data"}
	}
	return componentStatus{OK: true}
}

func checkRefresher(d deps.Deps) componentStatus {
	last := "never"
	if t := d.Launches.LastRefresh(); !t.IsZero() {
		last = t.UTC().Format(time.RFC3339)
	}

	if d.Refresher == nil {
		return componentStatus{OK: last != "never", Mode: "on-demand", LastRefresh: last}
	}

	res := d.Refresher.Last()
	st := componentStatus{OK: res.Err == "" && !res.At.IsZero(), Mode: "background", LastRefresh: last}
	if res.Err != "" {
		st.Error = res.Err
		st.Impact = "serving-cached-snapshot"
	} else if !res.At.IsZero() {
		n := res.Launches
		st.Launches = &n
	}
	return st
}
