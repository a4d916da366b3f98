package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func launchIDs(ls []Launch) []string {
	out := make([]string, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.ID)
	}
	return out
}

func TestPartition(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	launches := []Launch{
		{ID: "past", DateUTC: now.Add(-time.Hour)},
		{ID: "future", DateUTC: now.Add(time.Hour)},
		{ID: "now", DateUTC: now},
		{ID: "far", DateUTC: now.Add(48 * time.Hour)},
	}

	upcoming, completed := Partition(launches, now)

	if diff := cmp.Diff([]string{"future", "far"}, launchIDs(upcoming)); diff != "" {
		t.Errorf("upcoming mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"past", "now"}, launchIDs(completed)); diff != "" {
		t.Errorf("completed mismatch (-want +got):\n%s", diff)
	}
	if len(upcoming)+len(completed) != len(launches) {
		t.Errorf("partition lost launches")
	}
}

func TestFilterByName(t *testing.T) {
	launches := []Launch{
		{ID: "1", Name: "Starlink 4-1"},
		{ID: "2", Name: "CRS-20"},
		{ID: "3", Name: "starlink 6-2"},
	}

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{name: "empty query keeps all", query: "", expected: []string{"1", "2", "3"}},
		{name: "blank query keeps all", query: "   ", expected: []string{"1", "2", "3"}},
		{name: "case insensitive", query: "STARLINK", expected: []string{"1", "3"}},
		{name: "substring", query: "rs-2", expected: []string{"2"}},
		{name: "no match", query: "falcon heavy", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := launchIDs(FilterByName(launches, tt.query))
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("FilterByName(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestNextAndLatest(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	launches := []Launch{
		{ID: "t-1", DateUTC: now.Add(-time.Hour)},
		{ID: "t+10", DateUTC: now.Add(10 * time.Hour)},
		{ID: "t+5", DateUTC: now.Add(5 * time.Hour)},
		{ID: "t-3", DateUTC: now.Add(-3 * time.Hour)},
	}

	next, ok := NextAfter(launches, now)
	if !ok || next.ID != "t+5" {
		t.Errorf("NextAfter() = %q, %v; want t+5", next.ID, ok)
	}

	latest, ok := LatestUntil(launches, now)
	if !ok || latest.ID != "t-1" {
		t.Errorf("LatestUntil() = %q, %v; want t-1", latest.ID, ok)
	}

	if _, ok := NextAfter(launches[:1], now); ok {
		t.Errorf("NextAfter() found a launch with only past entries")
	}
	if _, ok := LatestUntil(nil, now); ok {
		t.Errorf("LatestUntil(nil) found a launch")
	}
}

func TestSelectView(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	launches := []Launch{
		{ID: "old", Name: "Starlink A", DateUTC: now.Add(-48 * time.Hour)},
		{ID: "soon", Name: "Starlink B", DateUTC: now.Add(time.Hour)},
		{ID: "recent", Name: "CRS-30", DateUTC: now.Add(-time.Hour)},
		{ID: "later", Name: "Starlink C", DateUTC: now.Add(24 * time.Hour)},
	}

	tests := []struct {
		name     string
		view     string
		query    string
		expected []string
	}{
		{name: "all keeps input order", view: ViewAll, expected: []string{"old", "soon", "recent", "later"}},
		{name: "upcoming ascending", view: ViewUpcoming, expected: []string{"soon", "later"}},
		{name: "completed descending", view: ViewCompleted, expected: []string{"recent", "old"}},
		{name: "filter then view", view: ViewCompleted, query: "starlink", expected: []string{"old"}},
		{name: "unknown view acts as all", view: "bogus", query: "crs", expected: []string{"recent"}},
		{name: "view ignores case", view: " Upcoming ", expected: []string{"soon", "later"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := launchIDs(SelectView(launches, tt.view, tt.query, now))
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("SelectView() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeView(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{in: "", expected: ViewAll},
		{in: "all", expected: ViewAll},
		{in: "UPCOMING", expected: ViewUpcoming},
		{in: " Completed ", expected: ViewCompleted},
		{in: "past", expected: ViewAll},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeView(tt.in); got != tt.expected {
				t.Errorf("NormalizeView(%q) = %q, want %q", tt.in, got, tt.expected)
			}
		})
	}
}
