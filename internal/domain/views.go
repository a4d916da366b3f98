package domain

import (
	"strings"
	"time"
)

// Partition splits launches around now. A launch exactly at now is
// completed. Input order is preserved on both sides.
func Partition(launches []Launch, now time.Time) (upcoming, completed []Launch) {
	upcoming = make([]Launch, 0, len(launches))
	completed = make([]Launch, 0, len(launches))
	for _, l := range launches {
		if l.DateUTC.After(now) {
			upcoming = append(upcoming, l)
		} else {
			completed = append(completed, l)
		}
	}
	return upcoming, completed
}

// FilterByName keeps launches whose name contains query, ignoring case.
// An empty query keeps everything.
func FilterByName(launches []Launch, query string) []Launch {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]Launch, len(launches))
		copy(out, launches)
		return out
	}
	out := make([]Launch, 0, len(launches))
	for _, l := range launches {
		if strings.Contains(strings.ToLower(l.Name), q) {
			out = append(out, l)
		}
	}
	return out
}

// NextAfter returns the earliest launch strictly after now. Ties keep the
// first one in input order.
func NextAfter(launches []Launch, now time.Time) (Launch, bool) {
	upcoming, _ := Partition(launches, now)
	if len(upcoming) == 0 {
		return Launch{}, false
	}
	return SortByDate(upcoming, true)[0], true
}

// LatestUntil returns the most recent launch at or before now. Ties keep the
// first one in input order.
func LatestUntil(launches []Launch, now time.Time) (Launch, bool) {
	_, completed := Partition(launches, now)
	if len(completed) == 0 {
		return Launch{}, false
	}
	return SortByDate(completed, false)[0], true
}

// View names accepted by list endpoints.
const (
	ViewAll       = "all"
	ViewUpcoming  = "upcoming"
	ViewCompleted = "completed"
)

// NormalizeView maps user input to a view name, ignoring case and
// surrounding spaces. Unknown values become ViewAll.
func NormalizeView(v string) string {
	switch v = strings.ToLower(strings.TrimSpace(v)); v {
	case ViewUpcoming, ViewCompleted:
		return v
	default:
		return ViewAll
	}
}

// SelectView applies the name filter then keeps the requested side of the
// partition. The view is normalized first, so unknown views behave like
// ViewAll.
func SelectView(launches []Launch, view, query string, now time.Time) []Launch {
	filtered := FilterByName(launches, query)
	switch NormalizeView(view) {
	case ViewUpcoming:
		upcoming, _ := Partition(filtered, now)
		return SortByDate(upcoming, true)
	case ViewCompleted:
		_, completed := Partition(filtered, now)
		return SortByDate(completed, false)
	default:
		return filtered
	}
}
