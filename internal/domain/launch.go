package domain

import (
	"sort"
	"time"
)

// Launch is one flight attempt as served by the SpaceX v4 API.
//
// Only Name, ID and DateUTC are guaranteed. Everything else may be
// missing and every accessor below tolerates that.
type Launch struct {
	// ─────────────────────────────
	// Identity
	// ─────────────────────────────

	// ID is unique within any collection returned by the API.
	ID string `json:"id"`

	// Name is the mission name. Example: "CRS-33"
	Name string `json:"name"`

	// ─────────────────────────────
	// Schedule
	// ─────────────────────────────

	// DateUTC is the scheduled (or actual) liftoff instant.
	DateUTC time.Time `json:"date_utc"`

	DateUnix      int64  `json:"date_unix,omitempty"`
	DatePrecision string `json:"date_precision,omitempty"`
	Upcoming      bool   `json:"upcoming"`
	TBD           bool   `json:"tbd,omitempty"`
	NET           bool   `json:"net,omitempty"`

	// ─────────────────────────────
	// Vehicle & site
	// ─────────────────────────────

	Rocket    *Rocket    `json:"rocket,omitempty"`
	Launchpad *Launchpad `json:"launchpad,omitempty"`
	Cores     []Core     `json:"cores,omitempty"`

	// ─────────────────────────────
	// Outcome
	// ─────────────────────────────

	// Success is nil while the outcome is not known yet.
	Success  *bool     `json:"success"`
	Failures []Failure `json:"failures,omitempty"`
	Details  *string   `json:"details,omitempty"`

	Links Links `json:"links"`
}

// Rocket describes the launch vehicle.
type Rocket struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// Launchpad describes the launch site.
type Launchpad struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	FullName  string   `json:"full_name,omitempty"`
	Locality  string   `json:"locality,omitempty"`
	Region    string   `json:"region,omitempty"`
	// Latitude and Longitude are nil when the API returned the launchpad as
	// a bare ID.
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Coordinates is a geographic position in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Core is one first-stage booster flown on the launch.
type Core struct {
	Core           string  `json:"core,omitempty"`
	Flight         int     `json:"flight,omitempty"`
	Reused         *bool   `json:"reused,omitempty"`
	LandingAttempt *bool   `json:"landing_attempt,omitempty"`
	LandingSuccess *bool   `json:"landing_success,omitempty"`
	LandingType    *string `json:"landing_type,omitempty"`
	Landpad        *string `json:"landpad,omitempty"`
}

// Failure is one anomaly reported for a launch.
type Failure struct {
	Time     int    `json:"time"`
	Altitude *int   `json:"altitude,omitempty"`
	Reason   string `json:"reason"`
}

// Links groups the external references of a launch.
type Links struct {
	Patch     Patch   `json:"patch"`
	Webcast   *string `json:"webcast,omitempty"`
	YouTubeID *string `json:"youtube_id,omitempty"`
	Article   *string `json:"article,omitempty"`
	Wikipedia *string `json:"wikipedia,omitempty"`
	Presskit  *string `json:"presskit,omitempty"`
	Reddit    Reddit  `json:"reddit"`
	Flickr    Flickr  `json:"flickr"`
}

// Reddit holds the discussion threads of a launch.
type Reddit struct {
	Campaign *string `json:"campaign,omitempty"`
	Launch   *string `json:"launch,omitempty"`
	Media    *string `json:"media,omitempty"`
	Recovery *string `json:"recovery,omitempty"`
}

// Flickr holds launch photo URLs.
type Flickr struct {
	Small    []string `json:"small,omitempty"`
	Original []string `json:"original,omitempty"`
}

// Patch holds the mission patch image URLs.
type Patch struct {
	Small *string `json:"small,omitempty"`
	Large *string `json:"large,omitempty"`
}

// Outcome is the tri-state result of a launch.
type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomeSucceeded
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome reports the launch result relative to now. A launch that has not
// flown yet or has no reported result is unknown, never failed.
func (l *Launch) Outcome(now time.Time) Outcome {
	if l.Success == nil || l.DateUTC.After(now) {
		return OutcomeUnknown
	}
	if *l.Success {
		return OutcomeSucceeded
	}
	return OutcomeFailed
}

// Status labels used by list and detail views.
const (
	StatusUpcoming = "UPCOMING"
	StatusSuccess  = "SUCCESS"
	StatusFailure  = "FAILURE"
	StatusUnknown  = "UNKNOWN"
)

// StatusLabel returns the badge text for the launch relative to now.
// A future launch is always UPCOMING, whatever the payload claims.
func (l *Launch) StatusLabel(now time.Time) string {
	if l.DateUTC.After(now) {
		return StatusUpcoming
	}
	switch l.Outcome(now) {
	case OutcomeSucceeded:
		return StatusSuccess
	case OutcomeFailed:
		return StatusFailure
	default:
		return StatusUnknown
	}
}

// PatchSize selects which mission patch variant a view wants.
type PatchSize int

const (
	PatchSmall PatchSize = iota
	PatchLarge
)

// PatchImage returns the mission patch URL for size, falling back to the
// other size and finally to placeholder.
func (l *Launch) PatchImage(size PatchSize, placeholder string) string {
	first, second := l.Links.Patch.Small, l.Links.Patch.Large
	if size == PatchLarge {
		first, second = second, first
	}
	if v := deref(first); v != "" {
		return v
	}
	if v := deref(second); v != "" {
		return v
	}
	return placeholder
}

// Link is one related external reference.
type Link struct {
	Kind string `json:"kind"`
	URL  string `json:"url"`
}

// RelatedLinks returns the non-empty external links in display order.
func (l *Launch) RelatedLinks() []Link {
	candidates := []Link{
		{Kind: "article", URL: deref(l.Links.Article)},
		{Kind: "webcast", URL: deref(l.Links.Webcast)},
		{Kind: "wikipedia", URL: deref(l.Links.Wikipedia)},
		{Kind: "presskit", URL: deref(l.Links.Presskit)},
		{Kind: "reddit_campaign", URL: deref(l.Links.Reddit.Campaign)},
		{Kind: "reddit_launch", URL: deref(l.Links.Reddit.Launch)},
		{Kind: "reddit_media", URL: deref(l.Links.Reddit.Media)},
		{Kind: "reddit_recovery", URL: deref(l.Links.Reddit.Recovery)},
	}
	links := make([]Link, 0, len(candidates))
	for _, c := range candidates {
		if c.URL != "" {
			links = append(links, c)
		}
	}
	return links
}

// Images returns the launch photo URLs, full size first, falling back to
// the small variants. Blank entries are dropped.
func (l *Launch) Images() []string {
	src := l.Links.Flickr.Original
	if len(src) == 0 {
		src = l.Links.Flickr.Small
	}
	out := make([]string, 0, len(src))
	for _, u := range src {
		if u != "" {
			out = append(out, u)
		}
	}
	return out
}

// Landing types as displayed to users.
const (
	LandingDroneship   = "DRONESHIP"
	LandingZone        = "LANDING ZONE"
	LandingOcean       = "OCEAN"
	landingTypeASDS    = "ASDS"
	landingTypeRTLS    = "RTLS"
	landingTypeOceanic = "Ocean"
)

// LandingType returns the landing type of the first core that reports one.
// Empty when the API has nothing for this launch.
func (l *Launch) LandingType() string {
	for _, c := range l.Cores {
		switch deref(c.LandingType) {
		case landingTypeASDS:
			return LandingDroneship
		case landingTypeRTLS:
			return LandingZone
		case landingTypeOceanic:
			return LandingOcean
		case "":
			continue
		default:
			return deref(c.LandingType)
		}
	}
	return ""
}

// RocketName returns the rocket name or "" when the rocket is not expanded.
func (l *Launch) RocketName() string {
	if l.Rocket == nil {
		return ""
	}
	return l.Rocket.Name
}

// RocketType returns the rocket type or "" when the rocket is not expanded.
func (l *Launch) RocketType() string {
	if l.Rocket == nil {
		return ""
	}
	return l.Rocket.Type
}

// SiteCoordinates returns the launch site position. ok is false when the
// launchpad is missing or was not expanded, so no position is known.
func (l *Launch) SiteCoordinates() (c Coordinates, ok bool) {
	if l.Launchpad == nil || l.Launchpad.Latitude == nil || l.Launchpad.Longitude == nil {
		return Coordinates{}, false
	}
	return Coordinates{Latitude: *l.Launchpad.Latitude, Longitude: *l.Launchpad.Longitude}, true
}

// SiteName returns the launch site name, "Unknown" when absent.
func (l *Launch) SiteName() string {
	if l.Launchpad == nil || l.Launchpad.Name == "" {
		return "Unknown"
	}
	return l.Launchpad.Name
}

// SortByDate returns a copy of launches ordered by DateUTC. The sort is
// stable so equal instants keep their input order.
func SortByDate(launches []Launch, ascending bool) []Launch {
	out := make([]Launch, len(launches))
	copy(out, launches)
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].DateUTC.Before(out[j].DateUTC)
		}
		return out[i].DateUTC.After(out[j].DateUTC)
	})
	return out
}

// FindByID returns the launch with id, if present.
func FindByID(launches []Launch, id string) (Launch, bool) {
	for _, l := range launches {
		if l.ID == id {
			return l, true
		}
	}
	return Launch{}, false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
