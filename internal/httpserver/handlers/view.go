package handlers

import (
	"time"

	"github.com/MrSnakeDoc/launchdeck/internal/bookmarks"
	"github.com/MrSnakeDoc/launchdeck/internal/domain"
)

// launchView is the API shape of a launch, with every derived field already
// computed against the server clock.
type launchView struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	DateUTC         time.Time           `json:"date_utc"`
	Status          string              `json:"status"`
	Outcome         string              `json:"outcome"`
	Rocket          string              `json:"rocket,omitempty"`
	RocketType      string              `json:"rocket_type,omitempty"`
	Site            string              `json:"site"`
	SiteCoordinates *domain.Coordinates `json:"site_coordinates"` // null when unknown
	LandingType     string              `json:"landing_type,omitempty"`
	Patch           string              `json:"patch"`
	PatchLarge      string              `json:"patch_large"`
	Images          []string            `json:"images"`
	Details         string              `json:"details,omitempty"`
	Links           []domain.Link       `json:"links"`
	Failures        []domain.Failure    `json:"failures,omitempty"`
	Bookmarked      bool                `json:"bookmarked"`
}

func newLaunchView(l domain.Launch, now time.Time, placeholder string, marks bookmarks.Set) launchView {
	v := launchView{
		ID:          l.ID,
		Name:        l.Name,
		DateUTC:     l.DateUTC,
		Status:      l.StatusLabel(now),
		Outcome:     l.Outcome(now).String(),
		Rocket:      l.RocketName(),
		RocketType:  l.RocketType(),
		Site:        l.SiteName(),
		LandingType: l.LandingType(),
		Patch:       l.PatchImage(domain.PatchSmall, placeholder),
		PatchLarge:  l.PatchImage(domain.PatchLarge, placeholder),
		Images:      l.Images(),
		Links:       l.RelatedLinks(),
		Failures:    l.Failures,
		Bookmarked:  marks.Has(l.ID),
	}
	if c, ok := l.SiteCoordinates(); ok {
		v.SiteCoordinates = &c
	}
	if l.Details != nil {
		v.Details = *l.Details
	}
	return v
}

func newLaunchViews(launches []domain.Launch, now time.Time, placeholder string, marks bookmarks.Set) []launchView {
	out := make([]launchView, 0, len(launches))
	for _, l := range launches {
		out = append(out, newLaunchView(l, now, placeholder, marks))
	}
	return out
}

// countdownView is a countdown to a future instant.
type countdownView struct {
	domain.Clock
	Label string `json:"label"`
}

func newCountdownView(target, now time.Time) countdownView {
	c := domain.Countdown(target, now)
	return countdownView{Clock: c, Label: domain.FormatCountdown(c)}
}
