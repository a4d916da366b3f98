// Package missions loads the list of ongoing missions from YAML.
package missions

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/MrSnakeDoc/launchdeck/internal/domain"
	"gopkg.in/yaml.v3"
)

var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Loader reads a missions file.
type Loader struct {
	filePath string
	now      func() time.Time
}

// NewLoader creates a loader for filePath.
func NewLoader(filePath string) *Loader {
	return &Loader{filePath: filePath, now: time.Now}
}

// Load reads, parses and maps the file. ${VAR} references are replaced by
// the environment value before parsing.
func (l *Loader) Load() ([]domain.Mission, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read missions file: %w", err)
	}

	data = envRef.ReplaceAllFunc(data, func(m []byte) []byte {
		name := envRef.FindSubmatch(m)[1]
		return []byte(os.Getenv(string(name)))
	})

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse missions yaml: %w", err)
	}
	return Map(file, l.now())
}

// Map converts parsed entries to domain missions relative to now.
func Map(file File, now time.Time) ([]domain.Mission, error) {
	out := make([]domain.Mission, 0, len(file.Missions))
	for i, e := range file.Missions {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, fmt.Errorf("mission #%d: name is required", i+1)
		}

		m := domain.Mission{
			Name:      name,
			Patch:     strings.TrimSpace(e.Patch),
			DateLabel: strings.TrimSpace(e.DateLabel),
		}

		switch {
		case e.StartedAt != nil:
			m.Elapsed = domain.Elapsed(*e.StartedAt, now)
		case e.Elapsed != nil:
			c, err := e.Elapsed.clock()
			if err != nil {
				return nil, fmt.Errorf("mission %q: %w", name, err)
			}
			m.Elapsed = c
		}
		out = append(out, m)
	}
	return out, nil
}

func (e Elapsed) clock() (domain.Clock, error) {
	switch {
	case e.Days < 0:
		return domain.Clock{}, fmt.Errorf("days must be >= 0, got %d", e.Days)
	case e.Hours < 0 || e.Hours > 23:
		return domain.Clock{}, fmt.Errorf("hours must be in [0,23], got %d", e.Hours)
	case e.Minutes < 0 || e.Minutes > 59:
		return domain.Clock{}, fmt.Errorf("minutes must be in [0,59], got %d", e.Minutes)
	case e.Seconds < 0 || e.Seconds > 59:
		return domain.Clock{}, fmt.Errorf("seconds must be in [0,59], got %d", e.Seconds)
	}
	return domain.Clock{Days: e.Days, Hours: e.Hours, Minutes: e.Minutes, Seconds: e.Seconds}, nil
}

// Defaults is used when no missions file is configured.
func Defaults() []domain.Mission {
	return []domain.Mission{
		{
			Name:      "CRS-33 MISSION",
			Patch:     "https://images2.imgbox.com/5c/12/kVmu3Xq1_o.png",
			DateLabel: "DECEMBER 2025",
			Elapsed:   domain.Clock{Days: 20, Minutes: 31, Seconds: 28},
		},
		{
			Name:      "CREW-11 MISSION",
			Patch:     "https://images2.imgbox.com/8f/35/7vXqGkK1_o.png",
			DateLabel: "FEBRUARY 2026",
			Elapsed:   domain.Clock{Days: 42, Hours: 15, Minutes: 33, Seconds: 28},
		},
	}
}
