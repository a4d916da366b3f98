package missions

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MrSnakeDoc/launchdeck/internal/domain"
	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "missions.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}
	return path
}

func TestLoaderLoad(t *testing.T) {
	path := writeFile(t, `---
missions:
  - name: CRS-33 MISSION
    patch: https://images2.imgbox.com/5c/12/kVmu3Xq1_o.png
    date_label: DECEMBER 2025
    elapsed: {days: 20, hours: 0, minutes: 31, seconds: 28}
  - name: "  Polaris Dawn  "
`)

	got, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []domain.Mission{
		{
			Name:      "CRS-33 MISSION",
			Patch:     "https://images2.imgbox.com/5c/12/kVmu3Xq1_o.png",
			DateLabel: "DECEMBER 2025",
			Elapsed:   domain.Clock{Days: 20, Minutes: 31, Seconds: 28},
		},
		{Name: "Polaris Dawn"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoaderStartedAt(t *testing.T) {
	path := writeFile(t, `missions:
  - name: CREW-11 MISSION
    started_at: 2025-08-01T15:43:00Z
    elapsed: {days: 99}
`)

	l := NewLoader(path)
	l.now = func() time.Time { return time.Date(2025, 8, 3, 16, 44, 1, 0, time.UTC) }

	got, err := l.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Load() returned %d missions", len(got))
	}
	if want := (domain.Clock{Days: 2, Hours: 1, Minutes: 1, Seconds: 1}); got[0].Elapsed != want {
		t.Errorf("Elapsed = %+v, want %+v", got[0].Elapsed, want)
	}
}

func TestLoaderEnvExpansion(t *testing.T) {
	t.Setenv("LAUNCHDECK_TEST_PATCH", "https://img.test/p.png")
	path := writeFile(t, `missions:
  - name: Demo
    patch: ${LAUNCHDECK_TEST_PATCH}
`)

	got, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got[0].Patch != "https://img.test/p.png" {
		t.Errorf("Patch = %q", got[0].Patch)
	}
}

func TestLoaderErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing name", content: "missions:\n  - patch: x\n"},
		{name: "hours out of range", content: "missions:\n  - name: A\n    elapsed: {hours: 24}\n"},
		{name: "negative seconds", content: "missions:\n  - name: A\n    elapsed: {seconds: -1}\n"},
		{name: "invalid yaml", content: "missions: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLoader(writeFile(t, tt.content)).Load(); err == nil {
				t.Errorf("Load() should have failed")
			}
		})
	}
}

func TestLoaderFileNotFound(t *testing.T) {
	if _, err := NewLoader("/nonexistent/path/missions.yaml").Load(); err == nil {
		t.Error("Load() with non-existent file should return error")
	}
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	if len(d) != 2 {
		t.Fatalf("Defaults() returned %d missions", len(d))
	}
	if got := d[0].ElapsedLabel(); got != "T+20D 00:31:28" {
		t.Errorf("ElapsedLabel() = %q", got)
	}
}
