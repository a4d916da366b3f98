// Package version carries build metadata injected with -ldflags.
package version

import (
	"fmt"
	"runtime"
)

var (
	Version   = "dev"  // ex: v0.3.0
	Commit    = "none" // ex: 1f0c2ab
	BuildDate = ""     // ex: 2026-01-04T09:12:00Z
	GoVersion = runtime.Version()
)

// UserAgent is sent with every outbound API request.
func UserAgent() string {
	return "launchdeck/" + Version
}

// String renders the one-line banner used by the version command and logs.
func String() string {
	date := BuildDate
	if date == "" {
		date = "unknown"
	}
	return fmt.Sprintf("launchdeck %s (commit %s, built %s, %s)", Version, Commit, date, GoVersion)
}
