package missions

import "time"

// File is the root of a missions.yaml document.
//
//	missions:
//	  - name: CRS-33 MISSION
//	    patch: https://images2.imgbox.com/5c/12/kVmu3Xq1_o.png
//	    date_label: DECEMBER 2025
//	    elapsed: {days: 20, hours: 0, minutes: 31, seconds: 28}
//	  - name: CREW-11 MISSION
//	    started_at: 2025-08-01T15:43:00Z
type File struct {
	Missions []Entry `yaml:"missions"`
}

// Entry is one mission. When StartedAt is set the elapsed counter is
// computed from it at load time and Elapsed is ignored.
type Entry struct {
	Name      string     `yaml:"name"`
	Patch     string     `yaml:"patch"`
	DateLabel string     `yaml:"date_label"`
	Elapsed   *Elapsed   `yaml:"elapsed"`
	StartedAt *time.Time `yaml:"started_at"`
}

// Elapsed is the starting counter state.
type Elapsed struct {
	Days    int `yaml:"days"`
	Hours   int `yaml:"hours"`
	Minutes int `yaml:"minutes"`
	Seconds int `yaml:"seconds"`
}
