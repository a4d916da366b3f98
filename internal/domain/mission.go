package domain

// Mission is a flight currently in progress, shown with a running
// elapsed-time counter.
type Mission struct {
	Name      string `json:"name"`
	Patch     string `json:"patch"`
	DateLabel string `json:"date_label"`
	Elapsed   Clock  `json:"elapsed"`
}

// ElapsedLabel renders the counter as "T+{d}D HH:MM:SS".
func (m Mission) ElapsedLabel() string {
	return FormatElapsed(m.Elapsed)
}
