package domain

import (
	"fmt"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// Clock is a days/hours/minutes/seconds reading used by both the countdown
// to a launch and the elapsed time of an ongoing mission.
type Clock struct {
	Days    int `json:"days" yaml:"days"`
	Hours   int `json:"hours" yaml:"hours"`
	Minutes int `json:"minutes" yaml:"minutes"`
	Seconds int `json:"seconds" yaml:"seconds"`
}

// ClockFromSeconds splits a non-negative second count. Negative input
// yields the zero clock.
func ClockFromSeconds(total int64) Clock {
	if total <= 0 {
		return Clock{}
	}
	return Clock{
		Days:    int(total / secondsPerDay),
		Hours:   int(total % secondsPerDay / secondsPerHour),
		Minutes: int(total % secondsPerHour / secondsPerMinute),
		Seconds: int(total % secondsPerMinute),
	}
}

// Countdown returns the time left until target, in whole seconds. Once
// target is reached or passed every field is zero.
func Countdown(target, now time.Time) Clock {
	return ClockFromSeconds(int64(target.Sub(now) / time.Second))
}

// Elapsed returns the time since start, zero when start is in the future.
func Elapsed(start, now time.Time) Clock {
	return Countdown(now, start)
}

// Tick advances c by one second, carrying seconds into minutes, minutes into
// hours and hours into days. Days are unbounded.
func Tick(c Clock) Clock {
	c.Seconds++
	if c.Seconds >= 60 {
		c.Seconds = 0
		c.Minutes++
		if c.Minutes >= 60 {
			c.Minutes = 0
			c.Hours++
			if c.Hours >= 24 {
				c.Hours = 0
				c.Days++
			}
		}
	}
	return c
}

// IsZero reports whether every field is zero.
func (c Clock) IsZero() bool {
	return c == Clock{}
}

// TotalSeconds folds the clock back into seconds.
func (c Clock) TotalSeconds() int64 {
	return int64(c.Days)*secondsPerDay + int64(c.Hours)*secondsPerHour +
		int64(c.Minutes)*secondsPerMinute + int64(c.Seconds)
}

// FormatCountdown renders "T-1D 02:03:04".
func FormatCountdown(c Clock) string {
	return "T-" + c.format()
}

// FormatElapsed renders "T+1D 02:03:04".
func FormatElapsed(c Clock) string {
	return "T+" + c.format()
}

func (c Clock) format() string {
	return fmt.Sprintf("%dD %02d:%02d:%02d", c.Days, c.Hours, c.Minutes, c.Seconds)
}
