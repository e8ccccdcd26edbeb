package shift

import "time"

// Shift is the running work shift of a user. At most one exists per user; it
// becomes a work log entry when finished.
type Shift struct {
	Id           int
	StartTime    time.Time
	BreakMinutes int
	Notes        string
}

// FinishedShift is the outcome of clocking out: the data a work log entry is
// recorded from.
type FinishedShift struct {
	Date         string // YYYY-MM-DD of the shift start (UTC)
	StartTime    time.Time
	EndTime      time.Time
	BreakMinutes int
	Notes        string
}
