package event_bus

import "time"

const (
	// ShiftFinishedEvent is published when a running shift is clocked out.
	// The work log package records a work entry for it.
	ShiftFinishedEvent EventType = "shift.finished"
	// HolidaysImportedEvent is published after public holidays were merged
	// into a user's calendar.
	HolidaysImportedEvent EventType = "profile.holidaysImported"
)

type ShiftFinished struct {
	// Date is the calendar date of the shift start, YYYY-MM-DD.
	Date         string
	StartTime    time.Time
	EndTime      time.Time
	BreakMinutes int
	Notes        string
}

type HolidaysImported struct {
	Country string
	Year    int
	Added   int
}
