package report

import "time"

// Period is an inclusive calendar-date range. Both bounds are zero-padded
// YYYY-MM-DD strings so plain string comparison orders them correctly. Empty
// bounds describe an empty range.
type Period struct {
	StartDate string
	EndDate   string
}

// Summary is the outcome of aggregating a user's work log over a period. It
// is recomputed on every query and never persisted.
type Summary struct {
	Period              Period
	TotalWork           time.Duration
	TotalOvertime       time.Duration
	TotalWorkDays       int
	SickDays            int
	OfficialHolidayDays int
	TargetWork          time.Duration
	// RemainingVacationDays is independent of the report period: it always
	// covers the current calendar year and may go negative.
	RemainingVacationDays int
}
