package worklog

import "time"

// Type classifies a log entry. Work entries carry start/end times and a break;
// the other types are day-level markers and carry only their date.
type Type string

const (
	TypeWork            Type = "work"
	TypeSickLeave       Type = "sickLeave"
	TypeVacation        Type = "vacation"
	TypeOfficialHoliday Type = "officialHoliday"
)

func (t Type) Valid() bool {
	switch t {
	case TypeWork, TypeSickLeave, TypeVacation, TypeOfficialHoliday:
		return true
	}
	return false
}

// Entry is one recorded day-level event. Date is a zero-padded YYYY-MM-DD
// string; all range filtering relies on its lexicographic ordering.
type Entry struct {
	ID           string
	Date         string
	Type         Type
	StartTime    *time.Time
	EndTime      *time.Time
	BreakMinutes int
	Notes        string
}
