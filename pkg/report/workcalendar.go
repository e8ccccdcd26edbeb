package report

import (
	"time"

	"github.com/saati/saati/pkg/profile"
)

// IsWorkingDay reports whether the YYYY-MM-DD date is a working day under the
// profile's schedule. Official holidays are never working days. The weekend
// follows a fixed mapping of the weekly work-day count: 7 days a week means no
// weekend, 6 means Friday off, anything else means Saturday and Sunday off.
// The mapping is not derived from the profile's country.
func IsWorkingDay(date string, settings profile.Settings) bool {
	return isWorkingDay(date, settings, settings.HolidayDates())
}

// isWorkingDay takes the holiday set as a parameter so range walks can build
// it once.
func isWorkingDay(date string, settings profile.Settings, holidays map[string]struct{}) bool {
	if _, holiday := holidays[date]; holiday {
		return false
	}
	parsed, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return false
	}
	switch {
	case settings.WorkDaysPerWeek >= 7:
		return true
	case settings.WorkDaysPerWeek == 6:
		return parsed.Weekday() != time.Friday
	default:
		return parsed.Weekday() != time.Saturday && parsed.Weekday() != time.Sunday
	}
}
