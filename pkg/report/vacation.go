package report

import (
	"time"

	"github.com/saati/saati/pkg/profile"
	"github.com/saati/saati/pkg/worklog"
)

// UsedVacationDays counts the vacation entries in now's UTC year that consume
// allowance. Entries on a Saturday or Sunday or on an official holiday are
// free. The weekend here is always Saturday and Sunday, regardless of the
// profile's work week; the work calendar uses a different rule on purpose.
func UsedVacationDays(allLogs []worklog.Entry, settings profile.Settings, now time.Time) int {
	year := now.UTC().Year()
	holidays := settings.HolidayDates()

	used := 0
	for _, entry := range allLogs {
		if entry.Type != worklog.TypeVacation {
			continue
		}
		date, err := time.Parse(time.DateOnly, entry.Date)
		if err != nil {
			continue
		}
		if date.UTC().Year() != year {
			continue
		}
		weekday := date.UTC().Weekday()
		if weekday == time.Saturday || weekday == time.Sunday {
			continue
		}
		if _, holiday := holidays[entry.Date]; holiday {
			continue
		}
		used++
	}
	return used
}

// RemainingVacationDays is the annual allowance minus the used days. It is
// not clamped and goes negative when the user overspends.
func RemainingVacationDays(allLogs []worklog.Entry, settings profile.Settings, now time.Time) int {
	return settings.AnnualVacationDays - UsedVacationDays(allLogs, settings, now)
}
