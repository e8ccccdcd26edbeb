package worklog

import (
	"time"

	"github.com/saati/saati/pkg/profile"
)

// Duration returns the net worked time of a single entry: the span between
// start and end minus the break. Non-work entries and work entries missing a
// start or end time yield 0. The result can be negative when the break
// exceeds the span; callers decide whether to exclude or clamp it.
func Duration(e Entry) time.Duration {
	if e.Type != TypeWork || e.StartTime == nil || e.EndTime == nil {
		return 0
	}
	return e.EndTime.Sub(*e.StartTime) - time.Duration(e.BreakMinutes)*time.Minute
}

// Overtime returns the part of a worked duration exceeding the profile's
// daily hour requirement, never negative. Only meaningful for work entries.
func Overtime(d time.Duration, settings profile.Settings) time.Duration {
	required := time.Duration(settings.WorkHoursPerDay * float64(time.Hour))
	if d <= required {
		return 0
	}
	return d - required
}
