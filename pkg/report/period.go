package report

import (
	"strings"
	"time"
)

// PeriodKind is a named report period.
type PeriodKind string

const (
	PeriodToday     PeriodKind = "today"
	PeriodThisWeek  PeriodKind = "thisWeek"
	PeriodThisMonth PeriodKind = "thisMonth"
	PeriodThisYear  PeriodKind = "thisYear"
	PeriodCustom    PeriodKind = "custom"
)

func (k PeriodKind) Valid() bool {
	switch k {
	case PeriodToday, PeriodThisWeek, PeriodThisMonth, PeriodThisYear, PeriodCustom:
		return true
	}
	return false
}

// ResolvePeriod maps a named period to inclusive date bounds relative to now.
// The lang tag only affects thisWeek: an Arabic locale starts the week on
// Saturday, everything else on Monday. Custom bounds pass through unvalidated,
// empty strings included; an unknown kind yields an empty Period.
func ResolvePeriod(kind PeriodKind, now time.Time, lang string, custom Period) Period {
	switch kind {
	case PeriodToday:
		date := now.Format(time.DateOnly)
		return Period{StartDate: date, EndDate: date}
	case PeriodThisWeek:
		weekStart := time.Monday
		if isArabic(lang) {
			weekStart = time.Saturday
		}
		offset := (int(now.Weekday()) - int(weekStart) + 7) % 7
		start := now.AddDate(0, 0, -offset)
		end := start.AddDate(0, 0, 6)
		return Period{
			StartDate: start.Format(time.DateOnly),
			EndDate:   end.Format(time.DateOnly),
		}
	case PeriodThisMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		last := first.AddDate(0, 1, -1)
		return Period{
			StartDate: first.Format(time.DateOnly),
			EndDate:   last.Format(time.DateOnly),
		}
	case PeriodThisYear:
		return Period{
			StartDate: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()).Format(time.DateOnly),
			EndDate:   time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location()).Format(time.DateOnly),
		}
	case PeriodCustom:
		return custom
	}
	return Period{}
}

func isArabic(lang string) bool {
	return lang == "ar" || strings.HasPrefix(lang, "ar-")
}
