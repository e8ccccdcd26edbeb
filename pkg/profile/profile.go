package profile

// Holiday is one official holiday in the user's calendar. Imported marks
// entries that came from the public-holiday API rather than manual entry.
type Holiday struct {
	Date     string // YYYY-MM-DD
	Name     string
	Imported bool
}

// Settings is the per-user work-schedule profile. It is a singleton per user
// and is saved wholesale.
type Settings struct {
	WorkDaysPerWeek     int
	WorkHoursPerDay     float64
	DefaultBreakMinutes int
	AnnualVacationDays  int
	OfficialHolidays    []Holiday
	Country             string
}

// DefaultSettings is what a user gets before ever saving a profile.
func DefaultSettings() Settings {
	return Settings{
		WorkDaysPerWeek:     5,
		WorkHoursPerDay:     8,
		DefaultBreakMinutes: 30,
		AnnualVacationDays:  20,
		OfficialHolidays:    []Holiday{},
	}
}

// HolidayDates returns the holiday calendar as a date-string set for exact-match lookups.
func (s Settings) HolidayDates() map[string]struct{} {
	dates := make(map[string]struct{}, len(s.OfficialHolidays))
	for _, h := range s.OfficialHolidays {
		dates[h.Date] = struct{}{}
	}
	return dates
}

// MergeHolidays adds imported holidays to the existing calendar, skipping any
// date already present. At most one holiday per date survives. Returns the
// merged calendar and the number of newly added entries.
func MergeHolidays(existing []Holiday, imported []Holiday) ([]Holiday, int) {
	merged := make([]Holiday, 0, len(existing)+len(imported))
	seen := make(map[string]struct{}, len(existing))
	for _, h := range existing {
		if _, ok := seen[h.Date]; ok {
			continue
		}
		seen[h.Date] = struct{}{}
		merged = append(merged, h)
	}

	added := 0
	for _, h := range imported {
		if _, ok := seen[h.Date]; ok {
			continue
		}
		seen[h.Date] = struct{}{}
		h.Imported = true
		merged = append(merged, h)
		added++
	}
	return merged, added
}
