package report

import (
	"fmt"
	"testing"

	"github.com/saati/saati/pkg/profile"
	"github.com/stretchr/testify/assert"
)

func TestIsWorkingDayFiveDayWeek(t *testing.T) {
	settings := profile.DefaultSettings()

	assert.True(t, IsWorkingDay("2025-03-10", settings))  // Monday
	assert.True(t, IsWorkingDay("2025-03-14", settings))  // Friday
	assert.False(t, IsWorkingDay("2025-03-15", settings)) // Saturday
	assert.False(t, IsWorkingDay("2025-03-16", settings)) // Sunday
}

func TestIsWorkingDaySixDayWeek(t *testing.T) {
	settings := profile.DefaultSettings()
	settings.WorkDaysPerWeek = 6

	assert.False(t, IsWorkingDay("2025-03-14", settings)) // Friday
	assert.True(t, IsWorkingDay("2025-03-15", settings))  // Saturday
	assert.True(t, IsWorkingDay("2025-03-16", settings))  // Sunday
}

func TestIsWorkingDaySevenDayWeek(t *testing.T) {
	settings := profile.DefaultSettings()
	settings.WorkDaysPerWeek = 7

	for day := 10; day <= 16; day++ {
		assert.True(t, IsWorkingDay(fmt.Sprintf("2025-03-%02d", day), settings))
	}
}

func TestIsWorkingDayHolidayOverridesWeekday(t *testing.T) {
	settings := profile.DefaultSettings()
	settings.OfficialHolidays = []profile.Holiday{{Date: "2025-03-10", Name: "Company Day"}}

	assert.False(t, IsWorkingDay("2025-03-10", settings)) // Monday, but a holiday
}

func TestIsWorkingDayUnparsableDate(t *testing.T) {
	assert.False(t, IsWorkingDay("not-a-date", profile.DefaultSettings()))
}
