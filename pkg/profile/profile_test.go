package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeHolidaysSkipsExistingDates(t *testing.T) {
	existing := []Holiday{{Date: "2025-01-01", Name: "New Year"}}
	imported := []Holiday{
		{Date: "2025-01-01", Name: "Neujahr"},
		{Date: "2025-05-01", Name: "Labour Day"},
	}

	merged, added := MergeHolidays(existing, imported)

	assert.Equal(t, 1, added)
	require.Len(t, merged, 2)
	// the existing entry wins
	assert.Equal(t, "New Year", merged[0].Name)
	assert.Equal(t, "Labour Day", merged[1].Name)
	assert.True(t, merged[1].Imported)
	assert.False(t, merged[0].Imported)
}

func TestMergeHolidaysDeduplicatesExisting(t *testing.T) {
	existing := []Holiday{
		{Date: "2025-01-01", Name: "New Year"},
		{Date: "2025-01-01", Name: "Duplicate"},
	}

	merged, added := MergeHolidays(existing, nil)

	assert.Equal(t, 0, added)
	assert.Len(t, merged, 1)
}

func TestHolidayDates(t *testing.T) {
	settings := Settings{OfficialHolidays: []Holiday{
		{Date: "2025-01-01"},
		{Date: "2025-05-01"},
	}}

	dates := settings.HolidayDates()

	assert.Contains(t, dates, "2025-01-01")
	assert.Contains(t, dates, "2025-05-01")
	assert.NotContains(t, dates, "2025-12-25")
}
