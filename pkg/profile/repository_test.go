package profile

import (
	"testing"

	"github.com/saati/saati/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositorySaveAndGet(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	ctx, u := test_utils.CreateTestUser(t, db)
	repo := NewRepository(db)

	settings := Settings{
		WorkDaysPerWeek:     6,
		WorkHoursPerDay:     7.5,
		DefaultBreakMinutes: 45,
		AnnualVacationDays:  25,
		Country:             "DE",
		OfficialHolidays: []Holiday{
			{Date: "2025-01-01", Name: "Neujahr", Imported: true},
			{Date: "2025-05-01", Name: "Tag der Arbeit", Imported: true},
		},
	}
	require.NoError(t, repo.Save(ctx, u.Id, settings))

	found, ok, err := repo.Get(ctx, u.Id)

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, settings, found)
}

func TestRepositoryGetMissingProfile(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	ctx, u := test_utils.CreateTestUser(t, db)
	repo := NewRepository(db)

	_, ok, err := repo.Get(ctx, u.Id)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepositorySaveReplacesHolidays(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	ctx, u := test_utils.CreateTestUser(t, db)
	repo := NewRepository(db)

	settings := DefaultSettings()
	settings.OfficialHolidays = []Holiday{{Date: "2025-01-01", Name: "New Year"}}
	require.NoError(t, repo.Save(ctx, u.Id, settings))

	settings.OfficialHolidays = []Holiday{{Date: "2025-12-25", Name: "Christmas"}}
	require.NoError(t, repo.Save(ctx, u.Id, settings))

	found, ok, err := repo.Get(ctx, u.Id)

	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, found.OfficialHolidays, 1)
	assert.Equal(t, "2025-12-25", found.OfficialHolidays[0].Date)
}
