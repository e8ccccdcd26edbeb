package worklog

import (
	"testing"
	"time"

	"github.com/saati/saati/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryStoreAndFindAll(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	ctx, u := test_utils.CreateTestUser(t, db)
	repo := NewRepository(db)

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC)
	entries := []Entry{
		{
			ID:    "entry-2",
			Date:  "2025-03-11",
			Type:  TypeVacation,
			Notes: "spring break",
		},
		{
			ID:           "entry-1",
			Date:         "2025-03-10",
			Type:         TypeWork,
			StartTime:    &start,
			EndTime:      &end,
			BreakMinutes: 30,
		},
	}
	for _, entry := range entries {
		require.NoError(t, repo.Store(ctx, u.Id, entry))
	}

	found, err := repo.FindAll(ctx, u.Id)

	require.NoError(t, err)
	require.Len(t, found, 2)
	// ordered by date
	assert.Equal(t, "entry-1", found[0].ID)
	assert.Equal(t, "entry-2", found[1].ID)
	require.NotNil(t, found[0].StartTime)
	assert.Equal(t, start, found[0].StartTime.UTC())
	assert.Nil(t, found[1].StartTime)
	assert.Equal(t, 30, found[0].BreakMinutes)
}

func TestRepositoryUpdate(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	ctx, u := test_utils.CreateTestUser(t, db)
	repo := NewRepository(db)

	entry := Entry{ID: "entry-1", Date: "2025-03-10", Type: TypeSickLeave}
	require.NoError(t, repo.Store(ctx, u.Id, entry))

	entry.Notes = "doctor visit"
	updated, err := repo.Update(ctx, u.Id, entry)

	require.NoError(t, err)
	assert.True(t, updated)

	found, err := repo.FindAll(ctx, u.Id)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "doctor visit", found[0].Notes)
}

func TestRepositoryUpdateOtherUsersEntry(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	ctx, u := test_utils.CreateTestUser(t, db)
	repo := NewRepository(db)

	entry := Entry{ID: "entry-1", Date: "2025-03-10", Type: TypeSickLeave}
	require.NoError(t, repo.Store(ctx, u.Id, entry))

	updated, err := repo.Update(ctx, u.Id+1, entry)

	require.NoError(t, err)
	assert.False(t, updated)
}

func TestRepositoryDelete(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	ctx, u := test_utils.CreateTestUser(t, db)
	repo := NewRepository(db)

	require.NoError(t, repo.Store(ctx, u.Id, Entry{ID: "entry-1", Date: "2025-03-10", Type: TypeVacation}))

	deleted, err := repo.Delete(ctx, u.Id, "entry-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	found, err := repo.FindAll(ctx, u.Id)
	require.NoError(t, err)
	assert.Empty(t, found)
}
