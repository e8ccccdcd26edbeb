package app

import (
	"testing"

	"github.com/saati/saati/internal/config"
	"github.com/saati/saati/internal/test_utils"
	"github.com/saati/saati/pkg/worklog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinishedShiftIsRecordedInWorkLog(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	ctx, _ := test_utils.CreateTestUser(t, db)
	deps := BuildDependencies(db, config.Application{})

	_, err := deps.ShiftService.Start(ctx, "pairing session", nil)
	require.NoError(t, err)

	finished, err := deps.ShiftService.Finish(ctx, nil, nil)
	require.NoError(t, err)

	entries, err := deps.WorkLogService.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, worklog.TypeWork, entries[0].Type)
	assert.Equal(t, finished.Date, entries[0].Date)
	assert.Equal(t, "pairing session", entries[0].Notes)
	require.NotNil(t, entries[0].StartTime)
	require.NotNil(t, entries[0].EndTime)

	current, err := deps.ShiftService.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestDiscardedShiftLeavesNoTrace(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	ctx, _ := test_utils.CreateTestUser(t, db)
	deps := BuildDependencies(db, config.Application{})

	_, err := deps.ShiftService.Start(ctx, "", nil)
	require.NoError(t, err)

	_, err = deps.ShiftService.Discard(ctx)
	require.NoError(t, err)

	entries, err := deps.WorkLogService.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
