package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSummary(t *testing.T) {
	renderer := NewCsvReportRenderer()
	summary := Summary{
		Period:                Period{StartDate: "2025-04-01", EndDate: "2025-04-30"},
		TotalWork:             150*time.Hour + 30*time.Minute,
		TotalOvertime:         2 * time.Hour,
		TotalWorkDays:         20,
		SickDays:              1,
		OfficialHolidayDays:   1,
		TargetWork:            176 * time.Hour,
		RemainingVacationDays: 15,
	}

	csv, err := renderer.RenderSummary(summary)

	require.NoError(t, err)
	expected := "Start date,2025-04-01\n" +
		"End date,2025-04-30\n" +
		"Total work,150:30:00\n" +
		"Total overtime,02:00:00\n" +
		"Work days,20\n" +
		"Sick days,1\n" +
		"Official holidays,1\n" +
		"Target work,176:00:00\n" +
		"Remaining vacation days,15\n"
	assert.Equal(t, expected, csv)
}

func TestRenderSummaryClampsNegativeDurations(t *testing.T) {
	renderer := NewCsvReportRenderer()

	csv, err := renderer.RenderSummary(Summary{TotalWork: -30 * time.Minute})

	require.NoError(t, err)
	assert.Contains(t, csv, "Total work,00:00:00")
}
