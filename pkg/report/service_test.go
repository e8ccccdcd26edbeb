package report

import (
	"context"
	"testing"
	"time"

	"github.com/saati/saati/internal/utils"
	"github.com/saati/saati/pkg/profile"
	"github.com/saati/saati/pkg/user"
	"github.com/saati/saati/pkg/worklog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedLogReader struct {
	logs []worklog.Entry
}

func (r fixedLogReader) List(_ context.Context) ([]worklog.Entry, error) {
	return r.logs, nil
}

type fixedProfileReader struct {
	settings profile.Settings
}

func (r fixedProfileReader) Get(_ context.Context) (profile.Settings, error) {
	return r.settings, nil
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func workEntry(date string, startHour, endHour, breakMinutes int) worklog.Entry {
	day, _ := time.Parse(time.DateOnly, date)
	return worklog.Entry{
		ID:           date,
		Date:         date,
		Type:         worklog.TypeWork,
		StartTime:    timePtr(day.Add(time.Duration(startHour) * time.Hour)),
		EndTime:      timePtr(day.Add(time.Duration(endHour) * time.Hour)),
		BreakMinutes: breakMinutes,
	}
}

func TestAggregateFoldsWorkEntries(t *testing.T) {
	settings := profile.DefaultSettings()
	period := Period{StartDate: "2025-03-10", EndDate: "2025-03-16"}
	now := time.Date(2025, 3, 16, 12, 0, 0, 0, time.UTC)

	logs := []worklog.Entry{
		workEntry("2025-03-10", 9, 18, 0),  // 9h, 1h overtime
		workEntry("2025-03-11", 9, 17, 60), // 7h
	}

	summary := Aggregate(logs, settings, period, now)

	assert.Equal(t, 16*time.Hour, summary.TotalWork)
	assert.Equal(t, 1*time.Hour, summary.TotalOvertime)
	assert.Equal(t, 2, summary.TotalWorkDays)
}

func TestAggregateCountsDistinctWorkDates(t *testing.T) {
	settings := profile.DefaultSettings()
	period := Period{StartDate: "2025-03-10", EndDate: "2025-03-16"}
	now := time.Date(2025, 3, 16, 12, 0, 0, 0, time.UTC)

	logs := []worklog.Entry{
		workEntry("2025-03-10", 9, 12, 0),
		workEntry("2025-03-10", 13, 17, 0),
		workEntry("2025-03-11", 9, 17, 30),
	}

	summary := Aggregate(logs, settings, period, now)

	assert.Equal(t, 2, summary.TotalWorkDays)
	assert.Equal(t, 14*time.Hour+30*time.Minute, summary.TotalWork)
}

func TestAggregateExcludesNegativeDurations(t *testing.T) {
	settings := profile.DefaultSettings()
	period := Period{StartDate: "2025-03-10", EndDate: "2025-03-16"}
	now := time.Date(2025, 3, 16, 12, 0, 0, 0, time.UTC)

	// break longer than the span: negative net duration
	logs := []worklog.Entry{workEntry("2025-03-10", 9, 10, 90)}

	summary := Aggregate(logs, settings, period, now)

	assert.Equal(t, time.Duration(0), summary.TotalWork)
	// the date still counts as a work day
	assert.Equal(t, 1, summary.TotalWorkDays)
}

func TestAggregateCountsLeavePerEntry(t *testing.T) {
	settings := profile.DefaultSettings()
	period := Period{StartDate: "2025-03-01", EndDate: "2025-03-31"}
	now := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)

	logs := []worklog.Entry{
		{ID: "1", Date: "2025-03-10", Type: worklog.TypeSickLeave},
		{ID: "2", Date: "2025-03-10", Type: worklog.TypeSickLeave},
		{ID: "3", Date: "2025-03-12", Type: worklog.TypeOfficialHoliday},
	}

	summary := Aggregate(logs, settings, period, now)

	assert.Equal(t, 2, summary.SickDays)
	assert.Equal(t, 1, summary.OfficialHolidayDays)
}

func TestAggregateFiltersByPeriod(t *testing.T) {
	settings := profile.DefaultSettings()
	period := Period{StartDate: "2025-03-10", EndDate: "2025-03-16"}
	now := time.Date(2025, 3, 16, 12, 0, 0, 0, time.UTC)

	logs := []worklog.Entry{
		workEntry("2025-03-09", 9, 17, 0), // before
		workEntry("2025-03-10", 9, 17, 0), // on the start bound
		workEntry("2025-03-16", 9, 17, 0), // on the end bound
		workEntry("2025-03-17", 9, 17, 0), // after
	}

	summary := Aggregate(logs, settings, period, now)

	assert.Equal(t, 2, summary.TotalWorkDays)
}

func TestAggregateTargetWork(t *testing.T) {
	// April 2025 has 30 days and 22 weekdays
	settings := profile.DefaultSettings()
	period := Period{StartDate: "2025-04-01", EndDate: "2025-04-30"}
	now := time.Date(2025, 4, 30, 12, 0, 0, 0, time.UTC)

	summary := Aggregate(nil, settings, period, now)

	assert.Equal(t, 22*8*time.Hour, summary.TargetWork)
	assert.Equal(t, int64(633600000), summary.TargetWork.Milliseconds())
}

func TestAggregateTargetWorkSkipsHolidays(t *testing.T) {
	settings := profile.DefaultSettings()
	settings.OfficialHolidays = []profile.Holiday{{Date: "2025-04-21", Name: "Easter Monday"}}
	period := Period{StartDate: "2025-04-01", EndDate: "2025-04-30"}
	now := time.Date(2025, 4, 30, 12, 0, 0, 0, time.UTC)

	summary := Aggregate(nil, settings, period, now)

	assert.Equal(t, 21*8*time.Hour, summary.TargetWork)
}

func TestAggregateTargetWorkDegenerateSchedule(t *testing.T) {
	settings := profile.DefaultSettings()
	settings.WorkHoursPerDay = 0
	period := Period{StartDate: "2025-04-01", EndDate: "2025-04-30"}
	now := time.Date(2025, 4, 30, 12, 0, 0, 0, time.UTC)

	summary := Aggregate(nil, settings, period, now)

	assert.Equal(t, time.Duration(0), summary.TargetWork)
}

func TestAggregateEmptyPeriodYieldsZeroSummary(t *testing.T) {
	settings := profile.DefaultSettings()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	logs := []worklog.Entry{
		workEntry("2025-03-10", 9, 17, 30),
		vacationEntry("2025-03-11"),
	}

	summary := Aggregate(logs, settings, Period{}, now)

	assert.Equal(t, time.Duration(0), summary.TotalWork)
	assert.Equal(t, 0, summary.TotalWorkDays)
	assert.Equal(t, time.Duration(0), summary.TargetWork)
	// the vacation balance ignores the period
	assert.Equal(t, 19, summary.RemainingVacationDays)
}

func TestAggregateHalfOpenPeriodMatchesNothing(t *testing.T) {
	settings := profile.DefaultSettings()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	logs := []worklog.Entry{workEntry("2025-03-10", 9, 17, 0)}

	for _, period := range []Period{
		{StartDate: "", EndDate: "2025-12-31"},
		{StartDate: "2025-01-01", EndDate: ""},
	} {
		summary := Aggregate(logs, settings, period, now)

		assert.Equal(t, time.Duration(0), summary.TotalWork)
		assert.Equal(t, 0, summary.TotalWorkDays)
	}
}

func TestAggregateIsIdempotent(t *testing.T) {
	settings := profile.DefaultSettings()
	period := Period{StartDate: "2025-03-01", EndDate: "2025-03-31"}
	now := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)

	logs := []worklog.Entry{
		workEntry("2025-03-10", 9, 18, 30),
		vacationEntry("2025-03-11"),
		{ID: "s", Date: "2025-03-12", Type: worklog.TypeSickLeave},
	}

	first := Aggregate(logs, settings, period, now)
	second := Aggregate(logs, settings, period, now)

	assert.Equal(t, first, second)
}

func TestGetReport(t *testing.T) {
	logs := []worklog.Entry{
		workEntry("2025-04-07", 9, 17, 30), // Monday, 7.5h
		vacationEntry("2025-04-08"),
	}
	service := NewService(fixedLogReader{logs: logs}, fixedProfileReader{settings: profile.DefaultSettings()})
	service.clock = &utils.MockClock{FixedNow: time.Date(2025, 4, 9, 12, 0, 0, 0, time.UTC)}
	ctx := user.WithUser(context.Background(), user.User{Id: 1})

	summary, err := service.GetReport(ctx, PeriodThisWeek, Period{}, "en")

	require.NoError(t, err)
	assert.Equal(t, Period{StartDate: "2025-04-07", EndDate: "2025-04-13"}, summary.Period)
	assert.Equal(t, 7*time.Hour+30*time.Minute, summary.TotalWork)
	assert.Equal(t, 1, summary.TotalWorkDays)
	assert.Equal(t, 19, summary.RemainingVacationDays)
}
