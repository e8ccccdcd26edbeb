package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/saati/saati/internal/utils"
	"github.com/saati/saati/pkg/profile"
	"github.com/saati/saati/pkg/worklog"
)

type Service interface {
	GetReport(ctx context.Context, kind PeriodKind, custom Period, lang string) (Summary, error)
}

type ServiceImpl struct {
	logs     worklog.Reader
	profiles profile.Reader
	clock    utils.Clock
}

func NewService(logs worklog.Reader, profiles profile.Reader) *ServiceImpl {
	return &ServiceImpl{logs: logs, profiles: profiles, clock: &utils.SystemClock{}}
}

func (s *ServiceImpl) GetReport(ctx context.Context, kind PeriodKind, custom Period, lang string) (Summary, error) {
	settings, err := s.profiles.Get(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load profile: %w", err)
	}
	logs, err := s.logs.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load work log: %w", err)
	}
	now := s.clock.Now()
	period := ResolvePeriod(kind, now, lang, custom)
	return Aggregate(logs, settings, period, now), nil
}

// Aggregate folds the work log into a Summary for the period. The vacation
// balance deliberately ignores the period: it is computed over the full log
// collection and now's UTC year. Pure given its inputs.
func Aggregate(logs []worklog.Entry, settings profile.Settings, period Period, now time.Time) Summary {
	summary := Summary{Period: period}

	// A period missing either bound is an empty range, not an open one.
	inPeriod := make([]worklog.Entry, 0, len(logs))
	if period.StartDate != "" && period.EndDate != "" {
		for _, entry := range logs {
			if entry.Date >= period.StartDate && entry.Date <= period.EndDate {
				inPeriod = append(inPeriod, entry)
			}
		}
	}
	sort.Slice(inPeriod, func(i, j int) bool {
		return inPeriod[i].Date < inPeriod[j].Date
	})

	workDates := make(map[string]struct{})
	for _, entry := range inPeriod {
		switch entry.Type {
		case worklog.TypeWork:
			workDates[entry.Date] = struct{}{}
			duration := worklog.Duration(entry)
			if duration > 0 {
				summary.TotalWork += duration
				summary.TotalOvertime += worklog.Overtime(duration, settings)
			}
		case worklog.TypeSickLeave:
			summary.SickDays++
		case worklog.TypeOfficialHoliday:
			summary.OfficialHolidayDays++
		}
	}
	summary.TotalWorkDays = len(workDates)
	summary.TargetWork = targetWork(period, settings)
	summary.RemainingVacationDays = RemainingVacationDays(logs, settings, now)
	return summary
}

// targetWork walks every date of the period and sums the daily hour
// requirement over the working days. A degenerate schedule or unusable bounds
// yield zero rather than an error.
func targetWork(period Period, settings profile.Settings) time.Duration {
	if settings.WorkDaysPerWeek <= 0 || settings.WorkHoursPerDay <= 0 {
		return 0
	}
	start, err := time.Parse(time.DateOnly, period.StartDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(time.DateOnly, period.EndDate)
	if err != nil {
		return 0
	}
	if end.Before(start) {
		return 0
	}

	holidays := settings.HolidayDates()
	workingDays := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if isWorkingDay(day.Format(time.DateOnly), settings, holidays) {
			workingDays++
		}
	}
	return time.Duration(float64(workingDays) * settings.WorkHoursPerDay * float64(time.Hour))
}
