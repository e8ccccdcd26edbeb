package app

import (
	"database/sql"

	"github.com/saati/saati/internal/config"
	"github.com/saati/saati/internal/event_bus"
	"github.com/saati/saati/internal/utils"
	"github.com/saati/saati/pkg/holidayapi"
	"github.com/saati/saati/pkg/profile"
	"github.com/saati/saati/pkg/report"
	"github.com/saati/saati/pkg/shift"
	"github.com/saati/saati/pkg/task"
	"github.com/saati/saati/pkg/user"
	"github.com/saati/saati/pkg/worklog"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus
	Clock    utils.Clock

	UserService user.Service
	UserHandler *user.Handler

	HolidayClient holidayapi.Client

	ProfileRepo    profile.Repository
	ProfileService profile.Service
	ProfileHandler *profile.Handler

	WorkLogRepo    worklog.Repository
	WorkLogService worklog.Service
	WorkLogHandler *worklog.Handler

	ShiftRepo    shift.Repository
	ShiftService shift.Service
	ShiftHandler *shift.Handler

	ReportService     report.Service
	CsvReportRenderer *report.CsvReportRendererImpl
	ReportHandler     *report.Handler

	TaskRepo    task.Repository
	TaskService task.Service
	TaskHandler *task.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.UserService = user.NewUserService(user.NewUserRepo(db))
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.HolidayClient = holidayapi.NewClient(cfg.Holidays.BaseUrl)

	deps.ProfileRepo = profile.NewRepository(db)
	deps.ProfileService = profile.NewService(deps.ProfileRepo, deps.HolidayClient, deps.EventBus)
	deps.ProfileHandler = profile.NewHandler(deps.ProfileService)

	deps.WorkLogRepo = worklog.NewRepository(db)
	deps.WorkLogService = worklog.NewService(deps.WorkLogRepo)
	deps.WorkLogHandler = worklog.NewHandler(deps.WorkLogService)

	deps.ShiftRepo = shift.NewRepository(db)
	deps.ShiftService = shift.NewService(deps.ShiftRepo, deps.ProfileService, deps.EventBus)
	deps.ShiftHandler = shift.NewHandler(deps.ShiftService)

	deps.ReportService = report.NewService(deps.WorkLogService, deps.ProfileService)
	deps.CsvReportRenderer = report.NewCsvReportRenderer()
	deps.ReportHandler = report.NewHandler(deps.ReportService, deps.CsvReportRenderer)

	deps.TaskRepo = task.NewRepository(db)
	deps.TaskService = task.NewService(deps.TaskRepo)
	deps.TaskHandler = task.NewHandler(deps.TaskService)

	// A finished shift becomes a work log entry.
	event_bus.SubscribeTyped(deps.EventBus, event_bus.ShiftFinishedEvent,
		func(e event_bus.EventT[event_bus.ShiftFinished]) error {
			startTime := e.Data.StartTime
			endTime := e.Data.EndTime
			_, err := deps.WorkLogService.Add(e.Context(), worklog.Entry{
				Date:         e.Data.Date,
				Type:         worklog.TypeWork,
				StartTime:    &startTime,
				EndTime:      &endTime,
				BreakMinutes: e.Data.BreakMinutes,
				Notes:        e.Data.Notes,
			})
			return err
		})

	return deps
}
