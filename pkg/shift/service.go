package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/saati/saati/internal/event_bus"
	"github.com/saati/saati/internal/utils"
	"github.com/saati/saati/pkg/profile"
	"github.com/saati/saati/pkg/user"
	log "github.com/sirupsen/logrus"
)

var (
	ErrNoCurrentShift      = fmt.Errorf("no current shift")
	ErrShiftAlreadyRunning = fmt.Errorf("a shift is already running")
)

type Service interface {
	Current(ctx context.Context) (*Shift, error)
	// Start clocks in. Break minutes default to the profile's
	// DefaultBreakMinutes when not supplied.
	Start(ctx context.Context, notes string, breakMinutes *int) (Shift, error)
	// Adjust changes the break or notes of the running shift without
	// clocking out.
	Adjust(ctx context.Context, breakMinutes *int, notes *string) (Shift, error)
	// Finish clocks out: it publishes the finished shift on the bus (where
	// the work log records it) and clears the running shift.
	Finish(ctx context.Context, breakMinutes *int, notes *string) (FinishedShift, error)
	// Discard drops the running shift without recording anything.
	Discard(ctx context.Context) (*Shift, error)
}

type ServiceImpl struct {
	repo    Repository
	profile profile.Reader
	bus     *event_bus.EventBus
	clock   utils.Clock
}

func NewService(repo Repository, profileReader profile.Reader, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, profile: profileReader, bus: bus, clock: &utils.SystemClock{}}
}

func (s *ServiceImpl) Current(ctx context.Context) (*Shift, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.FindCurrent(ctx, userId)
}

func (s *ServiceImpl) Start(ctx context.Context, notes string, breakMinutes *int) (Shift, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Shift{}, fmt.Errorf("failed to get current user: %w", err)
	}

	current, err := s.repo.FindCurrent(ctx, userId)
	if err != nil {
		return Shift{}, err
	}
	if current != nil {
		return Shift{}, ErrShiftAlreadyRunning
	}

	settings, err := s.profile.Get(ctx)
	if err != nil {
		return Shift{}, fmt.Errorf("failed to load profile: %w", err)
	}
	shiftBreak := settings.DefaultBreakMinutes
	if breakMinutes != nil && *breakMinutes >= 0 {
		shiftBreak = *breakMinutes
	}

	shift := Shift{
		StartTime:    s.clock.Now(),
		BreakMinutes: shiftBreak,
		Notes:        notes,
	}
	log.Debugf("Starting shift for user %d at %v", userId, shift.StartTime)
	return s.repo.Store(ctx, userId, shift)
}

func (s *ServiceImpl) Adjust(ctx context.Context, breakMinutes *int, notes *string) (Shift, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Shift{}, fmt.Errorf("failed to get current user: %w", err)
	}

	current, err := s.repo.FindCurrent(ctx, userId)
	if err != nil {
		return Shift{}, err
	}
	if current == nil {
		log.Debug("No current shift to adjust")
		return Shift{}, ErrNoCurrentShift
	}

	if breakMinutes != nil && *breakMinutes >= 0 {
		current.BreakMinutes = *breakMinutes
	}
	if notes != nil {
		current.Notes = *notes
	}

	if err := s.repo.Update(ctx, userId, *current); err != nil {
		return Shift{}, err
	}
	return *current, nil
}

func (s *ServiceImpl) Finish(ctx context.Context, breakMinutes *int, notes *string) (FinishedShift, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return FinishedShift{}, fmt.Errorf("failed to get current user: %w", err)
	}

	current, err := s.repo.FindCurrent(ctx, userId)
	if err != nil {
		return FinishedShift{}, err
	}
	if current == nil {
		log.Debug("No current shift to finish")
		return FinishedShift{}, ErrNoCurrentShift
	}

	if breakMinutes != nil && *breakMinutes >= 0 {
		current.BreakMinutes = *breakMinutes
	}
	if notes != nil {
		current.Notes = *notes
	}

	finished := FinishedShift{
		Date:         current.StartTime.UTC().Format(time.DateOnly),
		StartTime:    current.StartTime,
		EndTime:      s.clock.Now(),
		BreakMinutes: current.BreakMinutes,
		Notes:        current.Notes,
	}

	// Record first, clear after: a failed recording keeps the shift running.
	err = s.bus.Publish(event_bus.NewEvent(ctx, event_bus.ShiftFinishedEvent, event_bus.ShiftFinished{
		Date:         finished.Date,
		StartTime:    finished.StartTime,
		EndTime:      finished.EndTime,
		BreakMinutes: finished.BreakMinutes,
		Notes:        finished.Notes,
	}))
	if err != nil {
		return FinishedShift{}, fmt.Errorf("failed to record finished shift: %w", err)
	}

	if err := s.repo.DeleteCurrent(ctx, userId); err != nil {
		return FinishedShift{}, err
	}
	return finished, nil
}

func (s *ServiceImpl) Discard(ctx context.Context) (*Shift, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	current, err := s.repo.FindCurrent(ctx, userId)
	if err != nil {
		return nil, err
	}
	if current == nil {
		log.Debug("No current shift to discard")
		return nil, nil
	}
	if err := s.repo.DeleteCurrent(ctx, userId); err != nil {
		return nil, err
	}
	return current, nil
}
