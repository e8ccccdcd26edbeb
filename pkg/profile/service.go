package profile

import (
	"context"
	"fmt"

	"github.com/saati/saati/internal/event_bus"
	"github.com/saati/saati/pkg/holidayapi"
	"github.com/saati/saati/pkg/user"
	log "github.com/sirupsen/logrus"
)

var ErrInvalidSettings = fmt.Errorf("invalid profile settings")

type Service interface {
	Get(ctx context.Context) (Settings, error)
	Save(ctx context.Context, settings Settings) (Settings, error)
	ImportHolidays(ctx context.Context, country string, year int) (Settings, int, error)
}

// Reader is the read-only slice of Service used by other packages.
type Reader interface {
	Get(ctx context.Context) (Settings, error)
}

type ServiceImpl struct {
	repo     Repository
	holidays holidayapi.Client
	bus      *event_bus.EventBus
}

func NewService(repo Repository, holidays holidayapi.Client, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, holidays: holidays, bus: bus}
}

// Get returns the stored settings, or the defaults when the user never saved a profile.
func (s *ServiceImpl) Get(ctx context.Context) (Settings, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to get current user: %w", err)
	}
	settings, found, err := s.repo.Get(ctx, userId)
	if err != nil {
		return Settings{}, err
	}
	if !found {
		return DefaultSettings(), nil
	}
	return settings, nil
}

func (s *ServiceImpl) Save(ctx context.Context, settings Settings) (Settings, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := validate(settings); err != nil {
		return Settings{}, err
	}

	// Holiday uniqueness: at most one entry per date survives a save.
	settings.OfficialHolidays, _ = MergeHolidays(settings.OfficialHolidays, nil)

	if err := s.repo.Save(ctx, userId, settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// ImportHolidays fetches public holidays for the given country and year,
// merges them into the calendar (existing dates win), and saves the profile.
// Returns the saved settings and the number of newly added holidays.
func (s *ServiceImpl) ImportHolidays(ctx context.Context, country string, year int) (Settings, int, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return Settings{}, 0, err
	}
	if country == "" {
		country = settings.Country
	}
	if country == "" {
		return Settings{}, 0, fmt.Errorf("%w: no country to import holidays for", ErrInvalidSettings)
	}

	publicHolidays, err := s.holidays.PublicHolidays(ctx, country, year)
	if err != nil {
		return Settings{}, 0, fmt.Errorf("failed to fetch public holidays: %w", err)
	}

	imported := make([]Holiday, 0, len(publicHolidays))
	for _, ph := range publicHolidays {
		imported = append(imported, Holiday{Date: ph.Date, Name: ph.LocalName})
	}

	var added int
	settings.OfficialHolidays, added = MergeHolidays(settings.OfficialHolidays, imported)
	settings.Country = country

	saved, err := s.Save(ctx, settings)
	if err != nil {
		return Settings{}, 0, err
	}

	log.Infof("Imported %d public holidays for %s/%d", added, country, year)
	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.HolidaysImportedEvent, event_bus.HolidaysImported{
		Country: country,
		Year:    year,
		Added:   added,
	})); err != nil {
		log.Warnf("failed to publish holidays imported event: %v", err)
	}

	return saved, added, nil
}

func validate(settings Settings) error {
	if settings.WorkDaysPerWeek < 1 || settings.WorkDaysPerWeek > 7 {
		return fmt.Errorf("%w: workDaysPerWeek must be between 1 and 7", ErrInvalidSettings)
	}
	if settings.WorkHoursPerDay <= 0 || settings.WorkHoursPerDay > 24 {
		return fmt.Errorf("%w: workHoursPerDay must be between 0 and 24", ErrInvalidSettings)
	}
	if settings.DefaultBreakMinutes < 0 {
		return fmt.Errorf("%w: defaultBreakMinutes must not be negative", ErrInvalidSettings)
	}
	if settings.AnnualVacationDays < 0 {
		return fmt.Errorf("%w: annualVacationDays must not be negative", ErrInvalidSettings)
	}
	return nil
}
