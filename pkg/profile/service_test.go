package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/saati/saati/internal/event_bus"
	"github.com/saati/saati/pkg/holidayapi"
	"github.com/saati/saati/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return user.WithUser(context.Background(), user.User{Id: 1, Username: "tester"})
}

func TestGetReturnsDefaultsForNewUser(t *testing.T) {
	service := NewService(NewRepositoryStub(), holidayapi.NewClientStub(), event_bus.NewEventBus())

	settings, err := service.Get(testContext())

	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestSaveAndGet(t *testing.T) {
	service := NewService(NewRepositoryStub(), holidayapi.NewClientStub(), event_bus.NewEventBus())
	ctx := testContext()

	saved, err := service.Save(ctx, Settings{
		WorkDaysPerWeek:     6,
		WorkHoursPerDay:     7.5,
		DefaultBreakMinutes: 45,
		AnnualVacationDays:  25,
		Country:             "DE",
	})

	require.NoError(t, err)
	assert.Equal(t, 6, saved.WorkDaysPerWeek)

	settings, err := service.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, settings)
}

func TestSaveValidatesSettings(t *testing.T) {
	service := NewService(NewRepositoryStub(), holidayapi.NewClientStub(), event_bus.NewEventBus())
	ctx := testContext()

	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero work days", func(s *Settings) { s.WorkDaysPerWeek = 0 }},
		{"eight day week", func(s *Settings) { s.WorkDaysPerWeek = 8 }},
		{"zero hours", func(s *Settings) { s.WorkHoursPerDay = 0 }},
		{"25 hour day", func(s *Settings) { s.WorkHoursPerDay = 25 }},
		{"negative break", func(s *Settings) { s.DefaultBreakMinutes = -1 }},
		{"negative vacation", func(s *Settings) { s.AnnualVacationDays = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := DefaultSettings()
			tt.mutate(&settings)
			_, err := service.Save(ctx, settings)
			assert.ErrorIs(t, err, ErrInvalidSettings)
		})
	}
}

func TestSaveDeduplicatesHolidays(t *testing.T) {
	service := NewService(NewRepositoryStub(), holidayapi.NewClientStub(), event_bus.NewEventBus())
	settings := DefaultSettings()
	settings.OfficialHolidays = []Holiday{
		{Date: "2025-01-01", Name: "New Year"},
		{Date: "2025-01-01", Name: "Duplicate"},
	}

	saved, err := service.Save(testContext(), settings)

	require.NoError(t, err)
	assert.Len(t, saved.OfficialHolidays, 1)
}

func TestImportHolidays(t *testing.T) {
	client := holidayapi.NewClientStub()
	client.Set("DE", 2025, []holidayapi.PublicHoliday{
		{Date: "2025-01-01", LocalName: "Neujahr"},
		{Date: "2025-05-01", LocalName: "Tag der Arbeit"},
	})
	bus := event_bus.NewEventBus()
	var events []event_bus.HolidaysImported
	event_bus.SubscribeTyped(bus, event_bus.HolidaysImportedEvent, func(e event_bus.EventT[event_bus.HolidaysImported]) error {
		events = append(events, e.Data)
		return nil
	})
	service := NewService(NewRepositoryStub(), client, bus)
	ctx := testContext()

	settings := DefaultSettings()
	settings.OfficialHolidays = []Holiday{{Date: "2025-01-01", Name: "New Year"}}
	_, err := service.Save(ctx, settings)
	require.NoError(t, err)

	saved, added, err := service.ImportHolidays(ctx, "DE", 2025)

	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Len(t, saved.OfficialHolidays, 2)
	assert.Equal(t, "DE", saved.Country)
	require.Len(t, events, 1)
	assert.Equal(t, event_bus.HolidaysImported{Country: "DE", Year: 2025, Added: 1}, events[0])
}

func TestImportHolidaysFallsBackToProfileCountry(t *testing.T) {
	client := holidayapi.NewClientStub()
	client.Set("FR", 2025, []holidayapi.PublicHoliday{{Date: "2025-07-14", LocalName: "Fête nationale"}})
	service := NewService(NewRepositoryStub(), client, event_bus.NewEventBus())
	ctx := testContext()

	settings := DefaultSettings()
	settings.Country = "FR"
	_, err := service.Save(ctx, settings)
	require.NoError(t, err)

	_, added, err := service.ImportHolidays(ctx, "", 2025)

	require.NoError(t, err)
	assert.Equal(t, 1, added)
}

func TestImportHolidaysWithoutCountry(t *testing.T) {
	service := NewService(NewRepositoryStub(), holidayapi.NewClientStub(), event_bus.NewEventBus())

	_, _, err := service.ImportHolidays(testContext(), "", 2025)

	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestImportHolidaysClientFailure(t *testing.T) {
	client := holidayapi.NewClientStub()
	client.Err = errors.New("service unavailable")
	service := NewService(NewRepositoryStub(), client, event_bus.NewEventBus())

	_, _, err := service.ImportHolidays(testContext(), "DE", 2025)

	assert.Error(t, err)
}
