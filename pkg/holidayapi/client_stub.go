package holidayapi

import (
	"context"
	"fmt"
)

// ClientStub serves canned holidays in tests, keyed by "COUNTRY/year".
type ClientStub struct {
	Holidays map[string][]PublicHoliday
	Err      error
}

func NewClientStub() *ClientStub {
	return &ClientStub{Holidays: map[string][]PublicHoliday{}}
}

func (s *ClientStub) Set(countryCode string, year int, holidays []PublicHoliday) {
	s.Holidays[fmt.Sprintf("%s/%d", countryCode, year)] = holidays
}

func (s *ClientStub) PublicHolidays(ctx context.Context, countryCode string, year int) ([]PublicHoliday, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Holidays[fmt.Sprintf("%s/%d", countryCode, year)], nil
}
