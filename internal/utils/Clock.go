package utils

import "time"

// Clock supplies the current instant. Report periods and shift timestamps
// derive from it, so services take a Clock instead of calling time.Now.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (s SystemClock) Now() time.Time {
	return time.Now()
}

// MockClock pins Now to FixedNow. Tests advance it with SetNow, e.g. to
// clock out hours after clocking in.
type MockClock struct {
	FixedNow time.Time
}

func (m *MockClock) Now() time.Time {
	return m.FixedNow
}

func (m *MockClock) SetNow(now time.Time) {
	m.FixedNow = now
}
