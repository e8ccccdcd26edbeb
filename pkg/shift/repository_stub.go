package shift

import (
	"context"
	"sync"
)

// StubShiftRepository is an in-memory Repository for tests.
type StubShiftRepository struct {
	mu     sync.Mutex
	shifts map[int]Shift
	nextId int
}

func NewStubShiftRepository() *StubShiftRepository {
	return &StubShiftRepository{shifts: map[int]Shift{}, nextId: 1}
}

func (r *StubShiftRepository) FindCurrent(_ context.Context, userId int) (*Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	shift, ok := r.shifts[userId]
	if !ok {
		return nil, nil
	}
	return &shift, nil
}

func (r *StubShiftRepository) Store(_ context.Context, userId int, shift Shift) (Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	shift.Id = r.nextId
	r.nextId++
	r.shifts[userId] = shift
	return shift, nil
}

func (r *StubShiftRepository) Update(_ context.Context, userId int, shift Shift) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.shifts[userId]
	if ok {
		current.BreakMinutes = shift.BreakMinutes
		current.Notes = shift.Notes
		r.shifts[userId] = current
	}
	return nil
}

func (r *StubShiftRepository) DeleteCurrent(_ context.Context, userId int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.shifts, userId)
	return nil
}
