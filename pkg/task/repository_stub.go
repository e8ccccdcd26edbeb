package task

import (
	"context"
	"sort"
	"sync"
)

// StubTaskRepository is an in-memory Repository for tests.
type StubTaskRepository struct {
	mu    sync.Mutex
	tasks map[int]map[string]Task
}

func NewStubTaskRepository() *StubTaskRepository {
	return &StubTaskRepository{tasks: map[int]map[string]Task{}}
}

func (r *StubTaskRepository) Store(_ context.Context, userId int, task Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tasks[userId] == nil {
		r.tasks[userId] = map[string]Task{}
	}
	r.tasks[userId][task.ID] = task
	return nil
}

func (r *StubTaskRepository) FindAll(_ context.Context, userId int) ([]Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tasks := make([]Task, 0, len(r.tasks[userId]))
	for _, task := range r.tasks[userId] {
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool {
		a, b := tasks[i].DueDate, tasks[j].DueDate
		if a == nil || b == nil {
			return a != nil
		}
		return a.Before(*b)
	})
	return tasks, nil
}

func (r *StubTaskRepository) Update(_ context.Context, userId int, task Task) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[userId][task.ID]; !ok {
		return false, nil
	}
	r.tasks[userId][task.ID] = task
	return true, nil
}

func (r *StubTaskRepository) Delete(_ context.Context, userId int, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[userId][id]; !ok {
		return false, nil
	}
	delete(r.tasks[userId], id)
	return true, nil
}
