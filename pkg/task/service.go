package task

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/saati/saati/pkg/user"
)

var (
	ErrTaskNotFound = fmt.Errorf("task not found")
	ErrInvalidTask  = fmt.Errorf("invalid task")
)

type Service interface {
	List(ctx context.Context) ([]Task, error)
	Add(ctx context.Context, task Task) (Task, error)
	Update(ctx context.Context, task Task) (Task, error)
	Delete(ctx context.Context, id string) error
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) List(ctx context.Context) ([]Task, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.FindAll(ctx, userId)
}

func (s *ServiceImpl) Add(ctx context.Context, task Task) (Task, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Task{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := validate(task); err != nil {
		return Task{}, err
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if err := s.repo.Store(ctx, userId, task); err != nil {
		return Task{}, err
	}
	return task, nil
}

func (s *ServiceImpl) Update(ctx context.Context, task Task) (Task, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Task{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if task.ID == "" {
		return Task{}, fmt.Errorf("%w: missing id", ErrInvalidTask)
	}
	if err := validate(task); err != nil {
		return Task{}, err
	}
	updated, err := s.repo.Update(ctx, userId, task)
	if err != nil {
		return Task{}, err
	}
	if !updated {
		return Task{}, ErrTaskNotFound
	}
	return task, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	deleted, err := s.repo.Delete(ctx, userId, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTaskNotFound
	}
	return nil
}

func validate(task Task) error {
	if strings.TrimSpace(task.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidTask)
	}
	if task.ReminderMinutes < 0 {
		return fmt.Errorf("%w: reminderMinutes must not be negative", ErrInvalidTask)
	}
	if task.ReminderMinutes > 0 && task.DueDate == nil {
		return fmt.Errorf("%w: a reminder requires a due date", ErrInvalidTask)
	}
	return nil
}
