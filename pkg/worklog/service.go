package worklog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/saati/saati/pkg/user"
	log "github.com/sirupsen/logrus"
)

var (
	ErrEntryNotFound = fmt.Errorf("log entry not found")
	ErrInvalidEntry  = fmt.Errorf("invalid log entry")
)

type Service interface {
	List(ctx context.Context) ([]Entry, error)
	Add(ctx context.Context, entry Entry) (Entry, error)
	Update(ctx context.Context, entry Entry) (Entry, error)
	Delete(ctx context.Context, id string) error
}

// Reader is the read-only view the report service aggregates over.
type Reader interface {
	List(ctx context.Context) ([]Entry, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) List(ctx context.Context) ([]Entry, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.FindAll(ctx, userId)
}

func (s *ServiceImpl) Add(ctx context.Context, entry Entry) (Entry, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to get current user: %w", err)
	}
	entry, err = normalize(entry)
	if err != nil {
		return Entry{}, err
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if err := s.repo.Store(ctx, userId, entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

func (s *ServiceImpl) Update(ctx context.Context, entry Entry) (Entry, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to get current user: %w", err)
	}
	entry, err = normalize(entry)
	if err != nil {
		return Entry{}, err
	}
	updated, err := s.repo.Update(ctx, userId, entry)
	if err != nil {
		return Entry{}, err
	}
	if !updated {
		log.Warnf("log entry not updated, probably because it does not exist (%s) or the user (%d) is not the owner", entry.ID, userId)
		return Entry{}, ErrEntryNotFound
	}
	return entry, nil
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
		log.Warnf("log entry not deleted, probably because it does not exist (%s) or the user (%d) is not the owner", id, userId)
		return ErrEntryNotFound
	}
	return nil
}

// normalize enforces the entry invariants: a valid type, a non-negative break,
// and start/end/break cleared on non-work entries (they carry only a date).
func normalize(entry Entry) (Entry, error) {
	if !entry.Type.Valid() {
		return Entry{}, fmt.Errorf("%w: unknown type %q", ErrInvalidEntry, entry.Type)
	}
	if entry.Date == "" {
		return Entry{}, fmt.Errorf("%w: date is required", ErrInvalidEntry)
	}
	if entry.BreakMinutes < 0 {
		return Entry{}, fmt.Errorf("%w: breakMinutes must not be negative", ErrInvalidEntry)
	}
	if entry.Type != TypeWork {
		entry.StartTime = nil
		entry.EndTime = nil
		entry.BreakMinutes = 0
	}
	return entry, nil
}
