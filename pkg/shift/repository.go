package shift

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

type Repository interface {
	// FindCurrent returns the user's running shift, or nil when none is running.
	FindCurrent(ctx context.Context, userId int) (*Shift, error)
	Store(ctx context.Context, userId int, shift Shift) (Shift, error)
	Update(ctx context.Context, userId int, shift Shift) error
	DeleteCurrent(ctx context.Context, userId int) error
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) FindCurrent(ctx context.Context, userId int) (*Shift, error) {
	query := `SELECT id, start_time, break_minutes, notes FROM current_shift WHERE user_id = ?`
	var shift Shift
	var startTime string
	err := r.db.QueryRowContext(ctx, query, userId).Scan(&shift.Id, &startTime, &shift.BreakMinutes, &shift.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		err := fmt.Errorf("could not query current shift: %w", err)
		log.Error(err)
		return nil, err
	}
	shift.StartTime, err = time.Parse(time.RFC3339, startTime)
	if err != nil {
		err := fmt.Errorf("could not parse stored shift start time %q: %w", startTime, err)
		log.Error(err)
		return nil, err
	}
	return &shift, nil
}

func (r *RepositoryImpl) Store(ctx context.Context, userId int, shift Shift) (Shift, error) {
	query := `INSERT INTO current_shift (user_id, start_time, break_minutes, notes) VALUES (?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, query,
		userId,
		shift.StartTime.UTC().Format(time.RFC3339),
		shift.BreakMinutes,
		shift.Notes,
	)
	if err != nil {
		err := fmt.Errorf("could not store current shift: %w", err)
		log.Error(err)
		return Shift{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		err := fmt.Errorf("could not retrieve last insert id: %w", err)
		log.Error(err)
		return Shift{}, err
	}
	shift.Id = int(id)
	return shift, nil
}

func (r *RepositoryImpl) Update(ctx context.Context, userId int, shift Shift) error {
	query := `UPDATE current_shift SET break_minutes = ?, notes = ? WHERE user_id = ?`
	if _, err := r.db.ExecContext(ctx, query, shift.BreakMinutes, shift.Notes, userId); err != nil {
		err := fmt.Errorf("could not update current shift: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepositoryImpl) DeleteCurrent(ctx context.Context, userId int) error {
	query := `DELETE FROM current_shift WHERE user_id = ?`
	if _, err := r.db.ExecContext(ctx, query, userId); err != nil {
		err := fmt.Errorf("could not delete current shift: %w", err)
		log.Error(err)
		return err
	}
	return nil
}
