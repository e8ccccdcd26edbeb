package worklog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

type Repository interface {
	Store(ctx context.Context, userId int, entry Entry) error
	FindAll(ctx context.Context, userId int) ([]Entry, error)
	Update(ctx context.Context, userId int, entry Entry) (bool, error)
	Delete(ctx context.Context, userId int, id string) (bool, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Store(ctx context.Context, userId int, entry Entry) error {
	query := `INSERT INTO work_log (id, user_id, date, type, start_time, end_time, break_minutes, notes)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		userId,
		entry.Date,
		string(entry.Type),
		timeParam(entry.StartTime),
		timeParam(entry.EndTime),
		entry.BreakMinutes,
		entry.Notes,
	)
	if err != nil {
		err := fmt.Errorf("could not store log entry: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepositoryImpl) FindAll(ctx context.Context, userId int) ([]Entry, error) {
	query := `SELECT id, date, type, start_time, end_time, break_minutes, notes
				FROM work_log WHERE user_id = ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query log entries: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var entryType string
		var startTime, endTime sql.NullString
		if err := rows.Scan(
			&entry.ID,
			&entry.Date,
			&entryType,
			&startTime,
			&endTime,
			&entry.BreakMinutes,
			&entry.Notes,
		); err != nil {
			err := fmt.Errorf("could not scan log entry: %w", err)
			log.Error(err)
			return nil, err
		}
		entry.Type = Type(entryType)
		if entry.StartTime, err = parseTimeColumn(startTime); err != nil {
			return nil, err
		}
		if entry.EndTime, err = parseTimeColumn(endTime); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return entries, nil
}

func (r *RepositoryImpl) Update(ctx context.Context, userId int, entry Entry) (bool, error) {
	query := `UPDATE work_log SET date = ?, type = ?, start_time = ?, end_time = ?, break_minutes = ?, notes = ?
				WHERE id = ? AND user_id = ?`
	result, err := r.db.ExecContext(ctx, query,
		entry.Date,
		string(entry.Type),
		timeParam(entry.StartTime),
		timeParam(entry.EndTime),
		entry.BreakMinutes,
		entry.Notes,
		entry.ID,
		userId,
	)
	if err != nil {
		err := fmt.Errorf("could not update log entry: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func (r *RepositoryImpl) Delete(ctx context.Context, userId int, id string) (bool, error) {
	query := `DELETE FROM work_log WHERE id = ? AND user_id = ?`
	result, err := r.db.ExecContext(ctx, query, id, userId)
	if err != nil {
		err := fmt.Errorf("could not delete log entry: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func timeParam(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func parseTimeColumn(value sql.NullString) (*time.Time, error) {
	if !value.Valid {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value.String)
	if err != nil {
		err := fmt.Errorf("could not parse stored time %q: %w", value.String, err)
		log.Error(err)
		return nil, err
	}
	return &t, nil
}
