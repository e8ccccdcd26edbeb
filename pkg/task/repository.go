package task

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

type Repository interface {
	Store(ctx context.Context, userId int, task Task) error
	FindAll(ctx context.Context, userId int) ([]Task, error)
	Update(ctx context.Context, userId int, task Task) (bool, error)
	Delete(ctx context.Context, userId int, id string) (bool, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Store(ctx context.Context, userId int, task Task) error {
	query := `INSERT INTO task (id, user_id, title, due_date, reminder_minutes, is_completed)
				VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		task.ID,
		userId,
		task.Title,
		timeParam(task.DueDate),
		task.ReminderMinutes,
		task.IsCompleted,
	)
	if err != nil {
		err := fmt.Errorf("could not store task: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepositoryImpl) FindAll(ctx context.Context, userId int) ([]Task, error) {
	query := `SELECT id, title, due_date, reminder_minutes, is_completed
				FROM task WHERE user_id = ? ORDER BY due_date`
	rows, err := r.db.QueryContext(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query tasks: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var task Task
		var dueDate sql.NullString
		if err := rows.Scan(
			&task.ID,
			&task.Title,
			&dueDate,
			&task.ReminderMinutes,
			&task.IsCompleted,
		); err != nil {
			err := fmt.Errorf("could not scan task: %w", err)
			log.Error(err)
			return nil, err
		}
		if task.DueDate, err = parseTimeColumn(dueDate); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return tasks, nil
}

func (r *RepositoryImpl) Update(ctx context.Context, userId int, task Task) (bool, error) {
	query := `UPDATE task SET title = ?, due_date = ?, reminder_minutes = ?, is_completed = ?
				WHERE id = ? AND user_id = ?`
	result, err := r.db.ExecContext(ctx, query,
		task.Title,
		timeParam(task.DueDate),
		task.ReminderMinutes,
		task.IsCompleted,
		task.ID,
		userId,
	)
	if err != nil {
		err := fmt.Errorf("could not update task: %w", err)
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
	query := `DELETE FROM task WHERE id = ? AND user_id = ?`
	result, err := r.db.ExecContext(ctx, query, id, userId)
	if err != nil {
		err := fmt.Errorf("could not delete task: %w", err)
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
