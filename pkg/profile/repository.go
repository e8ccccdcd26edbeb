package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Repository interface {
	// Get returns the stored settings for a user; found is false when the
	// user never saved a profile.
	Get(ctx context.Context, userId int) (settings Settings, found bool, err error)
	// Save replaces the profile row and the holiday calendar in one transaction.
	Save(ctx context.Context, userId int, settings Settings) error
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Get(ctx context.Context, userId int) (Settings, bool, error) {
	query := `SELECT work_days_per_week, work_hours_per_day, default_break_minutes, annual_vacation_days, country
				FROM profile WHERE user_id = ?`
	var settings Settings
	err := r.db.QueryRowContext(ctx, query, userId).Scan(
		&settings.WorkDaysPerWeek,
		&settings.WorkHoursPerDay,
		&settings.DefaultBreakMinutes,
		&settings.AnnualVacationDays,
		&settings.Country,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Settings{}, false, nil
	} else if err != nil {
		err := fmt.Errorf("could not query profile: %w", err)
		log.Error(err)
		return Settings{}, false, err
	}

	holidays, err := r.getHolidays(ctx, userId)
	if err != nil {
		return Settings{}, false, err
	}
	settings.OfficialHolidays = holidays
	return settings, true, nil
}

func (r *RepositoryImpl) getHolidays(ctx context.Context, userId int) ([]Holiday, error) {
	query := `SELECT date, name, imported FROM holiday WHERE user_id = ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query holidays: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	holidays := []Holiday{}
	for rows.Next() {
		var h Holiday
		if err := rows.Scan(&h.Date, &h.Name, &h.Imported); err != nil {
			err := fmt.Errorf("could not scan holiday: %w", err)
			log.Error(err)
			return nil, err
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return holidays, nil
}

func (r *RepositoryImpl) Save(ctx context.Context, userId int, settings Settings) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Errorf("rollback error: %v", rbErr)
		}
	}()

	query := `INSERT INTO profile (user_id, work_days_per_week, work_hours_per_day, default_break_minutes, annual_vacation_days, country)
				VALUES (?, ?, ?, ?, ?, ?)
				ON CONFLICT (user_id) DO UPDATE SET
					work_days_per_week = excluded.work_days_per_week,
					work_hours_per_day = excluded.work_hours_per_day,
					default_break_minutes = excluded.default_break_minutes,
					annual_vacation_days = excluded.annual_vacation_days,
					country = excluded.country`
	if _, err := tx.ExecContext(ctx, query,
		userId,
		settings.WorkDaysPerWeek,
		settings.WorkHoursPerDay,
		settings.DefaultBreakMinutes,
		settings.AnnualVacationDays,
		settings.Country,
	); err != nil {
		err := fmt.Errorf("could not store profile: %w", err)
		log.Error(err)
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM holiday WHERE user_id = ?`, userId); err != nil {
		err := fmt.Errorf("could not clear holidays: %w", err)
		log.Error(err)
		return err
	}
	for _, h := range settings.OfficialHolidays {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO holiday (user_id, date, name, imported) VALUES (?, ?, ?, ?)`,
			userId, h.Date, h.Name, h.Imported,
		); err != nil {
			err := fmt.Errorf("could not store holiday %s: %w", h.Date, err)
			log.Error(err)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
