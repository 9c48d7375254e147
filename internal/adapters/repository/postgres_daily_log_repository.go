package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/gal07/ramadhan-tracker/internal/core/domain"
)

// PostgresDailyLogRepository keeps one row per (user, date) with the
// whole checklist in a JSONB column. Reads and writes always address a
// full day, so a document per day avoids a join on every request.
type PostgresDailyLogRepository struct {
	db *sqlx.DB
}

func NewPostgresDailyLogRepository(db *sqlx.DB) *PostgresDailyLogRepository {
	return &PostgresDailyLogRepository{db: db}
}

func (r *PostgresDailyLogRepository) Upsert(ctx context.Context, log *domain.DailyLog) error {
	query := `
		INSERT INTO daily_logs (
			user_email, log_date, activities, created_at, updated_at
		) VALUES (
			:user_email, :log_date, :activities, :created_at, :updated_at
		)
		ON CONFLICT (user_email, log_date) DO UPDATE
		SET activities = EXCLUDED.activities,
		    updated_at = EXCLUDED.updated_at`

	_, err := r.db.NamedExecContext(ctx, query, log)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return domain.ErrUserNotFound
		}
		return err
	}
	return nil
}

func (r *PostgresDailyLogRepository) GetByDate(ctx context.Context, userEmail string, date time.Time) (*domain.DailyLog, error) {
	var log domain.DailyLog
	query := `SELECT * FROM daily_logs WHERE user_email = $1 AND log_date = $2`

	err := r.db.GetContext(ctx, &log, query, strings.ToLower(userEmail), date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLogNotFound
		}
		return nil, err
	}
	return &log, nil
}

func (r *PostgresDailyLogRepository) ListByUser(ctx context.Context, userEmail string) ([]domain.DailyLog, error) {
	logs := []domain.DailyLog{}

	query := `
		SELECT * FROM daily_logs
		WHERE user_email = $1
		ORDER BY log_date DESC`

	err := r.db.SelectContext(ctx, &logs, query, strings.ToLower(userEmail))
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *PostgresDailyLogRepository) Delete(ctx context.Context, userEmail string, date time.Time) error {
	query := `DELETE FROM daily_logs WHERE user_email = $1 AND log_date = $2`

	result, err := r.db.ExecContext(ctx, query, strings.ToLower(userEmail), date)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrLogNotFound
	}
	return nil
}
