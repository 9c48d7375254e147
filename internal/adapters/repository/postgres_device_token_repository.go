package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/gal07/ramadhan-tracker/internal/core/domain"
)

type PostgresDeviceTokenRepository struct {
	db *sqlx.DB
}

func NewPostgresDeviceTokenRepository(db *sqlx.DB) *PostgresDeviceTokenRepository {
	return &PostgresDeviceTokenRepository{db: db}
}

func (r *PostgresDeviceTokenRepository) Save(ctx context.Context, token *domain.DeviceToken) error {
	query := `
		INSERT INTO device_tokens (user_email, token, user_agent, created_at, last_used)
		VALUES (:user_email, :token, :user_agent, :created_at, :last_used)
		ON CONFLICT (token) DO UPDATE
		SET user_email = EXCLUDED.user_email,
		    user_agent = EXCLUDED.user_agent,
		    last_used = EXCLUDED.last_used`

	_, err := r.db.NamedExecContext(ctx, query, token)
	return err
}

func (r *PostgresDeviceTokenRepository) ListByUser(ctx context.Context, userEmail string) ([]domain.DeviceToken, error) {
	tokens := []domain.DeviceToken{}

	query := `
		SELECT * FROM device_tokens
		WHERE user_email = $1
		ORDER BY last_used DESC`

	err := r.db.SelectContext(ctx, &tokens, query, userEmail)
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

func (r *PostgresDeviceTokenRepository) DeleteTokens(ctx context.Context, userEmail string, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	query := `DELETE FROM device_tokens WHERE user_email = $1 AND token = ANY($2)`

	_, err := r.db.ExecContext(ctx, query, userEmail, pq.Array(tokens))
	return err
}
