package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/gal07/ramadhan-tracker/internal/core/domain"
)

type PostgresFriendRepository struct {
	db *sqlx.DB
}

func NewPostgresFriendRepository(db *sqlx.DB) *PostgresFriendRepository {
	return &PostgresFriendRepository{db: db}
}

// Add writes both directions of the friendship in one transaction so a
// half-added pair can never be observed.
func (r *PostgresFriendRepository) Add(ctx context.Context, pair [2]*domain.Friend) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO friends (owner_email, friend_email, name, added_at)
		VALUES (:owner_email, :friend_email, :name, :added_at)
		ON CONFLICT (owner_email, friend_email) DO UPDATE
		SET name = EXCLUDED.name`

	for _, f := range pair {
		if _, err := tx.NamedExecContext(ctx, query, f); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresFriendRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]domain.Friend, error) {
	friends := []domain.Friend{}

	query := `
		SELECT * FROM friends
		WHERE owner_email = $1
		ORDER BY added_at DESC`

	err := r.db.SelectContext(ctx, &friends, query, ownerEmail)
	if err != nil {
		return nil, err
	}
	return friends, nil
}

func (r *PostgresFriendRepository) Remove(ctx context.Context, ownerEmail, friendEmail string) error {
	query := `DELETE FROM friends WHERE owner_email = $1 AND friend_email = $2`

	result, err := r.db.ExecContext(ctx, query, ownerEmail, friendEmail)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrFriendNotFound
	}
	return nil
}
