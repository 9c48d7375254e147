package domain

import (
	"context"
	"time"
)

type UserRepository interface {
	// Create persists a new user. Email is unique.
	Create(ctx context.Context, user *User) error

	GetByID(ctx context.Context, id string) (*User, error)

	GetByEmail(ctx context.Context, email string) (*User, error)

	Update(ctx context.Context, user *User) error
}

type DailyLogRepository interface {
	// Upsert writes the log for its (user, date) key, replacing any
	// existing document for that date.
	Upsert(ctx context.Context, log *DailyLog) error

	GetByDate(ctx context.Context, userEmail string, date time.Time) (*DailyLog, error)

	// ListByUser returns every log the user has, date descending.
	ListByUser(ctx context.Context, userEmail string) ([]DailyLog, error)

	Delete(ctx context.Context, userEmail string, date time.Time) error
}

type FriendRepository interface {
	// Add persists both directions of a friendship in one transaction.
	Add(ctx context.Context, pair [2]*Friend) error

	ListByOwner(ctx context.Context, ownerEmail string) ([]Friend, error)

	// Remove deletes only the owner's direction; unfriending is
	// one-sided.
	Remove(ctx context.Context, ownerEmail, friendEmail string) error
}

type DeviceTokenRepository interface {
	// Save upserts by token value and refreshes last_used.
	Save(ctx context.Context, token *DeviceToken) error

	ListByUser(ctx context.Context, userEmail string) ([]DeviceToken, error)

	DeleteTokens(ctx context.Context, userEmail string, tokens []string) error
}
