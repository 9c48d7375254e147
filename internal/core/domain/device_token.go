package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrTokenRequired  = errors.New("device token is required")
	ErrDeviceNotFound = errors.New("device token not found")
)

// DeviceToken is one FCM registration token for one of a user's devices.
// Tokens are upserted on registration and pruned when the gateway reports
// them unregistered.
type DeviceToken struct {
	UserEmail string    `json:"user_email" db:"user_email"`
	Token     string    `json:"token" db:"token"`
	UserAgent string    `json:"user_agent,omitempty" db:"user_agent"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	LastUsed  time.Time `json:"last_used" db:"last_used"`
}

func NewDeviceToken(userEmail, token, userAgent string) (*DeviceToken, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrTokenRequired
	}

	now := time.Now().UTC()
	return &DeviceToken{
		UserEmail: strings.ToLower(strings.TrimSpace(userEmail)),
		Token:     token,
		UserAgent: userAgent,
		CreatedAt: now,
		LastUsed:  now,
	}, nil
}
