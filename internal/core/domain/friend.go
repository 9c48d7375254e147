package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrFriendNotFound      = errors.New("friend not found")
	ErrFriendAlreadyExists = errors.New("friend already exists")
	ErrSelfFriend          = errors.New("cannot add yourself as a friend")
)

// Friend is one row of a user's friend list. Adding a friend writes the
// mutual pair, so both users see each other.
type Friend struct {
	OwnerEmail  string    `json:"-" db:"owner_email"`
	FriendEmail string    `json:"email" db:"friend_email"`
	Name        string    `json:"name" db:"name"`
	AddedAt     time.Time `json:"added_at" db:"added_at"`
}

func NewFriend(ownerEmail, friendEmail, name string) (*Friend, error) {
	ownerEmail = strings.ToLower(strings.TrimSpace(ownerEmail))
	friendEmail = strings.ToLower(strings.TrimSpace(friendEmail))

	if !isValidEmail(friendEmail) {
		return nil, ErrInvalidEmail
	}
	if ownerEmail == friendEmail {
		return nil, ErrSelfFriend
	}

	if strings.TrimSpace(name) == "" {
		name = strings.SplitN(friendEmail, "@", 2)[0]
	}

	return &Friend{
		OwnerEmail:  ownerEmail,
		FriendEmail: friendEmail,
		Name:        strings.TrimSpace(name),
		AddedAt:     time.Now().UTC(),
	}, nil
}

// Mirror returns the reciprocal row for the friend's own list.
func (f *Friend) Mirror(ownerName string) *Friend {
	name := strings.TrimSpace(ownerName)
	if name == "" {
		name = strings.SplitN(f.OwnerEmail, "@", 2)[0]
	}
	return &Friend{
		OwnerEmail:  f.FriendEmail,
		FriendEmail: f.OwnerEmail,
		Name:        name,
		AddedAt:     f.AddedAt,
	}
}
