package services

import (
	"context"
	"fmt"

	"github.com/gal07/ramadhan-tracker/internal/core/domain"
	"github.com/gal07/ramadhan-tracker/internal/core/workers"
)

type FriendService struct {
	repo   domain.FriendRepository
	worker *workers.PushWorker
}

func NewFriendService(repo domain.FriendRepository, worker *workers.PushWorker) *FriendService {
	return &FriendService{
		repo:   repo,
		worker: worker,
	}
}

type AddFriendInput struct {
	OwnerEmail  string
	OwnerName   string
	FriendEmail string
}

// Add records the friendship in both directions and notifies the added
// friend in the background. A QR scan links both users in one call.
func (s *FriendService) Add(ctx context.Context, input AddFriendInput) (*domain.Friend, error) {
	friend, err := domain.NewFriend(input.OwnerEmail, input.FriendEmail, "")
	if err != nil {
		return nil, err
	}

	pair := [2]*domain.Friend{friend, friend.Mirror(input.OwnerName)}
	if err := s.repo.Add(ctx, pair); err != nil {
		return nil, fmt.Errorf("friend service: failed to add friend: %w", err)
	}

	if s.worker != nil {
		s.worker.Enqueue(workers.PushJob{
			UserEmail: friend.FriendEmail,
			Title:     "Teman Ibadah Baru",
			Body:      fmt.Sprintf("%s menambahkan Anda sebagai teman", pair[1].Name),
			Data:      map[string]string{"type": "friend_added", "email": friend.OwnerEmail},
		})
	}

	return friend, nil
}

func (s *FriendService) List(ctx context.Context, ownerEmail string) ([]domain.Friend, error) {
	return s.repo.ListByOwner(ctx, ownerEmail)
}

func (s *FriendService) Remove(ctx context.Context, ownerEmail, friendEmail string) error {
	return s.repo.Remove(ctx, ownerEmail, friendEmail)
}
