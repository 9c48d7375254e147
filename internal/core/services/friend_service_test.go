package services_test

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gal07/ramadhan-tracker/internal/core/domain"
	"github.com/gal07/ramadhan-tracker/internal/core/services"
	"github.com/gal07/ramadhan-tracker/internal/core/workers"
)

type MockFriendRepo struct {
	store         map[string]map[string]*domain.Friend
	simulateError error
}

func NewMockFriendRepo() *MockFriendRepo {
	return &MockFriendRepo{store: make(map[string]map[string]*domain.Friend)}
}

func (m *MockFriendRepo) Add(ctx context.Context, pair [2]*domain.Friend) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	for _, f := range pair {
		if m.store[f.OwnerEmail] == nil {
			m.store[f.OwnerEmail] = make(map[string]*domain.Friend)
		}
		clone := *f
		m.store[f.OwnerEmail][f.FriendEmail] = &clone
	}
	return nil
}

func (m *MockFriendRepo) ListByOwner(ctx context.Context, ownerEmail string) ([]domain.Friend, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	friends := []domain.Friend{}
	for _, f := range m.store[ownerEmail] {
		friends = append(friends, *f)
	}
	sort.Slice(friends, func(i, j int) bool { return friends[i].FriendEmail < friends[j].FriendEmail })
	return friends, nil
}

func (m *MockFriendRepo) Remove(ctx context.Context, ownerEmail, friendEmail string) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	if _, ok := m.store[ownerEmail][friendEmail]; !ok {
		return domain.ErrFriendNotFound
	}
	delete(m.store[ownerEmail], friendEmail)
	return nil
}

type capturingNotifier struct {
	mu     sync.Mutex
	titles []string
	emails []string
	done   chan struct{}
}

func (n *capturingNotifier) SendToUser(ctx context.Context, userEmail, title, body string, data map[string]string) error {
	n.mu.Lock()
	n.emails = append(n.emails, userEmail)
	n.titles = append(n.titles, title)
	n.mu.Unlock()
	n.done <- struct{}{}
	return nil
}

func TestFriendService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Writes both directions", func(t *testing.T) {
		repo := NewMockFriendRepo()
		svc := services.NewFriendService(repo, nil)

		friend, err := svc.Add(ctx, services.AddFriendInput{
			OwnerEmail:  "galih@example.com",
			OwnerName:   "Galih Kur",
			FriendEmail: "budi@example.com",
		})

		assert.NoError(t, err)
		assert.Equal(t, "budi@example.com", friend.FriendEmail)

		assert.NotNil(t, repo.store["galih@example.com"]["budi@example.com"])
		mirror := repo.store["budi@example.com"]["galih@example.com"]
		assert.NotNil(t, mirror)
		assert.Equal(t, "Galih Kur", mirror.Name)
	})

	t.Run("Success: Notifies the added friend in the background", func(t *testing.T) {
		repo := NewMockFriendRepo()
		notifier := &capturingNotifier{done: make(chan struct{}, 1)}
		worker := workers.NewPushWorker(notifier)

		workerCtx, cancel := context.WithCancel(context.Background())
		defer cancel()
		worker.Start(workerCtx)

		svc := services.NewFriendService(repo, worker)

		_, err := svc.Add(ctx, services.AddFriendInput{
			OwnerEmail:  "galih@example.com",
			OwnerName:   "Galih Kur",
			FriendEmail: "budi@example.com",
		})
		assert.NoError(t, err)

		select {
		case <-notifier.done:
		case <-time.After(2 * time.Second):
			t.Fatal("friend notification was never delivered")
		}

		notifier.mu.Lock()
		defer notifier.mu.Unlock()
		assert.Equal(t, []string{"budi@example.com"}, notifier.emails)
		assert.Equal(t, []string{"Teman Ibadah Baru"}, notifier.titles)
	})

	t.Run("Fail: Cannot add yourself", func(t *testing.T) {
		repo := NewMockFriendRepo()
		svc := services.NewFriendService(repo, nil)

		_, err := svc.Add(ctx, services.AddFriendInput{
			OwnerEmail:  "galih@example.com",
			FriendEmail: "galih@example.com",
		})

		assert.ErrorIs(t, err, domain.ErrSelfFriend)
		assert.Empty(t, repo.store)
	})

	t.Run("Fail: Invalid friend email", func(t *testing.T) {
		svc := services.NewFriendService(NewMockFriendRepo(), nil)

		_, err := svc.Add(ctx, services.AddFriendInput{
			OwnerEmail:  "galih@example.com",
			FriendEmail: "not-an-email",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	})
}

func TestFriendService_ListAndRemove(t *testing.T) {
	ctx := context.Background()
	repo := NewMockFriendRepo()
	svc := services.NewFriendService(repo, nil)

	for _, email := range []string{"budi@example.com", "citra@example.com"} {
		_, err := svc.Add(ctx, services.AddFriendInput{
			OwnerEmail:  "galih@example.com",
			OwnerName:   "Galih Kur",
			FriendEmail: email,
		})
		assert.NoError(t, err)
	}

	t.Run("List returns only the owner's friends", func(t *testing.T) {
		friends, err := svc.List(ctx, "galih@example.com")

		assert.NoError(t, err)
		assert.Len(t, friends, 2)

		mirror, err := svc.List(ctx, "budi@example.com")
		assert.NoError(t, err)
		assert.Len(t, mirror, 1)
	})

	t.Run("Remove is one-sided", func(t *testing.T) {
		assert.NoError(t, svc.Remove(ctx, "galih@example.com", "budi@example.com"))

		friends, _ := svc.List(ctx, "galih@example.com")
		assert.Len(t, friends, 1)

		// Budi still sees Galih.
		mirror, _ := svc.List(ctx, "budi@example.com")
		assert.Len(t, mirror, 1)
	})
}
