package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gal07/ramadhan-tracker/internal/core/domain"
	"github.com/gal07/ramadhan-tracker/internal/core/services"
)

type MockTokenRepo struct {
	store         map[string][]domain.DeviceToken
	simulateError error
}

func NewMockTokenRepo() *MockTokenRepo {
	return &MockTokenRepo{store: make(map[string][]domain.DeviceToken)}
}

func (m *MockTokenRepo) Save(ctx context.Context, token *domain.DeviceToken) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	for i, existing := range m.store[token.UserEmail] {
		if existing.Token == token.Token {
			m.store[token.UserEmail][i] = *token
			return nil
		}
	}
	m.store[token.UserEmail] = append(m.store[token.UserEmail], *token)
	return nil
}

func (m *MockTokenRepo) ListByUser(ctx context.Context, userEmail string) ([]domain.DeviceToken, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	return m.store[userEmail], nil
}

func (m *MockTokenRepo) DeleteTokens(ctx context.Context, userEmail string, tokens []string) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	dead := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		dead[t] = true
	}
	kept := m.store[userEmail][:0]
	for _, existing := range m.store[userEmail] {
		if !dead[existing.Token] {
			kept = append(kept, existing)
		}
	}
	m.store[userEmail] = kept
	return nil
}

type FakeGateway struct {
	lastTokens   []string
	lastTitle    string
	lastBody     string
	unregistered []string
	err          error
}

func (f *FakeGateway) Send(ctx context.Context, tokens []string, title, body string, data map[string]string) (*services.PushReceipt, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastTokens = tokens
	f.lastTitle = title
	f.lastBody = body
	return &services.PushReceipt{
		Success:      len(tokens) - len(f.unregistered),
		Failure:      len(f.unregistered),
		Unregistered: f.unregistered,
	}, nil
}

func TestNotificationService_SaveToken(t *testing.T) {
	t.Run("Success: Registers a device", func(t *testing.T) {
		repo := NewMockTokenRepo()
		svc := services.NewNotificationService(repo, &FakeGateway{})

		err := svc.SaveToken(context.Background(), "galih@example.com", "fcm-token-1", "Mozilla/5.0")

		assert.NoError(t, err)
		assert.Len(t, repo.store["galih@example.com"], 1)
	})

	t.Run("Fail: Empty token rejected before the repository", func(t *testing.T) {
		repo := NewMockTokenRepo()
		svc := services.NewNotificationService(repo, &FakeGateway{})

		err := svc.SaveToken(context.Background(), "galih@example.com", "  ", "Mozilla/5.0")

		assert.ErrorIs(t, err, domain.ErrTokenRequired)
		assert.Empty(t, repo.store)
	})
}

func TestNotificationService_Send(t *testing.T) {
	ctx := context.Background()

	registerTokens := func(t *testing.T, svc *services.NotificationService, tokens ...string) {
		t.Helper()
		for _, token := range tokens {
			assert.NoError(t, svc.SaveToken(ctx, "galih@example.com", token, "Mozilla/5.0"))
		}
	}

	t.Run("Success: Delivers to every registered device", func(t *testing.T) {
		repo := NewMockTokenRepo()
		gateway := &FakeGateway{}
		svc := services.NewNotificationService(repo, gateway)
		registerTokens(t, svc, "token-a", "token-b")

		receipt, err := svc.Send(ctx, "galih@example.com", "Waktunya Sahur", "Jangan lupa sahur", nil)

		assert.NoError(t, err)
		assert.Equal(t, 2, receipt.Success)
		assert.ElementsMatch(t, []string{"token-a", "token-b"}, gateway.lastTokens)
		assert.Equal(t, "Waktunya Sahur", gateway.lastTitle)
	})

	t.Run("Success: Unregistered tokens are pruned", func(t *testing.T) {
		repo := NewMockTokenRepo()
		gateway := &FakeGateway{unregistered: []string{"token-dead"}}
		svc := services.NewNotificationService(repo, gateway)
		registerTokens(t, svc, "token-live", "token-dead")

		_, err := svc.Send(ctx, "galih@example.com", "Title", "Body", nil)

		assert.NoError(t, err)
		assert.Len(t, repo.store["galih@example.com"], 1)
		assert.Equal(t, "token-live", repo.store["galih@example.com"][0].Token)
	})

	t.Run("Fail: No registered devices", func(t *testing.T) {
		svc := services.NewNotificationService(NewMockTokenRepo(), &FakeGateway{})

		_, err := svc.Send(ctx, "ghost@example.com", "Title", "Body", nil)

		assert.ErrorIs(t, err, domain.ErrDeviceNotFound)
	})

	t.Run("Fail: Nil gateway means push is disabled", func(t *testing.T) {
		repo := NewMockTokenRepo()
		svc := services.NewNotificationService(repo, nil)
		registerTokens(t, svc, "token-a")

		_, err := svc.Send(ctx, "galih@example.com", "Title", "Body", nil)

		assert.ErrorIs(t, err, services.ErrPushDisabled)
	})

	t.Run("Fail: Gateway error propagates", func(t *testing.T) {
		repo := NewMockTokenRepo()
		svc := services.NewNotificationService(repo, &FakeGateway{err: errors.New("fcm unreachable")})
		registerTokens(t, svc, "token-a")

		_, err := svc.Send(ctx, "galih@example.com", "Title", "Body", nil)

		assert.Error(t, err)
	})
}
