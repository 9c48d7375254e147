package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/gal07/ramadhan-tracker/internal/core/domain"
)

// PushGateway is the messaging provider boundary. The FCM adapter
// implements it; tests fake it.
type PushGateway interface {
	Send(ctx context.Context, tokens []string, title, body string, data map[string]string) (*PushReceipt, error)
}

// PushReceipt reports per-batch delivery results. Unregistered carries
// the tokens the provider no longer recognizes so they can be pruned.
type PushReceipt struct {
	Success      int
	Failure      int
	Unregistered []string
}

// ErrPushDisabled is returned when no push gateway was configured at
// startup.
var ErrPushDisabled = errors.New("push gateway not configured")

type NotificationService struct {
	tokenRepo domain.DeviceTokenRepository
	gateway   PushGateway
}

func NewNotificationService(tokenRepo domain.DeviceTokenRepository, gateway PushGateway) *NotificationService {
	return &NotificationService{
		tokenRepo: tokenRepo,
		gateway:   gateway,
	}
}

// SaveToken registers or refreshes one device token for the user.
func (s *NotificationService) SaveToken(ctx context.Context, userEmail, token, userAgent string) error {
	deviceToken, err := domain.NewDeviceToken(userEmail, token, userAgent)
	if err != nil {
		return err
	}

	if err := s.tokenRepo.Save(ctx, deviceToken); err != nil {
		return fmt.Errorf("notification service: failed to save token: %w", err)
	}
	return nil
}

// Send pushes one notification to every registered device of the user
// and prunes tokens the gateway reports as unregistered.
func (s *NotificationService) Send(ctx context.Context, userEmail, title, body string, data map[string]string) (*PushReceipt, error) {
	if s.gateway == nil {
		return nil, ErrPushDisabled
	}

	tokens, err := s.tokenRepo.ListByUser(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("notification service: failed to list tokens: %w", err)
	}
	if len(tokens) == 0 {
		return nil, domain.ErrDeviceNotFound
	}

	values := make([]string, 0, len(tokens))
	for _, t := range tokens {
		values = append(values, t.Token)
	}

	receipt, err := s.gateway.Send(ctx, values, title, body, data)
	if err != nil {
		return nil, fmt.Errorf("notification service: gateway send failed: %w", err)
	}

	if len(receipt.Unregistered) > 0 {
		if delErr := s.tokenRepo.DeleteTokens(ctx, userEmail, receipt.Unregistered); delErr != nil {
			log.Printf("Failed to prune %d stale tokens for %s: %v", len(receipt.Unregistered), userEmail, delErr)
		} else {
			log.Printf("Deleted %d invalid tokens for %s", len(receipt.Unregistered), userEmail)
		}
	}

	return receipt, nil
}

// SendToUser adapts Send for the push worker, which only cares about
// failure.
func (s *NotificationService) SendToUser(ctx context.Context, userEmail, title, body string, data map[string]string) error {
	_, err := s.Send(ctx, userEmail, title, body, data)
	return err
}
