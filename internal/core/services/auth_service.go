package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/gal07/ramadhan-tracker/internal/core/domain"
)

// GoogleVerifier exchanges an OAuth authorization code for the Google
// account profile behind it. Implemented by the Google adapter; faked in
// tests.
type GoogleVerifier interface {
	Verify(ctx context.Context, code string) (*GoogleProfile, error)
}

type GoogleProfile struct {
	Email   string
	Name    string
	Picture string
}

type AuthService struct {
	repo     domain.UserRepository
	verifier GoogleVerifier
}

func NewAuthService(repo domain.UserRepository, verifier GoogleVerifier) *AuthService {
	return &AuthService{
		repo:     repo,
		verifier: verifier,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

// Login authenticates a credentials-provider account.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*domain.User, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth service: failed to fetch user: %w", err)
	}

	if user.Provider != domain.ProviderCredentials {
		return nil, domain.ErrInvalidCredentials
	}

	if err := user.CheckPassword(input.Password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// LoginWithGoogle exchanges the authorization code, then upserts the
// Google account as a local user.
func (s *AuthService) LoginWithGoogle(ctx context.Context, code string) (*domain.User, error) {
	profile, err := s.verifier.Verify(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("auth service: google verification failed: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(profile.Email))

	existing, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		if existing.Name != profile.Name || existing.Picture != profile.Picture {
			existing.Name = profile.Name
			existing.Picture = profile.Picture
			if updateErr := s.repo.Update(ctx, existing); updateErr != nil {
				return nil, fmt.Errorf("auth service: failed to refresh profile: %w", updateErr)
			}
		}
		return existing, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("auth service: failed to fetch user: %w", err)
	}

	user, err := domain.NewUser(uuid.NewString(), email, profile.Name, domain.ProviderGoogle)
	if err != nil {
		return nil, err
	}
	user.Picture = profile.Picture

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("auth service: failed to create user: %w", err)
	}

	return user, nil
}

// SeedCredentialsUser makes sure the configured credentials account
// exists so the instance is usable before any Google login.
func (s *AuthService) SeedCredentialsUser(ctx context.Context, email, name, password string) error {
	_, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("auth service: seed lookup failed: %w", err)
	}

	user, err := domain.NewUser(uuid.NewString(), email, name, domain.ProviderCredentials)
	if err != nil {
		return err
	}
	if err := user.SetPassword(password); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return fmt.Errorf("auth service: failed to seed user: %w", err)
	}
	return nil
}
