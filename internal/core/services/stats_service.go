package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/gal07/ramadhan-tracker/internal/core/analytics"
	"github.com/gal07/ramadhan-tracker/internal/core/domain"
)

// StatsService fetches a user's full log set and hands it to the pure
// analytics engine. The engine itself never sees storage; caching of the
// log list is the repository decorator's concern.
type StatsService struct {
	logRepo    domain.DailyLogRepository
	friendRepo domain.FriendRepository
}

func NewStatsService(logRepo domain.DailyLogRepository, friendRepo domain.FriendRepository) *StatsService {
	return &StatsService{
		logRepo:    logRepo,
		friendRepo: friendRepo,
	}
}

func (s *StatsService) GetReport(ctx context.Context, userEmail string) (*domain.AnalyticsReport, error) {
	logs, err := s.logRepo.ListByUser(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("stats service: failed to list logs: %w", err)
	}

	report, err := analytics.BuildReport(logs)
	if err != nil {
		return nil, fmt.Errorf("stats service: %w", err)
	}
	return report, nil
}

// GetFriendReport computes the report for one of the caller's friends.
// The friendship is checked first so one user cannot read an arbitrary
// user's statistics by guessing an email.
func (s *StatsService) GetFriendReport(ctx context.Context, ownerEmail, friendEmail string) (*domain.AnalyticsReport, error) {
	friendEmail = strings.ToLower(strings.TrimSpace(friendEmail))

	friends, err := s.friendRepo.ListByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("stats service: failed to list friends: %w", err)
	}

	for _, f := range friends {
		if f.FriendEmail == friendEmail {
			return s.GetReport(ctx, friendEmail)
		}
	}
	return nil, domain.ErrFriendNotFound
}
