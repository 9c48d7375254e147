package services

import (
	"context"
	"fmt"
	"time"

	"github.com/gal07/ramadhan-tracker/internal/core/domain"
)

type LogService struct {
	repo   domain.DailyLogRepository
	season domain.Season
}

func NewLogService(repo domain.DailyLogRepository, season domain.Season) *LogService {
	return &LogService{
		repo:   repo,
		season: season,
	}
}

type UpsertLogInput struct {
	UserEmail  string
	Date       time.Time
	Activities domain.ActivityMap
}

// Upsert writes the checklist for one date, replacing whatever was
// stored for that date before. Dates outside the season are rejected.
func (s *LogService) Upsert(ctx context.Context, input UpsertLogInput) (*domain.DailyLog, error) {
	if !s.season.Contains(input.Date) {
		return nil, domain.ErrDateOutOfSeason
	}

	log, err := domain.NewDailyLog(input.UserEmail, input.Date, input.Activities)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, log); err != nil {
		return nil, fmt.Errorf("log service: failed to upsert log: %w", err)
	}
	return log, nil
}

func (s *LogService) GetByDate(ctx context.Context, userEmail string, date time.Time) (*domain.DailyLog, error) {
	return s.repo.GetByDate(ctx, userEmail, domain.Midnight(date))
}

func (s *LogService) ListByUser(ctx context.Context, userEmail string) ([]domain.DailyLog, error) {
	return s.repo.ListByUser(ctx, userEmail)
}

func (s *LogService) Delete(ctx context.Context, userEmail string, date time.Time) error {
	return s.repo.Delete(ctx, userEmail, domain.Midnight(date))
}

func (s *LogService) Season() domain.Season {
	return s.season
}
