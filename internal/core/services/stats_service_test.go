package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gal07/ramadhan-tracker/internal/core/analytics"
	"github.com/gal07/ramadhan-tracker/internal/core/domain"
	"github.com/gal07/ramadhan-tracker/internal/core/services"
)

func TestStatsService_GetReport(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Aggregates the stored logs", func(t *testing.T) {
		repo := NewMockLogRepo()
		logSvc := services.NewLogService(repo, testSeason(t))

		for _, key := range []string{"2026-02-18", "2026-02-19"} {
			date, _ := domain.ParseDate(key)
			_, err := logSvc.Upsert(ctx, services.UpsertLogInput{
				UserEmail:  "galih@example.com",
				Date:       date,
				Activities: sampleActivities(),
			})
			assert.NoError(t, err)
		}

		svc := services.NewStatsService(repo, NewMockFriendRepo())
		report, err := svc.GetReport(ctx, "galih@example.com")

		assert.NoError(t, err)
		assert.Equal(t, 8, report.Total)
		assert.Equal(t, 4, report.Completed)
		assert.Equal(t, 2, report.CurrentStreak)
	})

	t.Run("Success: No logs yields an all-zero report", func(t *testing.T) {
		svc := services.NewStatsService(NewMockLogRepo(), NewMockFriendRepo())

		report, err := svc.GetReport(ctx, "new-user@example.com")

		assert.NoError(t, err)
		assert.Equal(t, 0, report.Total)
		assert.Equal(t, 0, report.CurrentStreak)
		assert.Empty(t, report.Categories)
	})

	t.Run("Fail: Corrupted log surfaces a validation error", func(t *testing.T) {
		repo := NewMockLogRepo()
		corruptDate, _ := domain.ParseDate("2026-02-18")
		repo.store["galih@example.com"] = map[string]*domain.DailyLog{
			"2026-02-18": {
				UserEmail: "galih@example.com",
				Date:      corruptDate,
				Activities: domain.ActivityMap{
					"sahur": {Name: "Sahur", Category: "Bangun Tidur", Status: "corrupted"},
				},
			},
		}

		svc := services.NewStatsService(repo, NewMockFriendRepo())
		_, err := svc.GetReport(ctx, "galih@example.com")

		var verr *analytics.ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, "2026-02-18", verr.Date)
		assert.Equal(t, "sahur", verr.ActivityID)
	})

	t.Run("Fail: Repository error propagates", func(t *testing.T) {
		repo := NewMockLogRepo()
		repo.simulateError = errors.New("connection refused")

		svc := services.NewStatsService(repo, NewMockFriendRepo())
		_, err := svc.GetReport(ctx, "galih@example.com")

		assert.Error(t, err)
	})
}

func TestStatsService_GetFriendReport(t *testing.T) {
	ctx := context.Background()

	seedFriendLogs := func(t *testing.T) (*MockLogRepo, *MockFriendRepo) {
		t.Helper()

		logRepo := NewMockLogRepo()
		logSvc := services.NewLogService(logRepo, testSeason(t))
		date, _ := domain.ParseDate("2026-02-18")
		_, err := logSvc.Upsert(ctx, services.UpsertLogInput{
			UserEmail:  "budi@example.com",
			Date:       date,
			Activities: sampleActivities(),
		})
		assert.NoError(t, err)

		friendRepo := NewMockFriendRepo()
		friend, err := domain.NewFriend("galih@example.com", "budi@example.com", "Budi")
		assert.NoError(t, err)
		assert.NoError(t, friendRepo.Add(ctx, [2]*domain.Friend{friend, friend.Mirror("Galih Kur")}))

		return logRepo, friendRepo
	}

	t.Run("Success: Returns the friend's aggregated logs", func(t *testing.T) {
		logRepo, friendRepo := seedFriendLogs(t)
		svc := services.NewStatsService(logRepo, friendRepo)

		report, err := svc.GetFriendReport(ctx, "galih@example.com", "budi@example.com")

		assert.NoError(t, err)
		assert.Equal(t, 4, report.Total)
		assert.Equal(t, 2, report.Completed)
	})

	t.Run("Success: Friend email is normalized before the lookup", func(t *testing.T) {
		logRepo, friendRepo := seedFriendLogs(t)
		svc := services.NewStatsService(logRepo, friendRepo)

		report, err := svc.GetFriendReport(ctx, "galih@example.com", "  Budi@Example.com ")

		assert.NoError(t, err)
		assert.Equal(t, 4, report.Total)
	})

	t.Run("Fail: Non-friend email is rejected", func(t *testing.T) {
		logRepo, friendRepo := seedFriendLogs(t)
		svc := services.NewStatsService(logRepo, friendRepo)

		_, err := svc.GetFriendReport(ctx, "galih@example.com", "stranger@example.com")

		assert.ErrorIs(t, err, domain.ErrFriendNotFound)
	})

	t.Run("Fail: Friend lookup error propagates", func(t *testing.T) {
		friendRepo := NewMockFriendRepo()
		friendRepo.simulateError = errors.New("connection refused")
		svc := services.NewStatsService(NewMockLogRepo(), friendRepo)

		_, err := svc.GetFriendReport(ctx, "galih@example.com", "budi@example.com")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrFriendNotFound)
	})
}
