package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gal07/ramadhan-tracker/internal/core/domain"
)

var _ domain.DailyLogRepository = (*CachedDailyLogRepository)(nil)

// CachedDailyLogRepository caches the full per-user log list, which the
// stats endpoint reads on every report. Any write for the user drops
// the cached list, so a report never computes over stale data.
type CachedDailyLogRepository struct {
	next  domain.DailyLogRepository
	cache *redis.Client
}

func NewCachedDailyLogRepository(next domain.DailyLogRepository, cache *redis.Client) *CachedDailyLogRepository {
	return &CachedDailyLogRepository{
		next:  next,
		cache: cache,
	}
}

func (r *CachedDailyLogRepository) cacheKey(userEmail string) string {
	return fmt.Sprintf("daily_logs:%s", userEmail)
}

func (r *CachedDailyLogRepository) invalidate(ctx context.Context, userEmail string) {
	if err := r.cache.Del(ctx, r.cacheKey(userEmail)).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate for user %s: %v", userEmail, err)
	}
}

func (r *CachedDailyLogRepository) ListByUser(ctx context.Context, userEmail string) ([]domain.DailyLog, error) {
	key := r.cacheKey(userEmail)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var logs []domain.DailyLog
		if err := json.Unmarshal([]byte(val), &logs); err == nil {
			return logs, nil
		}

		log.Printf("[CACHE] Corrupted data for user %s, cleaning up key", userEmail)
		r.cache.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	logs, err := r.next.ListByUser(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(logs); err == nil {
		if setErr := r.cache.Set(ctx, key, data, 30*time.Minute).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return logs, nil
}

func (r *CachedDailyLogRepository) GetByDate(ctx context.Context, userEmail string, date time.Time) (*domain.DailyLog, error) {
	return r.next.GetByDate(ctx, userEmail, date)
}

func (r *CachedDailyLogRepository) Upsert(ctx context.Context, dailyLog *domain.DailyLog) error {
	if err := r.next.Upsert(ctx, dailyLog); err != nil {
		return err
	}
	r.invalidate(ctx, dailyLog.UserEmail)
	return nil
}

func (r *CachedDailyLogRepository) Delete(ctx context.Context, userEmail string, date time.Time) error {
	if err := r.next.Delete(ctx, userEmail, date); err != nil {
		return err
	}
	r.invalidate(ctx, userEmail)
	return nil
}
