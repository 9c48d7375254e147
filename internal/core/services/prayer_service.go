package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gal07/ramadhan-tracker/internal/core/domain"
)

// PrayerAPI is the upstream prayer-schedule provider.
type PrayerAPI interface {
	TimingsByCity(ctx context.Context, city string, date time.Time) (*domain.PrayerSchedule, error)
}

// Prayer times shift daily, so the cache stays short.
const prayerCacheTTL = 10 * time.Minute

type PrayerService struct {
	api   PrayerAPI
	cache *redis.Client
}

func NewPrayerService(api PrayerAPI, cache *redis.Client) *PrayerService {
	return &PrayerService{
		api:   api,
		cache: cache,
	}
}

func (s *PrayerService) TodayByCity(ctx context.Context, city string) (*domain.PrayerSchedule, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, domain.ErrCityRequired
	}

	today := domain.Midnight(time.Now())
	key := fmt.Sprintf("prayer:%s:%s", strings.ToLower(city), today.Format(domain.DateLayout))

	if s.cache != nil {
		if val, err := s.cache.Get(ctx, key).Result(); err == nil {
			var schedule domain.PrayerSchedule
			if jsonErr := json.Unmarshal([]byte(val), &schedule); jsonErr == nil {
				return &schedule, nil
			}
			s.cache.Del(ctx, key)
		} else if err != redis.Nil {
			log.Printf("[CACHE] Redis read error: %v", err)
		}
	}

	schedule, err := s.api.TimingsByCity(ctx, city, today)
	if err != nil {
		return nil, fmt.Errorf("prayer service: failed to fetch timings: %w", err)
	}

	if s.cache != nil {
		if data, err := json.Marshal(schedule); err == nil {
			if setErr := s.cache.Set(ctx, key, data, prayerCacheTTL).Err(); setErr != nil {
				log.Printf("[CACHE] Redis set error: %v", setErr)
			}
		}
	}

	return schedule, nil
}
