package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gal07/ramadhan-tracker/internal/core/domain"
)

// QuranAPI is the upstream Quran content provider.
type QuranAPI interface {
	ListSurah(ctx context.Context) ([]domain.SurahMeta, error)
	GetSurah(ctx context.Context, number int) (*domain.Surah, error)
}

const quranCacheTTL = 24 * time.Hour

// QuranService serves Quran text and verse audio through a read-through
// Redis cache; the content is static so a long TTL is fine. A nil cache
// client degrades to direct upstream calls.
type QuranService struct {
	api   QuranAPI
	cache *redis.Client
}

func NewQuranService(api QuranAPI, cache *redis.Client) *QuranService {
	return &QuranService{
		api:   api,
		cache: cache,
	}
}

func (s *QuranService) ListSurah(ctx context.Context) ([]domain.SurahMeta, error) {
	var list []domain.SurahMeta
	if s.cacheGet(ctx, "quran:surah", &list) {
		return list, nil
	}

	list, err := s.api.ListSurah(ctx)
	if err != nil {
		return nil, fmt.Errorf("quran service: failed to list surah: %w", err)
	}

	s.cacheSet(ctx, "quran:surah", list, quranCacheTTL)
	return list, nil
}

func (s *QuranService) GetSurah(ctx context.Context, number int) (*domain.Surah, error) {
	if number < 1 || number > 114 {
		return nil, domain.ErrSurahNotFound
	}

	key := fmt.Sprintf("quran:surah:%d", number)

	var surah domain.Surah
	if s.cacheGet(ctx, key, &surah) {
		return &surah, nil
	}

	fetched, err := s.api.GetSurah(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("quran service: failed to fetch surah %d: %w", number, err)
	}

	s.cacheSet(ctx, key, fetched, quranCacheTTL)
	return fetched, nil
}

func (s *QuranService) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}

	val, err := s.cache.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[CACHE] Redis read error: %v", err)
		}
		return false
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		log.Printf("[CACHE] Corrupted data at %s, cleaning up key", key)
		s.cache.Del(ctx, key)
		return false
	}
	return true
}

func (s *QuranService) cacheSet(ctx context.Context, key string, val interface{}, ttl time.Duration) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Printf("[CACHE] Redis set error: %v", err)
	}
}
