package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gal07/ramadhan-tracker/internal/core/domain"
)

// InMemoryDailyLogRepository backs tests and local runs without Postgres.
type InMemoryDailyLogRepository struct {
	store map[string]map[string]*domain.DailyLog // userEmail -> dateKey -> log

	mu sync.RWMutex
}

func NewInMemoryDailyLogRepository() *InMemoryDailyLogRepository {
	return &InMemoryDailyLogRepository{
		store: make(map[string]map[string]*domain.DailyLog),
	}
}

func (r *InMemoryDailyLogRepository) Upsert(ctx context.Context, log *domain.DailyLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byDate, ok := r.store[log.UserEmail]
	if !ok {
		byDate = make(map[string]*domain.DailyLog)
		r.store[log.UserEmail] = byDate
	}
	byDate[log.DateKey()] = log
	return nil
}

func (r *InMemoryDailyLogRepository) GetByDate(ctx context.Context, userEmail string, date time.Time) (*domain.DailyLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	log, ok := r.store[userEmail][date.Format(domain.DateLayout)]
	if !ok {
		return nil, domain.ErrLogNotFound
	}
	return log, nil
}

func (r *InMemoryDailyLogRepository) ListByUser(ctx context.Context, userEmail string) ([]domain.DailyLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	logs := []domain.DailyLog{}
	for _, log := range r.store[userEmail] {
		logs = append(logs, *log)
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Date.After(logs[j].Date)
	})
	return logs, nil
}

func (r *InMemoryDailyLogRepository) Delete(ctx context.Context, userEmail string, date time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := date.Format(domain.DateLayout)
	if _, ok := r.store[userEmail][key]; !ok {
		return domain.ErrLogNotFound
	}
	delete(r.store[userEmail], key)
	return nil
}
