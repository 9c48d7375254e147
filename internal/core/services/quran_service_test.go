package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gal07/ramadhan-tracker/internal/core/domain"
	"github.com/gal07/ramadhan-tracker/internal/core/services"
)

type FakeQuranAPI struct {
	listCalls int
	getCalls  int
	err       error
}

func (f *FakeQuranAPI) ListSurah(ctx context.Context) ([]domain.SurahMeta, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	return []domain.SurahMeta{{Number: 1, Name: "Al-Fatihah", TotalVerses: 7}}, nil
}

func (f *FakeQuranAPI) GetSurah(ctx context.Context, number int) (*domain.Surah, error) {
	f.getCalls++
	if f.err != nil {
		return nil, f.err
	}
	if number != 1 {
		return nil, domain.ErrSurahNotFound
	}
	return &domain.Surah{
		SurahMeta: domain.SurahMeta{Number: 1, Name: "Al-Fatihah", TotalVerses: 7},
		Verses:    []domain.Verse{{Number: 1, Arabic: "...", Translation: "..."}},
	}, nil
}

func TestQuranService(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Lists surah without a cache", func(t *testing.T) {
		api := &FakeQuranAPI{}
		svc := services.NewQuranService(api, nil)

		list, err := svc.ListSurah(ctx)

		assert.NoError(t, err)
		assert.Len(t, list, 1)
		assert.Equal(t, "Al-Fatihah", list[0].Name)
	})

	t.Run("Success: Fetches one surah with verses", func(t *testing.T) {
		svc := services.NewQuranService(&FakeQuranAPI{}, nil)

		surah, err := svc.GetSurah(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, 1, surah.Number)
		assert.Len(t, surah.Verses, 1)
	})

	t.Run("Fail: Surah number out of range never hits upstream", func(t *testing.T) {
		api := &FakeQuranAPI{}
		svc := services.NewQuranService(api, nil)

		_, err := svc.GetSurah(ctx, 0)
		assert.ErrorIs(t, err, domain.ErrSurahNotFound)

		_, err = svc.GetSurah(ctx, 115)
		assert.ErrorIs(t, err, domain.ErrSurahNotFound)

		assert.Equal(t, 0, api.getCalls)
	})

	t.Run("Fail: Upstream error propagates", func(t *testing.T) {
		svc := services.NewQuranService(&FakeQuranAPI{err: domain.ErrContentGateway}, nil)

		_, err := svc.ListSurah(ctx)
		assert.ErrorIs(t, err, domain.ErrContentGateway)
	})
}

type fakePrayerFunc func(city string) (*domain.PrayerSchedule, error)

func (f fakePrayerFunc) TimingsByCity(ctx context.Context, city string, date time.Time) (*domain.PrayerSchedule, error) {
	return f(city)
}

func TestPrayerService(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Returns today's schedule", func(t *testing.T) {
		svc := services.NewPrayerService(fakePrayerFunc(func(city string) (*domain.PrayerSchedule, error) {
			return &domain.PrayerSchedule{City: city, Fajr: "04:45", Maghrib: "18:02"}, nil
		}), nil)

		schedule, err := svc.TodayByCity(ctx, "Jakarta")

		assert.NoError(t, err)
		assert.Equal(t, "Jakarta", schedule.City)
		assert.Equal(t, "04:45", schedule.Fajr)
	})

	t.Run("Fail: Blank city rejected", func(t *testing.T) {
		svc := services.NewPrayerService(fakePrayerFunc(nil), nil)

		_, err := svc.TodayByCity(ctx, "   ")
		assert.ErrorIs(t, err, domain.ErrCityRequired)
	})

	t.Run("Fail: Upstream error propagates", func(t *testing.T) {
		svc := services.NewPrayerService(fakePrayerFunc(func(city string) (*domain.PrayerSchedule, error) {
			return nil, domain.ErrContentGateway
		}), nil)

		_, err := svc.TodayByCity(ctx, "Jakarta")
		assert.ErrorIs(t, err, domain.ErrContentGateway)
	})
}
