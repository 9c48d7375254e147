// Package analytics turns a user's raw daily logs into the statistics
// screen report: category completion, top activities, streaks, perfect
// days, weekday productivity and momentum. It is a pure computation:
// callers fetch the full log set and feed it in. The package does no
// I/O, holds no state between calls and is safe to invoke concurrently.
package analytics

import (
	"github.com/gal07/ramadhan-tracker/internal/core/domain"
)

// BuildReport computes the full analytics report. The input order is
// irrelevant; logs are validated and sorted internally. A malformed
// record (unknown status, missing date) fails the whole computation
// with a *ValidationError. An empty input yields a zero-valued report.
func BuildReport(logs []domain.DailyLog) (*domain.AnalyticsReport, error) {
	sorted, err := normalize(logs)
	if err != nil {
		return nil, err
	}

	categories := aggregateCategories(sorted)
	best, weakest := categories.bestAndWeakest()
	recentRate, delta := momentum(sorted)

	return &domain.AnalyticsReport{
		Total:     categories.completed + categories.pending,
		Completed: categories.completed,
		Pending:   categories.pending,

		Categories:      categories.list(),
		BestCategory:    best,
		WeakestCategory: weakest,

		TopActivities: topActivities(sorted),

		CurrentStreak: currentStreak(sorted),
		PerfectDays:   perfectDays(sorted),
		BestWeekday:   bestWeekday(sorted),

		RecentRate: recentRate,
		Momentum:   delta,
	}, nil
}
