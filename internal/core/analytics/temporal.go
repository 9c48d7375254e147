package analytics

import (
	"github.com/gal07/ramadhan-tracker/internal/core/domain"
)

const momentumWindow = 7

// currentStreak walks the date-descending logs from the most recent one.
// A log counts when it has at least one completed activity; the streak
// stops at the first non-counting log or at a gap of more than one
// calendar day between consecutive counted logs.
func currentStreak(sorted []domain.DailyLog) int {
	streak := 0
	for i := range sorted {
		if !sorted[i].HasCompleted() {
			break
		}
		streak++
		if i+1 < len(sorted) {
			gap := sorted[i].Date.Sub(sorted[i+1].Date).Hours() / 24
			if gap > 1 {
				break
			}
		}
	}
	return streak
}

func perfectDays(logs []domain.DailyLog) int {
	count := 0
	for i := range logs {
		if logs[i].IsPerfect() {
			count++
		}
	}
	return count
}

// bestWeekday buckets every activity instance by its log's weekday and
// returns the highest-rate weekday among those with at least one
// instance. Weekdays without instances are excluded, not treated as 0.
func bestWeekday(logs []domain.DailyLog) *domain.WeekdayStat {
	var buckets [7]domain.WeekdayStat

	for _, l := range logs {
		idx := int(l.Date.Weekday())
		for _, rec := range l.Activities {
			buckets[idx].Total++
			if rec.Status == domain.StatusCompleted {
				buckets[idx].Completed++
			}
		}
	}

	var best *domain.WeekdayStat
	for idx := range buckets {
		b := buckets[idx]
		if b.Total == 0 {
			continue
		}
		stat := domain.WeekdayStat{
			Weekday:   idx,
			Name:      domain.WeekdayNames[idx],
			Completed: b.Completed,
			Total:     b.Total,
			Rate:      rate(b.Completed, b.Total),
		}
		if best == nil || stat.Rate > best.Rate {
			tmp := stat
			best = &tmp
		}
	}
	return best
}

// momentum compares the completion rate of the most recent seven logs
// against the seven before them. Windows are positional in the sorted
// list, so logging gaps compress them. An empty previous window means
// the previous rate is 0.
func momentum(sorted []domain.DailyLog) (recentRate, delta int) {
	recent := window(sorted, 0, momentumWindow)
	previous := window(sorted, momentumWindow, 2*momentumWindow)

	recentRate = windowRate(recent)
	return recentRate, recentRate - windowRate(previous)
}

func window(logs []domain.DailyLog, from, to int) []domain.DailyLog {
	if from > len(logs) {
		from = len(logs)
	}
	if to > len(logs) {
		to = len(logs)
	}
	return logs[from:to]
}

func windowRate(logs []domain.DailyLog) int {
	completed, total := 0, 0
	for _, l := range logs {
		for _, rec := range l.Activities {
			total++
			if rec.Status == domain.StatusCompleted {
				completed++
			}
		}
	}
	return rate(completed, total)
}
