package analytics

import (
	"math"

	"github.com/gal07/ramadhan-tracker/internal/core/domain"
)

// rate is the rounded percentage used everywhere in the report.
// Half-up rounding, zero total defined as 0.
func rate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

type categoryTotals struct {
	order []string
	stats map[string]*domain.CategoryStat

	completed int
	pending   int
}

func aggregateCategories(logs []domain.DailyLog) *categoryTotals {
	agg := &categoryTotals{stats: make(map[string]*domain.CategoryStat)}

	for _, l := range logs {
		for _, id := range sortedActivityIDs(l.Activities) {
			rec := l.Activities[id]

			stat, ok := agg.stats[rec.Category]
			if !ok {
				stat = &domain.CategoryStat{Name: rec.Category}
				agg.stats[rec.Category] = stat
				agg.order = append(agg.order, rec.Category)
			}

			if rec.Status == domain.StatusCompleted {
				stat.Completed++
				agg.completed++
			} else {
				stat.Pending++
				agg.pending++
			}
		}
	}

	for _, name := range agg.order {
		stat := agg.stats[name]
		stat.Rate = rate(stat.Completed, stat.Completed+stat.Pending)
	}
	return agg
}

func (a *categoryTotals) list() []domain.CategoryStat {
	out := make([]domain.CategoryStat, 0, len(a.order))
	for _, name := range a.order {
		out = append(out, *a.stats[name])
	}
	return out
}

// bestAndWeakest picks the highest and lowest completion-rate categories.
// Ties keep the first-encountered category.
func (a *categoryTotals) bestAndWeakest() (best, weakest *domain.CategoryRate) {
	for _, name := range a.order {
		stat := a.stats[name]
		if best == nil || stat.Rate > best.Rate {
			best = &domain.CategoryRate{Name: stat.Name, Rate: stat.Rate}
		}
		if weakest == nil || stat.Rate < weakest.Rate {
			weakest = &domain.CategoryRate{Name: stat.Name, Rate: stat.Rate}
		}
	}
	return best, weakest
}
