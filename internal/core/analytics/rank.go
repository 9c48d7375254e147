package analytics

import (
	"sort"

	"github.com/gal07/ramadhan-tracker/internal/core/domain"
)

const topActivityLimit = 5

// topActivities counts, per activity name, the logs in which it was
// completed. Pending occurrences do not count. Returns at most five
// entries, frequency descending, ties in first-encountered order.
func topActivities(logs []domain.DailyLog) []domain.ActivityFrequency {
	var order []string
	counts := make(map[string]*domain.ActivityFrequency)

	for _, l := range logs {
		for _, id := range sortedActivityIDs(l.Activities) {
			rec := l.Activities[id]
			if rec.Status != domain.StatusCompleted {
				continue
			}

			freq, ok := counts[rec.Name]
			if !ok {
				freq = &domain.ActivityFrequency{Name: rec.Name, Category: rec.Category}
				counts[rec.Name] = freq
				order = append(order, rec.Name)
			}
			freq.Count++
		}
	}

	ranked := make([]domain.ActivityFrequency, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, *counts[name])
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > topActivityLimit {
		ranked = ranked[:topActivityLimit]
	}
	return ranked
}
