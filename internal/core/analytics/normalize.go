package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gal07/ramadhan-tracker/internal/core/domain"
)

// normalize validates the raw logs and returns a copy sorted by date
// descending, the order every later stage relies on. The input slice is
// never mutated.
func normalize(logs []domain.DailyLog) ([]domain.DailyLog, error) {
	out := make([]domain.DailyLog, len(logs))
	copy(out, logs)

	for _, l := range out {
		if l.Date.IsZero() {
			return nil, &ValidationError{Date: "", Reason: "missing date"}
		}
		for _, id := range sortedActivityIDs(l.Activities) {
			rec := l.Activities[id]
			if strings.TrimSpace(rec.Name) == "" {
				return nil, &ValidationError{
					Date:       l.DateKey(),
					ActivityID: id,
					Reason:     "missing name",
				}
			}
			if strings.TrimSpace(rec.Category) == "" {
				return nil, &ValidationError{
					Date:       l.DateKey(),
					ActivityID: id,
					Reason:     "missing category",
				}
			}
			switch rec.Status {
			case domain.StatusCompleted, domain.StatusPending:
			default:
				return nil, &ValidationError{
					Date:       l.DateKey(),
					ActivityID: id,
					Reason:     fmt.Sprintf("unknown status %q", rec.Status),
				}
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

// sortedActivityIDs fixes the iteration order over an activity map so
// first-encountered tie-breaks are deterministic: logs are walked date
// descending and activity ids lexically within a log.
func sortedActivityIDs(m domain.ActivityMap) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
