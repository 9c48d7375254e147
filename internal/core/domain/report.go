package domain

// Derived statistics types. These are value objects produced by one report
// computation and are never persisted.

type CategoryStat struct {
	Name      string `json:"name"`
	Completed int    `json:"completed"`
	Pending   int    `json:"pending"`
	Rate      int    `json:"rate"`
}

type CategoryRate struct {
	Name string `json:"name"`
	Rate int    `json:"rate"`
}

type ActivityFrequency struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type WeekdayStat struct {
	Weekday   int    `json:"weekday"` // 0=Sunday .. 6=Saturday
	Name      string `json:"name"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Rate      int    `json:"rate"`
}

// AnalyticsReport is the full statistics screen payload for one user.
type AnalyticsReport struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`

	Categories      []CategoryStat `json:"categories"`
	BestCategory    *CategoryRate  `json:"best_category"`
	WeakestCategory *CategoryRate  `json:"weakest_category"`

	TopActivities []ActivityFrequency `json:"top_activities"`

	CurrentStreak int          `json:"current_streak"`
	PerfectDays   int          `json:"perfect_days"`
	BestWeekday   *WeekdayStat `json:"best_weekday"`

	RecentRate int `json:"recent_rate"`
	Momentum   int `json:"momentum"`
}

// WeekdayNames matches the UI labels, indexed by time.Weekday.
var WeekdayNames = [7]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}
