package domain

// CatalogEntry is one template item of the daily checklist.
type CatalogEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// DefaultCatalog is the checklist a fresh day starts from, grouped by the
// app's fixed time-of-day categories. Users may still submit logs with
// other activities; categories emerge from the data on the stats side.
var DefaultCatalog = []CatalogEntry{
	{ID: "sahur", Name: "Sahur", Category: "Bangun Tidur"},
	{ID: "niat-puasa", Name: "Niat Puasa", Category: "Bangun Tidur"},
	{ID: "sholat-subuh", Name: "Sholat Subuh", Category: "Waktu Subuh"},
	{ID: "dzikir-pagi", Name: "Dzikir Pagi", Category: "Waktu Subuh"},
	{ID: "tadarus-pagi", Name: "Tadarus Al-Quran", Category: "Pagi Hari"},
	{ID: "sholat-dhuha", Name: "Sholat Dhuha", Category: "Pagi Hari"},
	{ID: "sholat-dzuhur", Name: "Sholat Dzuhur", Category: "Waktu Dzuhur"},
	{ID: "sholat-ashar", Name: "Sholat Ashar", Category: "Waktu Ashar"},
	{ID: "dzikir-sore", Name: "Dzikir Sore", Category: "Waktu Ashar"},
	{ID: "buka-puasa", Name: "Buka Puasa", Category: "Waktu Maghrib"},
	{ID: "sholat-maghrib", Name: "Sholat Maghrib", Category: "Waktu Maghrib"},
	{ID: "sholat-isya", Name: "Sholat Isya", Category: "Waktu Isya"},
	{ID: "sholat-tarawih", Name: "Sholat Tarawih", Category: "Waktu Isya"},
	{ID: "tadarus-malam", Name: "Tadarus Malam", Category: "Waktu Tidur"},
	{ID: "tidur-awal", Name: "Tidur Awal", Category: "Waktu Tidur"},
}

// DefaultActivities materializes the catalog as a pending checklist.
func DefaultActivities() ActivityMap {
	m := make(ActivityMap, len(DefaultCatalog))
	for _, e := range DefaultCatalog {
		m[e.ID] = ActivityRecord{
			Name:     e.Name,
			Category: e.Category,
			Status:   StatusPending,
		}
	}
	return m
}
