package domain

import "errors"

var (
	ErrSurahNotFound  = errors.New("surah not found")
	ErrCityRequired   = errors.New("city is required")
	ErrContentGateway = errors.New("content provider unavailable")
)

// Quran and prayer-schedule content comes from public APIs; these are
// the shapes the app serves, not the providers' wire formats.

type SurahMeta struct {
	Number          int    `json:"number"`
	Name            string `json:"name"`
	Transliteration string `json:"transliteration"`
	Translation     string `json:"translation"`
	Revelation      string `json:"revelation"`
	TotalVerses     int    `json:"total_verses"`
}

type Verse struct {
	Number          int    `json:"number"`
	Arabic          string `json:"arabic"`
	Transliteration string `json:"transliteration"`
	Translation     string `json:"translation"`
	AudioURL        string `json:"audio_url,omitempty"`
}

type Surah struct {
	SurahMeta
	Verses []Verse `json:"verses"`
}

// PrayerSchedule is one city's prayer times for one date.
type PrayerSchedule struct {
	City    string `json:"city"`
	Date    string `json:"date"`
	Fajr    string `json:"fajr"`
	Dhuhr   string `json:"dhuhr"`
	Asr     string `json:"asr"`
	Maghrib string `json:"maghrib"`
	Isha    string `json:"isha"`
}
