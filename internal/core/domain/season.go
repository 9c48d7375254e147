package domain

import (
	"errors"
	"time"
)

var ErrInvalidSeason = errors.New("invalid season window")

// Season is the fixed calendar window logs may be written against,
// e.g. one Ramadhan month. Reads are not restricted to it.
type Season struct {
	Start time.Time
	Days  int
}

func NewSeason(start time.Time, days int) (Season, error) {
	if start.IsZero() || days <= 0 {
		return Season{}, ErrInvalidSeason
	}
	return Season{Start: Midnight(start), Days: days}, nil
}

func (s Season) End() time.Time {
	return s.Start.AddDate(0, 0, s.Days-1)
}

func (s Season) Contains(date time.Time) bool {
	d := Midnight(date)
	return !d.Before(s.Start) && !d.After(s.End())
}
