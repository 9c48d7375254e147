package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrLogNotFound      = errors.New("daily log not found")
	ErrInvalidLogDate   = errors.New("invalid log date")
	ErrDateOutOfSeason  = errors.New("date is outside the tracking season")
	ErrInvalidStatus    = errors.New("invalid activity status")
	ErrActivityNameReq  = errors.New("activity name is required")
	ErrCategoryRequired = errors.New("activity category is required")
)

const (
	StatusCompleted = "completed"
	StatusPending   = "pending"

	DateLayout = "2006-01-02"
)

// ActivityRecord is one checklist item's state inside a DailyLog.
type ActivityRecord struct {
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Status   string     `json:"status"`
	Time     *time.Time `json:"time,omitempty"`
}

func (a ActivityRecord) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrActivityNameReq
	}
	if strings.TrimSpace(a.Category) == "" {
		return ErrCategoryRequired
	}
	switch a.Status {
	case StatusCompleted, StatusPending:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, a.Status)
	}
}

// ActivityMap is stored as a single JSONB column, one document per day.
// The checklist shape varies per user so a fixed schema would not fit.
type ActivityMap map[string]ActivityRecord

func (m ActivityMap) Value() (driver.Value, error) {
	if m == nil {
		m = ActivityMap{}
	}
	return json.Marshal(m)
}

func (m *ActivityMap) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	case nil:
		*m = ActivityMap{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into ActivityMap", src)
	}
}

// DailyLog is one user's checklist for one calendar date. The pair
// (user_email, date) is the natural key; writes are upserts.
type DailyLog struct {
	UserEmail  string      `json:"user_email" db:"user_email"`
	Date       time.Time   `json:"date" db:"log_date"`
	Activities ActivityMap `json:"activities" db:"activities"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at" db:"updated_at"`
}

func NewDailyLog(userEmail string, date time.Time, activities ActivityMap) (*DailyLog, error) {
	if date.IsZero() {
		return nil, ErrInvalidLogDate
	}
	if activities == nil {
		activities = ActivityMap{}
	}

	log := &DailyLog{
		UserEmail:  strings.ToLower(strings.TrimSpace(userEmail)),
		Date:       Midnight(date),
		Activities: activities,
	}

	now := time.Now().UTC()
	log.CreatedAt = now
	log.UpdatedAt = now

	if err := log.Validate(); err != nil {
		return nil, err
	}
	return log, nil
}

func (l *DailyLog) Validate() error {
	if l.Date.IsZero() {
		return ErrInvalidLogDate
	}
	for id, rec := range l.Activities {
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("activity %q on %s: %w", id, l.DateKey(), err)
		}
	}
	return nil
}

func (l *DailyLog) DateKey() string {
	return l.Date.Format(DateLayout)
}

// HasCompleted reports whether at least one activity is completed.
func (l *DailyLog) HasCompleted() bool {
	for _, rec := range l.Activities {
		if rec.Status == StatusCompleted {
			return true
		}
	}
	return false
}

// IsPerfect reports whether the day has activities and all are completed.
// An empty checklist never counts as a perfect day.
func (l *DailyLog) IsPerfect() bool {
	if len(l.Activities) == 0 {
		return false
	}
	for _, rec := range l.Activities {
		if rec.Status != StatusCompleted {
			return false
		}
	}
	return true
}

// Midnight truncates a timestamp to its UTC calendar date.
func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date key.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidLogDate, s)
	}
	return t, nil
}
