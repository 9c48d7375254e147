package analytics

import "fmt"

// ValidationError reports the exact record that made the input unusable.
// One malformed record fails the whole report; silently skipping records
// would corrupt streak and completion-rate semantics.
type ValidationError struct {
	Date       string
	ActivityID string
	Reason     string
}

func (e *ValidationError) Error() string {
	if e.ActivityID == "" {
		return fmt.Sprintf("invalid daily log %q: %s", e.Date, e.Reason)
	}
	return fmt.Sprintf("invalid daily log %q, activity %q: %s", e.Date, e.ActivityID, e.Reason)
}
