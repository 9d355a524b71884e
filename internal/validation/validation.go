package validation

import (
	"fmt"
	"time"

	"github.com/antoniovita/projeto-gymAI-sub000/internal/constants"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/models"
)

// FieldError is a validation failure tied to a specific field, so callers can
// surface field-level messages instead of a generic failure.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errorf builds a FieldError for the given field.
func Errorf(field, format string, args ...interface{}) *FieldError {
	return &FieldError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ValidateRoutine checks a routine definition at the creation/update boundary.
func ValidateRoutine(r models.Routine) error {
	if r.Title == "" {
		return Errorf("title", "title is required")
	}
	if r.OwnerID == "" {
		return Errorf("owner_id", "owner is required")
	}
	if len(r.Weekdays) == 0 {
		return Errorf("weekdays", "at least one weekday is required")
	}
	if !r.Weekdays.Valid() {
		return Errorf("weekdays", "weekdays must be between sunday (0) and saturday (6)")
	}
	return nil
}

// ValidateRecurringTask checks a recurring task definition at the
// creation/update boundary.
func ValidateRecurringTask(rt models.RecurringTask) error {
	if rt.Title == "" {
		return Errorf("title", "title is required")
	}
	if rt.OwnerID == "" {
		return Errorf("owner_id", "owner is required")
	}
	if len(rt.Weekdays) == 0 {
		return Errorf("weekdays", "at least one weekday is required")
	}
	if !rt.Weekdays.Valid() {
		return Errorf("weekdays", "weekdays must be between sunday (0) and saturday (6)")
	}
	if rt.TimeOfDay != "" {
		if _, err := time.Parse(constants.TimeFormat, rt.TimeOfDay); err != nil {
			return Errorf("time_of_day", "must be HH:MM, got %q", rt.TimeOfDay)
		}
	}
	return nil
}

// ValidateReward checks a reward amount before it is recorded.
func ValidateReward(amount int) error {
	if amount < 0 {
		return Errorf("reward", "must be zero or positive, got %d", amount)
	}
	return nil
}

// ValidateDay checks a YYYY-MM-DD day key.
func ValidateDay(day string) error {
	if _, err := time.Parse(constants.DateFormat, day); err != nil {
		return Errorf("day", "must be YYYY-MM-DD, got %q", day)
	}
	return nil
}
