package models

import (
	"time"

	"github.com/antoniovita/projeto-gymAI-sub000/internal/constants"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/recurrence"
)

// Routine is a repeating task definition whose occurrences are projected
// virtually; nothing is persisted per occurrence except completions and skips.
type Routine struct {
	ID        string                `json:"id"`
	Title     string                `json:"title"`
	Content   string                `json:"content,omitempty"`
	Category  string                `json:"category,omitempty"`
	OwnerID   string                `json:"owner_id"`
	Weekdays  recurrence.WeekdaySet `json:"weekdays"`
	Active    bool                  `json:"active"`
	CreatedAt time.Time             `json:"created_at"`
	DeletedAt *time.Time            `json:"deleted_at,omitempty"`
}

// ClockTime returns the hour and minute occurrences of this routine are
// scheduled at: the creation clock time, or the engine default when unset.
func (r Routine) ClockTime() (hour, minute int) {
	if r.CreatedAt.IsZero() {
		t, _ := time.Parse(constants.TimeFormat, constants.DefaultOccurrenceTime)
		return t.Hour(), t.Minute()
	}
	return r.CreatedAt.Hour(), r.CreatedAt.Minute()
}

// Completion records that a routine was done on a single day and how much
// reward was granted for it. Immutable once written; undo removes the row.
type Completion struct {
	ID        string    `json:"id"`
	RoutineID string    `json:"routine_id"`
	Day       string    `json:"day"` // YYYY-MM-DD format
	Reward    int       `json:"reward"`
	CreatedAt time.Time `json:"created_at"`
}

// Skip marks a single day on which a routine is suppressed, independent of
// the routine being active.
type Skip struct {
	ID        string    `json:"id"`
	RoutineID string    `json:"routine_id"`
	Day       string    `json:"day"` // YYYY-MM-DD format
	CreatedAt time.Time `json:"created_at"`
}
