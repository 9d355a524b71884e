package models

import (
	"time"

	"github.com/antoniovita/projeto-gymAI-sub000/internal/recurrence"
)

// OccurrenceSource identifies which path produced a timeline item.
type OccurrenceSource string

const (
	SourceTask    OccurrenceSource = "task"
	SourceRoutine OccurrenceSource = "routine"
)

// Occurrence is an ephemeral, display-oriented item: either a standalone task
// row or a single projected day of a routine. Routine occurrences are never
// persisted; their ID is derived from (routine, day) so repeated projections
// address the same occurrence.
type Occurrence struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Content     string                `json:"content,omitempty"`
	Category    string                `json:"category,omitempty"`
	ScheduledAt time.Time             `json:"scheduled_at"`
	Completed   bool                  `json:"completed"`
	Source      OccurrenceSource      `json:"source"`
	RoutineID   string                `json:"routine_id,omitempty"`
	Day         string                `json:"day,omitempty"` // YYYY-MM-DD format
	Weekdays    recurrence.WeekdaySet `json:"weekdays,omitempty"`
}
