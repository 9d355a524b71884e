package models

import (
	"time"

	"github.com/antoniovita/projeto-gymAI-sub000/internal/recurrence"
)

// Task is a standalone, independently addressable task row. Rows generated
// from a RecurringTask are ordinary tasks; their provenance lives only in the
// generation log.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content,omitempty"`
	Category    string     `json:"category,omitempty"`
	OwnerID     string     `json:"owner_id"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	Done        bool       `json:"done"`
	CreatedAt   time.Time  `json:"created_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// RecurringTask is a repeating task definition that materializes into real
// task rows over a rolling window instead of projecting virtually.
type RecurringTask struct {
	ID        string                `json:"id"`
	Title     string                `json:"title"`
	Content   string                `json:"content,omitempty"`
	Category  string                `json:"category,omitempty"`
	OwnerID   string                `json:"owner_id"`
	TimeOfDay string                `json:"time_of_day"` // HH:MM format
	Weekdays  recurrence.WeekdaySet `json:"weekdays"`
	CreatedAt time.Time             `json:"created_at"`
}

// GenerationRecord is the durable idempotency ledger entry tying a
// (recurring task, day) pair to the task row generated for it. Its presence
// means the row exists and must not be generated again.
type GenerationRecord struct {
	ID              string    `json:"id"`
	RecurringTaskID string    `json:"recurring_task_id"`
	Day             string    `json:"day"` // YYYY-MM-DD format
	TaskID          string    `json:"task_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// RewardEntry is a single grant or revoke against an owner's reward balance.
// Revokes are stored as negative amounts.
type RewardEntry struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Amount    int       `json:"amount"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
