package storage

import (
	"errors"
	"time"

	"github.com/antoniovita/projeto-gymAI-sub000/internal/models"
)

// ErrNotFound is returned when a requested routine, task, recurring task or
// record does not exist. Implementations must return it (possibly wrapped)
// instead of driver-specific sentinels.
var ErrNotFound = errors.New("not found")

// Store is the persistence collaborator for the occurrence engine. All
// mutating methods are expected to be called serially per entity; the engine
// does not lock.
type Store interface {
	// Lifecycle
	Init() error
	Close() error

	// Routines
	AddRoutine(models.Routine) error
	GetRoutine(id string) (models.Routine, error)
	ListRoutines(ownerID string, includeInactive bool) ([]models.Routine, error)
	UpdateRoutine(models.Routine) error
	DeleteRoutine(id string) error

	// Completions (one row per routine+day, unique at the schema level)
	AddCompletion(models.Completion) error
	GetCompletion(routineID, day string) (models.Completion, error)
	ListCompletions(routineID string) ([]models.Completion, error)
	DeleteCompletion(routineID, day string) error

	// Skips (per-day cancellation exceptions)
	AddSkip(models.Skip) error
	DeleteSkip(routineID, day string) error
	ListSkips(routineID string) ([]models.Skip, error)

	// Recurring tasks
	AddRecurringTask(models.RecurringTask) error
	GetRecurringTask(id string) (models.RecurringTask, error)
	ListRecurringTasks(ownerID string) ([]models.RecurringTask, error)
	UpdateRecurringTask(models.RecurringTask) error
	DeleteRecurringTask(id string) error

	// Standalone tasks
	AddTask(models.Task) error
	GetTask(id string) (models.Task, error)
	ListTasks(ownerID string, start, end time.Time) ([]models.Task, error)
	UpdateTask(models.Task) error
	DeleteTask(id string) error

	// Generation log
	AddGenerationRecord(models.GenerationRecord) error
	GetGenerationRecord(recurringTaskID, day string) (models.GenerationRecord, error)
	ListGenerationRecords(recurringTaskID string) ([]models.GenerationRecord, error)
	DeleteGenerationRecords(recurringTaskID string) error

	// Reward ledger
	AddRewardEntry(models.RewardEntry) error
	RewardBalance(ownerID string) (int, error)

	// Utils
	GetConfigPath() string
}
