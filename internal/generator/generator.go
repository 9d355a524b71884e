package generator

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/antoniovita/projeto-gymAI-sub000/internal/constants"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/logger"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/models"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/recurrence"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/storage"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/validation"
)

// Config controls the rolling generation window. The horizon is a parameter
// rather than a constant so backfill runs can request a longer catch-up
// window.
type Config struct {
	HorizonDays int
}

// Generator materializes recurring task definitions into real task rows.
// Every (recurring task, day) pair produces at most one row, guarded by the
// durable generation log; repeated runs over the same window are no-ops.
// Mutations on the same recurring task must be serialized by the caller.
type Generator struct {
	store storage.Store
	cfg   Config
	now   func() time.Time
}

func New(store storage.Store, cfg Config) *Generator {
	if cfg.HorizonDays <= 0 {
		cfg.HorizonDays = constants.DefaultHorizonDays
	}
	return &Generator{store: store, cfg: cfg, now: time.Now}
}

// Window returns the default rolling window starting at from: from and the
// following HorizonDays-1 days.
func (g *Generator) Window(from time.Time) (time.Time, time.Time) {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	return start, start.AddDate(0, 0, g.cfg.HorizonDays-1)
}

// Create validates and persists a new recurring task definition. It does not
// generate rows; call Generate with the desired window afterwards.
func (g *Generator) Create(rt models.RecurringTask) (models.RecurringTask, error) {
	if rt.ID == "" {
		rt.ID = uuid.New().String()
	}
	if rt.CreatedAt.IsZero() {
		rt.CreatedAt = g.now()
	}
	rt.Weekdays = rt.Weekdays.Normalize()

	if err := validation.ValidateRecurringTask(rt); err != nil {
		return models.RecurringTask{}, err
	}
	if err := g.store.AddRecurringTask(rt); err != nil {
		return models.RecurringTask{}, err
	}
	return rt, nil
}

// Generate materializes task rows for every due day in [start, end] that has
// no generation record yet, and returns the number of rows created. Days
// already present in the log are skipped.
func (g *Generator) Generate(rt models.RecurringTask, start, end time.Time) (int, error) {
	if err := validation.ValidateRecurringTask(rt); err != nil {
		return 0, err
	}

	hour, minute := clockTime(rt.TimeOfDay)

	created := 0
	var genErr error
	recurrence.EachDay(start, end, func(d time.Time) {
		if genErr != nil {
			return
		}
		if !recurrence.DueOn(rt.Weekdays, nil, d) {
			return
		}
		day := recurrence.DayKey(d)

		if _, err := g.store.GetGenerationRecord(rt.ID, day); err == nil {
			return // already materialized
		} else if !errors.Is(err, storage.ErrNotFound) {
			genErr = fmt.Errorf("failed to check generation log: %w", err)
			return
		}

		task := models.Task{
			ID:          uuid.New().String(),
			Title:       rt.Title,
			Content:     rt.Content,
			Category:    rt.Category,
			OwnerID:     rt.OwnerID,
			ScheduledAt: time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, d.Location()),
			CreatedAt:   g.now(),
		}
		if err := g.store.AddTask(task); err != nil {
			genErr = fmt.Errorf("failed to create task for %s: %w", day, err)
			return
		}

		record := models.GenerationRecord{
			ID:              uuid.New().String(),
			RecurringTaskID: rt.ID,
			Day:             day,
			TaskID:          task.ID,
			CreatedAt:       g.now(),
		}
		if err := g.store.AddGenerationRecord(record); err != nil {
			// Without a log entry the row would be duplicated on the next
			// run, so take it back out.
			if delErr := g.store.DeleteTask(task.ID); delErr != nil {
				logger.Warn("failed to remove task after log write failure", "task", task.ID, "error", delErr)
			}
			genErr = fmt.Errorf("failed to record generation for %s: %w", day, err)
			return
		}
		created++
	})

	return created, genErr
}

// RetractAll deletes every task row referenced by the recurring task's
// generation records and clears the log. Individual deletion failures are
// logged and do not abort the rest: an orphaned row is less harmful than an
// undeletable definition.
func (g *Generator) RetractAll(rt models.RecurringTask) error {
	records, err := g.store.ListGenerationRecords(rt.ID)
	if err != nil {
		return fmt.Errorf("failed to list generation records: %w", err)
	}

	failed := 0
	for _, rec := range records {
		if err := g.store.DeleteTask(rec.TaskID); err != nil && !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("failed to delete generated task", "task", rec.TaskID, "day", rec.Day, "error", err)
			failed++
		}
	}
	if failed > 0 {
		logger.Warn("retraction left orphaned tasks", "recurring_task", rt.ID, "count", failed)
	}

	return g.store.DeleteGenerationRecords(rt.ID)
}

// Update replaces a recurring task definition by fully regenerating its
// window: retract everything the old rule produced, save the new rule, then
// materialize it over [start, end]. Definitions are never partially migrated.
func (g *Generator) Update(rt models.RecurringTask, start, end time.Time) (int, error) {
	if err := validation.ValidateRecurringTask(rt); err != nil {
		return 0, err
	}

	old, err := g.store.GetRecurringTask(rt.ID)
	if err != nil {
		return 0, err
	}
	if err := g.RetractAll(old); err != nil {
		return 0, err
	}

	rt.Weekdays = rt.Weekdays.Normalize()
	if err := g.store.UpdateRecurringTask(rt); err != nil {
		return 0, err
	}
	return g.Generate(rt, start, end)
}

// Delete retracts all generated rows and removes the definition itself.
func (g *Generator) Delete(id string) error {
	rt, err := g.store.GetRecurringTask(id)
	if err != nil {
		return err
	}
	if err := g.RetractAll(rt); err != nil {
		return err
	}
	return g.store.DeleteRecurringTask(id)
}

func clockTime(timeOfDay string) (hour, minute int) {
	if timeOfDay == "" {
		timeOfDay = constants.DefaultOccurrenceTime
	}
	t, err := time.Parse(constants.TimeFormat, timeOfDay)
	if err != nil {
		t, _ = time.Parse(constants.TimeFormat, constants.DefaultOccurrenceTime)
	}
	return t.Hour(), t.Minute()
}
