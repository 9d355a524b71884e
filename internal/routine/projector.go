package routine

import (
	"time"

	"github.com/antoniovita/projeto-gymAI-sub000/internal/logger"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/models"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/recurrence"
)

// OccurrenceID derives the stable identity of a routine's occurrence on a
// day. The same (routine, day) always maps to the same ID, so callers can
// address a specific occurrence without persisted storage.
func OccurrenceID(routineID, day string) string {
	return routineID + "::" + day
}

// Project expands a routine over [start, end] into ephemeral occurrences.
// Days in the routine's skip set are excluded, completion state is resolved
// from the tracker, and a malformed weekday set yields no occurrences (a
// warning is logged, never an error).
func (s *Service) Project(r models.Routine, start, end time.Time) ([]models.Occurrence, error) {
	if len(r.Weekdays) > 0 && !r.Weekdays.Valid() {
		logger.Warn("routine has malformed weekday set, skipping projection", "routine", r.ID)
		return nil, nil
	}

	skips, err := s.store.ListSkips(r.ID)
	if err != nil {
		return nil, err
	}
	skipped := make(recurrence.DaySet, len(skips))
	for _, sk := range skips {
		skipped[sk.Day] = struct{}{}
	}

	completions, err := s.store.ListCompletions(r.ID)
	if err != nil {
		return nil, err
	}
	completed := make(map[string]bool, len(completions))
	for _, c := range completions {
		completed[c.Day] = true
	}

	hour, minute := r.ClockTime()

	var occurrences []models.Occurrence
	recurrence.EachDay(start, end, func(d time.Time) {
		if !recurrence.DueOn(r.Weekdays, skipped, d) {
			return
		}
		day := recurrence.DayKey(d)
		occurrences = append(occurrences, models.Occurrence{
			ID:          OccurrenceID(r.ID, day),
			Title:       r.Title,
			Content:     r.Content,
			Category:    r.Category,
			ScheduledAt: time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, d.Location()),
			Completed:   completed[day],
			Source:      models.SourceRoutine,
			RoutineID:   r.ID,
			Day:         day,
			Weekdays:    r.Weekdays,
		})
	})
	return occurrences, nil
}

// ProjectAll projects every active routine of an owner over the window.
// Routines that cannot be projected are skipped with a warning so one bad
// record cannot take down the whole view.
func (s *Service) ProjectAll(ownerID string, start, end time.Time) ([]models.Occurrence, error) {
	routines, err := s.store.ListRoutines(ownerID, false)
	if err != nil {
		return nil, err
	}

	var occurrences []models.Occurrence
	for _, r := range routines {
		occ, err := s.Project(r, start, end)
		if err != nil {
			logger.Warn("failed to project routine", "routine", r.ID, "error", err)
			continue
		}
		occurrences = append(occurrences, occ...)
	}
	return occurrences, nil
}
