package timeline

import (
	"sort"
	"time"

	"github.com/antoniovita/projeto-gymAI-sub000/internal/models"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/recurrence"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/routine"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/storage"
)

// Merger combines standalone task rows (generated rows included, they are
// ordinary tasks) with the virtual occurrences of active routines into one
// chronological view. Routines project and recurring tasks materialize, so
// no item can enter through both paths.
type Merger struct {
	store    storage.Store
	routines *routine.Service
}

func New(store storage.Store, routines *routine.Service) *Merger {
	return &Merger{store: store, routines: routines}
}

// Timeline returns every occurrence for the owner between the start and end
// days inclusive, sorted by scheduled time with ID as the tiebreak so the
// output is stable across calls.
func (m *Merger) Timeline(ownerID string, start, end time.Time) ([]models.Occurrence, error) {
	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	dayEnd := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location()).
		AddDate(0, 0, 1).Add(-time.Nanosecond)

	tasks, err := m.store.ListTasks(ownerID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	items := make([]models.Occurrence, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, models.Occurrence{
			ID:          t.ID,
			Title:       t.Title,
			Content:     t.Content,
			Category:    t.Category,
			ScheduledAt: t.ScheduledAt,
			Completed:   t.Done,
			Source:      models.SourceTask,
		})
	}

	projected, err := m.routines.ProjectAll(ownerID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	// The projector already honors skips; re-check here so callers that
	// build occurrences some other way cannot leak cancelled days through.
	skipped, err := m.skipSets(ownerID)
	if err != nil {
		return nil, err
	}
	for _, occ := range projected {
		if skipped[occ.RoutineID].Contains(occ.Day) {
			continue
		}
		items = append(items, occ)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].ScheduledAt.Equal(items[j].ScheduledAt) {
			return items[i].ScheduledAt.Before(items[j].ScheduledAt)
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (m *Merger) skipSets(ownerID string) (map[string]recurrence.DaySet, error) {
	routines, err := m.store.ListRoutines(ownerID, false)
	if err != nil {
		return nil, err
	}

	sets := make(map[string]recurrence.DaySet, len(routines))
	for _, r := range routines {
		skips, err := m.store.ListSkips(r.ID)
		if err != nil {
			return nil, err
		}
		set := make(recurrence.DaySet, len(skips))
		for _, sk := range skips {
			set[sk.Day] = struct{}{}
		}
		sets[r.ID] = set
	}
	return sets, nil
}
