package routine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/antoniovita/projeto-gymAI-sub000/internal/models"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/storage"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/validation"
)

var (
	// ErrAlreadyCompleted signals an idempotent no-op: the day already has a
	// completion record. Recoverable, not exceptional.
	ErrAlreadyCompleted = errors.New("routine already completed for that day")

	// ErrNotCompleted signals an idempotent no-op: there is nothing to undo.
	ErrNotCompleted = errors.New("routine not completed for that day")
)

// Service tracks per-day completion and reward state for routines and
// projects their virtual occurrences. Mutations on the same routine must be
// serialized by the caller.
type Service struct {
	store storage.Store
	now   func() time.Time
}

func NewService(store storage.Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Create validates and persists a new routine. The weekday set must be
// non-empty at this boundary.
func (s *Service) Create(r models.Routine) (models.Routine, error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}
	r.Active = true
	r.Weekdays = r.Weekdays.Normalize()

	if err := validation.ValidateRoutine(r); err != nil {
		return models.Routine{}, err
	}
	if err := s.store.AddRoutine(r); err != nil {
		return models.Routine{}, err
	}
	return r, nil
}

// Update replaces a routine's definition (title, content, weekday set).
func (s *Service) Update(r models.Routine) error {
	r.Weekdays = r.Weekdays.Normalize()
	if err := validation.ValidateRoutine(r); err != nil {
		return err
	}
	return s.store.UpdateRoutine(r)
}

// Deactivate soft-deletes a routine: no further occurrences are produced but
// its completion history is retained.
func (s *Service) Deactivate(id string) error {
	r, err := s.store.GetRoutine(id)
	if err != nil {
		return err
	}
	r.Active = false
	return s.store.UpdateRoutine(r)
}

// Reactivate re-enables a deactivated routine.
func (s *Service) Reactivate(id string) error {
	r, err := s.store.GetRoutine(id)
	if err != nil {
		return err
	}
	r.Active = true
	return s.store.UpdateRoutine(r)
}

// Delete permanently removes a routine record.
func (s *Service) Delete(id string) error {
	return s.store.DeleteRoutine(id)
}

// Complete records that the routine was done on the given day and how much
// reward was granted. Completing an already-completed day returns
// ErrAlreadyCompleted and leaves the stored state unchanged.
func (s *Service) Complete(routineID, day string, reward int) (models.Completion, error) {
	if err := validation.ValidateDay(day); err != nil {
		return models.Completion{}, err
	}
	if err := validation.ValidateReward(reward); err != nil {
		return models.Completion{}, err
	}
	if _, err := s.store.GetRoutine(routineID); err != nil {
		return models.Completion{}, fmt.Errorf("routine %s: %w", routineID, err)
	}

	if _, err := s.store.GetCompletion(routineID, day); err == nil {
		return models.Completion{}, ErrAlreadyCompleted
	} else if !errors.Is(err, storage.ErrNotFound) {
		return models.Completion{}, fmt.Errorf("failed to check completion: %w", err)
	}

	c := models.Completion{
		ID:        uuid.New().String(),
		RoutineID: routineID,
		Day:       day,
		Reward:    reward,
		CreatedAt: s.now(),
	}
	if err := s.store.AddCompletion(c); err != nil {
		return models.Completion{}, err
	}
	return c, nil
}

// Uncomplete removes the completion record for the given day and returns the
// reward amount that was granted with it, so the caller can reverse exactly
// that amount against its ledger. Returns ErrNotCompleted if no record
// exists.
func (s *Service) Uncomplete(routineID, day string) (int, error) {
	if err := validation.ValidateDay(day); err != nil {
		return 0, err
	}

	c, err := s.store.GetCompletion(routineID, day)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, ErrNotCompleted
		}
		return 0, fmt.Errorf("failed to load completion: %w", err)
	}

	if err := s.store.DeleteCompletion(routineID, day); err != nil {
		return 0, err
	}
	return c.Reward, nil
}

// IsCompletedOn reports whether the routine has a completion record for the day.
func (s *Service) IsCompletedOn(routineID, day string) (bool, error) {
	_, err := s.store.GetCompletion(routineID, day)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// TotalReward sums the reward granted across all completion records.
func (s *Service) TotalReward(routineID string) (int, error) {
	completions, err := s.store.ListCompletions(routineID)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, c := range completions {
		total += c.Reward
	}
	return total, nil
}

// CompletedDays returns all completed days in ascending order.
func (s *Service) CompletedDays(routineID string) ([]string, error) {
	completions, err := s.store.ListCompletions(routineID)
	if err != nil {
		return nil, err
	}
	days := make([]string, 0, len(completions))
	for _, c := range completions {
		days = append(days, c.Day)
	}
	return days, nil
}

// SkipDay suppresses the routine on a single day. Skipping an already
// skipped day is a no-op.
func (s *Service) SkipDay(routineID, day string) error {
	if err := validation.ValidateDay(day); err != nil {
		return err
	}
	if _, err := s.store.GetRoutine(routineID); err != nil {
		return fmt.Errorf("routine %s: %w", routineID, err)
	}

	skips, err := s.store.ListSkips(routineID)
	if err != nil {
		return err
	}
	for _, sk := range skips {
		if sk.Day == day {
			return nil
		}
	}

	return s.store.AddSkip(models.Skip{
		ID:        uuid.New().String(),
		RoutineID: routineID,
		Day:       day,
		CreatedAt: s.now(),
	})
}

// UnskipDay removes a per-day suppression. Returns storage.ErrNotFound when
// the day was not skipped.
func (s *Service) UnskipDay(routineID, day string) error {
	if err := validation.ValidateDay(day); err != nil {
		return err
	}
	return s.store.DeleteSkip(routineID, day)
}
