package routine

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/antoniovita/projeto-gymAI-sub000/internal/models"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/storage"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/storage/sqlite"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/validation"
)

func setupService(t *testing.T) (*Service, storage.Store, func()) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return NewService(store), store, func() { store.Close() }
}

func addRoutine(t *testing.T, svc *Service, weekdays ...time.Weekday) models.Routine {
	t.Helper()
	r, err := svc.Create(models.Routine{
		Title:    "Test routine",
		OwnerID:  "owner-1",
		Weekdays: weekdays,
	})
	if err != nil {
		t.Fatalf("failed to create routine: %v", err)
	}
	return r
}

func TestCreateRejectsEmptyWeekdays(t *testing.T) {
	svc, _, cleanup := setupService(t)
	defer cleanup()

	_, err := svc.Create(models.Routine{Title: "No days", OwnerID: "owner-1"})
	var fieldErr *validation.FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected a field error, got %v", err)
	}
	if fieldErr.Field != "weekdays" {
		t.Errorf("expected weekdays field error, got %s", fieldErr.Field)
	}
}

func TestCompleteThenIsCompleted(t *testing.T) {
	svc, _, cleanup := setupService(t)
	defer cleanup()
	r := addRoutine(t, svc, time.Wednesday)

	if _, err := svc.Complete(r.ID, "2025-06-11", 50); err != nil {
		t.Fatalf("failed to complete: %v", err)
	}

	done, err := svc.IsCompletedOn(r.ID, "2025-06-11")
	if err != nil {
		t.Fatalf("failed to check completion: %v", err)
	}
	if !done {
		t.Error("expected routine to be completed on 2025-06-11")
	}

	done, err = svc.IsCompletedOn(r.ID, "2025-06-18")
	if err != nil {
		t.Fatalf("failed to check other day: %v", err)
	}
	if done {
		t.Error("expected other day to be incomplete")
	}
}

func TestCompleteTwiceIsGuarded(t *testing.T) {
	svc, _, cleanup := setupService(t)
	defer cleanup()
	r := addRoutine(t, svc, time.Wednesday)

	if _, err := svc.Complete(r.ID, "2025-06-11", 50); err != nil {
		t.Fatalf("failed to complete: %v", err)
	}

	_, err := svc.Complete(r.ID, "2025-06-11", 75)
	if !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("expected ErrAlreadyCompleted, got %v", err)
	}

	// The guard must leave the original record untouched.
	total, err := svc.TotalReward(r.ID)
	if err != nil {
		t.Fatalf("failed to total rewards: %v", err)
	}
	if total != 50 {
		t.Errorf("expected total reward 50, got %d", total)
	}
}

func TestCompleteRejectsNegativeReward(t *testing.T) {
	svc, _, cleanup := setupService(t)
	defer cleanup()
	r := addRoutine(t, svc, time.Wednesday)

	_, err := svc.Complete(r.ID, "2025-06-11", -1)
	var fieldErr *validation.FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected a field error, got %v", err)
	}
}

func TestCompleteRejectsMalformedDay(t *testing.T) {
	svc, _, cleanup := setupService(t)
	defer cleanup()
	r := addRoutine(t, svc, time.Wednesday)

	if _, err := svc.Complete(r.ID, "11/06/2025", 0); err == nil {
		t.Error("expected error for malformed day")
	}
}

func TestUncompleteReturnsGrantedReward(t *testing.T) {
	svc, _, cleanup := setupService(t)
	defer cleanup()
	r := addRoutine(t, svc, time.Wednesday)

	if _, err := svc.Complete(r.ID, "2025-06-11", 50); err != nil {
		t.Fatalf("failed to complete: %v", err)
	}

	reward, err := svc.Uncomplete(r.ID, "2025-06-11")
	if err != nil {
		t.Fatalf("failed to uncomplete: %v", err)
	}
	if reward != 50 {
		t.Errorf("expected reversed reward 50, got %d", reward)
	}

	// Scenario: complete then uncomplete leaves no trace.
	days, err := svc.CompletedDays(r.ID)
	if err != nil {
		t.Fatalf("failed to list days: %v", err)
	}
	if len(days) != 0 {
		t.Errorf("expected no completed days, got %v", days)
	}
	total, err := svc.TotalReward(r.ID)
	if err != nil {
		t.Fatalf("failed to total rewards: %v", err)
	}
	if total != 0 {
		t.Errorf("expected zero total reward, got %d", total)
	}
}

func TestUncompleteWithoutCompletion(t *testing.T) {
	svc, _, cleanup := setupService(t)
	defer cleanup()
	r := addRoutine(t, svc, time.Wednesday)

	_, err := svc.Uncomplete(r.ID, "2025-06-11")
	if !errors.Is(err, ErrNotCompleted) {
		t.Fatalf("expected ErrNotCompleted, got %v", err)
	}
}

func TestCompletedDaysSorted(t *testing.T) {
	svc, _, cleanup := setupService(t)
	defer cleanup()
	r := addRoutine(t, svc, time.Monday, time.Wednesday, time.Friday)

	for _, day := range []string{"2025-06-06", "2025-06-02", "2025-06-04"} {
		if _, err := svc.Complete(r.ID, day, 10); err != nil {
			t.Fatalf("failed to complete %s: %v", day, err)
		}
	}

	days, err := svc.CompletedDays(r.ID)
	if err != nil {
		t.Fatalf("failed to list days: %v", err)
	}
	want := []string{"2025-06-02", "2025-06-04", "2025-06-06"}
	if !reflect.DeepEqual(days, want) {
		t.Errorf("expected %v, got %v", want, days)
	}

	total, err := svc.TotalReward(r.ID)
	if err != nil {
		t.Fatalf("failed to total rewards: %v", err)
	}
	if total != 30 {
		t.Errorf("expected total 30, got %d", total)
	}
}

func TestSkipDayIsIdempotent(t *testing.T) {
	svc, _, cleanup := setupService(t)
	defer cleanup()
	r := addRoutine(t, svc, time.Monday)

	if err := svc.SkipDay(r.ID, "2025-06-02"); err != nil {
		t.Fatalf("failed to skip: %v", err)
	}
	if err := svc.SkipDay(r.ID, "2025-06-02"); err != nil {
		t.Fatalf("second skip should be a no-op, got %v", err)
	}

	if err := svc.UnskipDay(r.ID, "2025-06-02"); err != nil {
		t.Fatalf("failed to unskip: %v", err)
	}
	if err := svc.UnskipDay(r.ID, "2025-06-02"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound unskipping twice, got %v", err)
	}
}

func TestDeactivateRetainsHistory(t *testing.T) {
	svc, store, cleanup := setupService(t)
	defer cleanup()
	r := addRoutine(t, svc, time.Wednesday)

	if _, err := svc.Complete(r.ID, "2025-06-11", 25); err != nil {
		t.Fatalf("failed to complete: %v", err)
	}
	if err := svc.Deactivate(r.ID); err != nil {
		t.Fatalf("failed to deactivate: %v", err)
	}

	got, err := store.GetRoutine(r.ID)
	if err != nil {
		t.Fatalf("failed to reload routine: %v", err)
	}
	if got.Active {
		t.Error("expected routine to be inactive")
	}

	total, err := svc.TotalReward(r.ID)
	if err != nil {
		t.Fatalf("failed to total rewards: %v", err)
	}
	if total != 25 {
		t.Errorf("expected history retained, got total %d", total)
	}
}

func TestCompleteUnknownRoutine(t *testing.T) {
	svc, store, cleanup := setupService(t)
	defer cleanup()

	_, err := svc.Complete("no-such-routine", "2025-06-11", 50)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	// No completion row or reward claim may leak through for a bad ID.
	if _, err := store.GetCompletion("no-such-routine", "2025-06-11"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected no completion row, got %v", err)
	}
}

func TestSkipUnknownRoutine(t *testing.T) {
	svc, store, cleanup := setupService(t)
	defer cleanup()

	if err := svc.SkipDay("no-such-routine", "2025-06-02"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	skips, err := store.ListSkips("no-such-routine")
	if err != nil {
		t.Fatalf("failed to list skips: %v", err)
	}
	if len(skips) != 0 {
		t.Errorf("expected no skip rows, got %d", len(skips))
	}
}

func TestUpdateReplacesDefinition(t *testing.T) {
	svc, store, cleanup := setupService(t)
	defer cleanup()
	r := addRoutine(t, svc, time.Monday)

	r.Title = "Evening routine"
	r.Content = "stretch"
	r.Weekdays = []time.Weekday{time.Tuesday, time.Thursday}
	if err := svc.Update(r); err != nil {
		t.Fatalf("failed to update: %v", err)
	}

	got, err := store.GetRoutine(r.ID)
	if err != nil {
		t.Fatalf("failed to reload routine: %v", err)
	}
	if got.Title != "Evening routine" || got.Content != "stretch" {
		t.Errorf("expected edited fields, got %+v", got)
	}
	if !reflect.DeepEqual(got.Weekdays.Numbers(), []int{2, 4}) {
		t.Errorf("expected weekdays {tuesday, thursday}, got %v", got.Weekdays.Numbers())
	}
}

func TestUpdateRejectsEmptyWeekdays(t *testing.T) {
	svc, _, cleanup := setupService(t)
	defer cleanup()
	r := addRoutine(t, svc, time.Monday)

	r.Weekdays = nil
	var fieldErr *validation.FieldError
	if err := svc.Update(r); !errors.As(err, &fieldErr) {
		t.Fatalf("expected a field error, got %v", err)
	}
}

func TestReactivateRestoresRoutine(t *testing.T) {
	svc, store, cleanup := setupService(t)
	defer cleanup()
	r := addRoutine(t, svc, time.Wednesday)

	if err := svc.Deactivate(r.ID); err != nil {
		t.Fatalf("failed to deactivate: %v", err)
	}
	if err := svc.Reactivate(r.ID); err != nil {
		t.Fatalf("failed to reactivate: %v", err)
	}

	got, err := store.GetRoutine(r.ID)
	if err != nil {
		t.Fatalf("failed to reload routine: %v", err)
	}
	if !got.Active {
		t.Error("expected routine to be active again")
	}

	active, err := store.ListRoutines("owner-1", false)
	if err != nil {
		t.Fatalf("failed to list routines: %v", err)
	}
	if len(active) != 1 {
		t.Errorf("expected routine back in the active list, got %d", len(active))
	}
}

func TestReactivateUnknownRoutine(t *testing.T) {
	svc, _, cleanup := setupService(t)
	defer cleanup()

	if err := svc.Reactivate("no-such-routine"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}
