package sqlite

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/antoniovita/projeto-gymAI-sub000/internal/models"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/storage"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store := NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}

	return store, func() { store.Close() }
}

func TestRoutineCRUD(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	r := models.Routine{
		ID:        uuid.New().String(),
		Title:     "Morning stretch",
		Content:   "10 minutes",
		Category:  "health",
		OwnerID:   "owner-1",
		Weekdays:  []time.Weekday{time.Monday, time.Wednesday},
		Active:    true,
		CreatedAt: time.Now(),
	}

	if err := store.AddRoutine(r); err != nil {
		t.Fatalf("failed to add routine: %v", err)
	}

	got, err := store.GetRoutine(r.ID)
	if err != nil {
		t.Fatalf("failed to get routine: %v", err)
	}
	if got.Title != r.Title {
		t.Errorf("expected title %q, got %q", r.Title, got.Title)
	}
	if len(got.Weekdays) != 2 || got.Weekdays[0] != time.Monday || got.Weekdays[1] != time.Wednesday {
		t.Errorf("weekdays did not round trip: %v", got.Weekdays)
	}

	got.Title = "Evening stretch"
	got.Active = false
	if err := store.UpdateRoutine(got); err != nil {
		t.Fatalf("failed to update routine: %v", err)
	}

	active, err := store.ListRoutines("owner-1", false)
	if err != nil {
		t.Fatalf("failed to list routines: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("inactive routine should not appear in default list, got %d", len(active))
	}

	all, err := store.ListRoutines("owner-1", true)
	if err != nil {
		t.Fatalf("failed to list all routines: %v", err)
	}
	if len(all) != 1 || all[0].Title != "Evening stretch" {
		t.Errorf("unexpected routines: %+v", all)
	}

	if err := store.DeleteRoutine(r.ID); err != nil {
		t.Fatalf("failed to delete routine: %v", err)
	}
	if _, err := store.GetRoutine(r.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestGetRoutineNotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	if _, err := store.GetRoutine("missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCompletionUniquePerDay(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	c := models.Completion{
		ID:        uuid.New().String(),
		RoutineID: "routine-1",
		Day:       "2025-06-02",
		Reward:    50,
		CreatedAt: time.Now(),
	}
	if err := store.AddCompletion(c); err != nil {
		t.Fatalf("failed to add completion: %v", err)
	}

	dup := c
	dup.ID = uuid.New().String()
	if err := store.AddCompletion(dup); err == nil {
		t.Error("expected unique constraint violation for duplicate day")
	}

	got, err := store.GetCompletion("routine-1", "2025-06-02")
	if err != nil {
		t.Fatalf("failed to get completion: %v", err)
	}
	if got.Reward != 50 {
		t.Errorf("expected reward 50, got %d", got.Reward)
	}

	if err := store.DeleteCompletion("routine-1", "2025-06-02"); err != nil {
		t.Fatalf("failed to delete completion: %v", err)
	}
	if err := store.DeleteCompletion("routine-1", "2025-06-02"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestListCompletionsOrderedByDay(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	for _, day := range []string{"2025-06-06", "2025-06-02", "2025-06-04"} {
		c := models.Completion{
			ID:        uuid.New().String(),
			RoutineID: "routine-1",
			Day:       day,
			CreatedAt: time.Now(),
		}
		if err := store.AddCompletion(c); err != nil {
			t.Fatalf("failed to add completion for %s: %v", day, err)
		}
	}

	completions, err := store.ListCompletions("routine-1")
	if err != nil {
		t.Fatalf("failed to list completions: %v", err)
	}
	want := []string{"2025-06-02", "2025-06-04", "2025-06-06"}
	for i, c := range completions {
		if c.Day != want[i] {
			t.Errorf("expected day %s at index %d, got %s", want[i], i, c.Day)
		}
	}
}

func TestSkipUniquePerDay(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	sk := models.Skip{
		ID:        uuid.New().String(),
		RoutineID: "routine-1",
		Day:       "2025-06-02",
		CreatedAt: time.Now(),
	}
	if err := store.AddSkip(sk); err != nil {
		t.Fatalf("failed to add skip: %v", err)
	}

	dup := sk
	dup.ID = uuid.New().String()
	if err := store.AddSkip(dup); err == nil {
		t.Error("expected unique constraint violation for duplicate skip")
	}

	if err := store.DeleteSkip("routine-1", "2025-06-02"); err != nil {
		t.Fatalf("failed to delete skip: %v", err)
	}
}

func TestTaskListByDateRange(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	for i, ts := range []string{
		"2025-06-01T09:00:00Z",
		"2025-06-03T09:00:00Z",
		"2025-06-10T09:00:00Z",
	} {
		scheduled, _ := time.Parse(time.RFC3339, ts)
		task := models.Task{
			ID:          uuid.New().String(),
			Title:       "Task",
			OwnerID:     "owner-1",
			ScheduledAt: scheduled,
			CreatedAt:   time.Now(),
		}
		if err := store.AddTask(task); err != nil {
			t.Fatalf("failed to add task %d: %v", i, err)
		}
	}

	start, _ := time.Parse(time.RFC3339, "2025-06-01T00:00:00Z")
	end, _ := time.Parse(time.RFC3339, "2025-06-07T23:59:59Z")
	tasks, err := store.ListTasks("owner-1", start, end)
	if err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Errorf("expected 2 tasks in range, got %d", len(tasks))
	}
}

func TestGenerationRecordUniquePerDay(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	g := models.GenerationRecord{
		ID:              uuid.New().String(),
		RecurringTaskID: "rt-1",
		Day:             "2025-06-02",
		TaskID:          "task-1",
		CreatedAt:       time.Now(),
	}
	if err := store.AddGenerationRecord(g); err != nil {
		t.Fatalf("failed to add generation record: %v", err)
	}

	dup := g
	dup.ID = uuid.New().String()
	dup.TaskID = "task-2"
	if err := store.AddGenerationRecord(dup); err == nil {
		t.Error("expected unique constraint violation for duplicate generation day")
	}

	got, err := store.GetGenerationRecord("rt-1", "2025-06-02")
	if err != nil {
		t.Fatalf("failed to get generation record: %v", err)
	}
	if got.TaskID != "task-1" {
		t.Errorf("expected original task id, got %s", got.TaskID)
	}

	if err := store.DeleteGenerationRecords("rt-1"); err != nil {
		t.Fatalf("failed to clear generation records: %v", err)
	}
	if _, err := store.GetGenerationRecord("rt-1", "2025-06-02"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound after clearing, got %v", err)
	}
}

func TestRewardBalance(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	balance, err := store.RewardBalance("owner-1")
	if err != nil {
		t.Fatalf("failed to read empty balance: %v", err)
	}
	if balance != 0 {
		t.Errorf("expected zero balance, got %d", balance)
	}

	for _, amount := range []int{50, 20, -50} {
		entry := models.RewardEntry{
			ID:        uuid.New().String(),
			OwnerID:   "owner-1",
			Amount:    amount,
			CreatedAt: time.Now(),
		}
		if err := store.AddRewardEntry(entry); err != nil {
			t.Fatalf("failed to add reward entry: %v", err)
		}
	}

	balance, err = store.RewardBalance("owner-1")
	if err != nil {
		t.Fatalf("failed to read balance: %v", err)
	}
	if balance != 20 {
		t.Errorf("expected balance 20, got %d", balance)
	}
}

func TestRecurringTaskCRUD(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	rt := models.RecurringTask{
		ID:        uuid.New().String(),
		Title:     "Leg day",
		OwnerID:   "owner-1",
		TimeOfDay: "18:30",
		Weekdays:  []time.Weekday{time.Monday, time.Friday},
		CreatedAt: time.Now(),
	}
	if err := store.AddRecurringTask(rt); err != nil {
		t.Fatalf("failed to add recurring task: %v", err)
	}

	got, err := store.GetRecurringTask(rt.ID)
	if err != nil {
		t.Fatalf("failed to get recurring task: %v", err)
	}
	if got.TimeOfDay != "18:30" {
		t.Errorf("expected time of day 18:30, got %s", got.TimeOfDay)
	}

	got.Weekdays = []time.Weekday{time.Tuesday}
	if err := store.UpdateRecurringTask(got); err != nil {
		t.Fatalf("failed to update recurring task: %v", err)
	}

	updated, err := store.GetRecurringTask(rt.ID)
	if err != nil {
		t.Fatalf("failed to reload recurring task: %v", err)
	}
	if len(updated.Weekdays) != 1 || updated.Weekdays[0] != time.Tuesday {
		t.Errorf("weekday update did not stick: %v", updated.Weekdays)
	}

	if err := store.DeleteRecurringTask(rt.ID); err != nil {
		t.Fatalf("failed to delete recurring task: %v", err)
	}
	if _, err := store.GetRecurringTask(rt.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
