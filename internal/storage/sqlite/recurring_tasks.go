package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/antoniovita/projeto-gymAI-sub000/internal/models"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/storage"
)

func (s *Store) AddRecurringTask(rt models.RecurringTask) error {
	weekdays, err := json.Marshal(rt.Weekdays.Numbers())
	if err != nil {
		return fmt.Errorf("failed to encode weekdays: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO recurring_tasks (id, title, content, category, owner_id, time_of_day, weekdays, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rt.ID, rt.Title, rt.Content, rt.Category, rt.OwnerID, rt.TimeOfDay, string(weekdays),
		rt.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to add recurring task: %w", err)
	}
	return nil
}

func (s *Store) GetRecurringTask(id string) (models.RecurringTask, error) {
	row := s.db.QueryRow(`
		SELECT id, title, content, category, owner_id, time_of_day, weekdays, created_at
		FROM recurring_tasks WHERE id = ?`, id)
	return scanRecurringTask(row)
}

func (s *Store) ListRecurringTasks(ownerID string) ([]models.RecurringTask, error) {
	rows, err := s.db.Query(`
		SELECT id, title, content, category, owner_id, time_of_day, weekdays, created_at
		FROM recurring_tasks WHERE owner_id = ? ORDER BY created_at, id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.RecurringTask
	for rows.Next() {
		rt, err := scanRecurringTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, rt)
	}
	return tasks, rows.Err()
}

func (s *Store) UpdateRecurringTask(rt models.RecurringTask) error {
	weekdays, err := json.Marshal(rt.Weekdays.Numbers())
	if err != nil {
		return fmt.Errorf("failed to encode weekdays: %w", err)
	}

	res, err := s.db.Exec(`
		UPDATE recurring_tasks
		SET title = ?, content = ?, category = ?, owner_id = ?, time_of_day = ?, weekdays = ?
		WHERE id = ?`,
		rt.Title, rt.Content, rt.Category, rt.OwnerID, rt.TimeOfDay, string(weekdays), rt.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update recurring task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteRecurringTask(id string) error {
	res, err := s.db.Exec(`DELETE FROM recurring_tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete recurring task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanRecurringTask(row rowScanner) (models.RecurringTask, error) {
	var rt models.RecurringTask
	var weekdays, createdAt string

	err := row.Scan(&rt.ID, &rt.Title, &rt.Content, &rt.Category, &rt.OwnerID, &rt.TimeOfDay, &weekdays, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.RecurringTask{}, storage.ErrNotFound
		}
		return models.RecurringTask{}, err
	}

	rt.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.RecurringTask{}, fmt.Errorf("failed to parse created_at for recurring task %s: %w", rt.ID, err)
	}

	var nums []int
	if weekdays != "" {
		if err := json.Unmarshal([]byte(weekdays), &nums); err != nil {
			return models.RecurringTask{}, fmt.Errorf("failed to decode weekdays for recurring task %s: %w", rt.ID, err)
		}
	}
	for _, n := range nums {
		rt.Weekdays = append(rt.Weekdays, time.Weekday(n))
	}

	return rt, nil
}
