package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/antoniovita/projeto-gymAI-sub000/internal/models"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/storage"
)

func (s *Store) AddTask(t models.Task) error {
	_, err := s.db.Exec(`
		INSERT INTO tasks (id, title, content, category, owner_id, scheduled_at, done, created_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NULL)`,
		t.ID, t.Title, t.Content, t.Category, t.OwnerID,
		t.ScheduledAt.Format(time.RFC3339), t.Done, t.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}
	return nil
}

func (s *Store) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow(`
		SELECT id, title, content, category, owner_id, scheduled_at, done, created_at, deleted_at
		FROM tasks WHERE id = ? AND deleted_at IS NULL`, id)
	return scanTask(row)
}

func (s *Store) ListTasks(ownerID string, start, end time.Time) ([]models.Task, error) {
	rows, err := s.db.Query(`
		SELECT id, title, content, category, owner_id, scheduled_at, done, created_at, deleted_at
		FROM tasks
		WHERE owner_id = ? AND deleted_at IS NULL AND scheduled_at >= ? AND scheduled_at <= ?
		ORDER BY scheduled_at, id`,
		ownerID, start.Format(time.RFC3339), end.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) UpdateTask(t models.Task) error {
	var deletedAt sql.NullString
	if t.DeletedAt != nil {
		deletedAt = sql.NullString{String: t.DeletedAt.Format(time.RFC3339), Valid: true}
	}

	res, err := s.db.Exec(`
		UPDATE tasks
		SET title = ?, content = ?, category = ?, owner_id = ?, scheduled_at = ?, done = ?, deleted_at = ?
		WHERE id = ?`,
		t.Title, t.Content, t.Category, t.OwnerID,
		t.ScheduledAt.Format(time.RFC3339), t.Done, deletedAt, t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
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

func (s *Store) DeleteTask(id string) error {
	res, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
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

func scanTask(row rowScanner) (models.Task, error) {
	var t models.Task
	var scheduledAt, createdAt string
	var deletedAt sql.NullString

	err := row.Scan(&t.ID, &t.Title, &t.Content, &t.Category, &t.OwnerID, &scheduledAt, &t.Done, &createdAt, &deletedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, storage.ErrNotFound
		}
		return models.Task{}, err
	}

	t.ScheduledAt, err = time.Parse(time.RFC3339, scheduledAt)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to parse scheduled_at for task %s: %w", t.ID, err)
	}
	t.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to parse created_at for task %s: %w", t.ID, err)
	}
	if deletedAt.Valid {
		parsed, err := time.Parse(time.RFC3339, deletedAt.String)
		if err != nil {
			return models.Task{}, fmt.Errorf("failed to parse deleted_at for task %s: %w", t.ID, err)
		}
		t.DeletedAt = &parsed
	}

	return t, nil
}
