package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/antoniovita/projeto-gymAI-sub000/internal/models"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/storage"
)

func (s *Store) AddGenerationRecord(g models.GenerationRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO generated_tasks (id, recurring_task_id, day, task_id, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		g.ID, g.RecurringTaskID, g.Day, g.TaskID, g.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to add generation record: %w", err)
	}
	return nil
}

func (s *Store) GetGenerationRecord(recurringTaskID, day string) (models.GenerationRecord, error) {
	row := s.db.QueryRow(`
		SELECT id, recurring_task_id, day, task_id, created_at
		FROM generated_tasks WHERE recurring_task_id = ? AND day = ?`, recurringTaskID, day)

	var g models.GenerationRecord
	var createdAt string
	err := row.Scan(&g.ID, &g.RecurringTaskID, &g.Day, &g.TaskID, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.GenerationRecord{}, storage.ErrNotFound
		}
		return models.GenerationRecord{}, err
	}

	g.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.GenerationRecord{}, fmt.Errorf("failed to parse created_at for generation record %s: %w", g.ID, err)
	}
	return g, nil
}

func (s *Store) ListGenerationRecords(recurringTaskID string) ([]models.GenerationRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, recurring_task_id, day, task_id, created_at
		FROM generated_tasks WHERE recurring_task_id = ? ORDER BY day`, recurringTaskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.GenerationRecord
	for rows.Next() {
		var g models.GenerationRecord
		var createdAt string
		if err := rows.Scan(&g.ID, &g.RecurringTaskID, &g.Day, &g.TaskID, &createdAt); err != nil {
			return nil, err
		}
		g.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for generation record %s: %w", g.ID, err)
		}
		records = append(records, g)
	}
	return records, rows.Err()
}

func (s *Store) DeleteGenerationRecords(recurringTaskID string) error {
	_, err := s.db.Exec(`DELETE FROM generated_tasks WHERE recurring_task_id = ?`, recurringTaskID)
	if err != nil {
		return fmt.Errorf("failed to delete generation records: %w", err)
	}
	return nil
}
