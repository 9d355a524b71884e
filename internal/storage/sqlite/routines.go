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

func (s *Store) AddRoutine(r models.Routine) error {
	weekdays, err := json.Marshal(r.Weekdays.Numbers())
	if err != nil {
		return fmt.Errorf("failed to encode weekdays: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO routines (id, title, content, category, owner_id, weekdays, active, created_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NULL)`,
		r.ID, r.Title, r.Content, r.Category, r.OwnerID, string(weekdays), r.Active,
		r.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to add routine: %w", err)
	}
	return nil
}

func (s *Store) GetRoutine(id string) (models.Routine, error) {
	row := s.db.QueryRow(`
		SELECT id, title, content, category, owner_id, weekdays, active, created_at, deleted_at
		FROM routines WHERE id = ? AND deleted_at IS NULL`, id)
	return scanRoutine(row)
}

func (s *Store) ListRoutines(ownerID string, includeInactive bool) ([]models.Routine, error) {
	query := `
		SELECT id, title, content, category, owner_id, weekdays, active, created_at, deleted_at
		FROM routines WHERE owner_id = ? AND deleted_at IS NULL`
	if !includeInactive {
		query += " AND active = 1"
	}
	query += " ORDER BY created_at, id"

	rows, err := s.db.Query(query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routines []models.Routine
	for rows.Next() {
		r, err := scanRoutine(rows)
		if err != nil {
			return nil, err
		}
		routines = append(routines, r)
	}
	return routines, rows.Err()
}

func (s *Store) UpdateRoutine(r models.Routine) error {
	weekdays, err := json.Marshal(r.Weekdays.Numbers())
	if err != nil {
		return fmt.Errorf("failed to encode weekdays: %w", err)
	}

	var deletedAt sql.NullString
	if r.DeletedAt != nil {
		deletedAt = sql.NullString{String: r.DeletedAt.Format(time.RFC3339), Valid: true}
	}

	res, err := s.db.Exec(`
		UPDATE routines
		SET title = ?, content = ?, category = ?, owner_id = ?, weekdays = ?, active = ?, deleted_at = ?
		WHERE id = ?`,
		r.Title, r.Content, r.Category, r.OwnerID, string(weekdays), r.Active, deletedAt, r.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update routine: %w", err)
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

func (s *Store) DeleteRoutine(id string) error {
	res, err := s.db.Exec(`DELETE FROM routines WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete routine: %w", err)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoutine(row rowScanner) (models.Routine, error) {
	var r models.Routine
	var weekdays, createdAt string
	var deletedAt sql.NullString

	err := row.Scan(&r.ID, &r.Title, &r.Content, &r.Category, &r.OwnerID, &weekdays, &r.Active, &createdAt, &deletedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Routine{}, storage.ErrNotFound
		}
		return models.Routine{}, err
	}

	r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Routine{}, fmt.Errorf("failed to parse created_at for routine %s: %w", r.ID, err)
	}
	if deletedAt.Valid {
		t, err := time.Parse(time.RFC3339, deletedAt.String)
		if err != nil {
			return models.Routine{}, fmt.Errorf("failed to parse deleted_at for routine %s: %w", r.ID, err)
		}
		r.DeletedAt = &t
	}

	var nums []int
	if weekdays != "" {
		if err := json.Unmarshal([]byte(weekdays), &nums); err != nil {
			return models.Routine{}, fmt.Errorf("failed to decode weekdays for routine %s: %w", r.ID, err)
		}
	}
	for _, n := range nums {
		r.Weekdays = append(r.Weekdays, time.Weekday(n))
	}

	return r, nil
}
