package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/antoniovita/projeto-gymAI-sub000/internal/models"
	"github.com/antoniovita/projeto-gymAI-sub000/internal/storage"
)

func (s *Store) AddCompletion(c models.Completion) error {
	_, err := s.db.Exec(`
		INSERT INTO routine_completions (id, routine_id, day, reward, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.RoutineID, c.Day, c.Reward, c.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to add completion: %w", err)
	}
	return nil
}

func (s *Store) GetCompletion(routineID, day string) (models.Completion, error) {
	row := s.db.QueryRow(`
		SELECT id, routine_id, day, reward, created_at
		FROM routine_completions WHERE routine_id = ? AND day = ?`, routineID, day)

	var c models.Completion
	var createdAt string
	err := row.Scan(&c.ID, &c.RoutineID, &c.Day, &c.Reward, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Completion{}, storage.ErrNotFound
		}
		return models.Completion{}, err
	}

	c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Completion{}, fmt.Errorf("failed to parse created_at for completion %s: %w", c.ID, err)
	}
	return c, nil
}

func (s *Store) ListCompletions(routineID string) ([]models.Completion, error) {
	rows, err := s.db.Query(`
		SELECT id, routine_id, day, reward, created_at
		FROM routine_completions WHERE routine_id = ? ORDER BY day`, routineID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completions []models.Completion
	for rows.Next() {
		var c models.Completion
		var createdAt string
		if err := rows.Scan(&c.ID, &c.RoutineID, &c.Day, &c.Reward, &createdAt); err != nil {
			return nil, err
		}
		c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for completion %s: %w", c.ID, err)
		}
		completions = append(completions, c)
	}
	return completions, rows.Err()
}

func (s *Store) DeleteCompletion(routineID, day string) error {
	res, err := s.db.Exec(`
		DELETE FROM routine_completions WHERE routine_id = ? AND day = ?`, routineID, day)
	if err != nil {
		return fmt.Errorf("failed to delete completion: %w", err)
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

func (s *Store) AddSkip(sk models.Skip) error {
	_, err := s.db.Exec(`
		INSERT INTO routine_skips (id, routine_id, day, created_at)
		VALUES (?, ?, ?, ?)`,
		sk.ID, sk.RoutineID, sk.Day, sk.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to add skip: %w", err)
	}
	return nil
}

func (s *Store) DeleteSkip(routineID, day string) error {
	res, err := s.db.Exec(`
		DELETE FROM routine_skips WHERE routine_id = ? AND day = ?`, routineID, day)
	if err != nil {
		return fmt.Errorf("failed to delete skip: %w", err)
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

func (s *Store) ListSkips(routineID string) ([]models.Skip, error) {
	rows, err := s.db.Query(`
		SELECT id, routine_id, day, created_at
		FROM routine_skips WHERE routine_id = ? ORDER BY day`, routineID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skips []models.Skip
	for rows.Next() {
		var sk models.Skip
		var createdAt string
		if err := rows.Scan(&sk.ID, &sk.RoutineID, &sk.Day, &createdAt); err != nil {
			return nil, err
		}
		sk.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for skip %s: %w", sk.ID, err)
		}
		skips = append(skips, sk)
	}
	return skips, rows.Err()
}
