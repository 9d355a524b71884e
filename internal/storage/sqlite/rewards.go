package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/antoniovita/projeto-gymAI-sub000/internal/models"
)

func (s *Store) AddRewardEntry(e models.RewardEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO reward_ledger (id, owner_id, amount, reason, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.OwnerID, e.Amount, e.Reason, e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to add reward entry: %w", err)
	}
	return nil
}

func (s *Store) RewardBalance(ownerID string) (int, error) {
	var balance sql.NullInt64
	err := s.db.QueryRow(`
		SELECT SUM(amount) FROM reward_ledger WHERE owner_id = ?`, ownerID).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read reward balance: %w", err)
	}
	if !balance.Valid {
		return 0, nil
	}
	return int(balance.Int64), nil
}
