package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Abusha-Ansari/Split-Karo/internal/models"
)

const settlementColumns = `id, trip_id, from_user_id, to_user_id, amount, date, method, status, created_at`

// CreateSettlement persists a new settlement to the database.
func (s *Store) CreateSettlement(ctx context.Context, settlement *models.Settlement) error {
	// Generate ID if not set
	if settlement.ID == "" {
		settlement.ID = uuid.New().String()
	}
	if settlement.CreatedAt == 0 {
		settlement.CreatedAt = time.Now().Unix()
	}
	if settlement.Status == "" {
		settlement.Status = models.SettlementCompleted
	}

	_, err := s.db.ExecContext(ctx, s.db.Rebind(`
		INSERT INTO settlements (`+settlementColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		settlement.ID, settlement.TripID, settlement.FromUserID, settlement.ToUserID,
		settlement.Amount.StringFixed(2), settlement.Date, settlement.Method, settlement.Status, settlement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert settlement: %w", err)
	}
	return nil
}

// ListSettlements retrieves all settlements for a trip, newest first.
func (s *Store) ListSettlements(ctx context.Context, tripID string) ([]*models.Settlement, error) {
	var settlements []*models.Settlement
	err := s.db.SelectContext(ctx, &settlements, s.db.Rebind(`
		SELECT `+settlementColumns+` FROM settlements WHERE trip_id = ? ORDER BY created_at DESC, id`),
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	return settlements, nil
}
