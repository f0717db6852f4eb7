package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Abusha-Ansari/Split-Karo/internal/models"
	"github.com/Abusha-Ansari/Split-Karo/internal/storage"
)

const tripColumns = `id, name, description, currency, leader_id, invite_code, starts_at, ends_at, created_at`

// CreateTrip persists a trip and makes its leader an accepted member.
func (s *Store) CreateTrip(ctx context.Context, trip *models.Trip) error {
	if trip.ID == "" {
		trip.ID = uuid.New().String()
	}
	if trip.CreatedAt == 0 {
		trip.CreatedAt = time.Now().Unix()
	}
	if trip.Currency == "" {
		trip.Currency = models.DefaultCurrency
	}
	if trip.InviteCode == "" {
		trip.InviteCode = newInviteCode()
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, tx.Rebind(`
		INSERT INTO trips (`+tripColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		trip.ID, trip.Name, trip.Description, trip.Currency, trip.LeaderID,
		trip.InviteCode, trip.StartsAt, trip.EndsAt, trip.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	_, err = tx.ExecContext(ctx, tx.Rebind(`
		INSERT INTO trip_members (trip_id, user_id, role, status, invited_by, joined_at, created_at)
		VALUES (?, ?, ?, ?, NULL, ?, ?)`),
		trip.ID, trip.LeaderID, models.RoleLeader, models.StatusAccepted, trip.CreatedAt, trip.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert leader membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetTrip retrieves a trip by ID.
func (s *Store) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	trip := &models.Trip{}
	err := s.db.GetContext(ctx, trip, s.db.Rebind(`SELECT `+tripColumns+` FROM trips WHERE id = ?`), tripID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: trip %s", storage.ErrNotFound, tripID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return trip, nil
}

// GetTripByInviteCode retrieves the trip that owns an invite code.
func (s *Store) GetTripByInviteCode(ctx context.Context, code string) (*models.Trip, error) {
	code = NormalizeInviteCode(code)
	trip := &models.Trip{}
	err := s.db.GetContext(ctx, trip, s.db.Rebind(`SELECT `+tripColumns+` FROM trips WHERE invite_code = ?`), code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: invite code %s", storage.ErrNotFound, code)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip by invite code: %w", err)
	}
	return trip, nil
}

// ListTripsForUser retrieves the trips a user belongs to or is invited to.
func (s *Store) ListTripsForUser(ctx context.Context, userID string) ([]*models.Trip, error) {
	var trips []*models.Trip
	err := s.db.SelectContext(ctx, &trips, s.db.Rebind(`
		SELECT t.id, t.name, t.description, t.currency, t.leader_id, t.invite_code, t.starts_at, t.ends_at, t.created_at
		FROM trips t
		JOIN trip_members m ON m.trip_id = t.id
		WHERE m.user_id = ? AND m.status IN (?, ?)
		ORDER BY t.created_at DESC, t.id`),
		userID, models.StatusAccepted, models.StatusInvited,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	return trips, nil
}

// DeleteTrip removes a trip; members, expenses, splits and settlements cascade.
func (s *Store) DeleteTrip(ctx context.Context, tripID string) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM trips WHERE id = ?`), tripID)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	return expectOneRow(res, "trip", tripID)
}
