package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Abusha-Ansari/Split-Karo/internal/models"
	"github.com/Abusha-Ansari/Split-Karo/internal/storage"
)

const memberColumns = `trip_id, user_id, role, status, COALESCE(invited_by, '') AS invited_by, joined_at, created_at`

// AddMember inserts a trip membership.
func (s *Store) AddMember(ctx context.Context, member *models.TripMember) error {
	if _, err := s.GetMember(ctx, member.TripID, member.UserID); err == nil {
		return fmt.Errorf("%w: member %s of trip %s", storage.ErrConflict, member.UserID, member.TripID)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	if member.CreatedAt == 0 {
		member.CreatedAt = time.Now().Unix()
	}
	if member.Status == models.StatusAccepted && member.JoinedAt == 0 {
		member.JoinedAt = member.CreatedAt
	}

	_, err := s.db.ExecContext(ctx, s.db.Rebind(`
		INSERT INTO trip_members (trip_id, user_id, role, status, invited_by, joined_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`),
		member.TripID, member.UserID, member.Role, member.Status,
		nullIfEmpty(member.InvitedBy), member.JoinedAt, member.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}
	return nil
}

// GetMember retrieves one membership.
func (s *Store) GetMember(ctx context.Context, tripID, userID string) (*models.TripMember, error) {
	member := &models.TripMember{}
	err := s.db.GetContext(ctx, member, s.db.Rebind(`
		SELECT `+memberColumns+` FROM trip_members WHERE trip_id = ? AND user_id = ?`),
		tripID, userID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: member %s of trip %s", storage.ErrNotFound, userID, tripID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return member, nil
}

// ListMembers retrieves all memberships of a trip with their profiles,
// ordered by when they were created.
func (s *Store) ListMembers(ctx context.Context, tripID string) ([]*storage.MemberWithProfile, error) {
	var members []models.TripMember
	err := s.db.SelectContext(ctx, &members, s.db.Rebind(`
		SELECT `+memberColumns+` FROM trip_members WHERE trip_id = ? ORDER BY created_at, user_id`),
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.UserID
	}
	profiles, err := s.GetProfilesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]*storage.MemberWithProfile, len(members))
	for i, m := range members {
		out[i] = &storage.MemberWithProfile{TripMember: m, Profile: profiles[m.UserID]}
	}
	return out, nil
}

// UpdateMemberStatus moves a membership to a new status.
// Accepting stamps JoinedAt; a non-empty invitedBy replaces the inviter.
func (s *Store) UpdateMemberStatus(ctx context.Context, tripID, userID string, status models.MemberStatus, invitedBy string) error {
	var joinedAt int64
	if status == models.StatusAccepted {
		joinedAt = time.Now().Unix()
	}

	res, err := s.db.ExecContext(ctx, s.db.Rebind(`
		UPDATE trip_members
		SET status = ?, joined_at = ?, invited_by = COALESCE(?, invited_by)
		WHERE trip_id = ? AND user_id = ?`),
		status, joinedAt, nullIfEmpty(invitedBy), tripID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update member status: %w", err)
	}
	return expectOneRow(res, "member", userID)
}

// RemoveMember deletes a membership.
func (s *Store) RemoveMember(ctx context.Context, tripID, userID string) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM trip_members WHERE trip_id = ? AND user_id = ?`), tripID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return expectOneRow(res, "member", userID)
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
