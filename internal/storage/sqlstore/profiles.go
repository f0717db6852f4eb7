package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Abusha-Ansari/Split-Karo/internal/models"
	"github.com/Abusha-Ansari/Split-Karo/internal/storage"
)

const profileColumns = `id, email, username, display_name, avatar_url, password_hash, created_at, updated_at`

// CreateProfile inserts a new profile into the database.
func (s *Store) CreateProfile(ctx context.Context, profile *models.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	if profile.CreatedAt == 0 {
		profile.CreatedAt = time.Now().Unix()
	}
	if profile.UpdatedAt == 0 {
		profile.UpdatedAt = profile.CreatedAt
	}

	existing, err := s.GetProfileByEmail(ctx, profile.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: profile with email %s", storage.ErrConflict, profile.Email)
	}

	_, err = s.db.ExecContext(ctx, s.db.Rebind(`
		INSERT INTO profiles (`+profileColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
		profile.ID,
		profile.Email,
		profile.Username,
		profile.DisplayName,
		profile.AvatarURL,
		profile.PasswordHash,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// GetProfileByID retrieves a profile by its ID.
func (s *Store) GetProfileByID(ctx context.Context, id string) (*models.Profile, error) {
	profile := &models.Profile{}
	err := s.db.GetContext(ctx, profile, s.db.Rebind(`SELECT `+profileColumns+` FROM profiles WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: profile %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile by ID: %w", err)
	}
	return profile, nil
}

// GetProfileByEmail retrieves a profile by email address.
// Returns nil, nil when no profile uses the address.
func (s *Store) GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	profile := &models.Profile{}
	err := s.db.GetContext(ctx, profile, s.db.Rebind(`SELECT `+profileColumns+` FROM profiles WHERE email = ?`), email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile by email: %w", err)
	}
	return profile, nil
}

// GetProfilesByIDs retrieves multiple profiles by their IDs.
// Profiles that don't exist are omitted from the result.
func (s *Store) GetProfilesByIDs(ctx context.Context, ids []string) (map[string]*models.Profile, error) {
	out := make(map[string]*models.Profile, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(`SELECT `+profileColumns+` FROM profiles WHERE id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build profile query: %w", err)
	}

	var profiles []*models.Profile
	if err := s.db.SelectContext(ctx, &profiles, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get profiles by IDs: %w", err)
	}
	for _, p := range profiles {
		out[p.ID] = p
	}
	return out, nil
}

// UpdateProfile saves the editable profile fields.
func (s *Store) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	profile.UpdatedAt = time.Now().Unix()
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`
		UPDATE profiles SET display_name = ?, avatar_url = ?, updated_at = ? WHERE id = ?`),
		profile.DisplayName, profile.AvatarURL, profile.UpdatedAt, profile.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return expectOneRow(res, "profile", profile.ID)
}

// SearchProfiles matches query against display name, username and email.
func (s *Store) SearchProfiles(ctx context.Context, query string, limit int) ([]*models.Profile, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	var profiles []*models.Profile
	err := s.db.SelectContext(ctx, &profiles, s.db.Rebind(`
		SELECT `+profileColumns+` FROM profiles
		WHERE LOWER(display_name) LIKE ? OR LOWER(username) LIKE ? OR LOWER(email) LIKE ?
		ORDER BY display_name, email
		LIMIT ?`),
		pattern, pattern, pattern, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search profiles: %w", err)
	}
	return profiles, nil
}

// expectOneRow turns a zero-row UPDATE or DELETE into storage.ErrNotFound.
func expectOneRow(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %s", storage.ErrNotFound, kind, id)
	}
	return nil
}
