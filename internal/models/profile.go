package models

import (
	"strings"
	"time"
)

// UnknownLabel is shown for people whose profile could not be found.
const UnknownLabel = "Unknown"

// Profile represents a registered user account.
type Profile struct {
	// ID is the unique identifier for the profile (UUID format).
	ID string `db:"id"`

	// Email is the login address (unique).
	Email string `db:"email"`

	// Username defaults to the local part of the email address.
	Username string `db:"username"`

	// DisplayName is what other trip members see.
	DisplayName string `db:"display_name"`

	// AvatarURL is an optional picture URL.
	AvatarURL string `db:"avatar_url"`

	// PasswordHash is the bcrypt hash of the password. Never leaves the server.
	PasswordHash string `db:"password_hash"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `db:"created_at"`

	// UpdatedAt is the Unix timestamp of the last profile change.
	UpdatedAt int64 `db:"updated_at"`
}

// NewProfile builds a profile for a freshly registered account.
// The store assigns the ID.
func NewProfile(email, displayName, passwordHash string) *Profile {
	now := time.Now().Unix()
	return &Profile{
		Email:        email,
		Username:     usernameFromEmail(email),
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// DisplayLabel returns the name to show for this profile, falling back to the
// email address and finally to UnknownLabel.
func (p *Profile) DisplayLabel() string {
	if p == nil {
		return UnknownLabel
	}
	if p.DisplayName != "" {
		return p.DisplayName
	}
	if p.Email != "" {
		return p.Email
	}
	return UnknownLabel
}

// LabelFor looks up id in profiles and returns its display label.
func LabelFor(profiles map[string]*Profile, id string) string {
	return profiles[id].DisplayLabel()
}

func usernameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
