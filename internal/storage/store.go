// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/Abusha-Ansari/Split-Karo/internal/models"
)

var (
	// ErrNotFound is wrapped by stores when a row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is wrapped by stores when a unique row already exists.
	ErrConflict = errors.New("already exists")
)

// MemberWithProfile is a trip membership joined with the member's profile.
// Profile is nil when the profile row is missing.
type MemberWithProfile struct {
	models.TripMember
	Profile *models.Profile
}

// Store defines the interface for trip storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the service layer.
type Store interface {
	// CreateProfile persists a new profile. The profile.ID field is populated
	// by the store when empty. Returns ErrConflict for a duplicate email.
	CreateProfile(ctx context.Context, profile *models.Profile) error

	// GetProfileByID returns ErrNotFound when there is no such profile.
	GetProfileByID(ctx context.Context, id string) (*models.Profile, error)

	// GetProfileByEmail returns nil and no error when the email is unknown.
	GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error)

	// GetProfilesByIDs returns a map of profile ID to profile.
	// IDs that don't exist are omitted from the result.
	GetProfilesByIDs(ctx context.Context, ids []string) (map[string]*models.Profile, error)

	// UpdateProfile saves the display name and avatar URL.
	UpdateProfile(ctx context.Context, profile *models.Profile) error

	// SearchProfiles does a case-insensitive substring match on display name,
	// username and email.
	SearchProfiles(ctx context.Context, query string, limit int) ([]*models.Profile, error)

	// CreateTrip persists a trip and its leader's accepted membership in one
	// transaction. ID, invite code and CreatedAt are filled in when empty.
	CreateTrip(ctx context.Context, trip *models.Trip) error

	// GetTrip returns ErrNotFound when there is no such trip.
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)

	// GetTripByInviteCode matches the code case-insensitively.
	GetTripByInviteCode(ctx context.Context, code string) (*models.Trip, error)

	// ListTripsForUser returns trips where the user is accepted or invited,
	// newest first.
	ListTripsForUser(ctx context.Context, userID string) ([]*models.Trip, error)

	// DeleteTrip removes a trip along with its members, expenses and settlements.
	DeleteTrip(ctx context.Context, tripID string) error

	// AddMember inserts a membership. Returns ErrConflict if one exists.
	AddMember(ctx context.Context, member *models.TripMember) error

	// GetMember returns ErrNotFound when the user has no membership row.
	GetMember(ctx context.Context, tripID, userID string) (*models.TripMember, error)

	// ListMembers returns every membership of the trip in join order.
	ListMembers(ctx context.Context, tripID string) ([]*MemberWithProfile, error)

	// UpdateMemberStatus changes the status; accepting also stamps JoinedAt.
	UpdateMemberStatus(ctx context.Context, tripID, userID string, status models.MemberStatus, invitedBy string) error

	// RemoveMember deletes the membership row.
	RemoveMember(ctx context.Context, tripID, userID string) error

	// AddExpense inserts an expense and all of its splits atomically.
	// The splits must add up to the expense amount.
	AddExpense(ctx context.Context, expense *models.Expense) error

	// ListExpenses returns the trip's expenses with splits, newest first.
	ListExpenses(ctx context.Context, tripID string) ([]*models.Expense, error)

	// ListSplitShares returns every split row of the trip with its payer.
	ListSplitShares(ctx context.Context, tripID string) ([]models.SplitShareRow, error)

	// CreateSettlement persists a settlement. ID and CreatedAt are filled in when empty.
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error

	// ListSettlements returns the trip's settlements, newest first.
	ListSettlements(ctx context.Context, tripID string) ([]*models.Settlement, error)

	// Ping checks that the database is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
