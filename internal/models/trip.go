package models

// DefaultCurrency is used when a trip is created without one.
const DefaultCurrency = "USD"

// Trip is a shared expense-tracking group.
// The creator becomes its leader and first accepted member.
type Trip struct {
	// ID is the unique identifier for the trip (UUID format).
	ID string `db:"id"`

	// Name is the display name (e.g., "Goa 2025").
	Name string `db:"name"`

	// Description is optional free text.
	Description string `db:"description"`

	// Currency is the ISO 4217 code expenses default to.
	Currency string `db:"currency"`

	// LeaderID is the profile that created and administers the trip.
	LeaderID string `db:"leader_id"`

	// InviteCode lets other people join (format "ABCD-1234").
	InviteCode string `db:"invite_code"`

	// StartsAt and EndsAt are optional "YYYY-MM-DD" dates.
	StartsAt string `db:"starts_at"`
	EndsAt   string `db:"ends_at"`

	// CreatedAt is the Unix timestamp when the trip was created.
	CreatedAt int64 `db:"created_at"`
}

// Role is a member's role within a trip.
type Role string

const (
	RoleLeader Role = "leader"
	RoleMember Role = "member"
)

// MemberStatus is the state of a trip membership.
type MemberStatus string

const (
	// StatusInvited: an existing member invited this person; waiting for them.
	StatusInvited MemberStatus = "invited"
	// StatusPending: this person asked to join; waiting for the leader.
	StatusPending MemberStatus = "pending"
	// StatusAccepted: full member.
	StatusAccepted MemberStatus = "accepted"
	// StatusDeclined: the invitee turned the invitation down.
	StatusDeclined MemberStatus = "declined"
)

// Valid reports whether s is one of the known statuses.
func (s MemberStatus) Valid() bool {
	switch s {
	case StatusInvited, StatusPending, StatusAccepted, StatusDeclined:
		return true
	}
	return false
}

// transitions lists the allowed status changes. Removal (pending or
// otherwise) is a delete, not a transition.
var transitions = map[MemberStatus][]MemberStatus{
	StatusPending:  {StatusAccepted},
	StatusInvited:  {StatusAccepted, StatusDeclined},
	StatusDeclined: {StatusInvited, StatusAccepted},
}

// CanTransition reports whether a membership may move from one status to another.
func CanTransition(from, to MemberStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TripMember ties a profile to a trip.
type TripMember struct {
	TripID string       `db:"trip_id"`
	UserID string       `db:"user_id"`
	Role   Role         `db:"role"`
	Status MemberStatus `db:"status"`

	// InvitedBy is the member who sent the invitation; empty when the
	// person joined with the invite code or asked to join.
	InvitedBy string `db:"invited_by"`

	// JoinedAt is the Unix timestamp of acceptance, 0 until then.
	JoinedAt int64 `db:"joined_at"`

	// CreatedAt orders members; equal splits hand out leftover cents in this order.
	CreatedAt int64 `db:"created_at"`
}

// IsActive reports whether the member can see and record trip activity.
func (m *TripMember) IsActive() bool {
	return m != nil && m.Status == StatusAccepted
}

// IsLeader reports whether the member administers the trip.
func (m *TripMember) IsLeader() bool {
	return m != nil && m.Role == RoleLeader
}
