package api

// Trip is a shared expense group. MyStatus is the caller's membership status.
type Trip struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Currency    string `json:"currency"`
	LeaderID    string `json:"leader_id"`
	InviteCode  string `json:"invite_code"`
	StartsAt    string `json:"starts_at,omitempty"`
	EndsAt      string `json:"ends_at,omitempty"`
	CreatedAt   int64  `json:"created_at"`
	MyStatus    string `json:"my_status,omitempty"`
}

// Member is a trip membership with the member's display details.
type Member struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	InvitedBy   string `json:"invited_by,omitempty"`
	JoinedAt    int64  `json:"joined_at,omitempty"`
}

type CreateTripRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Currency    string `json:"currency" validate:"omitempty,iso4217"`
	StartsAt    string `json:"starts_at" validate:"omitempty,datetime=2006-01-02"`
	EndsAt      string `json:"ends_at" validate:"omitempty,datetime=2006-01-02"`
}

type CreateTripResponse struct {
	Trip *Trip `json:"trip"`
}

type GetTripRequest struct {
	TripID string `json:"trip_id" validate:"required"`
}

type GetTripResponse struct {
	Trip    *Trip     `json:"trip"`
	Members []*Member `json:"members"`
}

type ListTripsRequest struct{}

type ListTripsResponse struct {
	Trips []*Trip `json:"trips"`
}

type DeleteTripRequest struct {
	TripID string `json:"trip_id" validate:"required"`
}

type DeleteTripResponse struct{}

// JoinTripRequest joins with an invite code; the caller becomes an accepted member.
type JoinTripRequest struct {
	InviteCode string `json:"invite_code" validate:"required"`
}

type JoinTripResponse struct {
	Trip *Trip `json:"trip"`
}

// RequestToJoinRequest asks the leader for admission.
type RequestToJoinRequest struct {
	TripID string `json:"trip_id" validate:"required"`
}

type RequestToJoinResponse struct {
	Status string `json:"status"`
}

type InviteMemberRequest struct {
	TripID string `json:"trip_id" validate:"required"`
	UserID string `json:"user_id" validate:"required"`
}

// InviteMemberResponse carries a human-readable outcome, e.g. "Already a member".
type InviteMemberResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type RespondToInviteRequest struct {
	TripID string `json:"trip_id" validate:"required"`
	Accept bool   `json:"accept"`
}

type RespondToInviteResponse struct {
	Status string `json:"status"`
}

type ApproveMemberRequest struct {
	TripID string `json:"trip_id" validate:"required"`
	UserID string `json:"user_id" validate:"required"`
}

type ApproveMemberResponse struct{}

type RejectMemberRequest struct {
	TripID string `json:"trip_id" validate:"required"`
	UserID string `json:"user_id" validate:"required"`
}

type RejectMemberResponse struct{}
