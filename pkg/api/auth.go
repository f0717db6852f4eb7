package api

// Profile is a user as other people see it. Password hashes never leave the server.
type Profile struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	CreatedAt   int64  `json:"created_at"`
}

type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	DisplayName string `json:"display_name" validate:"required,min=2,max=50"`
}

// RegisterResponse carries the new account and a token valid until ExpiresAt
// (Unix seconds).
type RegisterResponse struct {
	User      *Profile `json:"user"`
	Token     string   `json:"token"`
	ExpiresAt int64    `json:"expires_at"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	User      *Profile `json:"user"`
	Token     string   `json:"token"`
	ExpiresAt int64    `json:"expires_at"`
}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User *Profile `json:"user"`
}

type GetProfileRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

type GetProfileResponse struct {
	Profile *Profile `json:"profile"`
}

// UpdateProfileRequest edits the caller's own profile.
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" validate:"required,min=2,max=50"`
	AvatarURL   string `json:"avatar_url" validate:"omitempty,url"`
}

type UpdateProfileResponse struct {
	Profile *Profile `json:"profile"`
}

// SearchProfilesRequest looks people up to invite them. Limit 0 means the default.
type SearchProfilesRequest struct {
	Query string `json:"query" validate:"required,min=2,max=100"`
	Limit int    `json:"limit" validate:"gte=0,lte=20"`
}

type SearchProfilesResponse struct {
	Profiles []*Profile `json:"profiles"`
}
