package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/Abusha-Ansari/Split-Karo/internal/storage"
	"github.com/Abusha-Ansari/Split-Karo/pkg/api"
	"github.com/Abusha-Ansari/Split-Karo/pkg/api/apiconnect"
)

const defaultSearchLimit = 10

var _ apiconnect.ProfileServiceHandler = (*ProfileService)(nil)

// ProfileService implements the Connect ProfileService
type ProfileService struct {
	store storage.Store
}

// NewProfileService creates a new ProfileService with the given storage backend.
func NewProfileService(store storage.Store) *ProfileService {
	return &ProfileService{store: store}
}

// GetProfile retrieves a profile by ID.
func (s *ProfileService) GetProfile(ctx context.Context, req *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error) {
	slog.Info("GetProfile request received", "user_id", req.Msg.UserID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	profile, err := s.store.GetProfileByID(ctx, req.Msg.UserID)
	if err != nil {
		slog.Error("GetProfile failed", "user_id", req.Msg.UserID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.GetProfileResponse{Profile: profileToAPI(profile)}), nil
}

// UpdateProfile changes the caller's display name and avatar.
func (s *ProfileService) UpdateProfile(ctx context.Context, req *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("UpdateProfile request received", "user_id", userID)

	req.Msg.DisplayName = strings.TrimSpace(req.Msg.DisplayName)
	req.Msg.AvatarURL = strings.TrimSpace(req.Msg.AvatarURL)
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	profile, err := s.store.GetProfileByID(ctx, userID)
	if err != nil {
		slog.Error("UpdateProfile failed - profile not found", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}

	profile.DisplayName = req.Msg.DisplayName
	profile.AvatarURL = req.Msg.AvatarURL
	profile.UpdatedAt = time.Now().Unix()
	if err := s.store.UpdateProfile(ctx, profile); err != nil {
		slog.Error("UpdateProfile failed", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Profile updated", "user_id", userID)
	return connect.NewResponse(&api.UpdateProfileResponse{Profile: profileToAPI(profile)}), nil
}

// SearchProfiles finds people by name, username or email so they can be invited.
func (s *ProfileService) SearchProfiles(ctx context.Context, req *connect.Request[api.SearchProfilesRequest]) (*connect.Response[api.SearchProfilesResponse], error) {
	req.Msg.Query = strings.TrimSpace(req.Msg.Query)
	slog.Info("SearchProfiles request received", "query", req.Msg.Query, "limit", req.Msg.Limit)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	limit := req.Msg.Limit
	if limit == 0 {
		limit = defaultSearchLimit
	}

	profiles, err := s.store.SearchProfiles(ctx, req.Msg.Query, limit)
	if err != nil {
		slog.Error("SearchProfiles failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*api.Profile, len(profiles))
	for i, p := range profiles {
		out[i] = profileToAPI(p)
	}

	slog.Info("SearchProfiles successful", "count", len(out))
	return connect.NewResponse(&api.SearchProfilesResponse{Profiles: out}), nil
}
