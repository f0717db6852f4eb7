package service

import (
	"context"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abusha-Ansari/Split-Karo/pkg/api"
)

func TestProfile_GetAndUpdate(t *testing.T) {
	env := setupTestServer(t)
	asha := env.register("asha")
	ravi := env.register("ravi")
	ctx := context.Background()

	got, err := ravi.Profiles.GetProfile(ctx, connect.NewRequest(&api.GetProfileRequest{UserID: asha.ID}))
	require.NoError(t, err)
	assert.Equal(t, "asha", got.Msg.Profile.DisplayName)

	updated, err := asha.Profiles.UpdateProfile(ctx, connect.NewRequest(&api.UpdateProfileRequest{
		DisplayName: "  Asha Rao ",
		AvatarURL:   "https://example.com/asha.png",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", updated.Msg.Profile.DisplayName)

	got, err = ravi.Profiles.GetProfile(ctx, connect.NewRequest(&api.GetProfileRequest{UserID: asha.ID}))
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", got.Msg.Profile.DisplayName)
	assert.Equal(t, "https://example.com/asha.png", got.Msg.Profile.AvatarURL)

	_, err = ravi.Profiles.GetProfile(ctx, connect.NewRequest(&api.GetProfileRequest{UserID: "ghost"}))
	assertCode(t, connect.CodeNotFound, err)
}

func TestProfile_UpdateValidation(t *testing.T) {
	env := setupTestServer(t)
	asha := env.register("asha")

	tests := []struct {
		name string
		req  *api.UpdateProfileRequest
	}{
		{"name too short", &api.UpdateProfileRequest{DisplayName: "A"}},
		{"name too long", &api.UpdateProfileRequest{DisplayName: strings.Repeat("a", 51)}},
		{"bad avatar url", &api.UpdateProfileRequest{DisplayName: "Asha", AvatarURL: "not a url"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := asha.Profiles.UpdateProfile(context.Background(), connect.NewRequest(tt.req))
			assertCode(t, connect.CodeInvalidArgument, err)
		})
	}

	_, err := asha.Profiles.UpdateProfile(context.Background(), connect.NewRequest(&api.UpdateProfileRequest{DisplayName: "Asha"}))
	assert.NoError(t, err, "empty avatar is allowed")
}

func TestProfile_Search(t *testing.T) {
	env := setupTestServer(t)
	asha := env.register("asha")
	env.register("ashok")
	env.register("ravi")
	ctx := context.Background()

	resp, err := asha.Profiles.SearchProfiles(ctx, connect.NewRequest(&api.SearchProfilesRequest{Query: "ASH"}))
	require.NoError(t, err)
	assert.Len(t, resp.Msg.Profiles, 2)

	resp, err = asha.Profiles.SearchProfiles(ctx, connect.NewRequest(&api.SearchProfilesRequest{Query: "example", Limit: 2}))
	require.NoError(t, err)
	assert.Len(t, resp.Msg.Profiles, 2)

	_, err = asha.Profiles.SearchProfiles(ctx, connect.NewRequest(&api.SearchProfilesRequest{Query: "example", Limit: 21}))
	assertCode(t, connect.CodeInvalidArgument, err)
}
