package service

import (
	"context"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abusha-Ansari/Split-Karo/pkg/api"
)

// assertExpiresInAbout checks a Unix expiry against the server's token TTL.
func assertExpiresInAbout(t *testing.T, ttl time.Duration, expiresAt int64) {
	t.Helper()
	want := time.Now().Add(ttl)
	assert.WithinDuration(t, want, time.Unix(expiresAt, 0), time.Minute)
}

func TestRegister_Login_GetCurrentUser(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	reg, err := env.auth.Register(ctx, connect.NewRequest(&api.RegisterRequest{
		Email:       "Asha@Example.com",
		Password:    "password123",
		DisplayName: "Asha",
	}))
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Msg.Token)
	assert.Equal(t, "asha@example.com", reg.Msg.User.Email)
	assert.Equal(t, "asha", reg.Msg.User.Username)
	assertExpiresInAbout(t, time.Hour, reg.Msg.ExpiresAt)

	login, err := env.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{
		Email:    "asha@example.com",
		Password: "password123",
	}))
	require.NoError(t, err)
	assert.Equal(t, reg.Msg.User.ID, login.Msg.User.ID)
	assertExpiresInAbout(t, time.Hour, login.Msg.ExpiresAt)

	me := env.clientsFor(login.Msg.User.ID, login.Msg.Token)
	current, err := me.Auth.GetCurrentUser(ctx, connect.NewRequest(&api.GetCurrentUserRequest{}))
	require.NoError(t, err)
	assert.Equal(t, "Asha", current.Msg.User.DisplayName)
}

func TestRegister_Errors(t *testing.T) {
	env := setupTestServer(t)
	env.register("asha")

	tests := []struct {
		name string
		req  *api.RegisterRequest
		code connect.Code
	}{
		{"duplicate email", &api.RegisterRequest{Email: "asha@example.com", Password: "password123", DisplayName: "Asha"}, connect.CodeAlreadyExists},
		{"weak password", &api.RegisterRequest{Email: "new@example.com", Password: "short", DisplayName: "New"}, connect.CodeInvalidArgument},
		{"bad email", &api.RegisterRequest{Email: "not-an-email", Password: "password123", DisplayName: "New"}, connect.CodeInvalidArgument},
		{"short name", &api.RegisterRequest{Email: "new@example.com", Password: "password123", DisplayName: "N"}, connect.CodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.auth.Register(context.Background(), connect.NewRequest(tt.req))
			assertCode(t, tt.code, err)
		})
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	env := setupTestServer(t)
	env.register("asha")

	_, err := env.auth.Login(context.Background(), connect.NewRequest(&api.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong-password",
	}))
	assertCode(t, connect.CodeUnauthenticated, err)
}

func TestGetCurrentUser_NoToken(t *testing.T) {
	env := setupTestServer(t)

	_, err := env.auth.GetCurrentUser(context.Background(), connect.NewRequest(&api.GetCurrentUserRequest{}))
	assertCode(t, connect.CodeUnauthenticated, err)
}

func TestProtectedService_RejectsMissingAndBadTokens(t *testing.T) {
	env := setupTestServer(t)

	anon := env.clientsFor("", "garbage")
	_, err := anon.Trips.ListTrips(context.Background(), connect.NewRequest(&api.ListTripsRequest{}))
	assertCode(t, connect.CodeUnauthenticated, err)
}
