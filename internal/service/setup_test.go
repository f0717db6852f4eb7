package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Abusha-Ansari/Split-Karo/internal/auth"
	"github.com/Abusha-Ansari/Split-Karo/internal/metrics"
	"github.com/Abusha-Ansari/Split-Karo/internal/middleware"
	"github.com/Abusha-Ansari/Split-Karo/internal/storage/sqlstore"
	"github.com/Abusha-Ansari/Split-Karo/pkg/api"
	"github.com/Abusha-Ansari/Split-Karo/pkg/api/apiconnect"
)

// testEnv is a running server backed by a temp SQLite database.
type testEnv struct {
	t       *testing.T
	url     string
	store   *sqlstore.Store
	metrics *metrics.Metrics
	auth    apiconnect.AuthServiceClient
}

// testUser holds clients that send the user's token with every call.
type testUser struct {
	ID          string
	Token       string
	Auth        apiconnect.AuthServiceClient
	Profiles    apiconnect.ProfileServiceClient
	Trips       apiconnect.TripServiceClient
	Expenses    apiconnect.ExpenseServiceClient
	Settlements apiconnect.SettlementServiceClient
}

func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlstore.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	m := metrics.New()
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)

	required := connect.WithInterceptors(middleware.MetricsInterceptor(m), middleware.RequireAuth(jwtManager))
	optional := connect.WithInterceptors(middleware.MetricsInterceptor(m), middleware.OptionalAuth(jwtManager))

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewAuthServiceHandler(NewAuthService(authenticator, jwtManager, store), optional))
	mux.Handle(apiconnect.NewProfileServiceHandler(NewProfileService(store), required))
	mux.Handle(apiconnect.NewTripServiceHandler(NewTripService(store, m), required))
	mux.Handle(apiconnect.NewExpenseServiceHandler(NewExpenseService(store, m), required))
	mux.Handle(apiconnect.NewSettlementServiceHandler(NewSettlementService(store, m), required))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testEnv{
		t:       t,
		url:     server.URL,
		store:   store,
		metrics: m,
		auth:    apiconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
	}
}

// scrapeMetrics returns the Prometheus text exposition of the server's registry.
func (e *testEnv) scrapeMetrics() string {
	e.t.Helper()
	rec := httptest.NewRecorder()
	e.metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(e.t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func withBearer(token string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			req.Header().Set("Authorization", "Bearer "+token)
			return next(ctx, req)
		}
	}
}

// register creates an account and returns clients acting as that user.
func (e *testEnv) register(name string) *testUser {
	e.t.Helper()
	resp, err := e.auth.Register(context.Background(), connect.NewRequest(&api.RegisterRequest{
		Email:       name + "@example.com",
		Password:    "password123",
		DisplayName: name,
	}))
	require.NoError(e.t, err)
	return e.clientsFor(resp.Msg.User.ID, resp.Msg.Token)
}

func (e *testEnv) clientsFor(userID, token string) *testUser {
	opt := connect.WithInterceptors(withBearer(token))
	return &testUser{
		ID:          userID,
		Token:       token,
		Auth:        apiconnect.NewAuthServiceClient(http.DefaultClient, e.url, opt),
		Profiles:    apiconnect.NewProfileServiceClient(http.DefaultClient, e.url, opt),
		Trips:       apiconnect.NewTripServiceClient(http.DefaultClient, e.url, opt),
		Expenses:    apiconnect.NewExpenseServiceClient(http.DefaultClient, e.url, opt),
		Settlements: apiconnect.NewSettlementServiceClient(http.DefaultClient, e.url, opt),
	}
}

// createTrip makes leader create a trip and has every other user join it by code.
func createTrip(t *testing.T, leader *testUser, others ...*testUser) *api.Trip {
	t.Helper()
	resp, err := leader.Trips.CreateTrip(context.Background(), connect.NewRequest(&api.CreateTripRequest{Name: "Goa"}))
	require.NoError(t, err)
	trip := resp.Msg.Trip
	for _, u := range others {
		_, err := u.Trips.JoinTrip(context.Background(), connect.NewRequest(&api.JoinTripRequest{InviteCode: trip.InviteCode}))
		require.NoError(t, err)
	}
	return trip
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, amount(want).Equal(got), "want %s, got %s", want, got.String())
}

func assertCode(t *testing.T, want connect.Code, err error) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, want, connect.CodeOf(err), "error: %v", err)
}
