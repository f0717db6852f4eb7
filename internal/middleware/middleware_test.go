package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abusha-Ansari/Split-Karo/internal/auth"
	"github.com/Abusha-Ansari/Split-Karo/internal/metrics"
	"github.com/Abusha-Ansari/Split-Karo/internal/models"
)

type captured struct {
	called bool
	userID string
	email  string
}

func (c *captured) next() connect.UnaryFunc {
	return func(ctx context.Context, _ connect.AnyRequest) (connect.AnyResponse, error) {
		c.called = true
		c.userID = GetUserID(ctx)
		c.email = GetEmail(ctx)
		return nil, nil
	}
}

func requestWithAuth(header string) *connect.Request[struct{}] {
	req := connect.NewRequest(&struct{}{})
	if header != "" {
		req.Header().Set("Authorization", header)
	}
	return req
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("secret", time.Hour)
	token, err := jwtManager.Generate(&models.Profile{ID: "user-1", Email: "asha@example.com"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		wantCode connect.Code
	}{
		{name: "valid token", header: "Bearer " + token},
		{name: "lowercase scheme", header: "bearer " + token},
		{name: "missing header", wantCode: connect.CodeUnauthenticated},
		{name: "wrong scheme", header: "Basic abc", wantCode: connect.CodeUnauthenticated},
		{name: "garbage token", header: "Bearer not-a-jwt", wantCode: connect.CodeUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c captured
			_, err := RequireAuth(jwtManager)(c.next())(context.Background(), requestWithAuth(tt.header))
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, connect.CodeOf(err))
				assert.False(t, c.called)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user-1", c.userID)
			assert.Equal(t, "asha@example.com", c.email)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("secret", time.Hour)
	token, err := jwtManager.Generate(&models.Profile{ID: "user-1", Email: "asha@example.com"})
	require.NoError(t, err)

	var c captured
	_, err = OptionalAuth(jwtManager)(c.next())(context.Background(), requestWithAuth("Bearer "+token))
	require.NoError(t, err)
	assert.Equal(t, "user-1", c.userID)

	c = captured{}
	_, err = OptionalAuth(jwtManager)(c.next())(context.Background(), requestWithAuth("Bearer bogus"))
	require.NoError(t, err)
	assert.True(t, c.called)
	assert.Empty(t, c.userID)
}

func TestMetricsInterceptor(t *testing.T) {
	m := metrics.New()
	failing := func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("missing"))
	}

	_, err := MetricsInterceptor(m)(failing)(context.Background(), requestWithAuth(""))
	require.Error(t, err)

	var c captured
	_, err = MetricsInterceptor(m)(c.next())(context.Background(), requestWithAuth(""))
	require.NoError(t, err)

	body := scrape(t, m)
	assert.Contains(t, body, `code="not_found"`)
	assert.Contains(t, body, `code="ok"`)
}

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestCORS(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := CORS("https://app.example.com")(inner)

	t.Run("preflight short-circuits", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	})

	t.Run("passes through", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("defaults to wildcard", func(t *testing.T) {
		rec := httptest.NewRecorder()
		CORS("")(inner).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRequestLogger(t *testing.T) {
	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}
