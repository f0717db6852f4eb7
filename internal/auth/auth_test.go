package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Abusha-Ansari/Split-Karo/internal/models"
	"github.com/Abusha-Ansari/Split-Karo/internal/storage"
)

type memProfiles struct {
	byID map[string]*models.Profile
}

func newMemProfiles() *memProfiles {
	return &memProfiles{byID: map[string]*models.Profile{}}
}

func (m *memProfiles) CreateProfile(_ context.Context, p *models.Profile) error {
	for _, existing := range m.byID {
		if existing.Email == p.Email {
			return storage.ErrConflict
		}
	}
	p.ID = uuid.New().String()
	m.byID[p.ID] = p
	return nil
}

func (m *memProfiles) GetProfileByEmail(_ context.Context, email string) (*models.Profile, error) {
	for _, p := range m.byID {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memProfiles) GetProfileByID(_ context.Context, id string) (*models.Profile, error) {
	if p, ok := m.byID[id]; ok {
		return p, nil
	}
	return nil, storage.ErrNotFound
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()
	a := NewPasswordAuthenticator(newMemProfiles()).WithCost(bcrypt.MinCost)

	t.Run("register normalizes email and hashes password", func(t *testing.T) {
		p, err := a.Register(ctx, "  Asha@Example.com ", " Asha ", "password123")
		require.NoError(t, err)
		assert.Equal(t, "asha@example.com", p.Email)
		assert.Equal(t, "Asha", p.DisplayName)
		assert.Equal(t, "asha", p.Username)
		assert.NotEqual(t, "password123", p.PasswordHash)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := a.Register(ctx, "ASHA@example.com", "Other", "password123")
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := a.Register(ctx, "new@example.com", "New", "short")
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("authenticate", func(t *testing.T) {
		p, err := a.Authenticate(ctx, "asha@EXAMPLE.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "asha@example.com", p.Email)

		_, err = a.Authenticate(ctx, "asha@example.com", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = a.Authenticate(ctx, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	profile := &models.Profile{ID: "user-1", Email: "asha@example.com"}

	token, err := m.Generate(profile)
	require.NoError(t, err)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, time.Hour, m.TokenDuration())

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewJWTManager("other-secret", time.Hour).Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired, err := NewJWTManager("test-secret", -time.Minute).Generate(profile)
		require.NoError(t, err)
		_, err = m.Validate(expired)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "user-1"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = m.Validate(unsigned)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
