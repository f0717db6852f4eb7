package auth

import (
	"context"

	"github.com/Abusha-Ansari/Split-Karo/internal/models"
)

// Authenticator verifies who a caller is and creates profiles for new callers.
// Implementations can swap password login for another method without the
// service layer noticing.
type Authenticator interface {
	// Register creates a profile for the given email and credential.
	Register(ctx context.Context, email, displayName, credential string) (*models.Profile, error)

	// Authenticate returns the profile whose credential matches.
	Authenticate(ctx context.Context, email, credential string) (*models.Profile, error)

	// ValidateCredential checks the credential before it is stored.
	ValidateCredential(credential string) error
}
