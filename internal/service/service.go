package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"

	"github.com/Abusha-Ansari/Split-Karo/internal/auth"
	"github.com/Abusha-Ansari/Split-Karo/internal/calculator"
	"github.com/Abusha-Ansari/Split-Karo/internal/middleware"
	"github.com/Abusha-Ansari/Split-Karo/internal/models"
	"github.com/Abusha-Ansari/Split-Karo/internal/storage"
)

var (
	errNotMember   = errors.New("you are not a member of this trip")
	errNotLeader   = errors.New("only the trip leader can do this")
	errTripMissing = errors.New("trip not found")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their wire names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest checks a request message against its validate tags.
func validateRequest(msg any) error {
	err := validate.Struct(msg)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	problems := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		if fe.Param() != "" {
			problems[i] = fmt.Sprintf("%s: failed %s=%s", fe.Field(), fe.Tag(), fe.Param())
		} else {
			problems[i] = fmt.Sprintf("%s: failed %s", fe.Field(), fe.Tag())
		}
	}
	return connect.NewError(connect.CodeInvalidArgument, errors.New(strings.Join(problems, "; ")))
}

// toConnectError maps domain and storage errors onto Connect codes.
// Errors that already carry a code pass through unchanged.
func toConnectError(err error) error {
	var connectErr *connect.Error
	switch {
	case errors.As(err, &connectErr):
		return connectErr
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrConflict):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, calculator.ErrInvalidAmount),
		errors.Is(err, calculator.ErrNoParticipants),
		errors.Is(err, calculator.ErrDuplicateParticipant),
		errors.Is(err, calculator.ErrSplitMismatch),
		errors.Is(err, calculator.ErrNegativeShare):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// callerID returns the authenticated user, or Unauthenticated.
func callerID(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return userID, nil
}

// loadTrip fetches a trip, turning a missing row into NotFound.
func loadTrip(ctx context.Context, store storage.Store, tripID string) (*models.Trip, error) {
	trip, err := store.GetTrip(ctx, tripID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, connect.NewError(connect.CodeNotFound, errTripMissing)
	}
	if err != nil {
		return nil, toConnectError(err)
	}
	return trip, nil
}

// requireActiveMember loads the trip and checks that userID is an accepted
// member of it.
func requireActiveMember(ctx context.Context, store storage.Store, tripID, userID string) (*models.Trip, *models.TripMember, error) {
	trip, err := loadTrip(ctx, store, tripID)
	if err != nil {
		return nil, nil, err
	}
	member, err := store.GetMember(ctx, tripID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil, connect.NewError(connect.CodePermissionDenied, errNotMember)
	}
	if err != nil {
		return nil, nil, toConnectError(err)
	}
	if !member.IsActive() {
		return nil, nil, connect.NewError(connect.CodePermissionDenied, errNotMember)
	}
	return trip, member, nil
}

// requireLeader loads the trip and checks that userID leads it.
func requireLeader(ctx context.Context, store storage.Store, tripID, userID string) (*models.Trip, error) {
	trip, err := loadTrip(ctx, store, tripID)
	if err != nil {
		return nil, err
	}
	if trip.LeaderID != userID {
		return nil, connect.NewError(connect.CodePermissionDenied, errNotLeader)
	}
	return trip, nil
}

// isActiveMember reports whether userID is an accepted member of the trip.
func isActiveMember(ctx context.Context, store storage.Store, tripID, userID string) (bool, error) {
	member, err := store.GetMember(ctx, tripID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return member.IsActive(), nil
}
