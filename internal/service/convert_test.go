package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Abusha-Ansari/Split-Karo/internal/calculator"
	"github.com/Abusha-Ansari/Split-Karo/internal/models"
	"github.com/Abusha-Ansari/Split-Karo/internal/storage"
)

func TestConvert_MissingProfilesAreUnknown(t *testing.T) {
	profiles := map[string]*models.Profile{
		"u1": {ID: "u1", DisplayName: "Asha"},
	}

	e := expenseToAPI(&models.Expense{
		PayerID: "ghost",
		Amount:  decimal.NewFromInt(10),
		Splits: []models.ExpenseSplit{
			{UserID: "u1", ShareAmount: decimal.NewFromInt(5)},
			{UserID: "ghost", ShareAmount: decimal.NewFromInt(5)},
		},
	}, profiles)
	assert.Equal(t, models.UnknownLabel, e.PayerName)
	assert.Equal(t, "Asha", e.Splits[0].DisplayName)
	assert.Equal(t, models.UnknownLabel, e.Splits[1].DisplayName)

	b := balanceToAPI(calculator.MemberBalance{UserID: "ghost"}, nil)
	assert.Equal(t, models.UnknownLabel, b.DisplayName)

	m := memberToAPI(&storage.MemberWithProfile{TripMember: models.TripMember{UserID: "ghost"}})
	assert.Equal(t, models.UnknownLabel, m.DisplayName)
	assert.Empty(t, m.AvatarURL)
}

func TestToConnectError(t *testing.T) {
	tests := []struct {
		err  error
		code connect.Code
	}{
		{fmt.Errorf("wrap: %w", storage.ErrNotFound), connect.CodeNotFound},
		{fmt.Errorf("wrap: %w", storage.ErrConflict), connect.CodeAlreadyExists},
		{fmt.Errorf("wrap: %w", calculator.ErrSplitMismatch), connect.CodeInvalidArgument},
		{calculator.ErrInvalidAmount, connect.CodeInvalidArgument},
		{connect.NewError(connect.CodePermissionDenied, errNotLeader), connect.CodePermissionDenied},
		{context.DeadlineExceeded, connect.CodeDeadlineExceeded},
		{context.Canceled, connect.CodeCanceled},
		{errors.New("boom"), connect.CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.code, connect.CodeOf(toConnectError(tt.err)))
		})
	}
}
