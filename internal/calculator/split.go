package calculator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// MinorUnits is the number of fractional digits amounts are kept at.
const MinorUnits = 2

// MaxAmount is the largest amount accepted, the ceiling of a NUMERIC(14,2) column.
var MaxAmount = decimal.RequireFromString("999999999999.99")

var (
	ErrNoParticipants       = errors.New("must have at least one participant")
	ErrInvalidAmount        = errors.New("amount must be positive, at most 999999999999.99, with at most two decimal places")
	ErrDuplicateParticipant = errors.New("participant listed more than once")
	ErrSplitMismatch        = errors.New("split shares must add up to the expense amount")
	ErrNegativeShare        = errors.New("split shares cannot be negative")
)

// Share is one participant's part of an expense.
type Share struct {
	UserID string
	Amount decimal.Decimal
}

// ValidateAmount checks that amount is positive, no larger than MaxAmount
// and fits in MinorUnits.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() || amount.GreaterThan(MaxAmount) {
		return ErrInvalidAmount
	}
	if !amount.Equal(amount.Truncate(MinorUnits)) {
		return ErrInvalidAmount
	}
	return nil
}

// EqualSplit divides amount equally among participants.
//
// Each share is floor(amount / N) at cent precision; the leftover cents go one
// each to the first participants in the order given, so the shares always add
// up to amount exactly. 100.00 over three people is 33.34, 33.33, 33.33.
func EqualSplit(amount decimal.Decimal, participants []string) ([]Share, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(participants))
	for _, p := range participants {
		if seen[p] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateParticipant, p)
		}
		seen[p] = true
	}

	cents := amount.Shift(MinorUnits).IntPart()
	n := int64(len(participants))
	base, remainder := cents/n, cents%n

	shares := make([]Share, len(participants))
	for i, p := range participants {
		c := base
		if int64(i) < remainder {
			c++
		}
		shares[i] = Share{UserID: p, Amount: decimal.New(c, -MinorUnits)}
	}
	return shares, nil
}

// CustomSplit validates explicitly chosen shares against the expense amount.
// Shares of zero are dropped; the rest must sum to amount exactly.
func CustomSplit(amount decimal.Decimal, shares []Share) ([]Share, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(shares))
	total := decimal.Zero
	out := make([]Share, 0, len(shares))
	for _, s := range shares {
		if s.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: %s", ErrNegativeShare, s.UserID)
		}
		if !s.Amount.Equal(s.Amount.Truncate(MinorUnits)) {
			return nil, fmt.Errorf("%w: share for %s", ErrInvalidAmount, s.UserID)
		}
		if seen[s.UserID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateParticipant, s.UserID)
		}
		seen[s.UserID] = true
		if s.Amount.IsZero() {
			continue
		}
		total = total.Add(s.Amount)
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, ErrNoParticipants
	}
	if !total.Equal(amount) {
		return nil, fmt.Errorf("%w: shares total %s, amount %s", ErrSplitMismatch, total.StringFixed(MinorUnits), amount.StringFixed(MinorUnits))
	}
	return out, nil
}
