package models

import "github.com/shopspring/decimal"

// SplitType controls how an expense is allocated.
type SplitType string

const (
	// SplitEqualAll divides the amount among every accepted member.
	SplitEqualAll SplitType = "equal_all"
	// SplitEqualSelected divides the amount among a chosen subset.
	SplitEqualSelected SplitType = "equal_selected"
	// SplitCustom uses explicit per-member shares.
	SplitCustom SplitType = "custom"
)

// Valid reports whether t is a known split type.
func (t SplitType) Valid() bool {
	switch t {
	case SplitEqualAll, SplitEqualSelected, SplitCustom:
		return true
	}
	return false
}

// Expense is a payment made by one member on behalf of the trip.
// Expenses are immutable once recorded.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `db:"id"`

	TripID string `db:"trip_id"`

	// CreatedBy is the member who recorded the expense.
	CreatedBy string `db:"created_by"`

	// PayerID is the member who actually paid.
	PayerID string `db:"payer_id"`

	// Amount is the total paid. The splits always sum to it.
	Amount decimal.Decimal `db:"amount"`

	Currency    string `db:"currency"`
	Description string `db:"description"`

	// Date is the day the money was spent ("YYYY-MM-DD").
	Date string `db:"date"`

	// ReceiptURL is optional.
	ReceiptURL string `db:"receipt_url"`

	SplitType SplitType `db:"split_type"`

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64 `db:"created_at"`

	// Splits holds one row per participant.
	Splits []ExpenseSplit `db:"-"`
}

// ExpenseSplit is one participant's share of an expense.
type ExpenseSplit struct {
	ExpenseID   string          `db:"expense_id"`
	UserID      string          `db:"user_id"`
	ShareAmount decimal.Decimal `db:"share_amount"`
}

// SplitTotal sums the shares of the expense.
func (e *Expense) SplitTotal() decimal.Decimal {
	total := decimal.Zero
	for _, s := range e.Splits {
		total = total.Add(s.ShareAmount)
	}
	return total
}

// SplitShareRow is the flattened (expense, payer, participant, share) view the
// balance calculation consumes.
type SplitShareRow struct {
	ExpenseID   string          `db:"expense_id"`
	PayerID     string          `db:"payer_id"`
	UserID      string          `db:"user_id"`
	ShareAmount decimal.Decimal `db:"share_amount"`
}

// DateLayout is the format of expense, settlement and trip dates.
const DateLayout = "2006-01-02"
