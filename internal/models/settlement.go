package models

import "github.com/shopspring/decimal"

// SettlementCompleted is the only status recorded today.
const SettlementCompleted = "completed"

// Settlement represents a direct payment between trip members to clear debts.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string `db:"id"`

	// TripID is the trip this settlement belongs to.
	TripID string `db:"trip_id"`

	// FromUserID is the member who paid (debtor settling up).
	FromUserID string `db:"from_user_id"`

	// ToUserID is the member who received payment (creditor being paid).
	ToUserID string `db:"to_user_id"`

	// Amount is the payment amount.
	Amount decimal.Decimal `db:"amount"`

	// Date is the day of the payment ("YYYY-MM-DD").
	Date string `db:"date"`

	// Method is an optional note on how it was paid (cash, UPI, ...).
	Method string `db:"method"`

	// Status is always SettlementCompleted for now.
	Status string `db:"status"`

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64 `db:"created_at"`
}
