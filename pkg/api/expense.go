package api

import "github.com/shopspring/decimal"

// Split is one participant's share of an expense.
type Split struct {
	UserID      string          `json:"user_id"`
	DisplayName string          `json:"display_name"`
	ShareAmount decimal.Decimal `json:"share_amount"`
}

type Expense struct {
	ID          string          `json:"id"`
	TripID      string          `json:"trip_id"`
	CreatedBy   string          `json:"created_by"`
	PayerID     string          `json:"payer_id"`
	PayerName   string          `json:"payer_name"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	ReceiptURL  string          `json:"receipt_url,omitempty"`
	SplitType   string          `json:"split_type"`
	CreatedAt   int64           `json:"created_at"`
	Splits      []*Split        `json:"splits"`
}

// ShareInput is an explicit share for a custom split.
type ShareInput struct {
	UserID string          `json:"user_id" validate:"required"`
	Amount decimal.Decimal `json:"amount"`
}

// AddExpenseRequest records an expense. PayerID defaults to the caller,
// Currency to the trip's currency and Date to today (UTC).
//
// SelectedUserIDs is used by equal_selected, CustomShares by custom.
type AddExpenseRequest struct {
	TripID          string          `json:"trip_id" validate:"required"`
	PayerID         string          `json:"payer_id"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency" validate:"omitempty,iso4217"`
	Description     string          `json:"description" validate:"required,max=200"`
	Date            string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	SplitType       string          `json:"split_type" validate:"required,oneof=equal_all equal_selected custom"`
	SelectedUserIDs []string        `json:"selected_user_ids" validate:"required_if=SplitType equal_selected,dive,required"`
	CustomShares    []*ShareInput   `json:"custom_shares" validate:"required_if=SplitType custom,dive,required"`
	ReceiptURL      string          `json:"receipt_url" validate:"omitempty,url"`
}

type AddExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type ListExpensesRequest struct {
	TripID string `json:"trip_id" validate:"required"`
}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}
