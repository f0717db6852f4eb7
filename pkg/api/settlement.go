package api

import "github.com/shopspring/decimal"

type Settlement struct {
	ID         string          `json:"id"`
	TripID     string          `json:"trip_id"`
	FromUserID string          `json:"from_user_id"`
	FromName   string          `json:"from_name"`
	ToUserID   string          `json:"to_user_id"`
	ToName     string          `json:"to_name"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	Method     string          `json:"method,omitempty"`
	Status     string          `json:"status"`
	CreatedAt  int64           `json:"created_at"`
}

// RecordSettlementRequest records a payment from the caller to ToUserID.
type RecordSettlementRequest struct {
	TripID   string          `json:"trip_id" validate:"required"`
	ToUserID string          `json:"to_user_id" validate:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Method   string          `json:"method" validate:"max=50"`
	Date     string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type RecordSettlementResponse struct {
	Settlement *Settlement `json:"settlement"`
}

type ListSettlementsRequest struct {
	TripID string `json:"trip_id" validate:"required"`
}

type ListSettlementsResponse struct {
	Settlements []*Settlement `json:"settlements"`
}

type GetNetBalancesRequest struct {
	TripID string `json:"trip_id" validate:"required"`
}

// Balance is one member's position. NetBalance > 0 means the trip owes them.
type Balance struct {
	UserID      string          `json:"user_id"`
	DisplayName string          `json:"display_name"`
	Credited    decimal.Decimal `json:"credited"`
	Debited     decimal.Decimal `json:"debited"`
	NetBalance  decimal.Decimal `json:"net_balance"`
}

// SuggestedTransfer is a payment that would help settle the trip.
type SuggestedTransfer struct {
	FromUserID string          `json:"from_user_id"`
	FromName   string          `json:"from_name"`
	ToUserID   string          `json:"to_user_id"`
	ToName     string          `json:"to_name"`
	Amount     decimal.Decimal `json:"amount"`
}

type GetNetBalancesResponse struct {
	Balances  []*Balance           `json:"balances"`
	Transfers []*SuggestedTransfer `json:"transfers"`
}
