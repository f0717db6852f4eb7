package service

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/Abusha-Ansari/Split-Karo/internal/calculator"
	"github.com/Abusha-Ansari/Split-Karo/internal/metrics"
	"github.com/Abusha-Ansari/Split-Karo/internal/models"
	"github.com/Abusha-Ansari/Split-Karo/internal/storage"
	"github.com/Abusha-Ansari/Split-Karo/pkg/api"
	"github.com/Abusha-Ansari/Split-Karo/pkg/api/apiconnect"
)

var _ apiconnect.SettlementServiceHandler = (*SettlementService)(nil)

// SettlementService implements the Connect SettlementService
type SettlementService struct {
	store   storage.Store
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewSettlementService creates a new SettlementService with the given storage backend.
// m may be nil.
func NewSettlementService(store storage.Store, m *metrics.Metrics) *SettlementService {
	return &SettlementService{store: store, metrics: m, now: time.Now}
}

// RecordSettlement records a payment from the caller to another member.
func (s *SettlementService) RecordSettlement(ctx context.Context, req *connect.Request[api.RecordSettlementRequest]) (*connect.Response[api.RecordSettlementResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("RecordSettlement request received",
		"trip_id", req.Msg.TripID,
		"from", userID,
		"to", req.Msg.ToUserID,
		"amount", req.Msg.Amount.String(),
	)

	req.Msg.Method = strings.TrimSpace(req.Msg.Method)
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	if err := calculator.ValidateAmount(req.Msg.Amount); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if req.Msg.ToUserID == userID {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("cannot settle with yourself"))
	}

	trip, _, err := requireActiveMember(ctx, s.store, req.Msg.TripID, userID)
	if err != nil {
		return nil, err
	}
	ok, err := isActiveMember(ctx, s.store, trip.ID, req.Msg.ToUserID)
	if err != nil {
		slog.Error("RecordSettlement failed - could not load recipient", "trip_id", trip.ID, "error", err)
		return nil, toConnectError(err)
	}
	if !ok {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("recipient is not an accepted member"))
	}

	settlement := &models.Settlement{
		TripID:     trip.ID,
		FromUserID: userID,
		ToUserID:   req.Msg.ToUserID,
		Amount:     req.Msg.Amount,
		Date:       cmp.Or(req.Msg.Date, s.now().UTC().Format(models.DateLayout)),
		Method:     req.Msg.Method,
		Status:     models.SettlementCompleted,
	}
	if err := s.store.CreateSettlement(ctx, settlement); err != nil {
		slog.Error("RecordSettlement failed", "trip_id", trip.ID, "error", err)
		return nil, toConnectError(err)
	}
	s.metrics.SettlementRecorded()

	profiles, err := s.store.GetProfilesByIDs(ctx, []string{userID, req.Msg.ToUserID})
	if err != nil {
		slog.Warn("RecordSettlement - could not load profiles", "trip_id", trip.ID, "error", err)
	}

	slog.Info("Settlement recorded", "settlement_id", settlement.ID, "trip_id", trip.ID)
	return connect.NewResponse(&api.RecordSettlementResponse{
		Settlement: settlementToAPI(settlement, profiles),
	}), nil
}

// ListSettlements returns the trip's settlement history, newest first.
func (s *SettlementService) ListSettlements(ctx context.Context, req *connect.Request[api.ListSettlementsRequest]) (*connect.Response[api.ListSettlementsResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ListSettlements request received", "trip_id", req.Msg.TripID, "user_id", userID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	if _, _, err := requireActiveMember(ctx, s.store, req.Msg.TripID, userID); err != nil {
		return nil, err
	}

	settlements, err := s.store.ListSettlements(ctx, req.Msg.TripID)
	if err != nil {
		slog.Error("ListSettlements failed", "trip_id", req.Msg.TripID, "error", err)
		return nil, toConnectError(err)
	}

	var ids []string
	for _, st := range settlements {
		ids = append(ids, st.FromUserID, st.ToUserID)
	}
	profiles, err := s.store.GetProfilesByIDs(ctx, uniqueIDs(ids))
	if err != nil {
		slog.Error("ListSettlements failed - could not load profiles", "trip_id", req.Msg.TripID, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*api.Settlement, len(settlements))
	for i, st := range settlements {
		out[i] = settlementToAPI(st, profiles)
	}

	slog.Info("ListSettlements successful", "trip_id", req.Msg.TripID, "count", len(out))
	return connect.NewResponse(&api.ListSettlementsResponse{Settlements: out}), nil
}

// GetNetBalances folds every expense split and settlement of the trip into one
// net balance per member and suggests transfers that would settle the trip.
func (s *SettlementService) GetNetBalances(ctx context.Context, req *connect.Request[api.GetNetBalancesRequest]) (*connect.Response[api.GetNetBalancesResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("GetNetBalances request received", "trip_id", req.Msg.TripID, "user_id", userID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	if _, _, err := requireActiveMember(ctx, s.store, req.Msg.TripID, userID); err != nil {
		return nil, err
	}

	rows, err := s.store.ListSplitShares(ctx, req.Msg.TripID)
	if err != nil {
		slog.Error("GetNetBalances failed - could not list splits", "trip_id", req.Msg.TripID, "error", err)
		return nil, toConnectError(err)
	}
	settlements, err := s.store.ListSettlements(ctx, req.Msg.TripID)
	if err != nil {
		slog.Error("GetNetBalances failed - could not list settlements", "trip_id", req.Msg.TripID, "error", err)
		return nil, toConnectError(err)
	}

	// Convert to calculator format
	shares := make([]calculator.SplitShare, len(rows))
	for i, r := range rows {
		shares[i] = calculator.SplitShare{PayerID: r.PayerID, UserID: r.UserID, Amount: r.ShareAmount}
	}
	transfers := make([]calculator.Transfer, len(settlements))
	for i, st := range settlements {
		transfers[i] = calculator.Transfer{FromUserID: st.FromUserID, ToUserID: st.ToUserID, Amount: st.Amount}
	}

	balances := calculator.CalculateNetBalances(shares, transfers)
	suggested := calculator.SimplifyDebts(balances)

	ids := make([]string, len(balances))
	for i, b := range balances {
		ids[i] = b.UserID
	}
	// A missing profile shows as "Unknown"; it is not an error.
	profiles, err := s.store.GetProfilesByIDs(ctx, ids)
	if err != nil {
		slog.Error("GetNetBalances failed - could not load profiles", "trip_id", req.Msg.TripID, "error", err)
		return nil, toConnectError(err)
	}

	resp := &api.GetNetBalancesResponse{
		Balances:  make([]*api.Balance, len(balances)),
		Transfers: make([]*api.SuggestedTransfer, len(suggested)),
	}
	for i, b := range balances {
		resp.Balances[i] = balanceToAPI(b, profiles)
	}
	for i, t := range suggested {
		resp.Transfers[i] = transferToAPI(t, profiles)
	}

	slog.Info("GetNetBalances successful",
		"trip_id", req.Msg.TripID,
		"members", len(resp.Balances),
		"transfers", len(resp.Transfers),
	)
	return connect.NewResponse(resp), nil
}
