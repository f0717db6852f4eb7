package service

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
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

var _ apiconnect.ExpenseServiceHandler = (*ExpenseService)(nil)

// ExpenseService implements the Connect ExpenseService
type ExpenseService struct {
	store   storage.Store
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
// m may be nil.
func NewExpenseService(store storage.Store, m *metrics.Metrics) *ExpenseService {
	return &ExpenseService{store: store, metrics: m, now: time.Now}
}

// AddExpense records an expense and allocates it across members.
//
// equal_all splits among every accepted member, equal_selected among the
// chosen accepted members, custom uses the given shares. Leftover cents of an
// equal split go to the earliest-joined participants.
func (s *ExpenseService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("AddExpense request received",
		"trip_id", req.Msg.TripID,
		"user_id", userID,
		"amount", req.Msg.Amount.String(),
		"split_type", req.Msg.SplitType,
	)

	req.Msg.Description = strings.TrimSpace(req.Msg.Description)
	req.Msg.Currency = strings.ToUpper(strings.TrimSpace(req.Msg.Currency))
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	if err := calculator.ValidateAmount(req.Msg.Amount); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	trip, _, err := requireActiveMember(ctx, s.store, req.Msg.TripID, userID)
	if err != nil {
		return nil, err
	}

	members, err := s.store.ListMembers(ctx, trip.ID)
	if err != nil {
		slog.Error("AddExpense failed - could not list members", "trip_id", trip.ID, "error", err)
		return nil, toConnectError(err)
	}
	active := activeMembersInJoinOrder(members)
	profiles := make(map[string]*models.Profile, len(members))
	for _, m := range members {
		if m.Profile != nil {
			profiles[m.UserID] = m.Profile
		}
	}

	payerID := req.Msg.PayerID
	if payerID == "" {
		payerID = userID
	}
	if !slices.Contains(active, payerID) {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("payer %s is not an accepted member", payerID))
	}

	splitType := models.SplitType(req.Msg.SplitType)
	shares, err := allocate(splitType, req.Msg, active)
	if err != nil {
		return nil, toConnectError(err)
	}

	expense := &models.Expense{
		TripID:      trip.ID,
		CreatedBy:   userID,
		PayerID:     payerID,
		Amount:      req.Msg.Amount,
		Currency:    cmp.Or(req.Msg.Currency, trip.Currency),
		Description: req.Msg.Description,
		Date:        cmp.Or(req.Msg.Date, s.now().UTC().Format(models.DateLayout)),
		ReceiptURL:  req.Msg.ReceiptURL,
		SplitType:   splitType,
		Splits:      make([]models.ExpenseSplit, len(shares)),
	}
	for i, share := range shares {
		expense.Splits[i] = models.ExpenseSplit{UserID: share.UserID, ShareAmount: share.Amount}
	}

	if err := s.store.AddExpense(ctx, expense); err != nil {
		slog.Error("AddExpense failed", "trip_id", trip.ID, "error", err)
		return nil, toConnectError(err)
	}
	s.metrics.ExpenseRecorded()

	slog.Info("Expense recorded", "expense_id", expense.ID, "trip_id", trip.ID, "splits", len(expense.Splits))
	return connect.NewResponse(&api.AddExpenseResponse{
		Expense: expenseToAPI(expense, profiles),
	}), nil
}

// ListExpenses returns a trip's expenses, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ListExpenses request received", "trip_id", req.Msg.TripID, "user_id", userID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	if _, _, err := requireActiveMember(ctx, s.store, req.Msg.TripID, userID); err != nil {
		return nil, err
	}

	expenses, err := s.store.ListExpenses(ctx, req.Msg.TripID)
	if err != nil {
		slog.Error("ListExpenses failed", "trip_id", req.Msg.TripID, "error", err)
		return nil, toConnectError(err)
	}

	var ids []string
	for _, e := range expenses {
		ids = append(ids, e.PayerID)
		for _, split := range e.Splits {
			ids = append(ids, split.UserID)
		}
	}
	profiles, err := s.store.GetProfilesByIDs(ctx, uniqueIDs(ids))
	if err != nil {
		slog.Error("ListExpenses failed - could not load profiles", "trip_id", req.Msg.TripID, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*api.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = expenseToAPI(e, profiles)
	}

	slog.Info("ListExpenses successful", "trip_id", req.Msg.TripID, "count", len(out))
	return connect.NewResponse(&api.ListExpensesResponse{Expenses: out}), nil
}

// allocate turns the request into per-member shares. active is the list of
// accepted members in join order.
func allocate(splitType models.SplitType, msg *api.AddExpenseRequest, active []string) ([]calculator.Share, error) {
	switch splitType {
	case models.SplitEqualAll:
		return calculator.EqualSplit(msg.Amount, active)

	case models.SplitEqualSelected:
		selected := make(map[string]bool, len(msg.SelectedUserIDs))
		for _, id := range msg.SelectedUserIDs {
			if selected[id] {
				return nil, fmt.Errorf("%w: %s", calculator.ErrDuplicateParticipant, id)
			}
			if !slices.Contains(active, id) {
				return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%s is not an accepted member", id))
			}
			selected[id] = true
		}
		participants := slices.DeleteFunc(slices.Clone(active), func(id string) bool { return !selected[id] })
		return calculator.EqualSplit(msg.Amount, participants)

	case models.SplitCustom:
		shares := make([]calculator.Share, len(msg.CustomShares))
		for i, cs := range msg.CustomShares {
			if !slices.Contains(active, cs.UserID) {
				return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%s is not an accepted member", cs.UserID))
			}
			shares[i] = calculator.Share{UserID: cs.UserID, Amount: cs.Amount}
		}
		return calculator.CustomSplit(msg.Amount, shares)
	}
	return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown split type %q", splitType))
}

// activeMembersInJoinOrder returns the accepted members' IDs ordered by join
// time, then user ID.
func activeMembersInJoinOrder(members []*storage.MemberWithProfile) []string {
	accepted := make([]*storage.MemberWithProfile, 0, len(members))
	for _, m := range members {
		if m.Status == models.StatusAccepted {
			accepted = append(accepted, m)
		}
	}
	slices.SortFunc(accepted, func(a, b *storage.MemberWithProfile) int {
		return cmp.Or(cmp.Compare(a.JoinedAt, b.JoinedAt), strings.Compare(a.UserID, b.UserID))
	})
	ids := make([]string, len(accepted))
	for i, m := range accepted {
		ids[i] = m.UserID
	}
	return ids
}

func uniqueIDs(ids []string) []string {
	slices.Sort(ids)
	return slices.Compact(ids)
}
