package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Abusha-Ansari/Split-Karo/internal/calculator"
	"github.com/Abusha-Ansari/Split-Karo/internal/models"
)

const expenseColumns = `id, trip_id, created_by, payer_id, amount, currency, description, date, receipt_url, split_type, created_at`

// AddExpense persists an expense and its splits in one transaction.
// It refuses splits that do not add up to the expense amount.
func (s *Store) AddExpense(ctx context.Context, expense *models.Expense) error {
	if len(expense.Splits) == 0 {
		return calculator.ErrNoParticipants
	}
	if total := expense.SplitTotal(); !total.Equal(expense.Amount) {
		return fmt.Errorf("%w: splits total %s, amount is %s", calculator.ErrSplitMismatch, total.StringFixed(2), expense.Amount.StringFixed(2))
	}

	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, tx.Rebind(`
		INSERT INTO expenses (`+expenseColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		expense.ID, expense.TripID, expense.CreatedBy, expense.PayerID,
		expense.Amount.StringFixed(2), expense.Currency, expense.Description, expense.Date,
		expense.ReceiptURL, expense.SplitType, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for i := range expense.Splits {
		split := &expense.Splits[i]
		split.ExpenseID = expense.ID
		_, err = tx.ExecContext(ctx, tx.Rebind(`
			INSERT INTO expense_splits (expense_id, user_id, share_amount) VALUES (?, ?, ?)`),
			split.ExpenseID, split.UserID, split.ShareAmount.StringFixed(2),
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListExpenses retrieves a trip's expenses, newest first, with their splits.
func (s *Store) ListExpenses(ctx context.Context, tripID string) ([]*models.Expense, error) {
	var expenses []*models.Expense
	err := s.db.SelectContext(ctx, &expenses, s.db.Rebind(`
		SELECT `+expenseColumns+` FROM expenses WHERE trip_id = ? ORDER BY date DESC, created_at DESC, id`),
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if len(expenses) == 0 {
		return expenses, nil
	}

	byID := make(map[string]*models.Expense, len(expenses))
	ids := make([]string, len(expenses))
	for i, e := range expenses {
		byID[e.ID] = e
		ids[i] = e.ID
	}

	query, args, err := sqlx.In(`
		SELECT expense_id, user_id, share_amount FROM expense_splits
		WHERE expense_id IN (?) ORDER BY expense_id, user_id`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build split query: %w", err)
	}
	var splits []models.ExpenseSplit
	if err := s.db.SelectContext(ctx, &splits, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list expense splits: %w", err)
	}
	for _, split := range splits {
		e := byID[split.ExpenseID]
		e.Splits = append(e.Splits, split)
	}
	return expenses, nil
}

// ListSplitShares retrieves every split row of a trip joined with its payer.
func (s *Store) ListSplitShares(ctx context.Context, tripID string) ([]models.SplitShareRow, error) {
	var rows []models.SplitShareRow
	err := s.db.SelectContext(ctx, &rows, s.db.Rebind(`
		SELECT es.expense_id, e.payer_id, es.user_id, es.share_amount
		FROM expense_splits es
		JOIN expenses e ON e.id = es.expense_id
		WHERE e.trip_id = ?`),
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list split shares: %w", err)
	}
	return rows, nil
}
