package sqlstore

import (
	"context"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abusha-Ansari/Split-Karo/internal/calculator"
	"github.com/Abusha-Ansari/Split-Karo/internal/models"
	"github.com/Abusha-Ansari/Split-Karo/internal/storage"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewWithDB(sqlx.NewDb(db, "sqlmock")), mock
}

func TestAddExpense_RollsBackOnSplitFailure(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO expenses").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO expense_splits").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := store.AddExpense(context.Background(), &models.Expense{
		TripID: "t1", CreatedBy: "u1", PayerID: "u1",
		Amount: dec("20"), Currency: "USD", Description: "Taxi", Date: "2025-01-10",
		SplitType: models.SplitEqualAll,
		Splits: []models.ExpenseSplit{
			{UserID: "u1", ShareAmount: dec("10")},
			{UserID: "u2", ShareAmount: dec("10")},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddExpense_MismatchNeverTouchesDB(t *testing.T) {
	store, mock := newMockStore(t)

	err := store.AddExpense(context.Background(), &models.Expense{
		Amount: dec("20"),
		Splits: []models.ExpenseSplit{{UserID: "u1", ShareAmount: dec("19")}},
	})
	assert.ErrorIs(t, err, calculator.ErrSplitMismatch)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTrip_RollsBackWhenLeaderInsertFails(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO trips").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO trip_members").WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := store.CreateTrip(context.Background(), &models.Trip{Name: "Goa", LeaderID: "u1"})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTrip_Commits(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO trips").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO trip_members").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	trip := &models.Trip{Name: "Goa", LeaderID: "u1"}
	require.NoError(t, store.CreateTrip(context.Background(), trip))
	assert.NotEmpty(t, trip.InviteCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTrip_NoRowsIsNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("DELETE FROM trips").WithArgs("missing").WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.DeleteTrip(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
