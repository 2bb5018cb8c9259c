package store

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expenseColumns() []string {
	return []string{
		"id", "amount", "description", "expense_date",
		"payer_id", "payer_name", "registered_by_id", "registered_by_name",
		"environment_id", "created_at",
		"category_id", "category_name", "category_color", "category_icon",
	}
}

func expenseRow(description string, expenseDate time.Time) []driver.Value {
	return []driver.Value{
		uuid.New().String(), "50.00", description, expenseDate,
		uuid.New().String(), "Ana", uuid.New().String(), "Ana",
		uuid.New().String(), time.Now(),
		nil, nil, nil, nil,
	}
}

func TestStore_ListByEnvironment_OrdersNewestFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	environmentID := uuid.New()

	rows := sqlmock.NewRows(expenseColumns()).
		AddRow(expenseRow("newest", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))...).
		AddRow(expenseRow("oldest", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))...)

	mock.ExpectQuery(`ORDER BY e.expense_date DESC, e.created_at DESC`).
		WithArgs(environmentID.String()).
		WillReturnRows(rows)

	expenses, err := New(db).ListByEnvironment(context.Background(), environmentID)
	require.NoError(t, err)
	require.Len(t, expenses, 2)

	assert.Equal(t, "newest", expenses[0].Description)
	assert.Equal(t, "oldest", expenses[1].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComputeTx_Snapshot_OrdersOldestFirstAndLocks(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	environmentID := uuid.New()

	rows := sqlmock.NewRows(expenseColumns()).
		AddRow(expenseRow("oldest", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))...).
		AddRow(expenseRow("newest", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))...)

	mock.ExpectBegin()
	mock.ExpectQuery(`ORDER BY e.expense_date ASC, e.created_at ASC FOR UPDATE OF e`).
		WithArgs(environmentID.String()).
		WillReturnRows(rows)

	tx, err := New(db).BeginCompute(context.Background())
	require.NoError(t, err)

	snapshot, err := tx.Snapshot(context.Background(), environmentID)
	require.NoError(t, err)
	require.Len(t, snapshot, 2)

	assert.Equal(t, "oldest", snapshot[0].Description)
	assert.Equal(t, "newest", snapshot[1].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// passthroughConverter lets slice arguments reach the expectations untouched,
// the way the pgx driver accepts them.
type passthroughConverter struct{}

func (passthroughConverter) ConvertValue(v any) (driver.Value, error) {
	return driver.Value(v), nil
}

func TestComputeTx_DeleteSnapshot_DeletesByID(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.ValueConverterOption(passthroughConverter{}))
	require.NoError(t, err)
	defer db.Close()

	environmentID := uuid.New()

	rows := sqlmock.NewRows(expenseColumns()).
		AddRow(expenseRow("groceries", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))...).
		AddRow(expenseRow("internet", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))...)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM expenses e`).WillReturnRows(rows)

	tx, err := New(db).BeginCompute(context.Background())
	require.NoError(t, err)

	snapshot, err := tx.Snapshot(context.Background(), environmentID)
	require.NoError(t, err)
	require.Len(t, snapshot, 2)

	// A row inserted after the snapshot must survive the delete, so the
	// statement targets the snapshot ids, never the whole environment.
	mock.ExpectExec(`DELETE FROM expenses WHERE id = ANY\(\$1::uuid\[\]\)`).
		WithArgs([]string{snapshot[0].ID.String(), snapshot[1].ID.String()}).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, tx.DeleteSnapshot(context.Background(), snapshot))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
