package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/acasal/gastos/internal/expense"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectExpenseColumns = `
	e.id, e.amount, e.description, e.expense_date,
	e.payer_id, p.name, e.registered_by_id, r.name,
	e.environment_id, e.created_at,
	c.id, c.name, c.color, c.icon
`

const expenseJoins = `
	JOIN people p ON p.id = e.payer_id
	JOIN people r ON r.id = e.registered_by_id
	LEFT JOIN expense_categories c ON c.id = e.category_id
`

func scanExpense(s scanner) (*expense.Expense, error) {
	var e expense.Expense

	var (
		categoryID    uuid.NullUUID
		categoryName  sql.NullString
		categoryColor sql.NullString
		categoryIcon  sql.NullString
	)

	err := s.Scan(
		&e.ID, &e.Amount, &e.Description, &e.ExpenseDate,
		&e.PayerID, &e.PayerName, &e.RegisteredByID, &e.RegisteredByName,
		&e.EnvironmentID, &e.CreatedAt,
		&categoryID, &categoryName, &categoryColor, &categoryIcon,
	)
	if err != nil {
		return nil, err
	}

	if categoryID.Valid {
		ref := &expense.CategoryRef{ID: categoryID.UUID, Name: categoryName.String}

		if categoryColor.Valid {
			ref.Color = &categoryColor.String
		}

		if categoryIcon.Valid {
			ref.Icon = &categoryIcon.String
		}

		e.Category = ref
	}

	return &e, nil
}

func (s *Store) HasAccess(ctx context.Context, personID, environmentID uuid.UUID) (bool, error) {
	query := `SELECT 1 FROM environment_people WHERE environment_id = $1 AND person_id = $2`

	var one int

	err := s.db.QueryRowContext(ctx, query, environmentID, personID).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}

		return false, fmt.Errorf("checking access: %w", err)
	}

	return true, nil
}

func (s *Store) ListByEnvironment(ctx context.Context, environmentID uuid.UUID) ([]*expense.Expense, error) {
	query := `
		SELECT ` + selectExpenseColumns + `
		FROM expenses e` + expenseJoins + `
		WHERE e.environment_id = $1
		ORDER BY e.expense_date DESC, e.created_at DESC
	`

	return collectExpenses(s.db.QueryContext(ctx, query, environmentID))
}

// EnvironmentForExpense resolves an expense to its environment through the
// caller's memberships. An expense the caller cannot see and an expense that
// does not exist produce the same ErrNotFound.
func (s *Store) EnvironmentForExpense(ctx context.Context, id, personID uuid.UUID) (uuid.UUID, error) {
	query := `
		SELECT e.environment_id
		FROM expenses e
		JOIN environment_people ep ON ep.environment_id = e.environment_id
		WHERE e.id = $1 AND ep.person_id = $2
	`

	var environmentID uuid.UUID

	err := s.db.QueryRowContext(ctx, query, id, personID).Scan(&environmentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return uuid.Nil, expense.ErrNotFound
		}

		return uuid.Nil, fmt.Errorf("resolving expense: %w", err)
	}

	return environmentID, nil
}

func (s *Store) CreateExpense(ctx context.Context, e *expense.Expense) error {
	query := `
		INSERT INTO expenses (amount, description, expense_date, payer_id, registered_by_id, environment_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	var categoryID *uuid.UUID
	if e.Category != nil {
		categoryID = &e.Category.ID
	}

	err := s.db.QueryRowContext(ctx, query,
		e.Amount, e.Description, e.ExpenseDate,
		e.PayerID, e.RegisteredByID, e.EnvironmentID, categoryID,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	return nil
}

func (s *Store) UpdateExpense(ctx context.Context, id uuid.UUID, patch expense.Patch) error {
	var (
		sets []string
		args []any
	)

	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Amount != nil {
		set("amount", *patch.Amount)
	}

	if patch.Description != nil {
		set("description", *patch.Description)
	}

	if patch.ExpenseDate != nil {
		set("expense_date", *patch.ExpenseDate)
	}

	if patch.PayerID != nil {
		set("payer_id", *patch.PayerID)
	}

	if patch.CategoryID != nil {
		set("category_id", *patch.CategoryID)
	}

	if len(sets) == 0 {
		return expense.ErrEmptyPatch
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE expenses SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating expense: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating expense: %w", err)
	}

	if affected == 0 {
		return expense.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}

	if affected == 0 {
		return expense.ErrNotFound
	}

	return nil
}

func (s *Store) ListComputed(ctx context.Context, environmentID uuid.UUID) ([]*expense.ComputedExpense, error) {
	query := `
		SELECT ce.id, ce.expense_id, ce.amount, ce.description, ce.expense_date,
		       ce.payer_id, p.name, ce.registered_by_id, r.name,
		       ce.environment_id, ce.computed_by_id, cb.name, ce.computed_at
		FROM computed_expenses ce
		JOIN people p ON p.id = ce.payer_id
		JOIN people r ON r.id = ce.registered_by_id
		JOIN people cb ON cb.id = ce.computed_by_id
		WHERE ce.environment_id = $1
		ORDER BY ce.computed_at DESC, ce.expense_date DESC
	`

	rows, err := s.db.QueryContext(ctx, query, environmentID)
	if err != nil {
		return nil, fmt.Errorf("listing computed expenses: %w", err)
	}
	defer rows.Close()

	var computed []*expense.ComputedExpense

	for rows.Next() {
		var ce expense.ComputedExpense

		err := rows.Scan(
			&ce.ID, &ce.ExpenseID, &ce.Amount, &ce.Description, &ce.ExpenseDate,
			&ce.PayerID, &ce.PayerName, &ce.RegisteredByID, &ce.RegisteredByName,
			&ce.EnvironmentID, &ce.ComputedByID, &ce.ComputedByName, &ce.ComputedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning computed expense: %w", err)
		}

		computed = append(computed, &ce)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating computed expenses: %w", err)
	}

	return computed, nil
}

// BeginCompute opens the transaction an archival run happens in.
func (s *Store) BeginCompute(ctx context.Context) (expense.ComputeTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}

	return &computeTx{tx: tx}, nil
}

type computeTx struct {
	tx *sql.Tx
}

// Snapshot reads the environment's active expenses oldest first and locks
// them for the rest of the transaction, so two concurrent runs cannot
// archive the same rows twice.
func (t *computeTx) Snapshot(ctx context.Context, environmentID uuid.UUID) ([]*expense.Expense, error) {
	query := `
		SELECT ` + selectExpenseColumns + `
		FROM expenses e` + expenseJoins + `
		WHERE e.environment_id = $1
		ORDER BY e.expense_date ASC, e.created_at ASC
		FOR UPDATE OF e
	`

	return collectExpenses(t.tx.QueryContext(ctx, query, environmentID))
}

func (t *computeTx) Archive(ctx context.Context, snapshot []*expense.Expense, computedByID uuid.UUID) error {
	query := `
		INSERT INTO computed_expenses (expense_id, amount, description, expense_date, payer_id, registered_by_id, environment_id, computed_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, e := range snapshot {
		_, err := t.tx.ExecContext(ctx, query,
			e.ID, e.Amount, e.Description, e.ExpenseDate,
			e.PayerID, e.RegisteredByID, e.EnvironmentID, computedByID,
		)
		if err != nil {
			return fmt.Errorf("archiving expense %s: %w", e.ID, err)
		}
	}

	return nil
}

// DeleteSnapshot removes exactly the snapshot rows. Deleting by id rather
// than by environment keeps an expense committed after the snapshot out of
// the delete's view; it stays in the active ledger for the next run.
func (t *computeTx) DeleteSnapshot(ctx context.Context, snapshot []*expense.Expense) error {
	ids := make([]string, len(snapshot))
	for i, e := range snapshot {
		ids[i] = e.ID.String()
	}

	_, err := t.tx.ExecContext(ctx, `DELETE FROM expenses WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return fmt.Errorf("deleting archived expenses: %w", err)
	}

	return nil
}

func (t *computeTx) Commit() error {
	return t.tx.Commit()
}

func (t *computeTx) Rollback() error {
	return t.tx.Rollback()
}

func collectExpenses(rows *sql.Rows, err error) ([]*expense.Expense, error) {
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*expense.Expense

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expenses: %w", err)
	}

	return expenses, nil
}
