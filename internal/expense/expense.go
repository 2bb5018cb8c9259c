package expense

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound            = errors.New("expense not found")
	ErrAccessDenied        = errors.New("access denied to this environment")
	ErrPayerNotMember      = errors.New("payer must be a member of this environment")
	ErrMissingFields       = errors.New("amount, description, expense_date, payer_id and environment_id are required")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrEmptyPatch          = errors.New("no fields to update")
	ErrEnvironmentRequired = errors.New("environment_id is required")
	ErrNothingToCompute    = errors.New("no expenses to compute")
)

// Expense is an active ledger row. Payer and recorder display names are
// loaded via JOIN; the payer need not be the person who recorded the row.
type Expense struct {
	ID               uuid.UUID
	Amount           decimal.Decimal
	Description      string
	ExpenseDate      time.Time
	PayerID          uuid.UUID
	PayerName        string
	RegisteredByID   uuid.UUID
	RegisteredByName string
	EnvironmentID    uuid.UUID
	Category         *CategoryRef
	CreatedAt        time.Time
}

// CategoryRef is the optional category tag attached to an expense.
type CategoryRef struct {
	ID    uuid.UUID
	Name  string
	Color *string
	Icon  *string
}

// ComputedExpense is an archived snapshot of an Expense taken at compute
// time. ExpenseID refers to the original row, which no longer exists.
type ComputedExpense struct {
	ID               uuid.UUID
	ExpenseID        uuid.UUID
	Amount           decimal.Decimal
	Description      string
	ExpenseDate      time.Time
	PayerID          uuid.UUID
	PayerName        string
	RegisteredByID   uuid.UUID
	RegisteredByName string
	EnvironmentID    uuid.UUID
	ComputedByID     uuid.UUID
	ComputedByName   string
	ComputedAt       time.Time
}

// Patch holds the updatable expense fields. Only non-nil fields are written;
// the store translates this into a statement over a fixed column allow-list.
type Patch struct {
	Amount      *decimal.Decimal
	Description *string
	ExpenseDate *time.Time
	PayerID     *uuid.UUID
	CategoryID  *uuid.UUID
}

// Empty reports whether the patch carries no fields.
func (p Patch) Empty() bool {
	return p.Amount == nil && p.Description == nil && p.ExpenseDate == nil &&
		p.PayerID == nil && p.CategoryID == nil
}
