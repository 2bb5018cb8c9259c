package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expense
type Repository interface {
	HasAccess(ctx context.Context, personID, environmentID uuid.UUID) (bool, error)
	ListByEnvironment(ctx context.Context, environmentID uuid.UUID) ([]*Expense, error)
	// EnvironmentForExpense resolves the expense's environment through a join
	// against the caller's memberships, so an unknown id and a foreign id are
	// both ErrNotFound.
	EnvironmentForExpense(ctx context.Context, id, personID uuid.UUID) (uuid.UUID, error)
	CreateExpense(ctx context.Context, e *Expense) error
	UpdateExpense(ctx context.Context, id uuid.UUID, patch Patch) error
	DeleteExpense(ctx context.Context, id uuid.UUID) error
	ListComputed(ctx context.Context, environmentID uuid.UUID) ([]*ComputedExpense, error)

	BeginCompute(ctx context.Context) (ComputeTx, error)
}

// ComputeTx is the transaction the archival run happens in. The delete takes
// the snapshot's ids rather than the environment, so a row inserted after the
// snapshot survives for the next run instead of being dropped unarchived.
type ComputeTx interface {
	Snapshot(ctx context.Context, environmentID uuid.UUID) ([]*Expense, error)
	Archive(ctx context.Context, snapshot []*Expense, computedByID uuid.UUID) error
	DeleteSnapshot(ctx context.Context, snapshot []*Expense) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Amount        decimal.Decimal
	Description   string
	ExpenseDate   time.Time
	PayerID       uuid.UUID
	EnvironmentID uuid.UUID
	CategoryID    *uuid.UUID
}

// List returns the active expenses of an environment, most recent first.
func (s *Service) List(ctx context.Context, callerID, environmentID uuid.UUID) ([]*Expense, error) {
	if environmentID == uuid.Nil {
		return nil, ErrEnvironmentRequired
	}

	if err := s.checkAccess(ctx, callerID, environmentID); err != nil {
		return nil, err
	}

	return s.repo.ListByEnvironment(ctx, environmentID)
}

// Create records a new expense with the caller as recorder. The payer may be
// any member of the environment, not just the caller.
func (s *Service) Create(ctx context.Context, callerID uuid.UUID, params CreateParams) (*Expense, error) {
	if params.Description == "" || params.ExpenseDate.IsZero() ||
		params.PayerID == uuid.Nil || params.EnvironmentID == uuid.Nil {
		return nil, ErrMissingFields
	}

	if !params.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	if err := s.checkAccess(ctx, callerID, params.EnvironmentID); err != nil {
		return nil, err
	}

	payerMember, err := s.repo.HasAccess(ctx, params.PayerID, params.EnvironmentID)
	if err != nil {
		return nil, err
	}

	if !payerMember {
		return nil, ErrPayerNotMember
	}

	e := &Expense{
		Amount:         params.Amount,
		Description:    params.Description,
		ExpenseDate:    params.ExpenseDate,
		PayerID:        params.PayerID,
		RegisteredByID: callerID,
		EnvironmentID:  params.EnvironmentID,
	}
	if params.CategoryID != nil {
		e.Category = &CategoryRef{ID: *params.CategoryID}
	}

	if err := s.repo.CreateExpense(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

// Update applies a partial update. The expense is resolved through the
// caller's memberships, so a foreign expense looks identical to a missing
// one. A payer change re-validates membership in the expense's environment.
func (s *Service) Update(ctx context.Context, callerID, id uuid.UUID, patch Patch) error {
	environmentID, err := s.repo.EnvironmentForExpense(ctx, id, callerID)
	if err != nil {
		return err
	}

	if patch.PayerID != nil {
		payerMember, err := s.repo.HasAccess(ctx, *patch.PayerID, environmentID)
		if err != nil {
			return err
		}

		if !payerMember {
			return ErrPayerNotMember
		}
	}

	if patch.Amount != nil && !patch.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	if patch.Empty() {
		return ErrEmptyPatch
	}

	return s.repo.UpdateExpense(ctx, id, patch)
}

// Delete hard-deletes an expense, subject to the same lookup as Update.
func (s *Service) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	if _, err := s.repo.EnvironmentForExpense(ctx, id, callerID); err != nil {
		return err
	}

	return s.repo.DeleteExpense(ctx, id)
}

// ListComputed returns the archived ledger of an environment.
func (s *Service) ListComputed(ctx context.Context, callerID, environmentID uuid.UUID) ([]*ComputedExpense, error) {
	if environmentID == uuid.Nil {
		return nil, ErrEnvironmentRequired
	}

	if err := s.checkAccess(ctx, callerID, environmentID); err != nil {
		return nil, err
	}

	return s.repo.ListComputed(ctx, environmentID)
}

// Compute archives the environment's entire active ledger: within one
// transaction it snapshots every expense (oldest first), copies each row to
// the computed ledger stamped with the caller and the compute time, and
// deletes the snapshot rows. Any failure before commit rolls the whole run
// back; an empty ledger is rejected without committing anything. The
// returned snapshot is what the caller should export, since the active rows
// are gone once Compute returns.
func (s *Service) Compute(ctx context.Context, callerID, environmentID uuid.UUID) ([]*Expense, error) {
	if environmentID == uuid.Nil {
		return nil, ErrEnvironmentRequired
	}

	if err := s.checkAccess(ctx, callerID, environmentID); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginCompute(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin compute: %w", err)
	}
	defer tx.Rollback()

	snapshot, err := tx.Snapshot(ctx, environmentID)
	if err != nil {
		return nil, fmt.Errorf("snapshot expenses: %w", err)
	}

	if len(snapshot) == 0 {
		return nil, ErrNothingToCompute
	}

	if err := tx.Archive(ctx, snapshot, callerID); err != nil {
		return nil, fmt.Errorf("archive expenses: %w", err)
	}

	if err := tx.DeleteSnapshot(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("delete archived expenses: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit compute: %w", err)
	}

	return snapshot, nil
}

func (s *Service) checkAccess(ctx context.Context, callerID, environmentID uuid.UUID) error {
	ok, err := s.repo.HasAccess(ctx, callerID, environmentID)
	if err != nil {
		return err
	}

	if !ok {
		return ErrAccessDenied
	}

	return nil
}
