package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Create(t *testing.T) {
	callerID := uuid.New()
	payerID := uuid.New()
	environmentID := uuid.New()
	categoryID := uuid.New()

	valid := CreateParams{
		Amount:        decimal.RequireFromString("42.50"),
		Description:   "Groceries",
		ExpenseDate:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		PayerID:       payerID,
		EnvironmentID: environmentID,
	}

	tests := []struct {
		name    string
		params  CreateParams
		setup   func(repo *MockRepository)
		wantErr error
	}{
		{
			name:   "Success",
			params: valid,
			setup: func(repo *MockRepository) {
				repo.EXPECT().HasAccess(gomock.Any(), callerID, environmentID).Return(true, nil)
				repo.EXPECT().HasAccess(gomock.Any(), payerID, environmentID).Return(true, nil)
				repo.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *Expense) error {
						e.ID = uuid.New()
						e.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "SuccessWithCategory",
			params: func() CreateParams {
				p := valid
				p.CategoryID = &categoryID
				return p
			}(),
			setup: func(repo *MockRepository) {
				repo.EXPECT().HasAccess(gomock.Any(), callerID, environmentID).Return(true, nil)
				repo.EXPECT().HasAccess(gomock.Any(), payerID, environmentID).Return(true, nil)
				repo.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *Expense) error {
						require.NotNil(t, e.Category)
						assert.Equal(t, categoryID, e.Category.ID)
						return nil
					})
			},
		},
		{
			name: "MissingDescription",
			params: func() CreateParams {
				p := valid
				p.Description = ""
				return p
			}(),
			setup:   func(repo *MockRepository) {},
			wantErr: ErrMissingFields,
		},
		{
			name: "MissingDate",
			params: func() CreateParams {
				p := valid
				p.ExpenseDate = time.Time{}
				return p
			}(),
			setup:   func(repo *MockRepository) {},
			wantErr: ErrMissingFields,
		},
		{
			name: "ZeroAmount",
			params: func() CreateParams {
				p := valid
				p.Amount = decimal.Zero
				return p
			}(),
			setup:   func(repo *MockRepository) {},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "NegativeAmount",
			params: func() CreateParams {
				p := valid
				p.Amount = decimal.RequireFromString("-5")
				return p
			}(),
			setup:   func(repo *MockRepository) {},
			wantErr: ErrInvalidAmount,
		},
		{
			name:   "CallerNotMember",
			params: valid,
			setup: func(repo *MockRepository) {
				repo.EXPECT().HasAccess(gomock.Any(), callerID, environmentID).Return(false, nil)
			},
			wantErr: ErrAccessDenied,
		},
		{
			name:   "PayerNotMember",
			params: valid,
			setup: func(repo *MockRepository) {
				repo.EXPECT().HasAccess(gomock.Any(), callerID, environmentID).Return(true, nil)
				repo.EXPECT().HasAccess(gomock.Any(), payerID, environmentID).Return(false, nil)
			},
			wantErr: ErrPayerNotMember,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := NewMockRepository(ctrl)
			tt.setup(repo)

			svc := NewService(repo)

			e, err := svc.Create(context.Background(), callerID, tt.params)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, callerID, e.RegisteredByID)
			assert.Equal(t, tt.params.PayerID, e.PayerID)
		})
	}
}

func TestService_Update(t *testing.T) {
	callerID := uuid.New()
	environmentID := uuid.New()
	expenseID := uuid.New()

	description := "Dinner"
	newPayer := uuid.New()
	negative := decimal.RequireFromString("-1")

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		patch := Patch{Description: &description}

		repo.EXPECT().EnvironmentForExpense(gomock.Any(), expenseID, callerID).Return(environmentID, nil)
		repo.EXPECT().UpdateExpense(gomock.Any(), expenseID, patch).Return(nil)

		err := NewService(repo).Update(context.Background(), callerID, expenseID, patch)
		require.NoError(t, err)
	})

	t.Run("NotVisible", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().EnvironmentForExpense(gomock.Any(), expenseID, callerID).
			Return(uuid.Nil, ErrNotFound)

		err := NewService(repo).Update(context.Background(), callerID, expenseID, Patch{Description: &description})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("PayerNotMember", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().EnvironmentForExpense(gomock.Any(), expenseID, callerID).Return(environmentID, nil)
		repo.EXPECT().HasAccess(gomock.Any(), newPayer, environmentID).Return(false, nil)

		err := NewService(repo).Update(context.Background(), callerID, expenseID, Patch{PayerID: &newPayer})
		require.ErrorIs(t, err, ErrPayerNotMember)
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().EnvironmentForExpense(gomock.Any(), expenseID, callerID).Return(environmentID, nil)

		err := NewService(repo).Update(context.Background(), callerID, expenseID, Patch{Amount: &negative})
		require.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("EmptyPatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().EnvironmentForExpense(gomock.Any(), expenseID, callerID).Return(environmentID, nil)

		err := NewService(repo).Update(context.Background(), callerID, expenseID, Patch{})
		require.ErrorIs(t, err, ErrEmptyPatch)
	})
}

func TestService_Delete(t *testing.T) {
	callerID := uuid.New()
	expenseID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().EnvironmentForExpense(gomock.Any(), expenseID, callerID).Return(uuid.New(), nil)
		repo.EXPECT().DeleteExpense(gomock.Any(), expenseID).Return(nil)

		err := NewService(repo).Delete(context.Background(), callerID, expenseID)
		require.NoError(t, err)
	})

	t.Run("NotVisible", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().EnvironmentForExpense(gomock.Any(), expenseID, callerID).
			Return(uuid.Nil, ErrNotFound)

		err := NewService(repo).Delete(context.Background(), callerID, expenseID)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_Compute(t *testing.T) {
	callerID := uuid.New()
	environmentID := uuid.New()

	snapshot := []*Expense{
		{ID: uuid.New(), Amount: decimal.RequireFromString("10.00")},
		{ID: uuid.New(), Amount: decimal.RequireFromString("25.50")},
	}

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)
		tx := NewMockComputeTx(ctrl)

		repo.EXPECT().HasAccess(gomock.Any(), callerID, environmentID).Return(true, nil)
		repo.EXPECT().BeginCompute(gomock.Any()).Return(tx, nil)
		tx.EXPECT().Snapshot(gomock.Any(), environmentID).Return(snapshot, nil)
		tx.EXPECT().Archive(gomock.Any(), snapshot, callerID).Return(nil)
		tx.EXPECT().DeleteSnapshot(gomock.Any(), snapshot).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(errors.New("tx already committed"))

		got, err := NewService(repo).Compute(context.Background(), callerID, environmentID)
		require.NoError(t, err)
		assert.Equal(t, snapshot, got)
	})

	t.Run("EmptyLedger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)
		tx := NewMockComputeTx(ctrl)

		repo.EXPECT().HasAccess(gomock.Any(), callerID, environmentID).Return(true, nil)
		repo.EXPECT().BeginCompute(gomock.Any()).Return(tx, nil)
		tx.EXPECT().Snapshot(gomock.Any(), environmentID).Return(nil, nil)
		tx.EXPECT().Rollback().Return(nil)

		_, err := NewService(repo).Compute(context.Background(), callerID, environmentID)
		require.ErrorIs(t, err, ErrNothingToCompute)
	})

	t.Run("ArchiveFailureRollsBack", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)
		tx := NewMockComputeTx(ctrl)

		repo.EXPECT().HasAccess(gomock.Any(), callerID, environmentID).Return(true, nil)
		repo.EXPECT().BeginCompute(gomock.Any()).Return(tx, nil)
		tx.EXPECT().Snapshot(gomock.Any(), environmentID).Return(snapshot, nil)
		tx.EXPECT().Archive(gomock.Any(), snapshot, callerID).Return(errors.New("insert failed"))
		tx.EXPECT().Rollback().Return(nil)

		_, err := NewService(repo).Compute(context.Background(), callerID, environmentID)
		require.Error(t, err)
	})

	t.Run("DeleteFailureRollsBack", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)
		tx := NewMockComputeTx(ctrl)

		repo.EXPECT().HasAccess(gomock.Any(), callerID, environmentID).Return(true, nil)
		repo.EXPECT().BeginCompute(gomock.Any()).Return(tx, nil)
		tx.EXPECT().Snapshot(gomock.Any(), environmentID).Return(snapshot, nil)
		tx.EXPECT().Archive(gomock.Any(), snapshot, callerID).Return(nil)
		tx.EXPECT().DeleteSnapshot(gomock.Any(), snapshot).Return(errors.New("delete failed"))
		tx.EXPECT().Rollback().Return(nil)

		_, err := NewService(repo).Compute(context.Background(), callerID, environmentID)
		require.Error(t, err)
	})

	t.Run("NonMember", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().HasAccess(gomock.Any(), callerID, environmentID).Return(false, nil)

		_, err := NewService(repo).Compute(context.Background(), callerID, environmentID)
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("MissingEnvironment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		_, err := NewService(repo).Compute(context.Background(), callerID, uuid.Nil)
		require.ErrorIs(t, err, ErrEnvironmentRequired)
	})
}

func TestService_List(t *testing.T) {
	callerID := uuid.New()
	environmentID := uuid.New()

	t.Run("MissingEnvironment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		_, err := NewService(repo).List(context.Background(), callerID, uuid.Nil)
		require.ErrorIs(t, err, ErrEnvironmentRequired)
	})

	t.Run("NonMember", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().HasAccess(gomock.Any(), callerID, environmentID).Return(false, nil)

		_, err := NewService(repo).List(context.Background(), callerID, environmentID)
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		expenses := []*Expense{{ID: uuid.New()}}

		repo.EXPECT().HasAccess(gomock.Any(), callerID, environmentID).Return(true, nil)
		repo.EXPECT().ListByEnvironment(gomock.Any(), environmentID).Return(expenses, nil)

		got, err := NewService(repo).List(context.Background(), callerID, environmentID)
		require.NoError(t, err)
		assert.Equal(t, expenses, got)
	})
}
