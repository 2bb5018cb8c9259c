package category_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/acasal/gastos/internal/category"
)

func TestService_Create(t *testing.T) {
	callerID := uuid.New()
	envID := uuid.New()

	type testCase struct {
		name      string
		catName   string
		setupMock func(m *category.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:    "Success",
			catName: "Groceries",
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().HasAccess(gomock.Any(), callerID, envID).Return(true, nil)
				m.EXPECT().
					CreateCategory(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *category.Category) error {
						c.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name:    "TrimsName",
			catName: "  Groceries  ",
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().HasAccess(gomock.Any(), callerID, envID).Return(true, nil)
				m.EXPECT().
					CreateCategory(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *category.Category) error {
						assert.Equal(t, "Groceries", c.Name)
						return nil
					})
			},
		},
		{
			name:    "BlankName",
			catName: "   ",
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().HasAccess(gomock.Any(), callerID, envID).Return(true, nil)
			},
			wantErr: category.ErrNameRequired,
		},
		{
			name:    "NonMember",
			catName: "Groceries",
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().HasAccess(gomock.Any(), callerID, envID).Return(false, nil)
			},
			wantErr: category.ErrAccessDenied,
		},
		{
			name:    "DuplicateName",
			catName: "Groceries",
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().HasAccess(gomock.Any(), callerID, envID).Return(true, nil)
				m.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).Return(category.ErrNameTaken)
			},
			wantErr: category.ErrNameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := category.NewMockRepository(ctrl)
			tt.setupMock(repo)

			got, err := category.NewService(repo).Create(context.Background(), callerID, envID, tt.catName, nil, nil)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, envID, got.EnvironmentID)
		})
	}
}

func TestService_Delete(t *testing.T) {
	callerID := uuid.New()
	envID := uuid.New()
	catID := uuid.New()

	t.Run("NonMember", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := category.NewMockRepository(ctrl)
		repo.EXPECT().HasAccess(gomock.Any(), callerID, envID).Return(false, nil)

		err := category.NewService(repo).Delete(context.Background(), callerID, envID, catID)
		assert.ErrorIs(t, err, category.ErrAccessDenied)
	})

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := category.NewMockRepository(ctrl)
		repo.EXPECT().HasAccess(gomock.Any(), callerID, envID).Return(true, nil)
		repo.EXPECT().DeleteCategory(gomock.Any(), envID, catID).Return(nil)

		assert.NoError(t, category.NewService(repo).Delete(context.Background(), callerID, envID, catID))
	})
}
