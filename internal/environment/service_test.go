package environment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/acasal/gastos/internal/environment"
)

func TestService_Create(t *testing.T) {
	creatorID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := environment.NewMockRepository(ctrl)
		repo.EXPECT().
			CreateEnvironment(gomock.Any(), gomock.Any(), creatorID).
			DoAndReturn(func(_ context.Context, env *environment.Environment, _ uuid.UUID) error {
				env.ID = uuid.New()
				return nil
			})

		env, err := environment.NewService(repo).Create(context.Background(), creatorID, "Casa", nil)
		require.NoError(t, err)
		assert.NotEmpty(t, env.ID)
		assert.Equal(t, "Casa", env.Name)
	})

	t.Run("MissingName", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := environment.NewMockRepository(ctrl)

		_, err := environment.NewService(repo).Create(context.Background(), creatorID, "", nil)
		assert.ErrorIs(t, err, environment.ErrNameRequired)
	})

	t.Run("RepoError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := environment.NewMockRepository(ctrl)
		repo.EXPECT().
			CreateEnvironment(gomock.Any(), gomock.Any(), creatorID).
			Return(errors.New("db error"))

		_, err := environment.NewService(repo).Create(context.Background(), creatorID, "Casa", nil)
		assert.Error(t, err)
	})
}

func TestService_Get(t *testing.T) {
	callerID := uuid.New()
	envID := uuid.New()

	t.Run("AccessDenied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := environment.NewMockRepository(ctrl)
		repo.EXPECT().HasAccess(gomock.Any(), callerID, envID).Return(false, nil)

		_, err := environment.NewService(repo).Get(context.Background(), callerID, envID)
		assert.ErrorIs(t, err, environment.ErrAccessDenied)
	})

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := environment.NewMockRepository(ctrl)
		repo.EXPECT().HasAccess(gomock.Any(), callerID, envID).Return(true, nil)
		repo.EXPECT().GetEnvironment(gomock.Any(), envID).
			Return(&environment.Environment{ID: envID, Name: "Casa"}, nil)

		env, err := environment.NewService(repo).Get(context.Background(), callerID, envID)
		require.NoError(t, err)
		assert.Equal(t, envID, env.ID)
	})
}

func TestService_AddMember(t *testing.T) {
	callerID := uuid.New()
	envID := uuid.New()
	newID := uuid.New()

	type testCase struct {
		name      string
		setupMock func(m *environment.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *environment.MockRepository) {
				m.EXPECT().HasAccess(gomock.Any(), callerID, envID).Return(true, nil)
				m.EXPECT().PersonExists(gomock.Any(), newID).Return(true, nil)
				m.EXPECT().HasAccess(gomock.Any(), newID, envID).Return(false, nil)
				m.EXPECT().AddMember(gomock.Any(), envID, newID).Return(nil)
			},
		},
		{
			name: "CallerNotMember",
			setupMock: func(m *environment.MockRepository) {
				m.EXPECT().HasAccess(gomock.Any(), callerID, envID).Return(false, nil)
			},
			wantErr: environment.ErrAccessDenied,
		},
		{
			name: "PersonMissing",
			setupMock: func(m *environment.MockRepository) {
				m.EXPECT().HasAccess(gomock.Any(), callerID, envID).Return(true, nil)
				m.EXPECT().PersonExists(gomock.Any(), newID).Return(false, nil)
			},
			wantErr: environment.ErrPersonMissing,
		},
		{
			name: "AlreadyMember",
			setupMock: func(m *environment.MockRepository) {
				m.EXPECT().HasAccess(gomock.Any(), callerID, envID).Return(true, nil)
				m.EXPECT().PersonExists(gomock.Any(), newID).Return(true, nil)
				m.EXPECT().HasAccess(gomock.Any(), newID, envID).Return(true, nil)
			},
			wantErr: environment.ErrAlreadyMember,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := environment.NewMockRepository(ctrl)
			tt.setupMock(repo)

			err := environment.NewService(repo).AddMember(context.Background(), callerID, envID, newID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}
