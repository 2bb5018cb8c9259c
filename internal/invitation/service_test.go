package invitation_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/acasal/gastos/internal/invitation"
)

func TestService_Create(t *testing.T) {
	callerID := uuid.New()
	envID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := invitation.NewMockRepository(ctrl)
		repo.EXPECT().HasAccess(gomock.Any(), callerID, envID).Return(true, nil)
		repo.EXPECT().
			CreateInvitation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv *invitation.Invitation) error {
				inv.ID = uuid.New()
				return nil
			})

		inv, err := invitation.NewService(repo).Create(context.Background(), callerID, envID)
		require.NoError(t, err)
		assert.Len(t, inv.Token, 64)
		assert.WithinDuration(t, time.Now().Add(invitation.TTL), inv.ExpiresAt, time.Minute)
	})

	t.Run("NonMember", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := invitation.NewMockRepository(ctrl)
		repo.EXPECT().HasAccess(gomock.Any(), callerID, envID).Return(false, nil)

		_, err := invitation.NewService(repo).Create(context.Background(), callerID, envID)
		assert.ErrorIs(t, err, invitation.ErrAccessDenied)
	})

	t.Run("UniqueTokens", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := invitation.NewMockRepository(ctrl)
		repo.EXPECT().HasAccess(gomock.Any(), callerID, envID).Return(true, nil).Times(2)
		repo.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		svc := invitation.NewService(repo)
		first, err := svc.Create(context.Background(), callerID, envID)
		require.NoError(t, err)
		second, err := svc.Create(context.Background(), callerID, envID)
		require.NoError(t, err)

		assert.NotEqual(t, first.Token, second.Token)
	})
}

func TestService_Accept(t *testing.T) {
	callerID := uuid.New()
	envID := uuid.New()

	valid := func() *invitation.Invitation {
		return &invitation.Invitation{
			EnvironmentID: envID,
			Token:         "tok",
			ExpiresAt:     time.Now().Add(time.Hour),
		}
	}

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := invitation.NewMockRepository(ctrl)
		repo.EXPECT().GetByToken(gomock.Any(), "tok").Return(valid(), nil)
		repo.EXPECT().Redeem(gomock.Any(), "tok", callerID).Return(nil)

		got, err := invitation.NewService(repo).Accept(context.Background(), callerID, "tok")
		require.NoError(t, err)
		assert.Equal(t, envID, got)
	})

	t.Run("Expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		inv := valid()
		inv.ExpiresAt = time.Now().Add(-time.Hour)

		repo := invitation.NewMockRepository(ctrl)
		repo.EXPECT().GetByToken(gomock.Any(), "tok").Return(inv, nil)

		_, err := invitation.NewService(repo).Accept(context.Background(), callerID, "tok")
		assert.ErrorIs(t, err, invitation.ErrExpiredOrUsed)
	})

	t.Run("AlreadyUsed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		inv := valid()
		usedAt := time.Now().Add(-time.Minute)
		inv.UsedAt = &usedAt

		repo := invitation.NewMockRepository(ctrl)
		repo.EXPECT().GetByToken(gomock.Any(), "tok").Return(inv, nil)

		_, err := invitation.NewService(repo).Accept(context.Background(), callerID, "tok")
		assert.ErrorIs(t, err, invitation.ErrExpiredOrUsed)
	})

	t.Run("UnknownToken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := invitation.NewMockRepository(ctrl)
		repo.EXPECT().GetByToken(gomock.Any(), "nope").Return(nil, invitation.ErrNotFound)

		_, err := invitation.NewService(repo).Accept(context.Background(), callerID, "nope")
		assert.ErrorIs(t, err, invitation.ErrNotFound)
	})
}
