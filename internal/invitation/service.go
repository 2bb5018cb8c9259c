package invitation

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invitation
type Repository interface {
	HasAccess(ctx context.Context, personID, environmentID uuid.UUID) (bool, error)
	CreateInvitation(ctx context.Context, inv *Invitation) error
	GetByToken(ctx context.Context, token string) (*Invitation, error)
	// Redeem adds the person to the invitation's environment (if not already
	// a member) and stamps used_at, in a single transaction.
	Redeem(ctx context.Context, token string, personID uuid.UUID) error
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create issues a new invitation token for the environment, valid for 48h.
func (s *Service) Create(ctx context.Context, callerID, environmentID uuid.UUID) (*Invitation, error) {
	ok, err := s.repo.HasAccess(ctx, callerID, environmentID)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, ErrAccessDenied
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	inv := &Invitation{
		EnvironmentID: environmentID,
		Token:         token,
		ExpiresAt:     s.now().Add(TTL),
		CreatedBy:     callerID,
	}
	if err := s.repo.CreateInvitation(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

// Inspect returns the invitation for a token if it is still redeemable.
func (s *Service) Inspect(ctx context.Context, token string) (*Invitation, error) {
	inv, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if !inv.Redeemable(s.now()) {
		return nil, ErrExpiredOrUsed
	}

	return inv, nil
}

// Accept redeems the token for the caller, granting membership.
func (s *Service) Accept(ctx context.Context, callerID uuid.UUID, token string) (uuid.UUID, error) {
	inv, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		return uuid.Nil, err
	}

	if !inv.Redeemable(s.now()) {
		return uuid.Nil, ErrExpiredOrUsed
	}

	if err := s.repo.Redeem(ctx, token, callerID); err != nil {
		return uuid.Nil, err
	}

	return inv.EnvironmentID, nil
}

func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
