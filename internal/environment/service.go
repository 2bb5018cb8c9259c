package environment

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=environment
type Repository interface {
	// CreateEnvironment inserts the environment and the creator's membership
	// row in a single transaction, so an environment never exists without at
	// least one member.
	CreateEnvironment(ctx context.Context, env *Environment, creatorID uuid.UUID) error
	GetEnvironment(ctx context.Context, id uuid.UUID) (*Environment, error)
	ListForPerson(ctx context.Context, personID uuid.UUID) ([]*Environment, error)
	HasAccess(ctx context.Context, personID, environmentID uuid.UUID) (bool, error)
	PersonExists(ctx context.Context, personID uuid.UUID) (bool, error)
	AddMember(ctx context.Context, environmentID, personID uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, creatorID uuid.UUID, name string, description *string) (*Environment, error) {
	if name == "" {
		return nil, ErrNameRequired
	}

	env := &Environment{
		Name:        name,
		Description: description,
	}
	if err := s.repo.CreateEnvironment(ctx, env, creatorID); err != nil {
		return nil, err
	}

	return env, nil
}

func (s *Service) List(ctx context.Context, callerID uuid.UUID) ([]*Environment, error) {
	return s.repo.ListForPerson(ctx, callerID)
}

func (s *Service) Get(ctx context.Context, callerID, id uuid.UUID) (*Environment, error) {
	ok, err := s.repo.HasAccess(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, ErrAccessDenied
	}

	return s.repo.GetEnvironment(ctx, id)
}

// HasAccess reports whether the person is a member of the environment.
func (s *Service) HasAccess(ctx context.Context, personID, environmentID uuid.UUID) (bool, error) {
	return s.repo.HasAccess(ctx, personID, environmentID)
}

func (s *Service) AddMember(ctx context.Context, callerID, environmentID, personID uuid.UUID) error {
	ok, err := s.repo.HasAccess(ctx, callerID, environmentID)
	if err != nil {
		return err
	}

	if !ok {
		return ErrAccessDenied
	}

	exists, err := s.repo.PersonExists(ctx, personID)
	if err != nil {
		return err
	}

	if !exists {
		return ErrPersonMissing
	}

	member, err := s.repo.HasAccess(ctx, personID, environmentID)
	if err != nil {
		return err
	}

	if member {
		return ErrAlreadyMember
	}

	return s.repo.AddMember(ctx, environmentID, personID)
}
