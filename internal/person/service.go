package person

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=person
type Repository interface {
	CreatePerson(ctx context.Context, p *Person) error
	GetPerson(ctx context.Context, id uuid.UUID) (*Person, error)
	GetPersonByEmail(ctx context.Context, email string) (*Person, error)
	ListPeople(ctx context.Context) ([]*Person, error)
	ListByEnvironment(ctx context.Context, environmentID uuid.UUID) ([]*Person, error)
	HasAccess(ctx context.Context, personID, environmentID uuid.UUID) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new person with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, name, email, password string) (*Person, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	_, err := s.repo.GetPersonByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	p := &Person{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.repo.CreatePerson(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// Login verifies the credentials. Unknown emails and wrong passwords yield
// the same error.
func (s *Service) Login(ctx context.Context, email, password string) (*Person, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	p, err := s.repo.GetPersonByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Person, error) {
	return s.repo.GetPerson(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Person, error) {
	return s.repo.ListPeople(ctx)
}

// ListInEnvironment returns the members of an environment visible to the
// caller, who must be a member themselves.
func (s *Service) ListInEnvironment(ctx context.Context, callerID, environmentID uuid.UUID) ([]*Person, error) {
	ok, err := s.repo.HasAccess(ctx, callerID, environmentID)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, ErrAccessDenied
	}

	return s.repo.ListByEnvironment(ctx, environmentID)
}
