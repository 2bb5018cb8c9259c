package category

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	HasAccess(ctx context.Context, personID, environmentID uuid.UUID) (bool, error)
	ListByEnvironment(ctx context.Context, environmentID uuid.UUID) ([]*Category, error)
	CreateCategory(ctx context.Context, c *Category) error
	UpdateCategory(ctx context.Context, c *Category) error
	DeleteCategory(ctx context.Context, environmentID, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, callerID, environmentID uuid.UUID) ([]*Category, error) {
	if err := s.checkAccess(ctx, callerID, environmentID); err != nil {
		return nil, err
	}

	return s.repo.ListByEnvironment(ctx, environmentID)
}

func (s *Service) Create(ctx context.Context, callerID, environmentID uuid.UUID, name string, color, icon *string) (*Category, error) {
	if err := s.checkAccess(ctx, callerID, environmentID); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	c := &Category{
		EnvironmentID: environmentID,
		Name:          name,
		Color:         color,
		Icon:          icon,
	}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Update(ctx context.Context, callerID, environmentID, id uuid.UUID, name string, color, icon *string) (*Category, error) {
	if err := s.checkAccess(ctx, callerID, environmentID); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	c := &Category{
		ID:            id,
		EnvironmentID: environmentID,
		Name:          name,
		Color:         color,
		Icon:          icon,
	}
	if err := s.repo.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Delete(ctx context.Context, callerID, environmentID, id uuid.UUID) error {
	if err := s.checkAccess(ctx, callerID, environmentID); err != nil {
		return err
	}

	return s.repo.DeleteCategory(ctx, environmentID, id)
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
