package environment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("environment not found")
	ErrAccessDenied  = errors.New("access denied to this environment")
	ErrNameRequired  = errors.New("name is required")
	ErrPersonMissing = errors.New("person not found")
	ErrAlreadyMember = errors.New("person already in this environment")
)

// Environment is a sharing group scoping expenses and membership.
type Environment struct {
	ID          uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
}
