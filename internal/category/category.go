package category

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("category not found")
	ErrAccessDenied = errors.New("access denied to this environment")
	ErrNameRequired = errors.New("name is required")
	ErrNameTaken    = errors.New("category name already exists in this environment")
)

// Category is an optional expense tag owned by an environment.
type Category struct {
	ID            uuid.UUID
	EnvironmentID uuid.UUID
	Name          string
	Color         *string
	Icon          *string
	CreatedAt     time.Time
}
