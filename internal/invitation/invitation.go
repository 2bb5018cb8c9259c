package invitation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("invalid invitation link")
	ErrExpiredOrUsed = errors.New("invitation has expired or already been used")
	ErrAccessDenied  = errors.New("access denied to this environment")
)

// TTL is how long an invitation stays redeemable.
const TTL = 48 * time.Hour

// Invitation is a single-use, time-boxed capability token granting
// membership to whoever redeems it first.
type Invitation struct {
	ID              uuid.UUID
	EnvironmentID   uuid.UUID
	EnvironmentName string
	Token           string
	ExpiresAt       time.Time
	UsedAt          *time.Time
	CreatedBy       uuid.UUID
	CreatedAt       time.Time
}

// Redeemable reports whether the invitation is still valid at the given time.
func (i *Invitation) Redeemable(now time.Time) bool {
	return i.UsedAt == nil && now.Before(i.ExpiresAt)
}
