package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/acasal/gastos/internal/invitation"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) HasAccess(ctx context.Context, personID, environmentID uuid.UUID) (bool, error) {
	query := `SELECT 1 FROM environment_people WHERE environment_id = $1 AND person_id = $2`

	var one int

	err := s.db.QueryRowContext(ctx, query, environmentID, personID).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}

		return false, fmt.Errorf("checking access: %w", err)
	}

	return true, nil
}

func (s *Store) CreateInvitation(ctx context.Context, inv *invitation.Invitation) error {
	query := `
		INSERT INTO environment_invitations (environment_id, token, expires_at, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		inv.EnvironmentID, inv.Token, inv.ExpiresAt, inv.CreatedBy,
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating invitation: %w", err)
	}

	return nil
}

func (s *Store) GetByToken(ctx context.Context, token string) (*invitation.Invitation, error) {
	query := `
		SELECT i.id, i.environment_id, e.name, i.token, i.expires_at, i.used_at, i.created_by, i.created_at
		FROM environment_invitations i
		INNER JOIN environments e ON i.environment_id = e.id
		WHERE i.token = $1
	`

	var inv invitation.Invitation

	var usedAt sql.NullTime

	err := s.db.QueryRowContext(ctx, query, token).Scan(
		&inv.ID, &inv.EnvironmentID, &inv.EnvironmentName, &inv.Token,
		&inv.ExpiresAt, &usedAt, &inv.CreatedBy, &inv.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, invitation.ErrNotFound
		}

		return nil, fmt.Errorf("getting invitation: %w", err)
	}

	if usedAt.Valid {
		inv.UsedAt = &usedAt.Time
	}

	return &inv, nil
}

// Redeem grants membership and burns the token atomically. The membership
// insert tolerates an existing row so accepting an invitation to an
// environment you already belong to only burns the token.
func (s *Store) Redeem(ctx context.Context, token string, personID uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var environmentID uuid.UUID

	err = tx.QueryRowContext(ctx,
		`SELECT environment_id FROM environment_invitations WHERE token = $1 AND used_at IS NULL FOR UPDATE`,
		token,
	).Scan(&environmentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return invitation.ErrExpiredOrUsed
		}

		return fmt.Errorf("locking invitation: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO environment_people (environment_id, person_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		environmentID, personID,
	)
	if err != nil {
		return fmt.Errorf("adding member: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE environment_invitations SET used_at = NOW() WHERE token = $1`,
		token,
	)
	if err != nil {
		return fmt.Errorf("marking invitation used: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
