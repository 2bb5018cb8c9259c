package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/acasal/gastos/internal/environment"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEnvironment(s scanner) (*environment.Environment, error) {
	var env environment.Environment

	var description sql.NullString

	if err := s.Scan(&env.ID, &env.Name, &description, &env.CreatedAt); err != nil {
		return nil, err
	}

	if description.Valid {
		env.Description = &description.String
	}

	return &env, nil
}

func (s *Store) CreateEnvironment(ctx context.Context, env *environment.Environment, creatorID uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO environments (name, description) VALUES ($1, $2) RETURNING id, created_at`,
		env.Name, env.Description,
	).Scan(&env.ID, &env.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating environment: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO environment_people (environment_id, person_id) VALUES ($1, $2)`,
		env.ID, creatorID,
	)
	if err != nil {
		return fmt.Errorf("adding creator membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) GetEnvironment(ctx context.Context, id uuid.UUID) (*environment.Environment, error) {
	query := `SELECT id, name, description, created_at FROM environments WHERE id = $1`

	env, err := scanEnvironment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, environment.ErrNotFound
		}

		return nil, fmt.Errorf("getting environment: %w", err)
	}

	return env, nil
}

func (s *Store) ListForPerson(ctx context.Context, personID uuid.UUID) ([]*environment.Environment, error) {
	query := `
		SELECT e.id, e.name, e.description, e.created_at
		FROM environments e
		INNER JOIN environment_people ep ON e.id = ep.environment_id
		WHERE ep.person_id = $1
		ORDER BY e.name
	`

	rows, err := s.db.QueryContext(ctx, query, personID)
	if err != nil {
		return nil, fmt.Errorf("listing environments: %w", err)
	}
	defer rows.Close()

	var envs []*environment.Environment

	for rows.Next() {
		env, err := scanEnvironment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning environment: %w", err)
		}

		envs = append(envs, env)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating environments: %w", err)
	}

	return envs, nil
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

func (s *Store) PersonExists(ctx context.Context, personID uuid.UUID) (bool, error) {
	var one int

	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM people WHERE id = $1`, personID).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}

		return false, fmt.Errorf("checking person: %w", err)
	}

	return true, nil
}

func (s *Store) AddMember(ctx context.Context, environmentID, personID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO environment_people (environment_id, person_id) VALUES ($1, $2)`,
		environmentID, personID,
	)
	if err != nil {
		return fmt.Errorf("adding member: %w", err)
	}

	return nil
}
