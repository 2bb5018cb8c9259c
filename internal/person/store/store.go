package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/acasal/gastos/internal/person"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPerson(s scanner) (*person.Person, error) {
	var p person.Person
	if err := s.Scan(&p.ID, &p.Name, &p.Email, &p.PasswordHash, &p.CreatedAt); err != nil {
		return nil, err
	}

	return &p, nil
}

const selectPersonColumns = `id, name, email, password_hash, created_at`

func (s *Store) CreatePerson(ctx context.Context, p *person.Person) error {
	query := `
		INSERT INTO people (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, p.Name, p.Email, p.PasswordHash).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating person: %w", err)
	}

	return nil
}

func (s *Store) GetPerson(ctx context.Context, id uuid.UUID) (*person.Person, error) {
	query := `SELECT ` + selectPersonColumns + ` FROM people WHERE id = $1`

	p, err := scanPerson(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, person.ErrNotFound
		}

		return nil, fmt.Errorf("getting person: %w", err)
	}

	return p, nil
}

func (s *Store) GetPersonByEmail(ctx context.Context, email string) (*person.Person, error) {
	query := `SELECT ` + selectPersonColumns + ` FROM people WHERE email = $1`

	p, err := scanPerson(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, person.ErrNotFound
		}

		return nil, fmt.Errorf("getting person by email: %w", err)
	}

	return p, nil
}

func (s *Store) ListPeople(ctx context.Context) ([]*person.Person, error) {
	query := `SELECT ` + selectPersonColumns + ` FROM people ORDER BY name`

	return s.listPeople(ctx, query)
}

func (s *Store) ListByEnvironment(ctx context.Context, environmentID uuid.UUID) ([]*person.Person, error) {
	query := `
		SELECT p.id, p.name, p.email, p.password_hash, p.created_at
		FROM people p
		INNER JOIN environment_people ep ON p.id = ep.person_id
		WHERE ep.environment_id = $1
		ORDER BY p.name
	`

	return s.listPeople(ctx, query, environmentID)
}

func (s *Store) listPeople(ctx context.Context, query string, args ...any) ([]*person.Person, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing people: %w", err)
	}
	defer rows.Close()

	var people []*person.Person

	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning person: %w", err)
		}

		people = append(people, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating people: %w", err)
	}

	return people, nil
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
