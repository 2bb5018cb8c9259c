package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/acasal/gastos/internal/category"
)

const uniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCategory(s scanner) (*category.Category, error) {
	var c category.Category

	var color, icon sql.NullString

	if err := s.Scan(&c.ID, &c.EnvironmentID, &c.Name, &color, &icon, &c.CreatedAt); err != nil {
		return nil, err
	}

	if color.Valid {
		c.Color = &color.String
	}

	if icon.Valid {
		c.Icon = &icon.String
	}

	return &c, nil
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

func (s *Store) ListByEnvironment(ctx context.Context, environmentID uuid.UUID) ([]*category.Category, error) {
	query := `
		SELECT id, environment_id, name, color, icon, created_at
		FROM expense_categories
		WHERE environment_id = $1
		ORDER BY name
	`

	rows, err := s.db.QueryContext(ctx, query, environmentID)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []*category.Category

	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}

	return categories, nil
}

func (s *Store) CreateCategory(ctx context.Context, c *category.Category) error {
	query := `
		INSERT INTO expense_categories (environment_id, name, color, icon)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, c.EnvironmentID, c.Name, c.Color, c.Icon).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return category.ErrNameTaken
		}

		return fmt.Errorf("creating category: %w", err)
	}

	return nil
}

func (s *Store) UpdateCategory(ctx context.Context, c *category.Category) error {
	query := `
		UPDATE expense_categories
		SET name = $1, color = $2, icon = $3
		WHERE id = $4 AND environment_id = $5
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query, c.Name, c.Color, c.Icon, c.ID, c.EnvironmentID).
		Scan(&c.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return category.ErrNotFound
		}

		if isUniqueViolation(err) {
			return category.ErrNameTaken
		}

		return fmt.Errorf("updating category: %w", err)
	}

	return nil
}

func (s *Store) DeleteCategory(ctx context.Context, environmentID, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM expense_categories WHERE id = $1 AND environment_id = $2`,
		id, environmentID,
	)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	if affected == 0 {
		return category.ErrNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
