package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/biztime/internal/company"
	"github.com/MrJamesThe3rd/biztime/internal/database"
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

// Expected column order: code, name, description
func scanCompany(s scanner) (*company.Company, error) {
	var c company.Company

	if err := s.Scan(&c.Code, &c.Name, &c.Description); err != nil {
		return nil, err
	}

	return &c, nil
}

// mapWriteError translates store rejections of an insert or update into
// domain errors; anything else is returned wrapped as-is.
func mapWriteError(op string, err error) error {
	switch {
	case database.IsUniqueViolation(err):
		return fmt.Errorf("%w (%s): %w", company.ErrDuplicate, database.ConstraintName(err), err)
	case database.IsRejected(err):
		return fmt.Errorf("%w: %w", company.ErrInvalid, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func (s *Store) ListCompanies(ctx context.Context) ([]*company.Company, error) {
	query := `SELECT code, name, description FROM companies ORDER BY code`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}
	defer rows.Close()

	companies := []*company.Company{}

	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning company: %w", err)
		}

		companies = append(companies, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating company rows: %w", err)
	}

	return companies, nil
}

func (s *Store) GetCompany(ctx context.Context, code string) (*company.Company, error) {
	query := `SELECT code, name, description FROM companies WHERE code = $1`

	c, err := scanCompany(s.db.QueryRowContext(ctx, query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, company.ErrNotFound
		}

		return nil, fmt.Errorf("getting company: %w", err)
	}

	return c, nil
}

func (s *Store) CreateCompany(ctx context.Context, c *company.Company) error {
	query := `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3)
		RETURNING code, name, description
	`

	created, err := scanCompany(s.db.QueryRowContext(ctx, query, c.Code, c.Name, c.Description))
	if err != nil {
		return mapWriteError("creating company", err)
	}

	*c = *created

	return nil
}

// UpdateCompany replaces name and description of the company with c.Code.
func (s *Store) UpdateCompany(ctx context.Context, c *company.Company) error {
	query := `
		UPDATE companies
		SET name = $1, description = $2
		WHERE code = $3
		RETURNING code, name, description
	`

	updated, err := scanCompany(s.db.QueryRowContext(ctx, query, c.Name, c.Description, c.Code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return company.ErrNotFound
		}

		return mapWriteError("updating company", err)
	}

	*c = *updated

	return nil
}

func (s *Store) DeleteCompany(ctx context.Context, code string) error {
	query := `DELETE FROM companies WHERE code = $1`

	res, err := s.db.ExecContext(ctx, query, code)
	if err != nil {
		return mapWriteError("deleting company", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}

	if n == 0 {
		return company.ErrNotFound
	}

	return nil
}
