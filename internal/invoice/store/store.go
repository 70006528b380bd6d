package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/biztime/internal/company"
	"github.com/MrJamesThe3rd/biztime/internal/database"
	"github.com/MrJamesThe3rd/biztime/internal/invoice"
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

const selectInvoiceColumns = `id, comp_code, amt, paid, add_date, paid_date`

// scanInvoice reads a row in selectInvoiceColumns order.
func scanInvoice(s scanner) (*invoice.Invoice, error) {
	var inv invoice.Invoice

	var paidDate sql.NullTime

	if err := s.Scan(&inv.ID, &inv.CompCode, &inv.Amount, &inv.Paid, &inv.AddDate, &paidDate); err != nil {
		return nil, err
	}

	if paidDate.Valid {
		inv.PaidDate = &paidDate.Time
	}

	return &inv, nil
}

// mapWriteError folds every store rejection into invoice.ErrInvalid. The
// reason is kept in the message for the logs only.
func mapWriteError(op string, err error) error {
	switch {
	case database.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: unknown company: %w", invoice.ErrInvalid, err)
	case database.IsCheckViolation(err):
		return fmt.Errorf("%w: amount out of range: %w", invoice.ErrInvalid, err)
	case database.IsNotNullViolation(err):
		return fmt.Errorf("%w: missing value: %w", invoice.ErrInvalid, err)
	case database.IsRejected(err):
		return fmt.Errorf("%w: %w", invoice.ErrInvalid, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func (s *Store) ListInvoices(ctx context.Context) ([]*invoice.Invoice, error) {
	query := `SELECT id, comp_code FROM invoices ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	invoices := []*invoice.Invoice{}

	for rows.Next() {
		var inv invoice.Invoice
		if err := rows.Scan(&inv.ID, &inv.CompCode); err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invoices = append(invoices, &inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice rows: %w", err)
	}

	return invoices, nil
}

func (s *Store) GetInvoice(ctx context.Context, id int64) (*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + ` FROM invoices WHERE id = $1`

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	return inv, nil
}

func (s *Store) GetInvoiceCompany(ctx context.Context, id int64) (*company.Company, error) {
	query := `
		SELECT c.code, c.name, c.description
		FROM companies c
		JOIN invoices i ON c.code = i.comp_code
		WHERE i.id = $1
	`

	var c company.Company

	err := s.db.QueryRowContext(ctx, query, id).Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("getting invoice company: %w", err)
	}

	return &c, nil
}

// CreateInvoice inserts comp_code and amt; paid and add_date come from the
// column defaults and are read back into inv.
func (s *Store) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING ` + selectInvoiceColumns

	created, err := scanInvoice(s.db.QueryRowContext(ctx, query, inv.CompCode, inv.Amount))
	if err != nil {
		return mapWriteError("creating invoice", err)
	}

	*inv = *created

	return nil
}

// UpdateAmount sets amt on the invoice with inv.ID and reads the full row back.
func (s *Store) UpdateAmount(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		UPDATE invoices
		SET amt = $1
		WHERE id = $2
		RETURNING ` + selectInvoiceColumns

	updated, err := scanInvoice(s.db.QueryRowContext(ctx, query, inv.Amount, inv.ID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return invoice.ErrNotFound
		}

		return mapWriteError("updating invoice", err)
	}

	*inv = *updated

	return nil
}

func (s *Store) DeleteInvoice(ctx context.Context, id int64) error {
	query := `DELETE FROM invoices WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}

	if n == 0 {
		return invoice.ErrNotFound
	}

	return nil
}
