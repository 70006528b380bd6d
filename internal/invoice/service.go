package invoice

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/biztime/internal/company"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	ListInvoices(ctx context.Context) ([]*Invoice, error)
	GetInvoice(ctx context.Context, id int64) (*Invoice, error)
	// GetInvoiceCompany returns the company owning the invoice, or nil when
	// the join finds none.
	GetInvoiceCompany(ctx context.Context, id int64) (*company.Company, error)
	CreateInvoice(ctx context.Context, inv *Invoice) error
	UpdateAmount(ctx context.Context, inv *Invoice) error
	DeleteInvoice(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	CompCode string
	Amount   decimal.Decimal
}

func (s *Service) List(ctx context.Context) ([]*Invoice, error) {
	return s.repo.ListInvoices(ctx)
}

// Get loads the invoice and then its company. The two reads are independent
// statements, so a company deleted in between yields an invoice without one.
func (s *Service) Get(ctx context.Context, id int64) (*Invoice, error) {
	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	comp, err := s.repo.GetInvoiceCompany(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading company for invoice %d: %w", id, err)
	}

	inv.Company = comp

	return inv, nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Invoice, error) {
	if !params.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalid)
	}

	inv := &Invoice{
		CompCode: params.CompCode,
		Amount:   params.Amount,
	}
	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

// UpdateAmount changes the amount of the invoice and returns the stored row.
func (s *Service) UpdateAmount(ctx context.Context, id int64, amount decimal.Decimal) (*Invoice, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalid)
	}

	inv := &Invoice{ID: id, Amount: amount}
	if err := s.repo.UpdateAmount(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteInvoice(ctx, id)
}
