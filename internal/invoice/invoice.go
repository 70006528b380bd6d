package invoice

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/biztime/internal/company"
)

var (
	ErrNotFound = errors.New("invoice not found")
	// ErrInvalid covers every store rejection of an invoice: unknown company
	// code, non-positive amount or any other constraint failure.
	ErrInvalid = errors.New("invoice rejected")
)

// Invoice is a bill issued to a company.
type Invoice struct {
	ID       int64
	CompCode string
	Amount   decimal.Decimal
	Paid     bool
	AddDate  time.Time
	PaidDate *time.Time
	Company  *company.Company // Loaded by Service.Get, nil when the join finds no company
}
