package company

import "errors"

var (
	ErrNotFound  = errors.New("company not found")
	ErrDuplicate = errors.New("company code or name already in use")
	ErrInvalid   = errors.New("company rejected by store")
)

// Company is a business that invoices are issued against. Code is the
// immutable primary key. A nil Description is stored as NULL.
type Company struct {
	Code        string
	Name        string
	Description *string
}
