package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the stores care about.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"

	classIntegrityConstraint = "23"
	classDataException       = "22"
)

func pgCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", false
	}

	return pgErr.Code, true
}

func hasCode(err error, code string) bool {
	c, ok := pgCode(err)
	return ok && c == code
}

func IsUniqueViolation(err error) bool { return hasCode(err, codeUniqueViolation) }

func IsForeignKeyViolation(err error) bool { return hasCode(err, codeForeignKeyViolation) }

func IsCheckViolation(err error) bool { return hasCode(err, codeCheckViolation) }

func IsNotNullViolation(err error) bool { return hasCode(err, codeNotNullViolation) }

// IsRejected reports whether the store refused a statement because of the
// submitted data: any integrity constraint violation (class 23) or data
// exception such as an out-of-range numeric or an over-long string (class 22).
// Connectivity and syntax failures are not rejections.
func IsRejected(err error) bool {
	c, ok := pgCode(err)
	if !ok {
		return false
	}

	return strings.HasPrefix(c, classIntegrityConstraint) || strings.HasPrefix(c, classDataException)
}

// ConstraintName returns the name of the violated constraint, if any.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}

	return ""
}
