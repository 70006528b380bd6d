package database_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/biztime/internal/database"
)

func TestClassification(t *testing.T) {
	type want struct {
		unique, fk, check, notNull, rejected bool
	}

	tests := []struct {
		name string
		err  error
		want want
	}{
		{
			name: "UniqueViolation",
			err:  &pgconn.PgError{Code: "23505"},
			want: want{unique: true, rejected: true},
		},
		{
			name: "WrappedForeignKeyViolation",
			err:  fmt.Errorf("creating invoice: %w", &pgconn.PgError{Code: "23503"}),
			want: want{fk: true, rejected: true},
		},
		{
			name: "CheckViolation",
			err:  &pgconn.PgError{Code: "23514"},
			want: want{check: true, rejected: true},
		},
		{
			name: "NotNullViolation",
			err:  &pgconn.PgError{Code: "23502"},
			want: want{notNull: true, rejected: true},
		},
		{
			name: "NumericOutOfRange",
			err:  &pgconn.PgError{Code: "22003"},
			want: want{rejected: true},
		},
		{
			name: "UndefinedTable",
			err:  &pgconn.PgError{Code: "42P01"},
			want: want{},
		},
		{
			name: "PlainError",
			err:  errors.New("connection refused"),
			want: want{},
		},
		{
			name: "Nil",
			err:  nil,
			want: want{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want.unique, database.IsUniqueViolation(tt.err))
			assert.Equal(t, tt.want.fk, database.IsForeignKeyViolation(tt.err))
			assert.Equal(t, tt.want.check, database.IsCheckViolation(tt.err))
			assert.Equal(t, tt.want.notNull, database.IsNotNullViolation(tt.err))
			assert.Equal(t, tt.want.rejected, database.IsRejected(tt.err))
		})
	}
}

func TestConstraintName(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "23505", ConstraintName: "companies_name_key"})

	assert.Equal(t, "companies_name_key", database.ConstraintName(err))
	assert.Empty(t, database.ConstraintName(errors.New("other")))
}
