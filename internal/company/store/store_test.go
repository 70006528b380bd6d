package store_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/biztime/internal/company"
	"github.com/MrJamesThe3rd/biztime/internal/company/store"
)

var companyColumns = []string{"code", "name", "description"}

func newStore(t *testing.T) (*store.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	return store.New(db), mock
}

func TestStore_ListCompanies(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT code, name, description FROM companies ORDER BY code")).
		WillReturnRows(sqlmock.NewRows(companyColumns).
			AddRow("apple", "Apple", "Maker of iPhone").
			AddRow("ibm", "IBM", nil))

	got, err := s.ListCompanies(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, &company.Company{Code: "apple", Name: "Apple", Description: new("Maker of iPhone")}, got[0])
	assert.Equal(t, &company.Company{Code: "ibm", Name: "IBM"}, got[1])
}

func TestStore_ListCompanies_Empty(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectQuery("FROM companies").WillReturnRows(sqlmock.NewRows(companyColumns))

	got, err := s.ListCompanies(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStore_GetCompany(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(m sqlmock.Sqlmock)
		want    *company.Company
		wantErr error
	}{
		{
			name: "Found",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("FROM companies WHERE code = $1")).
					WithArgs("apple").
					WillReturnRows(sqlmock.NewRows(companyColumns).AddRow("apple", "Apple", "Maker of iPhone"))
			},
			want: &company.Company{Code: "apple", Name: "Apple", Description: new("Maker of iPhone")},
		},
		{
			name: "NullDescription",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("FROM companies WHERE code = $1")).
					WithArgs("apple").
					WillReturnRows(sqlmock.NewRows(companyColumns).AddRow("apple", "Apple", nil))
			},
			want: &company.Company{Code: "apple", Name: "Apple"},
		},
		{
			name: "NotFound",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("FROM companies WHERE code = $1")).
					WithArgs("apple").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: company.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newStore(t)
			tt.setup(mock)

			got, err := s.GetCompany(context.Background(), "apple")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStore_CreateCompany(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "Success"},
		{name: "DuplicateCode", err: &pgconn.PgError{Code: "23505", ConstraintName: "companies_pkey"}, wantErr: company.ErrDuplicate},
		{name: "TooLong", err: &pgconn.PgError{Code: "22001"}, wantErr: company.ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newStore(t)

			exp := mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO companies (code, name, description)")).
				WithArgs("apple", "Apple", "Maker of iPhone")
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnRows(sqlmock.NewRows(companyColumns).AddRow("apple", "Apple", "Maker of iPhone"))
			}

			c := &company.Company{Code: "apple", Name: "Apple", Description: new("Maker of iPhone")}
			err := s.CreateCompany(context.Background(), c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "apple", c.Code)
		})
	}
}

func TestStore_CreateCompany_NullDescription(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO companies (code, name, description)")).
		WithArgs("acme", "Acme", nil).
		WillReturnRows(sqlmock.NewRows(companyColumns).AddRow("acme", "Acme", nil))

	c := &company.Company{Code: "acme", Name: "Acme"}
	require.NoError(t, s.CreateCompany(context.Background(), c))
	assert.Nil(t, c.Description)
}

func TestStore_CreateCompany_ConnectionError(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectQuery("INSERT INTO companies").WillReturnError(errors.New("connection reset"))

	err := s.CreateCompany(context.Background(), &company.Company{Code: "apple"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, company.ErrDuplicate)
	assert.NotErrorIs(t, err, company.ErrInvalid)
}

func TestStore_UpdateCompany(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "Success"},
		{name: "Missing", err: sql.ErrNoRows, wantErr: company.ErrNotFound},
		{name: "DuplicateName", err: &pgconn.PgError{Code: "23505", ConstraintName: "companies_name_key"}, wantErr: company.ErrDuplicate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newStore(t)

			exp := mock.ExpectQuery(regexp.QuoteMeta("UPDATE companies")).
				WithArgs("Apple Inc", "Still makes iPhones", "apple")
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnRows(sqlmock.NewRows(companyColumns).AddRow("apple", "Apple Inc", "Still makes iPhones"))
			}

			c := &company.Company{Code: "apple", Name: "Apple Inc", Description: new("Still makes iPhones")}
			err := s.UpdateCompany(context.Background(), c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Apple Inc", c.Name)
		})
	}
}

func TestStore_DeleteCompany(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "Deleted", affected: 1},
		{name: "Missing", affected: 0, wantErr: company.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newStore(t)

			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM companies WHERE code = $1")).
				WithArgs("apple").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := s.DeleteCompany(context.Background(), "apple")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}
