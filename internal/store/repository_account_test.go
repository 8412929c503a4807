package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/models"
)

var (
	insertAccountSQL = regexp.QuoteMeta(`INSERT INTO users (username,email,password,first_name,last_name,created_at) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`)
	selectByNameSQL  = regexp.QuoteMeta(`SELECT id, username, email, password, first_name, last_name, created_at FROM users WHERE username = $1`)
	selectByCredsSQL = regexp.QuoteMeta(`SELECT id, username, email, password, first_name, last_name, created_at FROM users WHERE (username = $1 AND password = $2)`)
)

func newTestAccountRepo(t *testing.T) (*accountRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &accountRepository{
		db: &DB{
			DB:                 db,
			driver:             "pgx",
			builder:            sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
			errorClassificator: NewPostgresErrorClassifier(),
			logger:             l,
		},
		logger: l,
	}
	return repo, mock, db
}

func testAccount() models.Account {
	return models.Account{
		Username:       "ada_l",
		Email:          "ada@example.com",
		PasswordDigest: "ab38eadaeb746599f2c1ee90f8267f31f467347462764a24d71ac1843ee77fe3",
		FirstName:      "Ada",
		LastName:       "Lovelace",
		CreatedAt:      time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC),
	}
}

func accountRows(a models.Account) *sqlmock.Rows {
	return sqlmock.NewRows(accountColumns).
		AddRow(a.ID, a.Username, a.Email, a.PasswordDigest, a.FirstName, a.LastName, a.CreatedAt)
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: constraint}
}

func TestCreateAccount_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	account := testAccount()

	mock.ExpectBegin()
	mock.ExpectQuery(insertAccountSQL).
		WithArgs(account.Username, account.Email, account.PasswordDigest, account.FirstName, account.LastName, account.CreatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	created, err := repo.CreateAccount(context.Background(), account)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 7 {
		t.Errorf("expected ID=7, got %d", created.ID)
	}
	if created.Username != account.Username || created.Email != account.Email {
		t.Errorf("unexpected account returned: %+v", created)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateAccount_UniqueViolation(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		wantField  ConflictField
		wantMsg    string
	}{
		{"username", "users_username_key", ConflictUsername, "username already exists"},
		{"email", "users_email_key", ConflictEmail, "email already exists"},
		{"unnamed constraint", "", ConflictUnknown, "username or email already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestAccountRepo(t)
			defer db.Close()

			mock.ExpectBegin()
			mock.ExpectQuery(insertAccountSQL).WillReturnError(uniqueViolation(tt.constraint))
			mock.ExpectRollback()

			_, err := repo.CreateAccount(context.Background(), testAccount())

			var conflict *ConflictError
			if !errors.As(err, &conflict) {
				t.Fatalf("expected *ConflictError, got %v", err)
			}
			if conflict.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, conflict.Field)
			}
			if conflict.Error() != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, conflict.Error())
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestCreateAccount_BeginError(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	_, err := repo.CreateAccount(context.Background(), testAccount())
	if !errors.Is(err, ErrBeginningTransaction) {
		t.Fatalf("expected ErrBeginningTransaction, got %v", err)
	}
}

func TestCreateAccount_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(insertAccountSQL).WillReturnError(&pgconn.PgError{Code: pgerrcode.DiskFull})
	mock.ExpectRollback()

	_, err := repo.CreateAccount(context.Background(), testAccount())
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		t.Fatal("a generic failure must not be reported as a conflict")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateAccount_CommitError(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(insertAccountSQL).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit().WillReturnError(errors.New("io error"))

	created, err := repo.CreateAccount(context.Background(), testAccount())
	if !errors.Is(err, ErrCommittingTransaction) {
		t.Fatalf("expected ErrCommittingTransaction, got %v", err)
	}
	if created.ID != 0 {
		t.Errorf("expected empty account on failure, got ID %d", created.ID)
	}
}

func TestFindByUsername_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	want := testAccount()
	want.ID = 1

	mock.ExpectQuery(selectByNameSQL).WithArgs("ada_l").WillReturnRows(accountRows(want))

	found, err := repo.FindByUsername(context.Background(), "ada_l")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != want {
		t.Errorf("expected %+v, got %+v", want, found)
	}
}

func TestFindByUsername_NotFound(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery(selectByNameSQL).WithArgs("ghost").WillReturnRows(sqlmock.NewRows(accountColumns))

	_, err := repo.FindByUsername(context.Background(), "ghost")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestFindByUsername_ScanError(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery(selectByNameSQL).
		WithArgs("ada_l").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1)) // intentionally wrong shape → scan error

	_, err := repo.FindByUsername(context.Background(), "ada_l")
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestFindByUsername_QueryError(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery(selectByNameSQL).
		WithArgs("ada_l").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ConnectionFailure})

	_, err := repo.FindByUsername(context.Background(), "ada_l")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
	if errors.Is(err, ErrScanningRow) {
		t.Fatalf("connection failure must not be reported as a scan error: %v", err)
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		t.Fatalf("driver error lost in %v", err)
	}
}

func TestFindByCredentials(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	want := testAccount()
	want.ID = 3

	mock.ExpectQuery(selectByCredsSQL).
		WithArgs("ada_l", want.PasswordDigest).
		WillReturnRows(accountRows(want))
	mock.ExpectQuery(selectByCredsSQL).
		WithArgs("ada_l", "wrong").
		WillReturnRows(sqlmock.NewRows(accountColumns))
	mock.ExpectQuery(selectByCredsSQL).
		WithArgs("ada_l", "boom").
		WillReturnError(errors.New("db failure"))

	found, err := repo.FindByCredentials(context.Background(), "ada_l", want.PasswordDigest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != 3 || found.DisplayName() != "Ada Lovelace" {
		t.Errorf("unexpected account: %+v", found)
	}

	_, err = repo.FindByCredentials(context.Background(), "ada_l", "wrong")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}

	_, err = repo.FindByCredentials(context.Background(), "ada_l", "boom")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
	if errors.Is(err, ErrScanningRow) || errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("query failure reported as %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
