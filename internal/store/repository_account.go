package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/models"
)

// accountRepository is the database/sql implementation of [AccountRepository].
//
// Every method acquires its own connection from the pool and releases it
// before returning, on success and failure alike.
type accountRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount inserts account inside a single transaction and returns it
// with the database-assigned ID.
//
// Error handling:
//   - unique constraint violation → *ConflictError naming the column.
//   - anything else → wrapped low-level sentinel; the transaction is rolled
//     back, so no partial row is left behind.
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := r.logger.With().Str("func", "*accountRepository.CreateAccount").Str("username", account.Username).Logger()

	query, args, err := insertAccountQuery(r.db.builder, account)
	if err != nil {
		log.Err(err).Msg("error building insert query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	conn, err := r.db.Conn(ctx)
	if err != nil {
		log.Err(err).Msg("error acquiring connection")
		return models.Account{}, fmt.Errorf("%w: %w", ErrAcquiringConnection, err)
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("error beginning transaction")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	// no-op after a successful commit
	defer tx.Rollback()

	if err = tx.QueryRowContext(ctx, query, args...).Scan(&account.ID); err != nil {
		if field, ok := r.db.errorClassificator.Conflict(err); ok {
			log.Info().Str("field", string(field)).Msg("account violates uniqueness constraint")
			return models.Account{}, &ConflictError{Field: field}
		}

		log.Err(err).Str("classification", r.db.errorClassificator.Classify(err).String()).Msg("error inserting account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		if field, ok := r.db.errorClassificator.Conflict(err); ok {
			log.Info().Str("field", string(field)).Msg("account violates uniqueness constraint on commit")
			return models.Account{}, &ConflictError{Field: field}
		}

		log.Err(err).Msg("error committing transaction")
		return models.Account{}, fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	log.Debug().Int64("account_id", account.ID).Msg("account created")
	return account, nil
}

// FindByUsername implements [AccountRepository].
func (r *accountRepository) FindByUsername(ctx context.Context, username string) (models.Account, error) {
	query, args, err := selectAccountByUsernameQuery(r.db.builder, username)
	if err != nil {
		r.logger.Err(err).Str("func", "*accountRepository.FindByUsername").Msg("error building select query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*accountRepository.FindByUsername", username, query, args)
}

// FindByCredentials implements [AccountRepository]. Both columns are matched
// by one query.
func (r *accountRepository) FindByCredentials(ctx context.Context, username, passwordDigest string) (models.Account, error) {
	query, args, err := selectAccountByCredentialsQuery(r.db.builder, username, passwordDigest)
	if err != nil {
		r.logger.Err(err).Str("func", "*accountRepository.FindByCredentials").Msg("error building select query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*accountRepository.FindByCredentials", username, query, args)
}

func (r *accountRepository) findOne(ctx context.Context, funcName, username, query string, args []any) (models.Account, error) {
	log := r.logger.With().Str("func", funcName).Str("username", username).Logger()

	conn, err := r.db.Conn(ctx)
	if err != nil {
		log.Err(err).Msg("error acquiring connection")
		return models.Account{}, fmt.Errorf("%w: %w", ErrAcquiringConnection, err)
	}
	defer conn.Close()

	account, err := scanAccount(conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Msg("no matching account")
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).Str("classification", r.db.errorClassificator.Classify(err).String()).Msg("error querying account")
		return models.Account{}, err
	}

	return account, nil
}

// scanAccount tags failures of the query itself with ErrExecutingQuery and
// failures while reading the row with ErrScanningRow. sql.ErrNoRows is
// returned unwrapped.
func scanAccount(row *sql.Row) (models.Account, error) {
	if err := row.Err(); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var account models.Account
	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.PasswordDigest,
		&account.FirstName,
		&account.LastName,
		&account.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, err
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return account, nil
}
