package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-account-keeper/models"
)

// Column order shared by every SELECT on the users table and by scanAccount.
var accountColumns = []string{
	"id",
	"username",
	"email",
	"password",
	"first_name",
	"last_name",
	"created_at",
}

// insertAccountQuery builds the INSERT for account. The new id is returned
// through RETURNING, which both SQLite (3.35+) and PostgreSQL support.
func insertAccountQuery(b sq.StatementBuilderType, account models.Account) (string, []any, error) {
	return b.Insert(account.TableName()).
		Columns("username", "email", "password", "first_name", "last_name", "created_at").
		Values(account.Username, account.Email, account.PasswordDigest, account.FirstName, account.LastName, account.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func selectAccountByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(accountColumns...).
		From(models.Account{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func selectAccountByCredentialsQuery(b sq.StatementBuilderType, username, passwordDigest string) (string, []any, error) {
	return b.Select(accountColumns...).
		From(models.Account{}.TableName()).
		Where(sq.And{
			sq.Eq{"username": username},
			sq.Eq{"password": passwordDigest},
		}).
		ToSql()
}
