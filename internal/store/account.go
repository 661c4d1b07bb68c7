package store

import (
	"context"
	"fmt"

	"storefront/internal/database"
	"storefront/internal/model"
)

const accountColumns = `id, username, password_hash, created_at, last_login_at`

func scanAccount(row interface{ Scan(dest ...any) error }) (*model.Account, error) {
	a := &model.Account{}
	err := row.Scan(
		&a.ID,
		&a.Username,
		&a.PasswordHash,
		&a.CreatedAt,
		&a.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func GetAccountByUsername(ctx context.Context, db database.DB, username string) (*model.Account, error) {
	row := db.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE username = $1`,
		username,
	)
	a, err := scanAccount(row)
	if err != nil {
		return nil, fmt.Errorf("GetAccountByUsername: %w", mapError(err))
	}
	return a, nil
}

func CreateAccount(ctx context.Context, db database.DB, a *model.Account) (*model.Account, error) {
	id, err := NewID()
	if err != nil {
		return nil, fmt.Errorf("CreateAccount: %w", err)
	}
	row := db.QueryRow(ctx,
		`INSERT INTO accounts (id, username, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING created_at`,
		id,
		a.Username,
		a.PasswordHash,
	)
	if err := row.Scan(&a.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateAccount: %w", mapError(err))
	}
	a.ID = id
	return a, nil
}

// TouchAccountLogin stamps last_login_at. Runs off the request path, so a
// miss on a just-deleted account is not an error worth surfacing.
func TouchAccountLogin(ctx context.Context, db database.DB, id string) error {
	_, err := db.Exec(ctx,
		`UPDATE accounts SET last_login_at = now() WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("TouchAccountLogin: %w", err)
	}
	return nil
}
