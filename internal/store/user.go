package store

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/database"
	"storefront/internal/model"
)

const userColumns = `id, name, email, age, role, created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Age,
		&u.Role,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

func GetUserByID(ctx context.Context, db database.DB, id string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		id,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", mapError(err))
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	id, err := NewID()
	if err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	row := db.QueryRow(ctx,
		`INSERT INTO users (id, name, email, age, role)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at`,
		id,
		u.Name,
		u.Email,
		u.Age,
		u.Role,
	)
	if err := row.Scan(&u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", mapError(err))
	}
	u.ID = id
	return u, nil
}

// UserPatch is a partial update; nil fields stay untouched.
type UserPatch struct {
	Name  *string
	Email *string
	Age   *int
	Role  *string
}

// Empty reports whether the patch carries no recognized fields.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Age == nil && p.Role == nil
}

// UpdateUser applies the patch, refreshes updated_at and returns the
// resulting record. ErrNotFound means the record no longer exists.
func UpdateUser(ctx context.Context, db database.DB, id string, p UserPatch) (*model.User, error) {
	sets := []string{}
	args := []any{}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Email != nil {
		add("email", *p.Email)
	}
	if p.Age != nil {
		add("age", *p.Age)
	}
	if p.Role != nil {
		add("role", *p.Role)
	}
	sets = append(sets, "updated_at = now()")
	args = append(args, id)

	row := db.QueryRow(ctx,
		fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING `+userColumns,
			strings.Join(sets, ", "), len(args)),
		args...,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("UpdateUser: %w", mapError(err))
	}
	return u, nil
}

func DeleteUser(ctx context.Context, db database.DB, id string) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM users WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("DeleteUser: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteUser: %w", ErrNotFound)
	}
	return nil
}
