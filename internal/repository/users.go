package repository

import (
	"context"
	"fmt"
	"strings"

	"mining-map-api/internal/models"
)

// UserChanges lists the columns to update. Nil fields are left untouched.
type UserChanges struct {
	Username     *string
	PasswordHash *string
	Role         *string
}

// Empty reports whether there is nothing to update.
func (c UserChanges) Empty() bool {
	return c.Username == nil && c.PasswordHash == nil && c.Role == nil
}

// GetUserByUsername looks an account up by its login name.
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(ctx, `
		SELECT id, username, password_hash, COALESCE(role, 'user'), created_at
		FROM users
		WHERE username = $1
	`, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, notFoundOr(err, "failed to get user")
	}
	return &u, nil
}

// CreateUser inserts u. A taken username yields ErrDuplicate.
func (r *Repository) CreateUser(ctx context.Context, u models.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, username, password_hash, role)
		VALUES ($1, $2, $3, $4)
	`, u.ID, u.Username, u.PasswordHash, u.Role)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("repository: failed to insert user: %w", err)
	}
	return nil
}

// EnsureUser inserts u unless the username exists and reports whether it did.
func (r *Repository) EnsureUser(ctx context.Context, u models.User) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO users (id, username, password_hash, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username) DO NOTHING
	`, u.ID, u.Username, u.PasswordHash, u.Role)
	if err != nil {
		return false, fmt.Errorf("repository: failed to ensure user: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListUsers returns all accounts, newest first.
func (r *Repository) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, username, COALESCE(role, 'user'), created_at
		FROM users
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("repository: failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating users: %w", err)
	}

	return users, nil
}

// UpdateUser applies changes to the account id.
func (r *Repository) UpdateUser(ctx context.Context, id string, changes UserChanges) error {
	sets := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)

	add := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	add("username", changes.Username)
	add("password_hash", changes.PasswordHash)
	add("role", changes.Role)

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	sql := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("repository: failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUser removes the account id.
func (r *Repository) DeleteUser(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
