package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateUser creates a user without a password set and returns its ID.
// Emails are stored lowercased so lookups are case-insensitive.
func (db *DB) CreateUser(ctx context.Context, name, email string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO users (name, email)
		 VALUES ($1, $2)
		 RETURNING id`,
		name, strings.ToLower(email),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

// GetUser retrieves a user by ID. Returns nil when not found.
func (db *DB) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	var user User
	var hash *string
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, password_set, created_at, updated_at
		 FROM users WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Name, &user.Email, &hash, &user.PasswordSet, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if hash != nil {
		user.PasswordHash = *hash
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email. Returns nil when not found.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	var hash *string
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, password_set, created_at, updated_at
		 FROM users WHERE email = $1`,
		strings.ToLower(email),
	).Scan(&user.ID, &user.Name, &user.Email, &hash, &user.PasswordSet, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	if hash != nil {
		user.PasswordHash = *hash
	}
	return &user, nil
}

// CheckEmailExists reports whether a user with this email already exists
func (db *DB) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		strings.ToLower(email),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return exists, nil
}

// UpdatePassword stores a new password hash for the user
func (db *DB) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE users SET password_hash = $1, password_set = TRUE, updated_at = NOW() WHERE id = $2`,
		passwordHash, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %s", userID)
	}
	return nil
}
