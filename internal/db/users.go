package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateUser inserts the profile row for an identity-provider user. The id
// comes from the verified token, so the identity provider owns it; an
// existing row is left untouched, making first-request provisioning
// idempotent. Credentials never live here.
func (db *DB) CreateUser(ctx context.Context, input *UserCreateInput) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO users (id, name, email, role)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO NOTHING`,
		input.ID, input.Name, input.Email, input.Role,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by ID
func (db *DB) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	var u User
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, role, COALESCE(department, ''), COALESCE(company, ''),
		        resume_url, avatar_url, profile_complete, created_at, updated_at
		 FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Department, &u.Company,
		&u.ResumeURL, &u.AvatarURL, &u.ProfileComplete, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// UpdateUser updates a user's profile fields
func (db *DB) UpdateUser(ctx context.Context, u *User) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE users SET name = $1, department = $2, company = $3,
		        resume_url = $4, avatar_url = $5, profile_complete = $6, updated_at = NOW()
		 WHERE id = $7`,
		u.Name, nullIfEmpty(u.Department), nullIfEmpty(u.Company),
		u.ResumeURL, u.AvatarURL, u.ProfileComplete, u.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %s", u.ID)
	}
	return nil
}
