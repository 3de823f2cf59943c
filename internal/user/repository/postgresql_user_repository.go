// Package repository implements data persistence for user accounts.
//
// Provides PostgreSQL and MySQL implementations with transaction support via database.GetTx().
// PostgreSQL uses native UUID types, MySQL uses BINARY(16) types.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/accounts/internal/database"
	apperrors "github.com/allisson/accounts/internal/errors"
	userDomain "github.com/allisson/accounts/internal/user/domain"
)

// PostgreSQLUserRepository implements User persistence for PostgreSQL.
// Uses native UUID types with transaction support via database.GetTx().
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// Create inserts a new User into the PostgreSQL database.
func (p *PostgreSQLUserRepository) Create(ctx context.Context, user *userDomain.User) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO users (id, username, email, first_name, last_name, avatar_url, password_hash, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := querier.ExecContext(
		ctx,
		query,
		user.ID,
		user.Username,
		user.Email,
		user.FirstName,
		user.LastName,
		user.AvatarURL,
		user.PasswordHash,
		user.IsActive,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// Update modifies an existing User in the PostgreSQL database.
func (p *PostgreSQLUserRepository) Update(ctx context.Context, user *userDomain.User) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE users
			  SET username = $1,
			  	  first_name = $2,
				  last_name = $3,
				  avatar_url = $4,
				  password_hash = $5,
				  is_active = $6,
				  updated_at = $7
			  WHERE id = $8`

	_, err := querier.ExecContext(
		ctx,
		query,
		user.Username,
		user.FirstName,
		user.LastName,
		user.AvatarURL,
		user.PasswordHash,
		user.IsActive,
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update user")
	}

	return nil
}

// Get retrieves a User by ID from the PostgreSQL database.
func (p *PostgreSQLUserRepository) Get(ctx context.Context, userID uuid.UUID) (*userDomain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, username, email, first_name, last_name, avatar_url, password_hash, is_active, created_at, updated_at
			  FROM users WHERE id = $1`

	var user userDomain.User

	err := querier.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.AvatarURL,
		&user.PasswordHash,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user")
	}

	return &user, nil
}

// GetByEmail retrieves a User by email from the PostgreSQL database.
func (p *PostgreSQLUserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, username, email, first_name, last_name, avatar_url, password_hash, is_active, created_at, updated_at
			  FROM users WHERE email = $1`

	var user userDomain.User

	err := querier.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.AvatarURL,
		&user.PasswordHash,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by email")
	}

	return &user, nil
}

// GetByUsername retrieves a User by username from the PostgreSQL database.
func (p *PostgreSQLUserRepository) GetByUsername(ctx context.Context, username string) (*userDomain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, username, email, first_name, last_name, avatar_url, password_hash, is_active, created_at, updated_at
			  FROM users WHERE username = $1`

	var user userDomain.User

	err := querier.QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.AvatarURL,
		&user.PasswordHash,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by username")
	}

	return &user, nil
}

// Delete removes a User from the PostgreSQL database.
// Returns ErrUserNotFound if no row was deleted.
func (p *PostgreSQLUserRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM users WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete user")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return userDomain.ErrUserNotFound
	}

	return nil
}

// NewPostgreSQLUserRepository creates a new PostgreSQL User repository.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{db: db}
}
