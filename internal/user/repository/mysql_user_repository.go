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

// MySQLUserRepository implements User persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLUserRepository struct {
	db *sql.DB
}

// Create inserts a new User into the MySQL database using BINARY(16) for UUIDs.
func (m *MySQLUserRepository) Create(ctx context.Context, user *userDomain.User) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO users (id, username, email, first_name, last_name, avatar_url, password_hash, is_active, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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

// Update modifies an existing User in the MySQL database using BINARY(16) for UUIDs.
func (m *MySQLUserRepository) Update(ctx context.Context, user *userDomain.User) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE users
			  SET username = ?,
			  	  first_name = ?,
				  last_name = ?,
				  avatar_url = ?,
				  password_hash = ?,
				  is_active = ?,
				  updated_at = ?
			  WHERE id = ?`

	id, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		user.Username,
		user.FirstName,
		user.LastName,
		user.AvatarURL,
		user.PasswordHash,
		user.IsActive,
		user.UpdatedAt,
		id,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update user")
	}

	return nil
}

// Get retrieves a User by ID from the MySQL database using BINARY(16) for UUIDs.
// Returns ErrUserNotFound if the user doesn't exist.
func (m *MySQLUserRepository) Get(ctx context.Context, userID uuid.UUID) (*userDomain.User, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, username, email, first_name, last_name, avatar_url, password_hash, is_active, created_at, updated_at
			  FROM users WHERE id = ?`

	id, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal user id")
	}

	var user userDomain.User
	var idBytes []byte

	err = querier.QueryRowContext(ctx, query, id).Scan(
		&idBytes,
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

	if err := user.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user id")
	}

	return &user, nil
}

// GetByEmail retrieves a User by email from the MySQL database.
// Returns ErrUserNotFound if the user doesn't exist.
func (m *MySQLUserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, username, email, first_name, last_name, avatar_url, password_hash, is_active, created_at, updated_at
			  FROM users WHERE email = ?`

	var user userDomain.User
	var idBytes []byte

	err := querier.QueryRowContext(ctx, query, email).Scan(
		&idBytes,
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

	if err := user.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user id")
	}

	return &user, nil
}

// GetByUsername retrieves a User by username from the MySQL database.
// Returns ErrUserNotFound if the user doesn't exist.
func (m *MySQLUserRepository) GetByUsername(ctx context.Context, username string) (*userDomain.User, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, username, email, first_name, last_name, avatar_url, password_hash, is_active, created_at, updated_at
			  FROM users WHERE username = ?`

	var user userDomain.User
	var idBytes []byte

	err := querier.QueryRowContext(ctx, query, username).Scan(
		&idBytes,
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

	if err := user.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user id")
	}

	return &user, nil
}

// Delete removes a User from the MySQL database using BINARY(16) for UUIDs.
// Returns ErrUserNotFound if no row was deleted.
func (m *MySQLUserRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	id, err := userID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	query := `DELETE FROM users WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, id)
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

// NewMySQLUserRepository creates a new MySQL User repository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}
