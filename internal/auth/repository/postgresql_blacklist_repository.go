// Package repository implements data persistence for the refresh token blacklist.
//
// Provides PostgreSQL and MySQL implementations with transaction support via database.GetTx().
// PostgreSQL uses native UUID types, MySQL uses BINARY(16) types.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/accounts/internal/auth/domain"
	"github.com/allisson/accounts/internal/database"
	apperrors "github.com/allisson/accounts/internal/errors"
)

// PostgreSQLBlacklistRepository implements BlacklistEntry persistence for PostgreSQL.
// Uses native UUID types with transaction support via database.GetTx().
type PostgreSQLBlacklistRepository struct {
	db *sql.DB
}

// Insert records a consumed refresh token. The insert is conditional on the
// token ID not being present yet: the primary key plus ON CONFLICT DO NOTHING
// makes the check-and-insert a single atomic statement, so exactly one of two
// concurrent calls for the same token observes inserted=true.
func (p *PostgreSQLBlacklistRepository) Insert(
	ctx context.Context,
	entry *authDomain.BlacklistEntry,
) (bool, error) {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO token_blacklist (token_id, user_id, expires_at, created_at)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (token_id) DO NOTHING`

	result, err := querier.ExecContext(
		ctx,
		query,
		entry.TokenID,
		entry.UserID,
		entry.ExpiresAt,
		entry.CreatedAt,
	)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to insert blacklist entry")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to get rows affected")
	}

	return rowsAffected > 0, nil
}

// IsBlacklisted reports whether the token ID has already been consumed.
func (p *PostgreSQLBlacklistRepository) IsBlacklisted(ctx context.Context, tokenID uuid.UUID) (bool, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT 1 FROM token_blacklist WHERE token_id = $1`

	var one int
	err := querier.QueryRowContext(ctx, query, tokenID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, apperrors.Wrap(err, "failed to check blacklist")
	}

	return true, nil
}

// DeleteExpired removes entries whose tokens expired before the given time.
// When dryRun is true, returns the count via SELECT COUNT(*) without deletion.
func (p *PostgreSQLBlacklistRepository) DeleteExpired(
	ctx context.Context,
	before time.Time,
	dryRun bool,
) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	if dryRun {
		query := `SELECT COUNT(*) FROM token_blacklist WHERE expires_at < $1`
		var count int64
		err := querier.QueryRowContext(ctx, query, before).Scan(&count)
		if err != nil {
			return 0, apperrors.Wrap(err, "failed to count expired blacklist entries")
		}
		return count, nil
	}

	query := `DELETE FROM token_blacklist WHERE expires_at < $1`

	result, err := querier.ExecContext(ctx, query, before)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete expired blacklist entries")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get rows affected")
	}

	return rowsAffected, nil
}

// NewPostgreSQLBlacklistRepository creates a new PostgreSQL blacklist repository.
func NewPostgreSQLBlacklistRepository(db *sql.DB) *PostgreSQLBlacklistRepository {
	return &PostgreSQLBlacklistRepository{db: db}
}
