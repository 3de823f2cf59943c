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

// MySQLBlacklistRepository implements BlacklistEntry persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLBlacklistRepository struct {
	db *sql.DB
}

// Insert records a consumed refresh token. INSERT IGNORE against the primary
// key makes the check-and-insert atomic, so exactly one of two concurrent
// calls for the same token observes inserted=true.
func (m *MySQLBlacklistRepository) Insert(
	ctx context.Context,
	entry *authDomain.BlacklistEntry,
) (bool, error) {
	querier := database.GetTx(ctx, m.db)

	tokenID, err := entry.TokenID.MarshalBinary()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to marshal token id")
	}

	userID, err := entry.UserID.MarshalBinary()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to marshal user id")
	}

	query := `INSERT IGNORE INTO token_blacklist (token_id, user_id, expires_at, created_at)
			  VALUES (?, ?, ?, ?)`

	result, err := querier.ExecContext(
		ctx,
		query,
		tokenID,
		userID,
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
func (m *MySQLBlacklistRepository) IsBlacklisted(ctx context.Context, tokenID uuid.UUID) (bool, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := tokenID.MarshalBinary()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to marshal token id")
	}

	query := `SELECT 1 FROM token_blacklist WHERE token_id = ?`

	var one int
	err = querier.QueryRowContext(ctx, query, id).Scan(&one)
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
func (m *MySQLBlacklistRepository) DeleteExpired(
	ctx context.Context,
	before time.Time,
	dryRun bool,
) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	if dryRun {
		query := `SELECT COUNT(*) FROM token_blacklist WHERE expires_at < ?`
		var count int64
		err := querier.QueryRowContext(ctx, query, before).Scan(&count)
		if err != nil {
			return 0, apperrors.Wrap(err, "failed to count expired blacklist entries")
		}
		return count, nil
	}

	query := `DELETE FROM token_blacklist WHERE expires_at < ?`

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

// NewMySQLBlacklistRepository creates a new MySQL blacklist repository.
func NewMySQLBlacklistRepository(db *sql.DB) *MySQLBlacklistRepository {
	return &MySQLBlacklistRepository{db: db}
}
