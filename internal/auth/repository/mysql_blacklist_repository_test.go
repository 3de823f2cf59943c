package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMarshalUUID(t *testing.T, id uuid.UUID) []byte {
	t.Helper()

	b, err := id.MarshalBinary()
	require.NoError(t, err)
	return b
}

func TestNewMySQLBlacklistRepository(t *testing.T) {
	db, _ := setupMockDB(t)

	repo := NewMySQLBlacklistRepository(db)
	assert.NotNil(t, repo)
	assert.IsType(t, &MySQLBlacklistRepository{}, repo)
}

func TestMySQLBlacklistRepository_Insert(t *testing.T) {
	t.Run("Success_FirstInsertReturnsTrue", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewMySQLBlacklistRepository(db)
		entry := newTestEntry()

		mock.ExpectExec(regexp.QuoteMeta(`INSERT IGNORE INTO token_blacklist`)).
			WithArgs(
				mustMarshalUUID(t, entry.TokenID),
				mustMarshalUUID(t, entry.UserID),
				entry.ExpiresAt,
				entry.CreatedAt,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		inserted, err := repo.Insert(context.Background(), entry)
		require.NoError(t, err)
		assert.True(t, inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_DuplicateInsertReturnsFalse", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewMySQLBlacklistRepository(db)
		entry := newTestEntry()

		// INSERT IGNORE reports zero rows affected for duplicates
		mock.ExpectExec(regexp.QuoteMeta(`INSERT IGNORE INTO token_blacklist`)).
			WithArgs(
				mustMarshalUUID(t, entry.TokenID),
				mustMarshalUUID(t, entry.UserID),
				entry.ExpiresAt,
				entry.CreatedAt,
			).
			WillReturnResult(sqlmock.NewResult(0, 0))

		inserted, err := repo.Insert(context.Background(), entry)
		require.NoError(t, err)
		assert.False(t, inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMySQLBlacklistRepository_IsBlacklisted(t *testing.T) {
	t.Run("Success_TokenIsBlacklisted", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewMySQLBlacklistRepository(db)
		tokenID := uuid.Must(uuid.NewV7())

		rows := sqlmock.NewRows([]string{"1"}).AddRow(1)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT 1 FROM token_blacklist WHERE token_id = ?`)).
			WithArgs(mustMarshalUUID(t, tokenID)).
			WillReturnRows(rows)

		blacklisted, err := repo.IsBlacklisted(context.Background(), tokenID)
		require.NoError(t, err)
		assert.True(t, blacklisted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_TokenIsNotBlacklisted", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewMySQLBlacklistRepository(db)
		tokenID := uuid.Must(uuid.NewV7())

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT 1 FROM token_blacklist WHERE token_id = ?`)).
			WithArgs(mustMarshalUUID(t, tokenID)).
			WillReturnError(sql.ErrNoRows)

		blacklisted, err := repo.IsBlacklisted(context.Background(), tokenID)
		require.NoError(t, err)
		assert.False(t, blacklisted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMySQLBlacklistRepository_DeleteExpired(t *testing.T) {
	t.Run("Success_DeleteExpiredEntries", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewMySQLBlacklistRepository(db)
		before := time.Now().UTC()

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM token_blacklist WHERE expires_at < ?`)).
			WithArgs(before).
			WillReturnResult(sqlmock.NewResult(0, 2))

		deleted, err := repo.DeleteExpired(context.Background(), before, false)
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_DryRunCountsWithoutDeleting", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewMySQLBlacklistRepository(db)
		before := time.Now().UTC()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM token_blacklist WHERE expires_at < ?`)).
			WithArgs(before).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

		deleted, err := repo.DeleteExpired(context.Background(), before, true)
		require.NoError(t, err)
		assert.Equal(t, int64(4), deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
