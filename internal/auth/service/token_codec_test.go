package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/accounts/internal/auth/domain"
)

const testSigningKey = "test-signing-key-with-enough-entropy"

func newTestCodec() TokenCodec {
	return NewTokenCodec(testSigningKey, 15*time.Minute, 7*24*time.Hour)
}

func TestTokenCodec_Issue(t *testing.T) {
	codec := newTestCodec()
	userID := uuid.Must(uuid.NewV7())

	t.Run("Success_IssueAccessToken", func(t *testing.T) {
		tokenString, claims, err := codec.Issue(userID, authDomain.AccessToken)
		require.NoError(t, err)

		assert.NotEmpty(t, tokenString)
		assert.Len(t, strings.Split(tokenString, "."), 3)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, authDomain.AccessToken, claims.TokenType)
		assert.NotEqual(t, uuid.Nil, claims.TokenID)
		assert.WithinDuration(t, time.Now().UTC().Add(15*time.Minute), claims.ExpiresAt, 5*time.Second)
	})

	t.Run("Success_IssueRefreshToken", func(t *testing.T) {
		tokenString, claims, err := codec.Issue(userID, authDomain.RefreshToken)
		require.NoError(t, err)

		assert.NotEmpty(t, tokenString)
		assert.Equal(t, authDomain.RefreshToken, claims.TokenType)
		assert.WithinDuration(t, time.Now().UTC().Add(7*24*time.Hour), claims.ExpiresAt, 5*time.Second)
	})

	t.Run("Success_TokenIDsAreUnique", func(t *testing.T) {
		_, claims1, err := codec.Issue(userID, authDomain.AccessToken)
		require.NoError(t, err)

		_, claims2, err := codec.Issue(userID, authDomain.AccessToken)
		require.NoError(t, err)

		assert.NotEqual(t, claims1.TokenID, claims2.TokenID)
	})
}

func TestTokenCodec_IssuePair(t *testing.T) {
	codec := newTestCodec()
	userID := uuid.Must(uuid.NewV7())

	pair, err := codec.IssuePair(userID)
	require.NoError(t, err)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	accessClaims, err := codec.Decode(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, authDomain.AccessToken, accessClaims.TokenType)
	assert.Equal(t, userID, accessClaims.UserID)

	refreshClaims, err := codec.Decode(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, authDomain.RefreshToken, refreshClaims.TokenType)
	assert.Equal(t, userID, refreshClaims.UserID)
}

func TestTokenCodec_Decode(t *testing.T) {
	codec := newTestCodec()
	userID := uuid.Must(uuid.NewV7())

	t.Run("Success_RoundTrip", func(t *testing.T) {
		tokenString, issued, err := codec.Issue(userID, authDomain.AccessToken)
		require.NoError(t, err)

		decoded, err := codec.Decode(tokenString)
		require.NoError(t, err)

		assert.Equal(t, issued.UserID, decoded.UserID)
		assert.Equal(t, issued.TokenType, decoded.TokenType)
		assert.Equal(t, issued.TokenID, decoded.TokenID)
		assert.WithinDuration(t, issued.ExpiresAt, decoded.ExpiresAt, time.Second)
	})

	t.Run("Failure_WrongSigningKey", func(t *testing.T) {
		otherCodec := NewTokenCodec("a-completely-different-key", 15*time.Minute, 7*24*time.Hour)
		tokenString, _, err := otherCodec.Issue(userID, authDomain.AccessToken)
		require.NoError(t, err)

		decoded, err := codec.Decode(tokenString)
		assert.Nil(t, decoded)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Failure_TamperedPayload", func(t *testing.T) {
		tokenString, _, err := codec.Issue(userID, authDomain.AccessToken)
		require.NoError(t, err)

		parts := strings.Split(tokenString, ".")
		require.Len(t, parts, 3)
		tampered := parts[0] + ".eyJzdWIiOiJ0YW1wZXJlZCJ9." + parts[2]

		decoded, err := codec.Decode(tampered)
		assert.Nil(t, decoded)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Failure_MalformedToken", func(t *testing.T) {
		decoded, err := codec.Decode("not-a-jwt")
		assert.Nil(t, decoded)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Failure_NoneAlgorithmRejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject: userID.String(),
			ID:      uuid.Must(uuid.NewV7()).String(),
		})
		tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		decoded, err := codec.Decode(tokenString)
		assert.Nil(t, decoded)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Failure_MissingTokenType", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   userID.String(),
			ID:        uuid.Must(uuid.NewV7()).String(),
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(time.Minute)),
		})
		tokenString, err := token.SignedString([]byte(testSigningKey))
		require.NoError(t, err)

		decoded, err := codec.Decode(tokenString)
		assert.Nil(t, decoded)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Success_ExpiredTokenStillDecodes", func(t *testing.T) {
		expiredCodec := NewTokenCodec(testSigningKey, -time.Minute, -time.Minute)
		tokenString, _, err := expiredCodec.Issue(userID, authDomain.AccessToken)
		require.NoError(t, err)

		// Signature is valid so Decode succeeds; expiry is the caller's call
		decoded, err := codec.Decode(tokenString)
		require.NoError(t, err)
		assert.True(t, decoded.IsExpired(time.Now().UTC()))
	})
}

func TestClaims_IsExpired(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name     string
		claims   authDomain.Claims
		expected bool
	}{
		{
			name:     "Not expired",
			claims:   authDomain.Claims{ExpiresAt: now.Add(time.Minute)},
			expected: false,
		},
		{
			name:     "Expired",
			claims:   authDomain.Claims{ExpiresAt: now.Add(-time.Minute)},
			expected: true,
		},
		{
			name:     "Exactly at expiry",
			claims:   authDomain.Claims{ExpiresAt: now},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.claims.IsExpired(now))
		})
	}
}
