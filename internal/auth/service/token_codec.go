package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/allisson/accounts/internal/auth/domain"
	apperrors "github.com/allisson/accounts/internal/errors"
)

// jwtClaims is the wire representation of token claims.
type jwtClaims struct {
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// tokenCodec implements TokenCodec using HS256 signed JWTs.
type tokenCodec struct {
	signingKey []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// Issue creates a signed HS256 token of the given type for the user.
// The token carries a UUIDv7 token ID used as the blacklist key.
func (t *tokenCodec) Issue(
	userID uuid.UUID,
	tokenType authDomain.TokenType,
) (string, *authDomain.Claims, error) {
	ttl := t.accessTTL
	if tokenType == authDomain.RefreshToken {
		ttl = t.refreshTTL
	}

	now := time.Now().UTC()
	claims := &authDomain.Claims{
		UserID:    userID,
		TokenType: tokenType,
		TokenID:   uuid.Must(uuid.NewV7()),
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwtClaims{
		TokenType: string(tokenType),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID.String(),
			ID:        claims.TokenID.String(),
			IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
	})

	signed, err := token.SignedString(t.signingKey)
	if err != nil {
		return "", nil, apperrors.Wrap(err, "failed to sign token")
	}

	return signed, claims, nil
}

// IssuePair creates a fresh access and refresh token for the user.
func (t *tokenCodec) IssuePair(userID uuid.UUID) (*authDomain.TokenPair, error) {
	accessToken, _, err := t.Issue(userID, authDomain.AccessToken)
	if err != nil {
		return nil, err
	}

	refreshToken, _, err := t.Issue(userID, authDomain.RefreshToken)
	if err != nil {
		return nil, err
	}

	return &authDomain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Decode verifies the signature and structure of a token and returns its claims.
//
// Expiry is deliberately not validated during parsing so callers can tell an
// expired-but-authentic token apart from a forged one.
func (t *tokenCodec) Decode(tokenString string) (*authDomain.Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	var wire jwtClaims
	token, err := parser.ParseWithClaims(tokenString, &wire, func(token *jwt.Token) (any, error) {
		return t.signingKey, nil
	})
	if err != nil || !token.Valid {
		return nil, authDomain.ErrInvalidToken
	}

	userID, err := uuid.Parse(wire.Subject)
	if err != nil {
		return nil, authDomain.ErrInvalidToken
	}

	tokenID, err := uuid.Parse(wire.ID)
	if err != nil {
		return nil, authDomain.ErrInvalidToken
	}

	tokenType := authDomain.TokenType(wire.TokenType)
	if tokenType != authDomain.AccessToken && tokenType != authDomain.RefreshToken {
		return nil, authDomain.ErrInvalidToken
	}

	if wire.IssuedAt == nil || wire.ExpiresAt == nil {
		return nil, authDomain.ErrInvalidToken
	}

	return &authDomain.Claims{
		UserID:    userID,
		TokenType: tokenType,
		TokenID:   tokenID,
		IssuedAt:  wire.IssuedAt.Time,
		ExpiresAt: wire.ExpiresAt.Time,
	}, nil
}

// NewTokenCodec creates a TokenCodec that signs HS256 tokens with the given key.
func NewTokenCodec(signingKey string, accessTTL, refreshTTL time.Duration) TokenCodec {
	return &tokenCodec{
		signingKey: []byte(signingKey),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}
