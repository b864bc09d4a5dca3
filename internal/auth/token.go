package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mintmarket/marketplace/internal/adapter"
	"github.com/mintmarket/marketplace/internal/domain"
)

// SessionClaims is the claim set carried by a session token
type SessionClaims struct {
	PrincipalID int64 `json:"principal_id"`
	jwt.RegisteredClaims
}

// Address returns the wallet address the token was issued for
func (c *SessionClaims) Address() string {
	return c.Subject
}

// TokenIssuer mints and verifies stateless session tokens. No server-side
// session record exists, so a token cannot be revoked before expiry; the TTL
// is the revocation window.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	clock  adapter.Clock
}

// NewTokenIssuer creates a new session token issuer
func NewTokenIssuer(secret string, ttl time.Duration, clock adapter.Clock) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		clock:  clock,
	}
}

// Issue mints a signed session token for a principal
func (t *TokenIssuer) Issue(principalID int64, address string) (string, error) {
	now := t.clock.Now()
	claims := SessionClaims{
		PrincipalID: principalID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   domain.NormalizeAddress(address),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a session token. It returns
// domain.ErrTokenExpired past expiry and domain.ErrTokenInvalid on signature
// mismatch or malformed structure. Verification needs no store lookup.
func (t *TokenIssuer) Verify(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.clock.Now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	return claims, nil
}
