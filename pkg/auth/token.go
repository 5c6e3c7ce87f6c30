// Package auth implements the admin bearer-token gate: minting and
// verifying the HS256 tokens presented on admin routes, and carrying the
// resolved identity through the request context.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: wrong shape, bad
// signature, expired, missing subject. Callers must not surface which
// case occurred; the distinction exists only for internal logs.
var ErrInvalidToken = errors.New("invalid token")

// MintToken creates a signed admin token for the given subject, valid for ttl.
func MintToken(subject string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// VerifyToken checks the signature and expiry of a token and returns its
// subject. All failures collapse into ErrInvalidToken, wrapped with the
// underlying cause for diagnostics.
func VerifyToken(token string, secret []byte) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}
	return claims.Subject, nil
}

// ParseBearer extracts the token from an Authorization header value.
// Returns ErrInvalidToken when the header is absent or not bearer-shaped.
func ParseBearer(header string) (string, error) {
	const prefix = "Bearer "
	if header == "" {
		return "", fmt.Errorf("%w: missing authorization header", ErrInvalidToken)
	}
	if !strings.HasPrefix(header, prefix) {
		return "", fmt.Errorf("%w: not a bearer credential", ErrInvalidToken)
	}
	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", fmt.Errorf("%w: empty bearer credential", ErrInvalidToken)
	}
	return token, nil
}

// ResolveIdentity runs the full gate: header to bearer token to verified
// subject. It is the single entry point admin middleware uses.
func ResolveIdentity(authorizationHeader string, secret []byte) (string, error) {
	token, err := ParseBearer(authorizationHeader)
	if err != nil {
		return "", err
	}
	return VerifyToken(token, secret)
}
