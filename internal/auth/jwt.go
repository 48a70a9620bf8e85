package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued token stays valid. There is no revocation:
// a token outlives account changes until its embedded expiry elapses.
const TokenTTL = 24 * time.Hour

// Claims is the JWT payload carrying the principal's identity.
type Claims struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

var errInvalidToken = errors.New("invalid token")

// IssueToken signs an HS256 token embedding the principal and a 24-hour
// expiry.
func IssueToken(p Principal, secret []byte) (string, error) {
	now := time.Now()
	claims := Claims{
		ID:    p.ID,
		Email: p.Email,
		Role:  p.Role,
		Name:  p.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// VerifyToken checks signature and expiry and returns the embedded
// principal. It fails closed: malformed tokens, wrong signatures and elapsed
// expiries all come back as a single generic error, never a panic. Callers
// cannot distinguish "expired" from "forged".
func VerifyToken(tokenStr string, secret []byte) (*Principal, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errInvalidToken
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errInvalidToken
	}
	return &Principal{
		ID:    claims.ID,
		Email: claims.Email,
		Role:  claims.Role,
		Name:  claims.Name,
	}, nil
}
