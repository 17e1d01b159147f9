// internal/auth/token.go
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/fieldworks/territory/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenManager issues and verifies the bearer tokens handed out at signup
// and login. A token carries the user's company id once a workspace exists,
// which lets the auth middleware scope requests without a profile lookup.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Claims uses the registered subject for the user id. CompanyID is empty on
// tokens minted before the tenant bootstrap has run.
type Claims struct {
	Email     string `json:"email"`
	CompanyID string `json:"company_id,omitempty"`
	jwt.RegisteredClaims
}

// UserID parses the token subject.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

func (tm *TokenManager) Generate(userID uuid.UUID, email string, companyID *uuid.UUID) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	}
	if companyID != nil {
		claims.CompanyID = companyID.String()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Validate checks the signature and expiry. All verification failures map to
// domain.ErrUnauthorized so callers never branch on jwt internals.
func (tm *TokenManager) Validate(tokenString string) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, tm.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token expired", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return &claims, nil
}

func (tm *TokenManager) keyFunc(*jwt.Token) (interface{}, error) {
	return tm.secret, nil
}
