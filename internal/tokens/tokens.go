package tokens

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/starkdipesh/portfolio-api/internal/config"
)

var (
	// ErrTokenExpired is returned when a presented token is past its exp claim.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned for malformed tokens, bad signatures and
	// unexpected signing algorithms.
	ErrTokenInvalid = errors.New("invalid token")
)

// GenerateAdminToken creates a signed HS256 JWT carrying the admin role claim.
// Tokens are stateless: nothing is persisted and there is no revocation, they
// simply expire TokenTTL (default 24h) after issuance.
func GenerateAdminToken(cfg *config.Config) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"admin": true,
		"iat":   now.Unix(),
		"exp":   now.Add(cfg.Auth.TokenTTL).Unix(),
	}
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return jt.SignedString([]byte(cfg.Auth.JWTSecret))
}

// VerifyToken parses and validates a presented bearer token. Expired tokens
// and otherwise-invalid tokens are distinguishable via errors.Is so callers
// can log the difference, even though both map to the same 401 response.
func VerifyToken(cfg *config.Config, raw string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.Auth.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// CheckPassword compares a login candidate against the configured admin
// password in constant time. The password is a single shared capability, not
// a user account; see the README for the hardening expected before real
// deployments (hashing, lockout, rotation).
func CheckPassword(cfg *config.Config, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(cfg.Auth.AdminPassword)) == 1
}
