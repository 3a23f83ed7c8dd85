package session

import (
	"time"

	"chargili/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var parser = jwt.NewParser()

// Claims decodes token without checking its signature. ok is false for
// opaque tokens.
func Claims(token string) (*models.TokenClaims, bool) {
	claims := &models.TokenClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, false
	}
	return claims, true
}

// Expired reports whether token is a JWT whose exp is not after now.
// Opaque tokens and tokens without exp never expire here.
func Expired(token string, now time.Time) bool {
	claims, ok := Claims(token)
	if !ok || claims.ExpiresAt == nil {
		return false
	}
	return !claims.ExpiresAt.After(now)
}
