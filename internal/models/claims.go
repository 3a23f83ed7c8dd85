package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims is what the console reads from an API token. The signature
// is never checked here; the API remains the authority.
type TokenClaims struct {
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
	Statut string `json:"statut,omitempty"`
	jwt.RegisteredClaims
}
