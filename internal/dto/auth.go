package dto

import "github.com/golang-jwt/jwt/v5"

// AuthClaims are the claims of the bearer tokens accepted by the API. The
// subject is the caller id; Role is informational.
type AuthClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}
