package auth

import (
	"errors"
	"time"
)

var (
	ErrSigning      = errors.New("token signing failed")
	ErrUnauthorized = errors.New("unauthorized")
)

// Claim is the identity payload a caller supplies when requesting a token.
// The issuer deliberately does not validate it against a user store; trust
// is delegated entirely to signature verification.
type Claim struct {
	Email string
	Name  string
}

type AccessClaims struct {
	Email     string
	Name      string
	ExpiresAt time.Time
}
