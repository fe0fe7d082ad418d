package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 24 * time.Hour

// TokenSubject is the identity a token is issued for.
type TokenSubject struct {
	UserID   int64
	Username string
	Role     string
}

// Claims carries the identity in the claim names clients already read:
// name, role and UserId (decimal string).
type Claims struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	UserID string `json:"UserId"`
	jwt.RegisteredClaims
}

// TokenGenerator issues and validates bearer tokens.
type TokenGenerator interface {
	IssueToken(subject TokenSubject) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// PasswordVerifier compares a stored password with a submitted one.
type PasswordVerifier interface {
	Matches(stored, candidate string) bool
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Nom      string `json:"nom"`
	Prenom   string `json:"prenom"`
}
