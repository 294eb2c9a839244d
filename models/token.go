package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by every bearer token.
//
// The subject ("sub") holds the user ID; Email and Role are copied from the
// account at login time and are not refreshed until a new token is issued.
type Claims struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
	jwt.RegisteredClaims
}

// Token wraps a signed JWT together with its decoded claims.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims are the decoded claims of Token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS form sent to clients.
	SignedString string `json:"-"`
}

// UserID returns the subject claim.
func (t Token) UserID() string {
	return t.Claims.Subject
}

// Role returns the role claim.
func (t Token) Role() Role {
	return t.Claims.Role
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}
