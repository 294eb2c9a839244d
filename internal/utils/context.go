// Package utils provides general-purpose helpers shared by the transport,
// service and adapter layers: typed context keys, JWT issuing and
// validation, password hashing, JSON responses, HTTP client construction
// and trace identifiers.
package utils

import (
	"context"

	"github.com/lamijafatic/blog-website-api/models"
)

// contextKey is a private type for context keys so that values stored by
// this package cannot collide with string keys of other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key under which the authentication middleware stores
// the verified token claims.
//
//	ctx := context.WithValue(ctx, utils.ClaimsCtxKey, claims)
var ClaimsCtxKey = contextKey("claims")

// GetClaimsFromContext retrieves the verified claims from ctx.
// ok is false when no claims are attached or they have an unexpected type.
func GetClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	return claims, ok
}
