// Package http provides HTTP middleware and handlers for credential, signature and
// token operations.
package http

import (
	"context"

	authDomain "github.com/bitesapp/security/internal/auth/domain"
)

// claimsKey is a context key type for storing verified token claims.
type claimsKey struct{}

// WithClaims stores verified token claims in the context.
// This is typically called by the authentication middleware after successful token verification.
func WithClaims(ctx context.Context, claims authDomain.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// GetClaims retrieves verified token claims from the context.
// Returns (claims, true) if present, or (nil, false) if no claims were set.
func GetClaims(ctx context.Context) (authDomain.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(authDomain.Claims)
	return claims, ok
}

// GetSubject returns the "sub" claim of the authenticated caller.
func GetSubject(ctx context.Context) (string, bool) {
	claims, ok := GetClaims(ctx)
	if !ok {
		return "", false
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", false
	}
	return sub, true
}
