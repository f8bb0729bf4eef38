// Package auth carries the authenticated identity through request contexts.
//
// It is imported by both the HTTP middleware and the lead store, so it
// depends on nothing but the interfaces package.
package auth

import (
	"context"

	"crm_imobiliario/internal/usecase/interfaces"
)

type contextKey string

const identityContextKey contextKey = "identity"

// WithIdentity stores the authenticated user in ctx.
func WithIdentity(ctx context.Context, ident interfaces.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, ident)
}

// GetIdentity returns the user stored by WithIdentity. ok is false when the
// request is anonymous.
func GetIdentity(ctx context.Context) (interfaces.Identity, bool) {
	ident, ok := ctx.Value(identityContextKey).(interfaces.Identity)
	if !ok || ident.UserID == "" {
		return interfaces.Identity{}, false
	}
	return ident, true
}

// ContextIdentity resolves the current user from the request context.
type ContextIdentity struct{}

var _ interfaces.IIdentityProvider = ContextIdentity{}

func (ContextIdentity) CurrentUser(ctx context.Context) (interfaces.Identity, bool) {
	return GetIdentity(ctx)
}
