package interfaces

import "context"

//go:generate mockgen -source=identity_provider_interface.go -destination=mocks/identity_provider_interface_mock.go -package=mock_interfaces

// Identity is the authenticated user behind a request.
type Identity struct {
	UserID string
	Email  string
}

// IIdentityProvider resolves the user of the current session.
type IIdentityProvider interface {
	CurrentUser(ctx context.Context) (Identity, bool)
}
