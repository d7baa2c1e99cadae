package interfaces

import (
	"context"

	domaintypes "authsession/internal/domain/types"
)

// SessionAPI is how we talk to the authentication server. Cookies travel
// ambiently through the underlying transport.
type SessionAPI interface {
	// SessionInfo reads the identity bound to the current session.
	// Non-2xx responses come back as *types.StatusError.
	SessionInfo(ctx context.Context) (domaintypes.Username, error)
	// Login sends credentials to the authentication endpoint.
	Login(ctx context.Context, creds domaintypes.Credentials) error
	// Logout asks the server to terminate the session and returns the raw
	// status code.
	Logout(ctx context.Context) (int, error)
	// WhoAmI confirms the identity after a login.
	WhoAmI(ctx context.Context) (domaintypes.Username, error)
}
