package interfaces

import (
	"context"

	domaintypes "authsession/internal/domain/types"
)

// SessionRefresher re-derives the session belief from the server.
type SessionRefresher interface {
	Refresh(ctx context.Context) (domaintypes.SessionState, error)
}

// SessionObserver exposes the current belief and change notifications.
type SessionObserver interface {
	State() domaintypes.SessionState
	Subscribe(fn func(domaintypes.SessionState)) (cancel func())
}

// SessionService is the full session store contract.
type SessionService interface {
	SessionRefresher
	SessionObserver
}

// ActionService runs the user-triggered actions.
type ActionService interface {
	Submit(ctx context.Context, creds domaintypes.Credentials) error
	Logout(ctx context.Context) error
}

// Notifier surfaces user-visible notices.
type Notifier interface {
	Notify(ctx context.Context, notice domaintypes.Notice)
}
