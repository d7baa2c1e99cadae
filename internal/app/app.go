package app

import (
	"context"

	"authsession/internal/domain"
)

// App is one page session: a session store whose every transition is drawn
// by the view, plus the actions the user can trigger.
type App struct {
	Sessions domain.SessionService
	Actions  domain.ActionService

	unsubscribe func()
}

// New subscribes render to sessions and returns the page.
func New(sessions domain.SessionService, actions domain.ActionService, render func(domain.SessionState)) *App {
	return &App{
		Sessions:    sessions,
		Actions:     actions,
		unsubscribe: sessions.Subscribe(render),
	}
}

// FromWire builds the page from a wired dependency graph.
func FromWire(w *Wire) *App {
	return New(w.Sessions, w.Actions, w.View.Render)
}

// Start performs the initial reconciliation out of Unknown.
func (a *App) Start(ctx context.Context) (domain.SessionState, error) {
	return a.Sessions.Refresh(ctx)
}

// Close stops rendering.
func (a *App) Close() { a.unsubscribe() }
