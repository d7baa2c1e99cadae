package view

import (
	"context"
	"fmt"
	"io"
	"sync"

	"authsession/internal/domain"
)

const header = "Welcome!"

// Renderer draws session states and notices to a writer.
type Renderer struct {
	mu  sync.Mutex
	out io.Writer
}

// New returns a Renderer writing to out.
func New(out io.Writer) *Renderer { return &Renderer{out: out} }

// Render draws the page for state. Only LoggedIn renders as authenticated.
func (r *Renderer) Render(state domain.SessionState) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch state.Status() {
	case domain.StatusLoggedIn:
		u, _ := state.Username()
		fmt.Fprintf(r.out, "%s\nLogged in as %s.\n", header, u)
	case domain.StatusLoggedOut:
		fmt.Fprintf(r.out, "%s\nYou are logged out. Log in with your username and password.\n", header)
	default:
		fmt.Fprintf(r.out, "%s\nChecking session...\n", header)
	}
}

// Notify shows a user-visible notice.
func (r *Renderer) Notify(_ context.Context, notice domain.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "! %s\n", notice)
}

var _ domain.Notifier = (*Renderer)(nil)
