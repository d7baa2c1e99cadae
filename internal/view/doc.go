// Package view renders the login page as text.
//
// Renderer is the drawing collaborator of the session store: subscribe its
// Render method and it redraws on every reconciliation. It also implements
// domain.Notifier for the invalid-credentials notice.
package view
