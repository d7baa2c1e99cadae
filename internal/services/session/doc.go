// Package session holds the client's belief about the login state and keeps it
// reconciled with the authentication server.
//
// Store is an explicit observable: Refresh queries the server, applies the
// resulting transition and notifies subscribers so they can redraw. Poller
// drives Refresh on a fixed interval for long-running views.
package session
