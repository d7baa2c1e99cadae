// Package app wires application dependencies for the CLI.
//
// It loads Config from the environment, builds the cookie store, HTTP client,
// session store, actions and view, exposing them via the Wire struct. App is
// the page itself: the view subscribed to the session store.
package app
