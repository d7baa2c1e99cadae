// Package commands defines the authsession CLI and wires dependencies for subcommands.
//
// Commands
//
//   - status   Reconcile and print the session belief
//   - login    Submit credentials, then reconcile
//   - logout   Terminate the session, then reconcile
//   - whoami   Print the identity the server reports
//   - watch    Reconcile periodically and redraw on every refresh
//   - shell    Interactive page with one long-lived session store
//
// # Implementation
//
// The root command loads Config from the environment (and an optional .env
// file), applies flag overrides, builds the zap logger and the dependency
// graph (cookie store, HTTP client with cookie jar, session store, actions,
// view) before any subcommand runs. Cookies persist under --home between
// invocations so one-shot commands share a session the way browser tabs do.
package commands
