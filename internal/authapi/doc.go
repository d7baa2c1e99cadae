// Package authapi provides an HTTP implementation of the domain.SessionAPI
// interface used by authsession.
//
// The authentication server is an opaque collaborator. This package offers a
// concrete HTTP client for the four calls the client relies on:
//   - Reading the session status (GET /session).
//   - Submitting credentials (POST /session, or /login on older servers).
//   - Terminating the session (DELETE /session).
//   - Confirming the identity after a login (GET /whoami).
//
// Credentials are ambient: the session cookie travels through the
// http.Client's cookie jar and is never handled here. Jar builds a jar that
// mirrors its cookies into a domain.CookieStore so a session survives across
// CLI invocations.
//
// All requests accept a context for cancellation and deadlines and carry an
// X-Request-ID header. Non-2xx statuses are returned as *types.StatusError
// with the HTTP method, path and status code to aid diagnostics.
package authapi
