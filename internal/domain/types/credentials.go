package types

import "fmt"

// Credentials are read from input at submit time and dropped once the login
// request has been issued. They are never persisted.
type Credentials struct {
	Username Username `json:"username"`
	Password string   `json:"password"`
}

// String redacts the password so credentials can be passed to loggers safely.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{Username: %q, Password: [redacted]}", c.Username)
}

// GoString redacts the password for %#v.
func (c Credentials) GoString() string { return c.String() }
