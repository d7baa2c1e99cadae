package types

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized is matched by errors.Is for any 401 response.
var ErrUnauthorized = errors.New("unauthorized")

// StatusError is returned for every non-2xx response from the auth server.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("auth %s %s: %d %s", e.Method, e.Path, e.Code, http.StatusText(e.Code))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Unwrap exposes ErrUnauthorized for 401 responses.
func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// Failure is the error taxonomy the actions react to.
type Failure int

const (
	FailureNone Failure = iota
	FailureUnauthorized
	FailureNetworkOrServer
)

func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureUnauthorized:
		return "unauthorized"
	default:
		return "network_or_server"
	}
}

// Classify maps err onto the failure taxonomy.
func Classify(err error) Failure {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, ErrUnauthorized):
		return FailureUnauthorized
	default:
		return FailureNetworkOrServer
	}
}

// IsResponse reports whether err came from an HTTP response rather than the
// transport, i.e. the server was reached and answered.
func IsResponse(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}
