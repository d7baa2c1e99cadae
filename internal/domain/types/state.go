package types

import (
	"encoding/json"
	"fmt"
)

// SessionStatus is the tag of a SessionState.
type SessionStatus int

const (
	// StatusUnknown holds until the first reconciliation completes.
	StatusUnknown SessionStatus = iota
	StatusLoggedOut
	StatusLoggedIn
)

// String returns the wire name of the status.
func (s SessionStatus) String() string {
	switch s {
	case StatusLoggedOut:
		return "logged_out"
	case StatusLoggedIn:
		return "logged_in"
	default:
		return "unknown"
	}
}

// SessionState is the client's belief about the login state.
//
// The fields are unexported so a state can only be built through Unknown,
// LoggedOut and LoggedIn. A username is carried only by LoggedIn.
// The zero value is Unknown.
type SessionState struct {
	status   SessionStatus
	username Username
}

// Unknown returns the state held before the first reconciliation.
func Unknown() SessionState { return SessionState{status: StatusUnknown} }

// LoggedOut returns the state for a caller without a valid session.
func LoggedOut() SessionState { return SessionState{status: StatusLoggedOut} }

// LoggedIn returns the state for a caller authenticated as u.
func LoggedIn(u Username) SessionState {
	return SessionState{status: StatusLoggedIn, username: u}
}

// Status returns the state's tag.
func (s SessionState) Status() SessionStatus { return s.status }

// Username returns the authenticated identity; ok is false unless LoggedIn.
func (s SessionState) Username() (u Username, ok bool) {
	if s.status != StatusLoggedIn {
		return "", false
	}
	return s.username, true
}

// IsAuthenticated reports whether the UI may render as logged in.
func (s SessionState) IsAuthenticated() bool { return s.status == StatusLoggedIn }

// Equal reports whether two states are the same variant with the same identity.
func (s SessionState) Equal(o SessionState) bool { return s == o }

func (s SessionState) String() string {
	if s.status == StatusLoggedIn {
		return fmt.Sprintf("%s(%s)", s.status, s.username)
	}
	return s.status.String()
}

type stateJSON struct {
	Status   string   `json:"status"`
	Username Username `json:"username,omitempty"`
}

// MarshalJSON encodes the state as {"status": ..., "username": ...}.
func (s SessionState) MarshalJSON() ([]byte, error) {
	out := stateJSON{Status: s.status.String()}
	if u, ok := s.Username(); ok {
		out.Username = u
	}
	return json.Marshal(out)
}

// UnmarshalJSON mirrors MarshalJSON and rejects unknown statuses.
func (s *SessionState) UnmarshalJSON(data []byte) error {
	var in stateJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch in.Status {
	case StatusUnknown.String():
		*s = Unknown()
	case StatusLoggedOut.String():
		*s = LoggedOut()
	case StatusLoggedIn.String():
		*s = LoggedIn(in.Username)
	default:
		return fmt.Errorf("unknown session status %q", in.Status)
	}
	return nil
}
