package types

// Username is the identity the server reports for an authenticated session.
type Username string

// String returns the string form of the username.
func (u Username) String() string { return string(u) }

// Notice identifies a user-visible notice raised by an action.
type Notice int

const (
	// NoticeInvalidCredentials is shown when the server rejects a login with 401.
	NoticeInvalidCredentials Notice = iota + 1
)

// String returns the text shown to the user for the notice.
func (n Notice) String() string {
	switch n {
	case NoticeInvalidCredentials:
		return "Invalid username or password."
	default:
		return "unknown notice"
	}
}
