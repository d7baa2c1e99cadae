package types

import (
	"net/http"
	"time"
)

// StoredCookie is a cookie as the transport received it, together with the
// URL it was set for so it can be handed back to a cookie jar later.
type StoredCookie struct {
	URL      string    `json:"url"`
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Path     string    `json:"path,omitempty"`
	Domain   string    `json:"domain,omitempty"`
	Expires  time.Time `json:"expires,omitempty"`
	Secure   bool      `json:"secure,omitempty"`
	HttpOnly bool      `json:"http_only,omitempty"`
}

// Key identifies the cookie slot this value occupies.
func (c StoredCookie) Key() string { return c.URL + "|" + c.Domain + "|" + c.Path + "|" + c.Name }

// Expired reports whether the cookie has a deadline that is already past.
func (c StoredCookie) Expired(now time.Time) bool {
	return !c.Expires.IsZero() && !c.Expires.After(now)
}

// HTTPCookie converts back to the form a cookie jar accepts.
func (c StoredCookie) HTTPCookie() *http.Cookie {
	return &http.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Path:     c.Path,
		Domain:   c.Domain,
		Expires:  c.Expires,
		Secure:   c.Secure,
		HttpOnly: c.HttpOnly,
	}
}
