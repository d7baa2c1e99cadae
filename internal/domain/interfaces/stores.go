package interfaces

import domaintypes "authsession/internal/domain/types"

// CookieStore persists the transport's cookies between runs.
type CookieStore interface {
	SaveCookies(cookies []domaintypes.StoredCookie) error
	LoadCookies() ([]domaintypes.StoredCookie, error)
	Clear() error
}
