package domain

import (
	interfaces "authsession/internal/domain/interfaces"
	types "authsession/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Username      = types.Username
	Notice        = types.Notice
	SessionStatus = types.SessionStatus
	SessionState  = types.SessionState
	Credentials   = types.Credentials
	StatusError   = types.StatusError
	Failure       = types.Failure
	StoredCookie  = types.StoredCookie
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	SessionAPI       = interfaces.SessionAPI
	SessionRefresher = interfaces.SessionRefresher
	SessionObserver  = interfaces.SessionObserver
	SessionService   = interfaces.SessionService
	ActionService    = interfaces.ActionService
	Notifier         = interfaces.Notifier
	CookieStore      = interfaces.CookieStore
)

const (
	StatusUnknown   = types.StatusUnknown
	StatusLoggedOut = types.StatusLoggedOut
	StatusLoggedIn  = types.StatusLoggedIn

	NoticeInvalidCredentials = types.NoticeInvalidCredentials

	FailureNone            = types.FailureNone
	FailureUnauthorized    = types.FailureUnauthorized
	FailureNetworkOrServer = types.FailureNetworkOrServer
)

var (
	ErrUnauthorized = types.ErrUnauthorized

	Unknown    = types.Unknown
	LoggedOut  = types.LoggedOut
	LoggedIn   = types.LoggedIn
	Classify   = types.Classify
	IsResponse = types.IsResponse
)
