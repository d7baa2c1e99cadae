package app

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"authsession/internal/authapi"
	"authsession/internal/domain"
	loginsvc "authsession/internal/services/login"
	sessionsvc "authsession/internal/services/session"
	"authsession/internal/store"
	"authsession/internal/view"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Cookies  domain.CookieStore
	API      *authapi.HTTP
	Sessions *sessionsvc.Store
	Actions  *loginsvc.Service
	View     *view.Renderer
	HTTP     *http.Client
	Log      *zap.Logger
}

// NewWire constructs the dependency graph from cfg. The page renders to out.
func NewWire(cfg Config, log *zap.Logger, out io.Writer) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	// Cookie persistence
	var cookies domain.CookieStore
	if !cfg.Ephemeral {
		cookies = store.NewCookieFileStore(cfg.Home, cfg.Passphrase)
	}

	// Ensure an HTTP client with an ambient cookie jar is available.
	httpClient := cfg.HTTP
	if httpClient == nil {
		jar, err := authapi.NewJar(cookies, log.Named("jar"))
		if err != nil {
			return nil, err
		}
		httpClient = &http.Client{Jar: jar, Timeout: cfg.HTTPTimeout}
	}

	api := authapi.NewHTTP(cfg.Server, httpClient, log.Named("authapi"))
	api.LoginPath = cfg.LoginPath

	renderer := view.New(out)
	sessions := sessionsvc.New(api, log.Named("session"))
	actions := loginsvc.New(api, sessions, renderer, log.Named("login"),
		loginsvc.WithIdentityConfirmation(cfg.ConfirmIdentity),
	)

	return &Wire{
		Cookies:  cookies,
		API:      api,
		Sessions: sessions,
		Actions:  actions,
		View:     renderer,
		HTTP:     httpClient,
		Log:      log,
	}, nil
}
