package login_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"authsession/internal/authapi"
	"authsession/internal/authtest"
	"authsession/internal/domain"
	"authsession/internal/services/login"
	"authsession/internal/services/session"
)

type recordingNotifier struct {
	mu      sync.Mutex
	notices []domain.Notice
}

func (n *recordingNotifier) Notify(_ context.Context, notice domain.Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice)
}

type fixture struct {
	srv      *authtest.Server
	sessions *session.Store
	notices  *recordingNotifier
	logs     *observer.ObservedLogs
	svc      *login.Service
}

func newFixture(t *testing.T, opts ...login.Option) *fixture {
	t.Helper()
	srv := authtest.NewServer(t)
	srv.AddUser(t, "alice", "wonderland")

	jar, err := authapi.NewJar(nil, nil)
	require.NoError(t, err)
	api := authapi.NewHTTP(srv.URL, &http.Client{Jar: jar}, nil)

	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	sessions := session.New(api, log)
	notices := &recordingNotifier{}
	return &fixture{
		srv:      srv,
		sessions: sessions,
		notices:  notices,
		logs:     logs,
		svc:      login.New(api, sessions, notices, log, opts...),
	}
}

// loggedOut reconciles once so the store starts from LoggedOut.
func (f *fixture) loggedOut(t *testing.T) {
	t.Helper()
	st, err := f.sessions.Refresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.LoggedOut(), st)
}

func TestSubmit_ValidCredentials_LoggedIn(t *testing.T) {
	f := newFixture(t)
	f.loggedOut(t)

	err := f.svc.Submit(context.Background(), domain.Credentials{Username: "alice", Password: "wonderland"})
	require.NoError(t, err)

	assert.Equal(t, domain.LoggedIn("alice"), f.sessions.State())
	assert.Empty(t, f.notices.notices)
	assert.Equal(t, 2, f.srv.Hits(authtest.RouteSessionInfo), "one refresh before, one after login")
}

func TestSubmit_InvalidCredentials_OneNotice(t *testing.T) {
	f := newFixture(t)
	f.loggedOut(t)

	err := f.svc.Submit(context.Background(), domain.Credentials{Username: "alice", Password: "nope"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	assert.Equal(t, domain.LoggedOut(), f.sessions.State())
	assert.Equal(t, []domain.Notice{domain.NoticeInvalidCredentials}, f.notices.notices)
	assert.Equal(t, 1, f.srv.Hits(authtest.RouteSessionInfo), "no refresh after a rejected login")
}

func TestSubmit_OtherError_DiagnosticOnly(t *testing.T) {
	f := newFixture(t)
	f.loggedOut(t)

	err := f.svc.Submit(context.Background(), domain.Credentials{Username: "mallory", Password: "x"})
	require.Error(t, err)
	assert.Equal(t, domain.FailureNetworkOrServer, domain.Classify(err))

	assert.Equal(t, domain.LoggedOut(), f.sessions.State())
	assert.Empty(t, f.notices.notices)

	errs := f.logs.FilterLevelExact(zapcore.ErrorLevel).FilterMessage("login failed").All()
	require.Len(t, errs, 1)
	assert.Equal(t, "mallory", errs[0].ContextMap()["username"])
}

func TestSubmit_ServerError_StateUnchanged(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.svc.Submit(context.Background(), domain.Credentials{Username: "alice", Password: "wonderland"}))
	require.Equal(t, domain.LoggedIn("alice"), f.sessions.State())

	f.srv.Force(authtest.RouteLogin, http.StatusInternalServerError)
	err := f.svc.Submit(context.Background(), domain.Credentials{Username: "alice", Password: "wonderland"})
	require.Error(t, err)

	assert.Equal(t, domain.LoggedIn("alice"), f.sessions.State())
	assert.Empty(t, f.notices.notices)
}

func TestSubmit_EmptyCredentialsNotValidated(t *testing.T) {
	f := newFixture(t)
	f.loggedOut(t)

	err := f.svc.Submit(context.Background(), domain.Credentials{})
	require.Error(t, err)

	assert.Equal(t, 1, f.srv.Hits(authtest.RouteLogin), "empty credentials still reach the server")
}

func TestSubmit_PasswordNeverLogged(t *testing.T) {
	f := newFixture(t)

	_ = f.svc.Submit(context.Background(), domain.Credentials{Username: "alice", Password: "hunter2"})
	_ = f.svc.Submit(context.Background(), domain.Credentials{Username: "nobody", Password: "hunter2"})

	for _, e := range f.logs.All() {
		assert.NotContains(t, e.Message, "hunter2")
		for k, v := range e.ContextMap() {
			assert.NotContains(t, k+"="+toString(v), "hunter2")
		}
	}
}

func TestSubmit_IdentityConfirmation(t *testing.T) {
	f := newFixture(t, login.WithIdentityConfirmation(true))

	require.NoError(t, f.svc.Submit(context.Background(), domain.Credentials{Username: "alice", Password: "wonderland"}))

	assert.Equal(t, 1, f.srv.Hits(authtest.RouteWhoAmI))
	assert.Equal(t, 1, f.logs.FilterMessage("identity confirmed").Len())
	assert.Equal(t, domain.LoggedIn("alice"), f.sessions.State())
}

func TestLogout_AlwaysRefreshesOnce(t *testing.T) {
	for _, code := range []int{http.StatusNoContent, http.StatusUnauthorized, http.StatusInternalServerError} {
		t.Run(http.StatusText(code), func(t *testing.T) {
			f := newFixture(t)
			require.NoError(t, f.svc.Submit(context.Background(), domain.Credentials{Username: "alice", Password: "wonderland"}))
			before := f.srv.Hits(authtest.RouteSessionInfo)

			if code != http.StatusNoContent {
				f.srv.Force(authtest.RouteLogout, code)
			}
			require.NoError(t, f.svc.Logout(context.Background()))

			assert.Equal(t, before+1, f.srv.Hits(authtest.RouteSessionInfo))
			assert.Equal(t, 1, f.srv.Hits(authtest.RouteLogout))
			if code == http.StatusNoContent {
				assert.Equal(t, domain.LoggedOut(), f.sessions.State())
			} else {
				// The server kept the session; reconciliation reflects that.
				assert.Equal(t, domain.LoggedIn("alice"), f.sessions.State())
			}
		})
	}
}

// fakeAPI fails the logout call at the transport level.
type fakeAPI struct {
	sessionCalls int
}

func (a *fakeAPI) SessionInfo(context.Context) (domain.Username, error) {
	a.sessionCalls++
	return "", &domain.StatusError{Method: http.MethodGet, Path: "/session", Code: http.StatusUnauthorized}
}

func (a *fakeAPI) Login(context.Context, domain.Credentials) error { return nil }

func (a *fakeAPI) Logout(context.Context) (int, error) {
	return 0, errors.New("connection reset by peer")
}

func (a *fakeAPI) WhoAmI(context.Context) (domain.Username, error) { return "", nil }

func TestLogout_TransportErrorIgnored(t *testing.T) {
	api := &fakeAPI{}
	sessions := session.New(api, nil)
	svc := login.New(api, sessions, nil, nil)

	require.NoError(t, svc.Logout(context.Background()))
	assert.Equal(t, 1, api.sessionCalls)
	assert.Equal(t, domain.LoggedOut(), sessions.State())
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
