package login

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"authsession/internal/domain"
)

// Service runs the submit-credentials and log-out actions.
type Service struct {
	api      domain.SessionAPI
	sessions domain.SessionRefresher
	notices  domain.Notifier
	log      *zap.Logger

	confirmIdentity bool
}

// Option configures a Service.
type Option func(*Service)

// WithIdentityConfirmation makes Submit call /whoami after a successful login
// and log the result before reconciling.
func WithIdentityConfirmation(enabled bool) Option {
	return func(s *Service) { s.confirmIdentity = enabled }
}

// New constructs a login Service.
func New(
	api domain.SessionAPI,
	sessions domain.SessionRefresher,
	notices domain.Notifier,
	log *zap.Logger,
	opts ...Option,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{
		api:      api,
		sessions: sessions,
		notices:  notices,
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit sends creds to the authentication endpoint.
//
// Empty fields are sent as-is. On success the session store is refreshed and
// any refresh error is returned. On failure the session state is left alone:
// a 401 produces exactly one invalid-credentials notice, anything else is
// logged as a diagnostic. The failure is returned in both cases.
func (s *Service) Submit(ctx context.Context, creds domain.Credentials) error {
	username := creds.Username
	err := s.api.Login(ctx, creds)

	switch domain.Classify(err) {
	case domain.FailureNone:
	case domain.FailureUnauthorized:
		s.log.Info("login rejected", zap.String("username", username.String()))
		if s.notices != nil {
			s.notices.Notify(ctx, domain.NoticeInvalidCredentials)
		}
		return fmt.Errorf("login: %w", err)
	default:
		s.log.Error("login failed",
			zap.String("username", username.String()),
			zap.Error(err),
		)
		return fmt.Errorf("login: %w", err)
	}

	if s.confirmIdentity {
		who, err := s.api.WhoAmI(ctx)
		if err != nil {
			s.log.Warn("identity confirmation failed", zap.Error(err))
		} else {
			s.log.Info("identity confirmed", zap.String("username", who.String()))
		}
	}

	if _, err := s.sessions.Refresh(ctx); err != nil {
		return fmt.Errorf("refresh after login: %w", err)
	}
	return nil
}

// Logout asks the server to end the session and then refreshes exactly once,
// whatever the server answered.
func (s *Service) Logout(ctx context.Context) error {
	code, err := s.api.Logout(ctx)
	s.log.Debug("logout sent", zap.Int("status", code), zap.Error(err))

	if _, err := s.sessions.Refresh(ctx); err != nil {
		return fmt.Errorf("refresh after logout: %w", err)
	}
	return nil
}

// Compile-time assertion that Service implements domain.ActionService.
var _ domain.ActionService = (*Service)(nil)
