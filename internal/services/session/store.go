package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"authsession/internal/domain"
)

// Store tracks the session state and reconciles it against the server.
//
// Transitions:
//   - 200 from the status query: LoggedIn with the returned identity.
//   - any other HTTP status: LoggedOut.
//   - transport failure: state is left as it was.
//
// Overlapping refreshes are not deduplicated. Whichever response completes
// last determines the state.
type Store struct {
	api domain.SessionAPI
	log *zap.Logger

	mu     sync.Mutex
	state  domain.SessionState
	subs   map[uint64]func(domain.SessionState)
	nextID uint64

	// notifyMu serializes subscriber callbacks.
	notifyMu sync.Mutex
}

// New returns a Store in the Unknown state.
func New(api domain.SessionAPI, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		api:   api,
		log:   log,
		state: domain.Unknown(),
		subs:  make(map[uint64]func(domain.SessionState)),
	}
}

// State returns the current belief.
func (s *Store) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to be called after every applied transition. The
// returned cancel func removes it; calling cancel more than once is safe.
func (s *Store) Subscribe(fn func(domain.SessionState)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Refresh queries the server for the session status and applies the result.
// On a transport failure the current state is returned with the error.
func (s *Store) Refresh(ctx context.Context) (domain.SessionState, error) {
	user, err := s.api.SessionInfo(ctx)
	switch {
	case err == nil:
		return s.set(domain.LoggedIn(user)), nil
	case domain.IsResponse(err):
		s.log.Debug("session query rejected", zap.Error(err))
		return s.set(domain.LoggedOut()), nil
	default:
		s.log.Warn("session refresh failed, keeping current state",
			zap.Stringer("state", s.State()),
			zap.Error(err),
		)
		return s.State(), err
	}
}

func (s *Store) set(next domain.SessionState) domain.SessionState {
	s.mu.Lock()
	prev := s.state
	s.state = next
	subs := make([]func(domain.SessionState), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	if !prev.Equal(next) {
		s.log.Info("session state changed",
			zap.Stringer("from", prev),
			zap.Stringer("to", next),
		)
	}

	// Subscribers always see the latest state, so a render triggered by an
	// older response cannot overwrite a newer one.
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	cur := s.State()
	for _, fn := range subs {
		fn(cur)
	}
	return next
}

// Compile-time assertion that Store implements domain.SessionService.
var _ domain.SessionService = (*Store)(nil)
