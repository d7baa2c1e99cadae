package session

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"authsession/internal/domain"
)

// DefaultPollInterval is used when a Poller is built with a non-positive interval.
const DefaultPollInterval = 30 * time.Second

// Poller reconciles a session on a fixed interval. It refreshes once on start
// and then on every tick; failed refreshes are logged and the loop continues.
type Poller struct {
	sessions domain.SessionRefresher
	clock    clockwork.Clock
	interval time.Duration
	log      *zap.Logger
}

// NewPoller returns a Poller driving sessions with clock.
func NewPoller(sessions domain.SessionRefresher, clock clockwork.Clock, interval time.Duration, log *zap.Logger) *Poller {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Poller{sessions: sessions, clock: clock, interval: interval, log: log}
}

// Run blocks until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) error {
	p.refresh(ctx)

	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.Chan():
			p.refresh(ctx)
		}
	}
}

func (p *Poller) refresh(ctx context.Context) {
	if _, err := p.sessions.Refresh(ctx); err != nil && ctx.Err() == nil {
		p.log.Debug("poll refresh failed", zap.Error(err))
	}
}
