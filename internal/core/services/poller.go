package services

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Refresher is anything whose snapshot can be replaced from the backend.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Poller periodically refreshes a set of services. There is no cancellation
// of an in-flight refresh; a later tick simply overwrites whatever the
// earlier one wrote (last write wins).
type Poller struct {
	BaseService
	interval time.Duration
	targets  []Refresher
}

// NewPoller creates a poller. Interval must be positive.
func NewPoller(interval time.Duration, targets ...Refresher) *Poller {
	return &Poller{interval: interval, targets: targets}
}

// RefreshAll refreshes every target concurrently and returns the first
// error, if any. Individual failures do not stop sibling refreshes.
func (p *Poller) RefreshAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, t := range p.targets {
		t := t
		g.Go(func() error { return t.Refresh(ctx) })
	}
	return g.Wait()
}

// Run refreshes all targets on every tick until the context is cancelled.
// Refresh errors are logged and the loop keeps going; the next tick gets a
// fresh chance.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			p.LogInfo(ctx, "Poller stopped")
			return
		case <-ticker.C:
			if err := p.RefreshAll(ctx); err != nil && ctx.Err() == nil {
				p.LogError(ctx, err, "Periodic refresh failed",
					slog.Duration("interval", p.interval))
			}
		}
	}
}
