package sweeper

import (
	"context"
	"time"

	"github.com/dtroode/tablemarket-server/internal/logger"
)

// Closer closes expired reservations and reports how many it closed.
type Closer interface {
	CloseExpired(ctx context.Context) (int64, error)
}

// Sweeper runs the closing sweep on a fixed interval.
type Sweeper struct {
	closer   Closer
	interval time.Duration
	logger   *logger.Logger
}

// New creates a Sweeper. A non-positive interval defaults to one hour.
func New(closer Closer, interval time.Duration, logger *logger.Logger) *Sweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Sweeper{closer: closer, interval: interval, logger: logger}
}

// Run sweeps once immediately and then on every tick until ctx is cancelled.
// Failed sweeps are logged and retried on the next tick.
func (s *Sweeper) Run(ctx context.Context) {
	s.logger.Info("Sweeper: started", "interval", s.interval.String())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.sweep(ctx)

		select {
		case <-ctx.Done():
			s.logger.Info("Sweeper: stopped")
			return
		case <-ticker.C:
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	closed, err := s.closer.CloseExpired(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("Sweeper: sweep failed", "error", err.Error())
		return
	}
	if closed > 0 {
		s.logger.Info("Sweeper: closed expired reservations", "count", closed)
	}
}
