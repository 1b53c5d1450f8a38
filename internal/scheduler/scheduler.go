// Package scheduler runs the digest job on a fixed interval.
package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Scheduler fires a job immediately and then on every tick.
type Scheduler struct {
	interval time.Duration
	log      *slog.Logger
}

// New builds a scheduler with the given interval.
func New(interval time.Duration, log *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	if log == nil {
		log = slog.Default()
	}
	return &Scheduler{interval: interval, log: log}
}

// Run blocks until the context is canceled, invoking job once at start and
// then every interval.
func (s *Scheduler) Run(ctx context.Context, job func(time.Time)) {
	s.log.Info("scheduler started", "interval", s.interval)

	job(time.Now())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case t := <-ticker.C:
			job(t)
		case <-ctx.Done():
			s.log.Info("scheduler stopped")
			return
		}
	}
}
