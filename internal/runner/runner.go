package runner

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"lwos/internal/sched"
)

// Runner is the driving loop: it calls Scheduler.Process once per clock tick.
type Runner struct {
	s        *sched.Scheduler
	interval time.Duration
	passes   int // 0 means until ctx is cancelled
	log      zerolog.Logger
}

// New creates a runner for s using the tick interval and pass count from cfg.
// Out-of-range values get the same defaults Load applies.
func New(s *sched.Scheduler, cfg Config, log zerolog.Logger) *Runner {
	cfg.clamp()
	return &Runner{
		s:        s,
		interval: time.Duration(cfg.TickMS) * time.Millisecond,
		passes:   cfg.Passes,
		log:      log,
	}
}

// Run drives passes until the configured count is reached or ctx is done.
// A cancelled context is a normal stop and returns nil.
func (r *Runner) Run(ctx context.Context) error {
	clock := NewTickClock(1)
	clock.Start(r.interval)
	defer clock.Stop()

	start := r.s.Passes()
	r.log.Debug().Dur("interval", r.interval).Int("passes", r.passes).Msg("runner started")

	for r.passes == 0 || r.s.Passes()-start < uint64(r.passes) {
		select {
		case <-ctx.Done():
			r.log.Debug().Uint64("done", r.s.Passes()-start).Msg("runner cancelled")
			return nil
		case _, ok := <-clock.Ch:
			if !ok {
				return nil
			}
		}

		if err := r.s.Process(); err != nil {
			return err
		}
	}

	r.log.Debug().Uint64("done", r.s.Passes()-start).Int64("ticks", clock.Count()).Msg("runner finished")
	return nil
}
