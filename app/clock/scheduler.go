// Package clock drives repeating ticks on the Tk event loop. The timer
// primitives are injected so the package stays free of Tk and testable.
package clock

import (
	"log/slog"
	"time"
)

// AfterFunc schedules fn once after d and returns a cancellation id.
type AfterFunc func(d time.Duration, fn func()) string

// CancelFunc cancels a pending AfterFunc by id.
type CancelFunc func(id string)

// Scheduler re-arms a one-shot timer after every tick. Start and Stop must be
// called from the goroutine the timers fire on.
type Scheduler struct {
	after  AfterFunc
	cancel CancelFunc
	logger *slog.Logger

	id       string
	gen      uint64
	running  bool
	interval time.Duration
}

func New(after AfterFunc, cancel CancelFunc, logger *slog.Logger) *Scheduler {
	return &Scheduler{after: after, cancel: cancel, logger: logger}
}

// Start replaces any running schedule with tick every interval.
func (s *Scheduler) Start(interval time.Duration, tick func()) {
	if s == nil || s.after == nil || tick == nil {
		return
	}
	s.Stop()
	if interval <= 0 {
		interval = time.Millisecond
	}
	s.gen++
	s.running = true
	s.interval = interval
	s.arm(s.gen, tick)
	if s.logger != nil {
		s.logger.Debug("clock started", "interval", interval.String())
	}
}

// Stop cancels the pending timer. A timer that already fired but has not
// run yet is ignored through the generation check.
func (s *Scheduler) Stop() {
	if s == nil || !s.running {
		return
	}
	s.running = false
	s.gen++
	if s.id != "" && s.cancel != nil {
		s.cancel(s.id)
	}
	s.id = ""
	if s.logger != nil {
		s.logger.Debug("clock stopped")
	}
}

func (s *Scheduler) Running() bool { return s != nil && s.running }

// Interval is the period of the current schedule.
func (s *Scheduler) Interval() time.Duration {
	if s == nil {
		return 0
	}
	return s.interval
}

func (s *Scheduler) arm(gen uint64, tick func()) {
	s.id = s.after(s.interval, func() {
		if !s.running || s.gen != gen {
			return
		}
		s.id = ""
		tick()
		// tick may have stopped or restarted the clock
		if s.running && s.gen == gen {
			s.arm(gen, tick)
		}
	})
}
