package testing

import (
	"time"

	"github.com/go-drift/checkstate/pkg/checkstate"
)

// ManualScheduler is a checkstate.Scheduler under test control. Timers
// fire only when Advance moves the fake clock past their deadline, so the
// latch window can be stepped through deterministically.
type ManualScheduler struct {
	now     time.Duration
	pending []*manualTimer
}

var _ checkstate.Scheduler = (*ManualScheduler)(nil)

// NewManualScheduler returns a scheduler with no pending timers.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc schedules fn to run when the fake clock has advanced by d.
func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) checkstate.TimerHandle {
	t := &manualTimer{deadline: s.now + d, fn: fn}
	s.pending = append(s.pending, t)
	return t
}

// Advance moves the fake clock forward by d, firing due timers in
// scheduling order. Callbacks may schedule new timers; their deadlines
// are measured from the advanced clock, and any that come due
// immediately (zero delay) still fire within this call.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.now += d
	for {
		fired := false
		for _, t := range s.pending {
			if !t.stopped && !t.fired && t.deadline <= s.now {
				t.fired = true
				t.fn()
				fired = true
			}
		}
		kept := s.pending[:0]
		for _, t := range s.pending {
			if !t.stopped && !t.fired {
				kept = append(kept, t)
			}
		}
		s.pending = kept
		if !fired {
			return
		}
	}
}

// Pending returns the number of armed, unfired timers.
func (s *ManualScheduler) Pending() int {
	n := 0
	for _, t := range s.pending {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

type manualTimer struct {
	deadline time.Duration
	fn       func()
	stopped  bool
	fired    bool
}

// Stop cancels the timer, reporting whether it prevented the callback
// from firing, matching *time.Timer.
func (t *manualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
