package checkstate

import "time"

// TimerHandle cancels a pending scheduled callback. Stop reports whether
// the call prevented the callback from firing, matching *time.Timer.
type TimerHandle interface {
	Stop() bool
}

// Scheduler schedules the single-shot callback behind the animation-end
// latch. The default implementation uses the runtime timer, which fires
// callbacks on a background goroutine; hosts that drive the engine from a
// UI event loop should install a scheduler that marshals callbacks back
// onto that loop. Tests can install a manual scheduler to control timing
// deterministically.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) TimerHandle
}

// systemScheduler uses the runtime timer.
type systemScheduler struct{}

func (systemScheduler) AfterFunc(d time.Duration, fn func()) TimerHandle {
	return time.AfterFunc(d, fn)
}

// scheduler is the package-level timer source, replaceable for testing or
// event-loop marshalling.
var scheduler Scheduler = systemScheduler{}

// SetScheduler replaces the scheduler. Returns the previous scheduler so
// callers can restore it during cleanup.
func SetScheduler(s Scheduler) Scheduler {
	prev := scheduler
	scheduler = s
	return prev
}
