package animation

import "time"

// Clock provides time for animations. The default implementation uses
// system time. Tests inject a fake clock through [Scheduler.SetClock] or the
// package-level [SetClock] to control animation timing deterministically.
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// SetClock replaces the clock of the DefaultScheduler. Returns the previous
// clock so callers can restore it during cleanup.
func SetClock(c Clock) Clock {
	return DefaultScheduler.SetClock(c)
}

// Now returns the current time from the DefaultScheduler's clock.
func Now() time.Time { return DefaultScheduler.Now() }
