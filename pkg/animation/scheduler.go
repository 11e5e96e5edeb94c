// Package animation provides the frame-driven motion primitives used by
// Renewal carousels.
//
// # Core Components
//
//   - [Scheduler]: owns a clock and the set of active tickers. The presentation
//     loop (a terminal tick, a test harness, a frame renderer) calls
//     [Scheduler.Step] once per frame.
//
//   - [AnimationController]: drives a value from 0.0 to 1.0 over a duration,
//     shaped by an easing curve.
//
//   - [Tween]: maps the controller's 0-1 value onto a begin/end range, such as
//     the pixel offsets of a carousel strip.
//
//   - Curves: [LinearCurve], [Swing], [Ease], [EaseIn], [EaseOut],
//     [EaseInOut], [CubicBezier] and the harmonica-backed [SpringCurve].
//     [CurveByName] resolves the names used in carousel configuration.
//
// # Basic Usage
//
//	sched := animation.NewScheduler(nil)
//	c := animation.NewAnimationController(300 * time.Millisecond)
//	c.Scheduler = sched
//	c.Curve = animation.EaseInOut
//	left := animation.TweenFloat64(0, -250)
//	c.AddListener(func() {
//	    surface.SetLeft(left.Transform(c))
//	})
//	c.Forward()
//
//	// once per frame
//	sched.Step()
package animation

import (
	"sync"
	"time"
)

// FrameInterval is the nominal time between frames, about 60 per second.
const FrameInterval = 16 * time.Millisecond

// DefaultScheduler drives controllers that were not given a scheduler.
var DefaultScheduler = NewScheduler(nil)

// Scheduler advances active tickers. Registration is safe for concurrent use;
// callbacks run on the goroutine that calls Step.
type Scheduler struct {
	mu     sync.Mutex
	clock  Clock
	active []*Ticker
}

// NewScheduler creates a scheduler reading time from clock. A nil clock uses
// system time.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = realClock{}
	}
	return &Scheduler{clock: clock}
}

// SetClock replaces the scheduler's clock and returns the previous one.
// A nil clock restores system time.
func (s *Scheduler) SetClock(c Clock) Clock {
	if c == nil {
		c = realClock{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.clock
	s.clock = c
	return prev
}

// Now returns the current time from the scheduler's clock.
func (s *Scheduler) Now() time.Time {
	s.mu.Lock()
	c := s.clock
	s.mu.Unlock()
	return c.Now()
}

// NewTicker creates an inactive ticker bound to this scheduler.
func (s *Scheduler) NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{scheduler: s, callback: callback}
}

// Step advances all active tickers in the order they were started.
// This should be called once per frame.
func (s *Scheduler) Step() {
	s.mu.Lock()
	if len(s.active) == 0 {
		s.mu.Unlock()
		return
	}
	// Copy so callbacks can start or stop tickers.
	tickers := make([]*Ticker, len(s.active))
	copy(tickers, s.active)
	s.mu.Unlock()

	now := s.Now()
	for _, ticker := range tickers {
		if ticker.IsActive() && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActive reports whether any ticker is running.
func (s *Scheduler) HasActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active) > 0
}

func (s *Scheduler) add(t *Ticker) {
	s.mu.Lock()
	s.active = append(s.active, t)
	s.mu.Unlock()
}

func (s *Scheduler) remove(t *Ticker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, other := range s.active {
		if other == t {
			s.active = append(s.active[:i], s.active[i+1:]...)
			return
		}
	}
}

// StepTickers advances the DefaultScheduler.
func StepTickers() { DefaultScheduler.Step() }

// HasActiveTickers reports whether the DefaultScheduler has running tickers.
func HasActiveTickers() bool { return DefaultScheduler.HasActive() }

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [AnimationController].
// The callback receives the elapsed time since Start was called.
type Ticker struct {
	scheduler *Scheduler
	callback  func(elapsed time.Duration)
	isActive  bool
	start     time.Time
}

// NewTicker creates a ticker on the DefaultScheduler.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return DefaultScheduler.NewTicker(callback)
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = t.scheduler.Now()
	t.scheduler.add(t)
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	t.scheduler.remove(t)
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return t.scheduler.Now().Sub(t.start)
}
