package carousel

import (
	"time"

	"github.com/go-renewal/renewal/pkg/animation"
)

// Strategy applies a move on a Surface. A carousel selects its strategy once,
// at construction.
type Strategy interface {
	// Name identifies the strategy ("transform", "offset" or "active").
	Name() string
	// Init places the strip at x for the start position without a transition.
	Init(position int, x float64)
	// Apply moves the strip to x for position and calls done when the move
	// is visually complete. A later Apply supersedes a pending one; the
	// superseded done is never called.
	Apply(position int, x float64, done func())
}

func selectStrategy(cfg Config, surface Surface, curve func(float64) float64, sched *animation.Scheduler) Strategy {
	switch cfg.Transition {
	case TransitionActive:
		return &activeStrategy{surface: surface}
	case TransitionTransform:
		return &transformStrategy{surface: surface}
	case TransitionOffset:
		return newOffsetStrategy(surface, cfg.Speed, curve, sched)
	}
	if surface.SupportsTransform() {
		return &transformStrategy{surface: surface}
	}
	return newOffsetStrategy(surface, cfg.Speed, curve, sched)
}

// transformStrategy sets a translateX value and relies on the surface's own
// transition. Completion waits for a transition-end notification only when
// the surface reports a transition duration.
type transformStrategy struct {
	surface Surface
	cancel  func()
}

func (s *transformStrategy) Name() string { return "transform" }

func (s *transformStrategy) Init(_ int, x float64) {
	s.surface.SetTranslateX(x)
}

func (s *transformStrategy) Apply(_ int, x float64, done func()) {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.surface.SetTranslateX(x)
	if s.surface.TransitionDuration() <= 0 {
		done()
		return
	}
	s.cancel = s.surface.OnTransitionEnd(func() {
		s.cancel = nil
		done()
	})
}

// offsetStrategy animates the left offset frame by frame.
type offsetStrategy struct {
	surface    Surface
	controller *animation.AnimationController
	tween      *animation.Tween[float64]
	left       float64
	pending    func()
}

func newOffsetStrategy(surface Surface, speed time.Duration, curve func(float64) float64, sched *animation.Scheduler) *offsetStrategy {
	s := &offsetStrategy{
		surface: surface,
		tween:   animation.TweenFloat64(0, 0),
	}
	c := animation.NewAnimationController(speed)
	c.Scheduler = sched
	c.Curve = curve
	c.AddListener(func() {
		s.left = s.tween.Transform(c)
		s.surface.SetLeft(s.left)
	})
	c.AddStatusListener(func(status animation.AnimationStatus) {
		if status != animation.AnimationCompleted {
			return
		}
		if done := s.pending; done != nil {
			s.pending = nil
			done()
		}
	})
	s.controller = c
	return s
}

func (s *offsetStrategy) Name() string { return "offset" }

func (s *offsetStrategy) Init(_ int, x float64) {
	s.left = x
	s.surface.SetLeft(x)
}

func (s *offsetStrategy) Apply(_ int, x float64, done func()) {
	s.pending = nil
	if s.controller.Duration <= 0 {
		s.controller.Stop()
		s.left = x
		s.surface.SetLeft(x)
		done()
		return
	}
	s.tween = animation.TweenFloat64(s.left, x)
	s.controller.Reset()
	s.pending = done
	s.controller.Forward()
}

// activeStrategy marks the current resident without moving anything.
type activeStrategy struct {
	surface Surface
}

func (s *activeStrategy) Name() string { return "active" }

func (s *activeStrategy) Init(position int, _ float64) {
	s.surface.SetActive(position)
}

func (s *activeStrategy) Apply(position int, _ float64, done func()) {
	s.surface.SetActive(position)
	done()
}
