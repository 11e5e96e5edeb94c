package carousel

import (
	"errors"
	"fmt"

	"github.com/go-renewal/renewal/pkg/animation"
	renewalerrors "github.com/go-renewal/renewal/pkg/errors"
)

var (
	// ErrNoResidents is returned when a carousel is built without residents.
	ErrNoResidents = errors.New("carousel needs at least one resident")
	// ErrNoSurface is returned when a carousel is built without a surface.
	ErrNoSurface = errors.New("carousel needs a surface")
)

// Option customizes carousel construction.
type Option func(*options)

type options struct {
	scheduler *animation.Scheduler
	strategy  Strategy
}

// WithScheduler sets the scheduler that drives offset animation frames.
// Defaults to animation.DefaultScheduler.
func WithScheduler(s *animation.Scheduler) Option {
	return func(o *options) { o.scheduler = s }
}

// WithStrategy replaces the strategy selected from the configuration and the
// surface's capabilities.
func WithStrategy(s Strategy) Option {
	return func(o *options) { o.strategy = s }
}

// Carousel moves a strip of residents through a fixed-width viewport.
//
// Position is always within [0, Size()). Moves outside that range are
// ignored; Advance and Reverse saturate at the ends.
type Carousel struct {
	residents []Resident
	surface   Surface
	config    Config
	strategy  Strategy
	events    *Emitter

	position int
	offset   float64
	moving   bool
	moveSeq  int
}

// New builds a carousel over residents and places the strip at the start
// position. The residents slice is copied; the residents themselves are
// only handed to the surface.
func New(residents []Resident, surface Surface, cfg Config, opts ...Option) (*Carousel, error) {
	const op = "carousel.New"
	if len(residents) == 0 {
		return nil, renewalerrors.New(op, renewalerrors.KindConfig, ErrNoResidents)
	}
	if surface == nil {
		return nil, renewalerrors.New(op, renewalerrors.KindConfig, ErrNoSurface)
	}

	cfg = cfg.withDefaults()
	switch cfg.Transition {
	case TransitionSlide, TransitionTransform, TransitionOffset, TransitionActive:
	default:
		return nil, renewalerrors.New(op, renewalerrors.KindConfig,
			fmt.Errorf("unknown transition %q", cfg.Transition))
	}
	if cfg.Speed < 0 {
		return nil, renewalerrors.New(op, renewalerrors.KindConfig,
			fmt.Errorf("negative speed %v", cfg.Speed))
	}
	if cfg.Visible < 0 {
		return nil, renewalerrors.New(op, renewalerrors.KindConfig,
			fmt.Errorf("negative visible count %d", cfg.Visible))
	}
	curve, ok := animation.CurveByName(cfg.Easing)
	if !ok {
		return nil, renewalerrors.New(op, renewalerrors.KindConfig,
			fmt.Errorf("unknown easing %q", cfg.Easing))
	}

	o := options{scheduler: animation.DefaultScheduler}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Carousel{
		residents: append([]Resident(nil), residents...),
		surface:   surface,
		config:    cfg,
		events:    NewEmitter(),
	}
	c.strategy = o.strategy
	if c.strategy == nil {
		c.strategy = selectStrategy(cfg, surface, curve, o.scheduler)
	}

	c.position = abs(cfg.Start)
	if c.position < 0 || c.position >= len(c.residents) {
		c.position = len(c.residents) - 1
	}
	c.offset = c.WidthBefore(c.position)

	surface.SetWrapperClass(cfg.WrapperClass)
	if cfg.Transition != TransitionActive {
		surface.SetStripWidth(c.TotalWidth())
		surface.SetViewportWidth(c.ViewportWidth())
	}
	c.strategy.Init(c.position, -c.offset)

	return c, nil
}

// MoveTo moves the carousel so that the resident at position is at the front
// of the viewport. Positions outside [0, Size()) are ignored.
//
// MoveTo emits the before-move event, updates the position, emits the move
// event, starts the transition, and emits the after-move event once the
// transition completes. Moving to the current position runs the full
// sequence.
func (c *Carousel) MoveTo(position int) *Carousel {
	if position < 0 || position >= len(c.residents) {
		return c
	}

	c.emit(c.config.EventBeforeMove)
	c.position = position
	c.offset = c.WidthBefore(position)
	c.emit(c.config.EventMove)

	c.moveSeq++
	seq := c.moveSeq
	c.moving = true
	c.strategy.Apply(position, -c.offset, func() {
		if seq != c.moveSeq {
			return
		}
		c.moving = false
		c.emit(c.config.EventAfterMove)
	})
	return c
}

// Advance moves forward by steps, or by the visible count (at least one)
// when steps is omitted or zero. Negative steps move backward. The result
// saturates at the first and last positions.
func (c *Carousel) Advance(steps ...int) *Carousel {
	st := c.step(steps)
	next := c.position + st
	if st >= len(c.residents) || next >= len(c.residents) {
		next = len(c.residents) - 1
	}
	if next < 0 {
		next = 0
	}
	return c.MoveTo(next)
}

// Reverse moves backward by steps, or by the visible count (at least one)
// when steps is omitted or zero. Negative steps move forward. The result
// saturates at the first and last positions.
func (c *Carousel) Reverse(steps ...int) *Carousel {
	st := c.step(steps)
	previous := c.position - st
	if previous >= len(c.residents) {
		previous = len(c.residents) - 1
	}
	if previous < 0 {
		previous = 0
	}
	return c.MoveTo(previous)
}

func (c *Carousel) step(steps []int) int {
	if len(steps) > 0 && steps[0] != 0 {
		return steps[0]
	}
	if c.config.Visible > 0 {
		return c.config.Visible
	}
	return 1
}

// Position returns the index of the resident at the front of the viewport.
func (c *Carousel) Position() int { return c.position }

// Config returns the configuration with defaults applied.
func (c *Carousel) Config() Config { return c.config }

// Size returns the number of residents.
func (c *Carousel) Size() int { return len(c.residents) }

// Current returns the resident at the front of the viewport.
func (c *Carousel) Current() Resident { return c.residents[c.position] }

// Resident returns the resident at index, or nil when index is out of range.
func (c *Carousel) Resident(index int) Resident {
	if index < 0 || index >= len(c.residents) {
		return nil
	}
	return c.residents[index]
}

// Offset returns how far, in pixels, the strip is shifted left for the
// current position. The surface receives the negated value.
func (c *Carousel) Offset() float64 { return c.offset }

// Moving reports whether a move is waiting for its transition to finish.
func (c *Carousel) Moving() bool { return c.moving }

// Strategy returns the name of the strategy in use.
func (c *Carousel) Strategy() string { return c.strategy.Name() }

// WidthBefore returns the combined width of the residents before index.
// Index is clamped to [0, Size()].
func (c *Carousel) WidthBefore(index int) float64 {
	if index > len(c.residents) {
		index = len(c.residents)
	}
	width := 0.0
	for i := 0; i < index; i++ {
		width += c.surface.MeasureWidth(c.residents[i])
	}
	return width
}

// TotalWidth returns the combined width of all residents.
func (c *Carousel) TotalWidth() float64 {
	return c.WidthBefore(len(c.residents))
}

// ViewportWidth returns the width of the first Visible residents, or the
// total width when Visible is zero.
func (c *Carousel) ViewportWidth() float64 {
	if c.config.Visible <= 0 {
		return c.TotalWidth()
	}
	return c.WidthBefore(c.config.Visible)
}

// Events returns the carousel's emitter.
func (c *Carousel) Events() *Emitter { return c.events }

// On registers fn for the named event. Returns an unsubscribe function.
func (c *Carousel) On(name string, fn Listener) func() {
	return c.events.On(name, fn)
}

// Trigger delivers an inbound event to its listeners. The configured
// advance and reverse events then move the carousel by its default step.
func (c *Carousel) Trigger(name string) *Carousel {
	c.emit(name)
	switch name {
	case c.config.EventAdvance:
		return c.Advance()
	case c.config.EventReverse:
		return c.Reverse()
	}
	return c
}

func (c *Carousel) emit(name string) {
	c.events.Emit(Event{Name: name, Position: c.position, Offset: c.offset})
}

// abs returns |n|. For math.MinInt the result stays negative.
func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
