// Package stage provides a headless carousel surface.
//
// A [Strip] keeps the styles a browser would hold for a carousel viewport
// and its strip of residents: widths, the left offset, the translateX
// transform and the active resident. Transform transitions run on an
// animation.Scheduler, so a transition-end notification arrives after the
// configured duration has elapsed on the scheduler's clock.
package stage

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-renewal/renewal/pkg/animation"
	"github.com/go-renewal/renewal/pkg/carousel"
)

// Measurable residents report their outer width including margins.
type Measurable interface {
	OuterWidth() float64
}

// Box is a resident with an explicit box model.
type Box struct {
	// Label names the resident in renders and logs.
	Label string
	// Width is the border-box width.
	Width float64
	// MarginLeft and MarginRight are the horizontal margins.
	MarginLeft  float64
	MarginRight float64
}

// OuterWidth returns Width plus the horizontal margins.
func (b Box) OuterWidth() float64 {
	return b.Width + b.MarginLeft + b.MarginRight
}

// Write records one style assignment made on a strip.
type Write struct {
	Target   string // "wrapper" or "strip"
	Property string
	Value    string
}

// Option configures a Strip.
type Option func(*Strip)

// WithTransition sets the transform transition duration declared on the
// strip. Without it, transforms apply immediately.
func WithTransition(d time.Duration) Option {
	return func(s *Strip) { s.transition = d }
}

// WithoutTransform makes the strip report no transform support.
func WithoutTransform() Option {
	return func(s *Strip) { s.noTransform = true }
}

// WithScheduler sets the scheduler that runs transform transitions.
func WithScheduler(sched *animation.Scheduler) Option {
	return func(s *Strip) { s.scheduler = sched }
}

// Strip is a headless carousel.Surface.
type Strip struct {
	scheduler   *animation.Scheduler
	transition  time.Duration
	noTransform bool

	wrapper map[string]string
	strip   map[string]string
	writes  []Write

	left       float64
	translateX float64
	active     int

	endTicker    *animation.Ticker
	endListeners []endListener
	nextID       int
	transitions  int
}

type endListener struct {
	id int
	fn func()
}

var _ carousel.Surface = (*Strip)(nil)

// New creates an empty strip.
func New(opts ...Option) *Strip {
	s := &Strip{
		scheduler: animation.DefaultScheduler,
		wrapper:   make(map[string]string),
		strip:     make(map[string]string),
		active:    -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.transition > 0 {
		s.set("strip", "transition", "transform "+strconv.FormatInt(s.transition.Milliseconds(), 10)+"ms")
	}
	return s
}

// MeasureWidth returns the outer width of r. Residents that are neither
// Measurable nor plain numbers measure as zero.
func (s *Strip) MeasureWidth(r carousel.Resident) float64 {
	switch v := r.(type) {
	case Measurable:
		return v.OuterWidth()
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

// SetWrapperClass implements carousel.Surface.
func (s *Strip) SetWrapperClass(class string) {
	s.set("wrapper", "class", class)
}

// SetStripWidth implements carousel.Surface.
func (s *Strip) SetStripWidth(width float64) {
	s.set("strip", "position", "relative")
	s.set("strip", "width", px(width))
}

// SetViewportWidth implements carousel.Surface.
func (s *Strip) SetViewportWidth(width float64) {
	s.set("wrapper", "overflow-x", "hidden")
	s.set("wrapper", "width", px(width))
}

// SetLeft implements carousel.Surface.
func (s *Strip) SetLeft(x float64) {
	s.left = x
	s.set("strip", "left", px(x))
}

// SetTranslateX implements carousel.Surface. When the strip declares a
// transition, a transition-end notification follows once it has run for the
// declared duration; a new transform cancels the running transition.
func (s *Strip) SetTranslateX(x float64) {
	s.translateX = x
	s.set("strip", "transform", "translateX("+px(x)+")")
	if s.transition <= 0 || s.noTransform {
		return
	}
	if s.endTicker != nil {
		s.endTicker.Stop()
	}
	var ticker *animation.Ticker
	ticker = s.scheduler.NewTicker(func(elapsed time.Duration) {
		if elapsed < s.transition {
			return
		}
		ticker.Stop()
		if s.endTicker == ticker {
			s.endTicker = nil
		}
		s.EndTransition()
	})
	s.endTicker = ticker
	s.transitions++
	ticker.Start()
}

// SetActive implements carousel.Surface.
func (s *Strip) SetActive(index int) {
	s.active = index
	s.set("strip", "active", strconv.Itoa(index))
}

// SupportsTransform implements carousel.Surface.
func (s *Strip) SupportsTransform() bool { return !s.noTransform }

// TransitionDuration implements carousel.Surface. A strip without transform
// support never runs a transform transition.
func (s *Strip) TransitionDuration() time.Duration {
	if s.noTransform {
		return 0
	}
	return s.transition
}

// OnTransitionEnd implements carousel.Surface.
func (s *Strip) OnTransitionEnd(fn func()) func() {
	id := s.nextID
	s.nextID++
	s.endListeners = append(s.endListeners, endListener{id: id, fn: fn})
	return func() {
		for i, l := range s.endListeners {
			if l.id == id {
				s.endListeners = append(s.endListeners[:i:i], s.endListeners[i+1:]...)
				return
			}
		}
	}
}

// EndTransition delivers a transition-end notification to the registered
// listeners and clears them.
func (s *Strip) EndTransition() {
	listeners := s.endListeners
	s.endListeners = nil
	for _, l := range listeners {
		l.fn()
	}
}

// Transitioning reports whether a transform transition is running.
func (s *Strip) Transitioning() bool { return s.endTicker != nil }

// TransitionCount returns how many transform transitions have started.
func (s *Strip) TransitionCount() int { return s.transitions }

// Left returns the current left offset.
func (s *Strip) Left() float64 { return s.left }

// TranslateX returns the current transform offset.
func (s *Strip) TranslateX() float64 { return s.translateX }

// Shift returns the combined horizontal displacement of the strip.
func (s *Strip) Shift() float64 { return s.left + s.translateX }

// Active returns the active resident index, or -1.
func (s *Strip) Active() int { return s.active }

// StripStyle returns the value of a strip style property.
func (s *Strip) StripStyle(property string) string { return s.strip[property] }

// WrapperStyle returns the value of a wrapper style property.
func (s *Strip) WrapperStyle(property string) string { return s.wrapper[property] }

// ViewportWidth returns the wrapper width in pixels, or 0 when unset.
func (s *Strip) ViewportWidth() float64 { return parsePx(s.wrapper["width"]) }

// StripWidth returns the strip width in pixels, or 0 when unset.
func (s *Strip) StripWidth() float64 { return parsePx(s.strip["width"]) }

// Writes returns the style assignments in the order they were made.
func (s *Strip) Writes() []Write {
	return append([]Write(nil), s.writes...)
}

// CSS renders the strip styles as a declaration block in property order.
func (s *Strip) CSS() string {
	return declarations(s.strip)
}

// WrapperCSS renders the wrapper styles as a declaration block.
func (s *Strip) WrapperCSS() string {
	return declarations(s.wrapper)
}

func (s *Strip) set(target, property, value string) {
	if target == "wrapper" {
		s.wrapper[property] = value
	} else {
		s.strip[property] = value
	}
	s.writes = append(s.writes, Write{Target: target, Property: property, Value: value})
}

func declarations(styles map[string]string) string {
	keys := make([]string, 0, len(styles))
	for k := range styles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+styles[k])
	}
	return strings.Join(parts, "; ")
}

func px(v float64) string {
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

func parsePx(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
	if err != nil {
		return 0
	}
	return f
}
