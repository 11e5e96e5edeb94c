package carousel

import "time"

// Transition selects how a carousel moves its strip.
type Transition string

const (
	// TransitionSlide slides the strip, using transforms when the surface
	// supports them and animating the left offset otherwise.
	TransitionSlide Transition = "slide"
	// TransitionTransform always slides with a translateX transform.
	TransitionTransform Transition = "transform"
	// TransitionOffset always slides by animating the left offset.
	TransitionOffset Transition = "offset"
	// TransitionActive marks the resident at the current position as active
	// without moving the strip.
	TransitionActive Transition = "active"
)

// Default event names.
const (
	EventAdvance    = "renewal.advance"
	EventReverse    = "renewal.reverse"
	EventBeforeMove = "renewal.moving"
	EventMove       = "renewal.move"
	EventAfterMove  = "renewal.moved"
)

// DefaultWrapperClass is applied to the viewport when WrapperClass is empty.
const DefaultWrapperClass = "renewal-carousel-container"

// Config holds carousel options. The zero value is usable: it slides
// instantly with every resident visible. [DefaultConfig] returns the
// conventional defaults.
type Config struct {
	// Transition selects the move strategy. Empty means TransitionSlide.
	Transition Transition `yaml:"transition,omitempty" json:"transition,omitempty"`
	// Speed is the slide duration. Zero moves instantly.
	Speed time.Duration `yaml:"speed,omitempty" json:"speed,omitempty"`
	// Easing names the curve used by offset animation. Empty means swing.
	Easing string `yaml:"easing,omitempty" json:"easing,omitempty"`
	// Visible is the number of residents shown in the viewport and the
	// default step of Advance and Reverse. Zero shows every resident.
	Visible int `yaml:"visible,omitempty" json:"visible,omitempty"`
	// Start is the initial position. Its absolute value is used.
	Start int `yaml:"start,omitempty" json:"start,omitempty"`
	// Vertical is accepted for compatibility and ignored; carousels only
	// move horizontally.
	Vertical bool `yaml:"vertical,omitempty" json:"vertical,omitempty"`
	// WrapperClass is applied to the viewport.
	WrapperClass string `yaml:"wrapper_class,omitempty" json:"wrapperClass,omitempty"`

	EventAdvance    string `yaml:"event_advance,omitempty" json:"eventAdvance,omitempty"`
	EventReverse    string `yaml:"event_reverse,omitempty" json:"eventReverse,omitempty"`
	EventBeforeMove string `yaml:"event_before_move,omitempty" json:"eventBeforeMove,omitempty"`
	EventMove       string `yaml:"event_move,omitempty" json:"eventMove,omitempty"`
	EventAfterMove  string `yaml:"event_after_move,omitempty" json:"eventAfterMove,omitempty"`
}

// DefaultConfig returns a slide carousel moving one resident per step over
// 150ms.
func DefaultConfig() Config {
	return Config{
		Transition: TransitionSlide,
		Speed:      150 * time.Millisecond,
		Visible:    1,
	}.withDefaults()
}

func (c Config) withDefaults() Config {
	if c.Transition == "" {
		c.Transition = TransitionSlide
	}
	if c.WrapperClass == "" {
		c.WrapperClass = DefaultWrapperClass
	}
	if c.EventAdvance == "" {
		c.EventAdvance = EventAdvance
	}
	if c.EventReverse == "" {
		c.EventReverse = EventReverse
	}
	if c.EventBeforeMove == "" {
		c.EventBeforeMove = EventBeforeMove
	}
	if c.EventMove == "" {
		c.EventMove = EventMove
	}
	if c.EventAfterMove == "" {
		c.EventAfterMove = EventAfterMove
	}
	return c
}
