package carousel_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/go-renewal/renewal/pkg/carousel"
	renewalerrors "github.com/go-renewal/renewal/pkg/errors"
	"github.com/go-renewal/renewal/pkg/stage"
	renewaltest "github.com/go-renewal/renewal/pkg/testing"
)

func newTester(t *testing.T, widths []float64, cfg carousel.Config, opts ...stage.Option) *renewaltest.CarouselTester {
	t.Helper()
	return renewaltest.NewCarouselTesterWithT(t, renewaltest.Boxes(widths...), cfg, opts...)
}

func equalWidths(n int, w float64) []float64 {
	widths := make([]float64, n)
	for i := range widths {
		widths[i] = w
	}
	return widths
}

func TestMoveTo_SetsPosition(t *testing.T) {
	for n := 1; n <= 5; n++ {
		tester := newTester(t, equalWidths(n, 50), carousel.Config{Visible: 1})
		c := tester.Carousel()
		for p := 0; p < n; p++ {
			if got := c.MoveTo(p).Position(); got != p {
				t.Errorf("n=%d: MoveTo(%d) position = %d", n, p, got)
			}
			if got, want := c.Offset(), float64(50*p); got != want {
				t.Errorf("n=%d: MoveTo(%d) offset = %v, want %v", n, p, got, want)
			}
		}
	}
}

func TestMoveTo_OutOfRangeIsIgnored(t *testing.T) {
	tester := newTester(t, []float64{50, 50, 50}, carousel.Config{Visible: 1})
	c := tester.Carousel().MoveTo(1)
	tester.ClearEvents()

	for _, p := range []int{-2, -1, 3, 5} {
		if got := c.MoveTo(p).Position(); got != 1 {
			t.Errorf("MoveTo(%d) changed position to %d", p, got)
		}
	}
	if len(tester.Events()) != 0 {
		t.Errorf("ignored moves emitted %v", tester.EventNames())
	}
}

func TestMoveTo_IsChainable(t *testing.T) {
	tester := newTester(t, []float64{50, 50, 50}, carousel.Config{})
	c := tester.Carousel()

	if c.MoveTo(1) != c || c.Advance() != c || c.Reverse() != c || c.Trigger("custom") != c {
		t.Error("expected moves to return the carousel")
	}
}

func TestMoveTo_EmitsLifecycleInOrder(t *testing.T) {
	tester := newTester(t, []float64{50, 50, 50}, carousel.Config{})
	tester.Carousel().MoveTo(2)

	events := tester.Events()
	want := []string{carousel.EventBeforeMove, carousel.EventMove, carousel.EventAfterMove}
	if got := tester.EventNames(); !slices.Equal(got, want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	if events[0].Position != 0 {
		t.Errorf("before-move position = %d, want 0 (previous position)", events[0].Position)
	}
	if events[1].Position != 2 || events[1].Offset != 100 {
		t.Errorf("move event = %+v, want position 2 offset 100", events[1])
	}
}

func TestMoveTo_CurrentPositionRunsFullSequence(t *testing.T) {
	tester := newTester(t, []float64{50, 50, 50}, carousel.Config{})
	c := tester.Carousel().MoveTo(1)
	tester.ClearEvents()

	c.MoveTo(1)

	if c.Position() != 1 || c.Offset() != 50 {
		t.Errorf("position/offset = %d/%v, want 1/50", c.Position(), c.Offset())
	}
	if len(tester.Events()) != 3 {
		t.Errorf("events = %v, want the full move sequence", tester.EventNames())
	}
}

// Three 50px residents with one visible.
func TestExample_ThreeResidents(t *testing.T) {
	tester := newTester(t, []float64{50, 50, 50}, carousel.Config{Visible: 1})
	c := tester.Carousel()
	strip := tester.Strip()

	steps := []struct {
		name     string
		move     func()
		position int
		offset   float64
	}{
		{"advance", func() { c.Advance() }, 1, 50},
		{"advance(5)", func() { c.Advance(5) }, 2, 100},
		{"reverse(10)", func() { c.Reverse(10) }, 0, 0},
	}
	for _, step := range steps {
		step.move()
		if c.Position() != step.position {
			t.Errorf("%s: position = %d, want %d", step.name, c.Position(), step.position)
		}
		if c.Offset() != step.offset {
			t.Errorf("%s: offset = %v, want %v", step.name, c.Offset(), step.offset)
		}
		if strip.TranslateX() != -step.offset {
			t.Errorf("%s: translateX = %v, want %v", step.name, strip.TranslateX(), -step.offset)
		}
	}
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name    string
		visible int
		start   int
		steps   []int
		want    int
	}{
		{"default step is visible count", 2, 0, nil, 2},
		{"default step is one when visible unset", 0, 0, nil, 1},
		{"zero step uses default", 1, 0, []int{0}, 1},
		{"two positions", 1, 0, []int{2}, 2},
		{"saturates at last", 1, 3, []int{1}, 4},
		{"partial step saturates at last", 1, 3, []int{2}, 4},
		{"step of size jumps to last", 1, 0, []int{5}, 4},
		{"negative step moves backward", 1, 3, []int{-1}, 2},
		{"negative step saturates at first", 1, 1, []int{-4}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := carousel.Config{Visible: tt.visible, Start: tt.start}
			c := newTester(t, equalWidths(5, 40), cfg).Carousel()
			if got := c.Advance(tt.steps...).Position(); got != tt.want {
				t.Errorf("position = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name    string
		visible int
		start   int
		steps   []int
		want    int
	}{
		{"default step is visible count", 2, 4, nil, 2},
		{"one step", 1, 2, []int{1}, 1},
		{"two steps", 1, 2, []int{2}, 0},
		{"saturates at first", 1, 1, []int{3}, 0},
		{"negative step moves forward", 1, 1, []int{-2}, 3},
		{"negative step saturates at last", 1, 3, []int{-10}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := carousel.Config{Visible: tt.visible, Start: tt.start}
			c := newTester(t, equalWidths(5, 40), cfg).Carousel()
			if got := c.Reverse(tt.steps...).Position(); got != tt.want {
				t.Errorf("position = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReverse_UndoesAdvanceAwayFromBoundaries(t *testing.T) {
	const n = 8
	c := newTester(t, equalWidths(n, 30), carousel.Config{Visible: 1}).Carousel()

	for start := 0; start < n; start++ {
		for steps := 1; start+steps < n; steps++ {
			c.MoveTo(start)
			c.Advance(steps).Reverse(steps)
			if c.Position() != start {
				t.Errorf("start=%d steps=%d: ended at %d", start, steps, c.Position())
			}
		}
	}
}

func TestNew_MeasuresWithMargins(t *testing.T) {
	residents := []carousel.Resident{
		stage.Box{Label: "a", Width: 40, MarginLeft: 5, MarginRight: 5},
		stage.Box{Label: "b", Width: 60, MarginRight: 10},
		stage.Box{Label: "c", Width: 30},
	}
	tester := renewaltest.NewCarouselTesterWithT(t, residents, carousel.Config{Visible: 2})
	c := tester.Carousel()

	if got := c.TotalWidth(); got != 150 {
		t.Errorf("TotalWidth = %v, want 150", got)
	}
	if got := c.ViewportWidth(); got != 120 {
		t.Errorf("ViewportWidth = %v, want 120", got)
	}
	if got := tester.Strip().WrapperStyle("width"); got != "120px" {
		t.Errorf("wrapper width = %q, want 120px", got)
	}
	if got := tester.Strip().StripStyle("width"); got != "150px" {
		t.Errorf("strip width = %q, want 150px", got)
	}
	if got := tester.Strip().WrapperStyle("overflow-x"); got != "hidden" {
		t.Errorf("wrapper overflow-x = %q, want hidden", got)
	}
	if got := c.MoveTo(2).Offset(); got != 120 {
		t.Errorf("offset of position 2 = %v, want 120", got)
	}
}

func TestNew_ViewportShowsAllWhenVisibleUnsetOrLarge(t *testing.T) {
	for _, visible := range []int{0, 3, 10} {
		c := newTester(t, []float64{10, 20, 30}, carousel.Config{Visible: visible}).Carousel()
		if got := c.ViewportWidth(); got != 60 {
			t.Errorf("visible=%d: ViewportWidth = %v, want 60", visible, got)
		}
	}
}

func TestNew_StartPosition(t *testing.T) {
	cfg := carousel.Config{Transition: carousel.TransitionOffset, Start: -1, Visible: 1}
	tester := newTester(t, []float64{50, 50, 50}, cfg)

	if got := tester.Carousel().Position(); got != 1 {
		t.Errorf("position = %d, want 1", got)
	}
	if got := tester.Strip().StripStyle("left"); got != "-50px" {
		t.Errorf("left = %q, want -50px", got)
	}
}

func TestNew_StartBeyondLastClamps(t *testing.T) {
	c := newTester(t, []float64{50, 50, 50}, carousel.Config{Start: 7}).Carousel()
	if got := c.Position(); got != 2 {
		t.Errorf("position = %d, want 2", got)
	}
}

func TestNew_StartAtMinIntClamps(t *testing.T) {
	c := newTester(t, []float64{50, 50, 50}, carousel.Config{Start: math.MinInt}).Carousel()
	if got := c.Position(); got != 2 {
		t.Errorf("position = %d, want 2", got)
	}
	if got := c.Current(); got == nil {
		t.Error("expected a current resident")
	}
}

func TestNew_Errors(t *testing.T) {
	boxes := renewaltest.Boxes(50)
	tests := []struct {
		name      string
		residents []carousel.Resident
		surface   carousel.Surface
		cfg       carousel.Config
		sentinel  error
	}{
		{"no residents", nil, stage.New(), carousel.Config{}, carousel.ErrNoResidents},
		{"no surface", boxes, nil, carousel.Config{}, carousel.ErrNoSurface},
		{"unknown easing", boxes, stage.New(), carousel.Config{Easing: "wobble"}, nil},
		{"unknown transition", boxes, stage.New(), carousel.Config{Transition: "fade"}, nil},
		{"negative speed", boxes, stage.New(), carousel.Config{Speed: -1}, nil},
		{"negative visible", boxes, stage.New(), carousel.Config{Visible: -1}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := carousel.New(tt.residents, tt.surface, tt.cfg)
			if err == nil {
				t.Fatalf("expected error, got carousel %v", c)
			}
			var rerr *renewalerrors.RenewalError
			if !errors.As(err, &rerr) || rerr.Kind != renewalerrors.KindConfig {
				t.Errorf("expected config RenewalError, got %v", err)
			}
			if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
				t.Errorf("expected errors.Is(%v)", tt.sentinel)
			}
		})
	}
}

func TestConfig_Defaults(t *testing.T) {
	def := carousel.DefaultConfig()
	if def.Transition != carousel.TransitionSlide || def.Visible != 1 || def.Speed.Milliseconds() != 150 {
		t.Errorf("unexpected defaults: %+v", def)
	}

	c := newTester(t, []float64{10}, carousel.Config{}).Carousel()
	cfg := c.Config()
	if cfg.WrapperClass != carousel.DefaultWrapperClass {
		t.Errorf("WrapperClass = %q", cfg.WrapperClass)
	}
	if cfg.EventAfterMove != carousel.EventAfterMove || cfg.EventAdvance != carousel.EventAdvance {
		t.Errorf("event names not defaulted: %+v", cfg)
	}
	if c.Size() != 1 {
		t.Errorf("Size = %d, want 1", c.Size())
	}
}

func TestCustomEventNames(t *testing.T) {
	cfg := carousel.Config{
		EventAdvance:    "next",
		EventReverse:    "prev",
		EventBeforeMove: "before",
		EventMove:       "during",
		EventAfterMove:  "after",
	}
	c := newTester(t, []float64{10, 10, 10}, cfg).Carousel()

	var got []string
	for _, name := range []string{"before", "during", "after"} {
		c.On(name, func(ev carousel.Event) { got = append(got, ev.Name) })
	}

	c.Trigger("next")
	if c.Position() != 1 {
		t.Fatalf("position = %d after custom advance trigger, want 1", c.Position())
	}
	c.Trigger("prev")
	if c.Position() != 0 {
		t.Fatalf("position = %d after custom reverse trigger, want 0", c.Position())
	}
	c.Trigger(carousel.EventAdvance)
	if c.Position() != 0 {
		t.Errorf("default advance name should not move a renamed carousel")
	}

	want := []string{"before", "during", "after", "before", "during", "after"}
	if !slices.Equal(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestCurrentAndResident(t *testing.T) {
	tester := newTester(t, []float64{10, 20, 30}, carousel.Config{})
	c := tester.Carousel().MoveTo(2)

	box, ok := c.Current().(stage.Box)
	if !ok || box.Width != 30 {
		t.Errorf("Current = %#v, want the 30px box", c.Current())
	}
	if c.Resident(-1) != nil || c.Resident(3) != nil {
		t.Error("expected nil for out-of-range residents")
	}
}
