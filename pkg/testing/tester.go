package testing

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/go-renewal/renewal/pkg/animation"
	"github.com/go-renewal/renewal/pkg/carousel"
	"github.com/go-renewal/renewal/pkg/stage"
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: carousel did not settle")

// CarouselTester runs a carousel on a headless strip with a fake clock and
// records every lifecycle event it emits.
type CarouselTester struct {
	clock     *FakeClock
	scheduler *animation.Scheduler
	strip     *stage.Strip
	carousel  *carousel.Carousel
	events    []carousel.Event
	unsub     []func()
}

// Boxes returns margin-free stage.Box residents of the given widths,
// labelled "0", "1", and so on.
func Boxes(widths ...float64) []carousel.Resident {
	residents := make([]carousel.Resident, len(widths))
	for i, w := range widths {
		residents[i] = stage.Box{Label: strconv.Itoa(i), Width: w}
	}
	return residents
}

// NewCarouselTester builds a carousel over residents on a fresh strip. The
// strip and the carousel share the tester's scheduler.
func NewCarouselTester(residents []carousel.Resident, cfg carousel.Config, stripOpts ...stage.Option) (*CarouselTester, error) {
	clock := NewFakeClock()
	sched := animation.NewScheduler(clock)

	opts := append([]stage.Option{stage.WithScheduler(sched)}, stripOpts...)
	strip := stage.New(opts...)

	c, err := carousel.New(residents, strip, cfg, carousel.WithScheduler(sched))
	if err != nil {
		return nil, err
	}

	t := &CarouselTester{
		clock:     clock,
		scheduler: sched,
		strip:     strip,
		carousel:  c,
	}
	conf := c.Config()
	for _, name := range []string{
		conf.EventBeforeMove, conf.EventMove, conf.EventAfterMove,
		conf.EventAdvance, conf.EventReverse,
	} {
		t.unsub = append(t.unsub, c.On(name, func(ev carousel.Event) {
			t.events = append(t.events, ev)
		}))
	}
	return t, nil
}

// NewCarouselTesterWithT is NewCarouselTester that fails the test on a
// construction error and detaches its listeners on cleanup.
func NewCarouselTesterWithT(t *testing.T, residents []carousel.Resident, cfg carousel.Config, stripOpts ...stage.Option) *CarouselTester {
	t.Helper()
	tester, err := NewCarouselTester(residents, cfg, stripOpts...)
	if err != nil {
		t.Fatalf("build carousel: %v", err)
	}
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup detaches the tester's event recorders.
func (t *CarouselTester) Cleanup() {
	for _, fn := range t.unsub {
		fn()
	}
	t.unsub = nil
}

// Carousel returns the carousel under test.
func (t *CarouselTester) Carousel() *carousel.Carousel { return t.carousel }

// Strip returns the headless surface.
func (t *CarouselTester) Strip() *stage.Strip { return t.strip }

// Clock returns the fake clock.
func (t *CarouselTester) Clock() *FakeClock { return t.clock }

// Scheduler returns the scheduler shared by the carousel and the strip.
func (t *CarouselTester) Scheduler() *animation.Scheduler { return t.scheduler }

// Events returns the recorded events in emission order.
func (t *CarouselTester) Events() []carousel.Event {
	return append([]carousel.Event(nil), t.events...)
}

// EventNames returns the names of the recorded events.
func (t *CarouselTester) EventNames() []string {
	names := make([]string, len(t.events))
	for i, ev := range t.events {
		names[i] = ev.Name
	}
	return names
}

// ClearEvents forgets the recorded events.
func (t *CarouselTester) ClearEvents() { t.events = nil }

// Pump runs one frame at the current clock time.
func (t *CarouselTester) Pump() {
	t.scheduler.Step()
}

// PumpFor advances the clock by d in frame-sized steps, running a frame
// after each step.
func (t *CarouselTester) PumpFor(d time.Duration) {
	for d > 0 {
		step := min(FrameDuration, d)
		t.clock.Advance(step)
		t.Pump()
		d -= step
	}
}

// PumpAndSettle runs frames until no animation or transition is running or
// the timeout is reached. Returns ErrSettleTimeout if the carousel does not
// settle within timeout.
func (t *CarouselTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		t.Pump()
		if !t.scheduler.HasActive() {
			return nil
		}
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}
