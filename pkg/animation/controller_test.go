package animation_test

import (
	"math"
	"testing"
	"time"

	"github.com/go-renewal/renewal/pkg/animation"
)

func newTestController(d time.Duration) (*animation.AnimationController, *animation.Scheduler, *manualClock) {
	clock := &manualClock{now: time.Unix(0, 0)}
	sched := animation.NewScheduler(clock)
	c := animation.NewAnimationController(d)
	c.Scheduler = sched
	return c, sched, clock
}

func TestController_ZeroDurationCompletesOnFirstFrame(t *testing.T) {
	c, sched, _ := newTestController(0)

	c.Forward()
	if !c.IsAnimating() {
		t.Fatalf("expected forward status before first frame, got %v", c.Status())
	}
	sched.Step()

	if c.Value != 1 {
		t.Errorf("Value = %v, want 1", c.Value)
	}
	if !c.IsCompleted() {
		t.Errorf("Status = %v, want completed", c.Status())
	}
	if sched.HasActive() {
		t.Error("expected no active tickers after completion")
	}
}

func TestController_ResetThenForwardRestarts(t *testing.T) {
	c, sched, clock := newTestController(100 * time.Millisecond)

	var statuses []animation.AnimationStatus
	c.AddStatusListener(func(s animation.AnimationStatus) { statuses = append(statuses, s) })

	c.Forward()
	clock.Advance(60 * time.Millisecond)
	sched.Step()
	if c.Value < 0.59 || c.Value > 0.61 {
		t.Fatalf("Value = %v, want ~0.6", c.Value)
	}

	c.Reset()
	c.Forward()
	clock.Advance(50 * time.Millisecond)
	sched.Step()
	if c.Value < 0.49 || c.Value > 0.51 {
		t.Fatalf("after restart Value = %v, want ~0.5", c.Value)
	}

	clock.Advance(50 * time.Millisecond)
	sched.Step()

	want := []animation.AnimationStatus{
		animation.AnimationForward,
		animation.AnimationDismissed,
		animation.AnimationForward,
		animation.AnimationCompleted,
	}
	if len(statuses) != len(want) {
		t.Fatalf("statuses = %v, want %v", statuses, want)
	}
	for i := range want {
		if statuses[i] != want[i] {
			t.Errorf("statuses[%d] = %v, want %v", i, statuses[i], want[i])
		}
	}
}

func TestController_UnsubscribeListener(t *testing.T) {
	c, sched, clock := newTestController(10 * time.Millisecond)

	calls := 0
	unsubscribe := c.AddListener(func() { calls++ })
	unsubscribe()

	c.Forward()
	clock.Advance(20 * time.Millisecond)
	sched.Step()

	if calls != 0 {
		t.Errorf("listener called %d times after unsubscribe", calls)
	}
}

func TestScheduler_StepsInStartOrder(t *testing.T) {
	sched := animation.NewScheduler(&manualClock{now: time.Unix(0, 0)})

	var order []string
	a := sched.NewTicker(func(time.Duration) { order = append(order, "a") })
	b := sched.NewTicker(func(time.Duration) { order = append(order, "b") })
	b.Start()
	a.Start()

	sched.Step()
	a.Stop()
	sched.Step()

	want := []string{"b", "a", "b"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestTicker_Elapsed(t *testing.T) {
	clock := &manualClock{now: time.Unix(0, 0)}
	sched := animation.NewScheduler(clock)
	ticker := sched.NewTicker(nil)

	if ticker.Elapsed() != 0 {
		t.Error("inactive ticker should report zero elapsed")
	}
	ticker.Start()
	clock.Advance(30 * time.Millisecond)
	if got := ticker.Elapsed(); got != 30*time.Millisecond {
		t.Errorf("Elapsed = %v, want 30ms", got)
	}
}

func TestCurves_Endpoints(t *testing.T) {
	curves := map[string]func(float64) float64{}
	for _, name := range animation.CurveNames() {
		curve, ok := animation.CurveByName(name)
		if !ok {
			t.Fatalf("CurveByName(%q) not found", name)
		}
		curves[name] = curve
	}

	for name, curve := range curves {
		if got := curve(0); math.Abs(got) > 1e-6 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := curve(1); math.Abs(got-1) > 1e-6 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestCurveByName_EmptyIsSwing(t *testing.T) {
	curve, ok := animation.CurveByName("")
	if !ok {
		t.Fatal("expected empty name to resolve")
	}
	if got, want := curve(0.25), animation.Swing(0.25); got != want {
		t.Errorf("curve(0.25) = %v, want %v", got, want)
	}
	if _, ok := animation.CurveByName("  Ease-Out "); !ok {
		t.Error("expected names to be trimmed and case-insensitive")
	}
}

func TestSpringCurve_Overshoots(t *testing.T) {
	curve := animation.SpringCurve(10, 0.2)

	peak := 0.0
	for i := 0; i <= 100; i++ {
		peak = math.Max(peak, curve(float64(i)/100))
	}
	if peak <= 1 {
		t.Errorf("underdamped spring peak = %v, want > 1", peak)
	}
	if curve(1) != 1 {
		t.Errorf("curve(1) = %v, want 1", curve(1))
	}
}
