package stage

import (
	"testing"
	"time"

	"github.com/go-renewal/renewal/pkg/animation"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

func TestMeasureWidth(t *testing.T) {
	s := New()
	tests := []struct {
		name     string
		resident any
		want     float64
	}{
		{"box with margins", Box{Width: 40, MarginLeft: 3, MarginRight: 7}, 50},
		{"float", 12.5, 12.5},
		{"int", 30, 30},
		{"unknown", "wide", 0},
		{"nil", nil, 0},
	}
	for _, tt := range tests {
		if got := s.MeasureWidth(tt.resident); got != tt.want {
			t.Errorf("%s: MeasureWidth = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestStyles(t *testing.T) {
	s := New()
	s.SetWrapperClass("renewal-carousel-container")
	s.SetStripWidth(150)
	s.SetViewportWidth(50)
	s.SetTranslateX(-50)

	if got, want := s.WrapperCSS(), "class: renewal-carousel-container; overflow-x: hidden; width: 50px"; got != want {
		t.Errorf("WrapperCSS = %q, want %q", got, want)
	}
	if got, want := s.CSS(), "position: relative; transform: translateX(-50px); width: 150px"; got != want {
		t.Errorf("CSS = %q, want %q", got, want)
	}
	if s.ViewportWidth() != 50 || s.StripWidth() != 150 {
		t.Errorf("widths = %v/%v, want 50/150", s.ViewportWidth(), s.StripWidth())
	}
	if got := len(s.Writes()); got != 6 {
		t.Errorf("writes = %d, want 6", got)
	}
}

func TestPxDropsNegativeZero(t *testing.T) {
	s := New()
	zero := 0.0
	s.SetLeft(-zero)
	s.SetTranslateX(-zero)
	if got := s.StripStyle("left"); got != "0px" {
		t.Errorf("left = %q", got)
	}
	if got := s.StripStyle("transform"); got != "translateX(0px)" {
		t.Errorf("transform = %q", got)
	}
	if got := px(-12.25); got != "-12.25px" {
		t.Errorf("px(-12.25) = %q", got)
	}
}

func TestShift(t *testing.T) {
	s := New()
	s.SetLeft(-20)
	s.SetTranslateX(-30)
	if got := s.Shift(); got != -50 {
		t.Errorf("Shift = %v, want -50", got)
	}
}

func TestTransitionEnd(t *testing.T) {
	clock := &stepClock{now: time.Unix(0, 0)}
	sched := animation.NewScheduler(clock)
	s := New(WithScheduler(sched), WithTransition(100*time.Millisecond))

	ended := 0
	s.OnTransitionEnd(func() { ended++ })
	s.SetTranslateX(-40)
	if !s.Transitioning() {
		t.Fatal("expected a running transition")
	}

	clock.now = clock.now.Add(60 * time.Millisecond)
	sched.Step()
	if ended != 0 {
		t.Fatal("transition ended early")
	}

	clock.now = clock.now.Add(40 * time.Millisecond)
	sched.Step()
	if ended != 1 {
		t.Errorf("ended = %d, want 1", ended)
	}
	if s.Transitioning() || sched.HasActive() {
		t.Error("expected the transition ticker to stop")
	}

	// Listeners are one-shot.
	s.EndTransition()
	if ended != 1 {
		t.Errorf("ended = %d after a second end, want 1", ended)
	}
}

func TestTransitionRestartsOnNewTransform(t *testing.T) {
	clock := &stepClock{now: time.Unix(0, 0)}
	sched := animation.NewScheduler(clock)
	s := New(WithScheduler(sched), WithTransition(100*time.Millisecond))

	ended := 0
	s.OnTransitionEnd(func() { ended++ })
	s.SetTranslateX(-40)
	clock.now = clock.now.Add(80 * time.Millisecond)
	sched.Step()
	s.SetTranslateX(-80)
	clock.now = clock.now.Add(80 * time.Millisecond)
	sched.Step()

	if ended != 0 {
		t.Fatalf("restarted transition ended after %v", 80*time.Millisecond)
	}
	clock.now = clock.now.Add(20 * time.Millisecond)
	sched.Step()
	if ended != 1 {
		t.Errorf("ended = %d, want 1", ended)
	}
	if got := s.TransitionCount(); got != 2 {
		t.Errorf("TransitionCount = %d, want 2", got)
	}
}

func TestOnTransitionEndCancel(t *testing.T) {
	s := New()
	called := false
	cancel := s.OnTransitionEnd(func() { called = true })
	cancel()
	s.EndTransition()
	if called {
		t.Error("cancelled listener was called")
	}
}

func TestWithoutTransform(t *testing.T) {
	s := New(WithoutTransform(), WithTransition(time.Second))
	if s.SupportsTransform() {
		t.Error("expected no transform support")
	}
	s.SetTranslateX(-10)
	if s.Transitioning() {
		t.Error("a strip without transforms should not run transitions")
	}
	if d := s.TransitionDuration(); d != 0 {
		t.Errorf("TransitionDuration = %v, want 0", d)
	}
}

func TestActive(t *testing.T) {
	s := New()
	if s.Active() != -1 {
		t.Errorf("initial Active = %d, want -1", s.Active())
	}
	s.SetActive(2)
	if s.Active() != 2 || s.StripStyle("active") != "2" {
		t.Errorf("Active = %d (%q), want 2", s.Active(), s.StripStyle("active"))
	}
}
