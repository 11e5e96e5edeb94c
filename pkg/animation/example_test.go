package animation_test

import (
	"fmt"
	"time"

	"github.com/go-renewal/renewal/pkg/animation"
)

// manualClock only moves when told to.
type manualClock struct{ now time.Time }

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// This example drives a strip offset through two frames.
func ExampleAnimationController() {
	clock := &manualClock{now: time.Unix(0, 0)}
	sched := animation.NewScheduler(clock)

	controller := animation.NewAnimationController(100 * time.Millisecond)
	controller.Scheduler = sched
	left := animation.TweenFloat64(0, -150)

	controller.AddListener(func() {
		fmt.Printf("left: %.0fpx\n", left.Transform(controller))
	})
	controller.AddStatusListener(func(status animation.AnimationStatus) {
		fmt.Println("status:", status)
	})

	controller.Forward()
	for range 2 {
		clock.Advance(50 * time.Millisecond)
		sched.Step()
	}
	controller.Dispose()

	// Output:
	// status: forward
	// left: -75px
	// left: -150px
	// status: completed
}

// This example evaluates a tween between two pixel offsets.
func ExampleTween() {
	offset := animation.TweenFloat64(0, -100)
	fmt.Printf("%.0f %.0f\n", offset.Evaluate(0.25), offset.Evaluate(1))

	// Output:
	// -25 -100
}

// This example resolves easing names as they appear in configuration.
func ExampleCurveByName() {
	curve, ok := animation.CurveByName("ease-in-out")
	fmt.Println(ok)
	fmt.Printf("%.2f %.2f %.2f\n", curve(0), curve(0.5), curve(1))

	_, ok = animation.CurveByName("bounce")
	fmt.Println(ok)

	// Output:
	// true
	// 0.00 0.50 1.00
	// false
}
