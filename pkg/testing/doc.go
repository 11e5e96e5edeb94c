// Package testing drives Renewal carousels deterministically in tests.
//
// # Quick Start
//
// Build a tester over a headless strip, move the carousel, and pump frames:
//
//	func TestAdvance(t *testing.T) {
//	    tester := renewaltest.NewCarouselTesterWithT(t,
//	        renewaltest.Boxes(50, 50, 50),
//	        carousel.DefaultConfig(),
//	    )
//	    tester.Carousel().Advance()
//	    if err := tester.PumpAndSettle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	    if got := tester.Strip().Shift(); got != -50 {
//	        t.Errorf("shift = %v, want -50", got)
//	    }
//	}
//
// # Time
//
// The tester owns a [FakeClock]. Frames advance it by 16ms; use
// tester.Clock().Advance followed by Pump to jump directly.
//
// # Snapshots
//
// Capture the carousel and strip state and compare it to a golden file:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/advance.snapshot.json")
//
// Update golden files with:
//
//	RENEWAL_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import renewaltest "github.com/go-renewal/renewal/pkg/testing"
package testing
