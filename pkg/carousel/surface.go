package carousel

import "time"

// Resident is one item of a carousel. The core never inspects residents; it
// hands them to the Surface for measurement.
type Resident interface{}

// Surface is the presentation layer a carousel draws on.
//
// A surface owns the viewport (the fixed-width window) and the strip of
// residents inside it. Offsets are in pixels, or whatever unit MeasureWidth
// reports; negative values shift the strip left.
type Surface interface {
	// MeasureWidth returns the outer width of r including its horizontal
	// margins.
	MeasureWidth(r Resident) float64

	// SetWrapperClass tags the viewport.
	SetWrapperClass(class string)
	// SetStripWidth sizes the strip holding all residents.
	SetStripWidth(width float64)
	// SetViewportWidth sizes the visible window and hides horizontal overflow.
	SetViewportWidth(width float64)

	// SetLeft positions the strip through its left offset.
	SetLeft(x float64)
	// SetTranslateX positions the strip through a translateX transform.
	SetTranslateX(x float64)
	// SetActive marks the resident at index as active.
	SetActive(index int)

	// SupportsTransform reports whether SetTranslateX is available.
	SupportsTransform() bool
	// TransitionDuration is the transition configured on the strip for
	// transforms. Zero means transforms apply without a transition and no
	// transition-end notification will follow.
	TransitionDuration() time.Duration
	// OnTransitionEnd registers fn to run once when the running transform
	// transition ends. The returned func cancels the registration.
	OnTransitionEnd(fn func()) (cancel func())
}
