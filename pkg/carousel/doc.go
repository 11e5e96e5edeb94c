// Package carousel implements the position and motion logic of a Renewal
// carousel.
//
// A [Carousel] owns a fixed, ordered list of residents and the index of the
// resident at the front of the viewport. Moving to a position shifts the
// strip left by the combined width of every resident before it. Widths come
// from a [Surface], the presentation layer that also carries out the visual
// transition.
//
// # Moves
//
// [Carousel.MoveTo] ignores out-of-range positions. [Carousel.Advance] and
// [Carousel.Reverse] step by a count (default: the visible count) and
// saturate at the first and last residents. All three return the carousel so
// calls chain:
//
//	c.Advance().Advance(2).Reverse()
//
// # Events
//
// Each move emits, in order, the before-move, move and after-move events
// (by default "renewal.moving", "renewal.move" and "renewal.moved"). The
// after-move event waits for the transition to finish; instant transitions
// emit it before MoveTo returns. [Carousel.Trigger] accepts the inbound
// "renewal.advance" and "renewal.reverse" commands.
//
// # Strategies
//
// The move [Strategy] is chosen once at construction. Slide carousels use a
// translateX transform when the surface supports it, and otherwise animate
// the left offset through an animation.AnimationController. The active
// transition marks the current resident without moving the strip.
package carousel
