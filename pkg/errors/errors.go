// Package errors provides structured error reporting for Renewal carousels.
//
// Carousel operations never fail on out-of-range positions; those are clamped
// or ignored. The errors reported here cover the remaining failure surface:
// invalid configuration at construction, unparseable markup, script
// failures, frame rendering, and panics raised by event listeners.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid carousel configuration.
	KindConfig
	// KindMarkup indicates a resident markup parsing failure.
	KindMarkup
	// KindListener indicates a failing event listener.
	KindListener
	// KindScript indicates a script evaluation error.
	KindScript
	// KindRender indicates a frame rendering error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindMarkup:
		return "markup"
	case KindListener:
		return "listener"
	case KindScript:
		return "script"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// RenewalError represents a structured error raised by a carousel component.
type RenewalError struct {
	// Op is the operation that failed (e.g., "carousel.New").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Event is the carousel event name, if applicable.
	Event string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RenewalError) Error() string {
	if e.Event != "" {
		return fmt.Sprintf("%s [%s] event=%s: %v", e.Op, e.Kind, e.Event, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *RenewalError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "carousel.Emit").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// StyleError reports an inline style value that could not be parsed.
type StyleError struct {
	// Property is the CSS property being read (e.g., "margin-left").
	Property string
	// Value is the raw declaration value.
	Value string
}

func (e *StyleError) Error() string {
	return fmt.Sprintf("cannot parse %s value %q", e.Property, e.Value)
}

// ErrorHandler receives errors reported by carousel components.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *RenewalError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
