// Package script exposes a carousel to JavaScript through the goja engine.
//
// Scripts see a global carousel object:
//
//	carousel.on("renewal.moved", function (ev) {
//	    console.log("now at", ev.position, ev.offset);
//	});
//	carousel.advance().advance(2);
//	carousel.reverse();
//	carousel.moveTo(0).getPosition();
//	carousel.trigger("renewal.advance");
//
// Listeners registered by scripts run on whichever goroutine moves the
// carousel.
package script

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dop251/goja"

	"github.com/go-renewal/renewal/pkg/carousel"
	renewalerrors "github.com/go-renewal/renewal/pkg/errors"
)

// Runtime wraps a goja runtime bound to one carousel. A Runtime is not safe
// for concurrent use.
type Runtime struct {
	vm       *goja.Runtime
	carousel *carousel.Carousel
	out      io.Writer
	errors   []error
	unsubs   []func()
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithOutput sets the writer behind console.log. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Runtime) { r.out = w }
}

// New creates a runtime with c bound to the global "carousel".
func New(c *carousel.Carousel, opts ...Option) *Runtime {
	r := &Runtime{
		vm:       goja.New(),
		carousel: c,
		out:      os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.setupConsole()
	r.setupCarousel()
	return r
}

// VM returns the underlying goja runtime.
func (r *Runtime) VM() *goja.Runtime {
	return r.vm
}

// Run compiles and runs code. name appears in stack traces. Compile errors,
// uncaught exceptions and engine panics are returned as script errors and
// kept for [Runtime.Errors].
func (r *Runtime) Run(name, code string) (result goja.Value, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = r.fail("script.Run", fmt.Errorf("%s: script panic: %v", name, p))
		}
	}()

	program, err := goja.Compile(name, code, false)
	if err != nil {
		return nil, r.fail("script.Run", err)
	}
	result, err = r.vm.RunProgram(program)
	if err != nil {
		return nil, r.fail("script.Run", err)
	}
	return result, nil
}

// Errors returns the errors recorded so far, including exceptions thrown by
// script listeners.
func (r *Runtime) Errors() []error {
	return append([]error(nil), r.errors...)
}

// Close detaches every listener the scripts registered.
func (r *Runtime) Close() {
	for _, off := range r.unsubs {
		off()
	}
	r.unsubs = nil
}

func (r *Runtime) fail(op string, err error) error {
	rerr := renewalerrors.New(op, renewalerrors.KindScript, err)
	r.errors = append(r.errors, rerr)
	return rerr
}

func (r *Runtime) setupConsole() {
	console := r.vm.NewObject()
	logTo := func(prefix string) func(goja.FunctionCall) goja.Value {
		return func(call goja.FunctionCall) goja.Value {
			line := formatArgs(call.Arguments)
			if prefix != "" {
				line = prefix + " " + line
			}
			fmt.Fprintln(r.out, line)
			return goja.Undefined()
		}
	}
	console.Set("log", logTo(""))
	console.Set("info", logTo("[INFO]"))
	console.Set("warn", logTo("[WARN]"))
	console.Set("error", logTo("[ERROR]"))
	r.vm.Set("console", console)
}

func formatArgs(args []goja.Value) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.String()
	}
	return strings.Join(parts, " ")
}
