package carousel_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/go-renewal/renewal/pkg/carousel"
	renewalerrors "github.com/go-renewal/renewal/pkg/errors"
)

func TestEmitter_DeliversInRegistrationOrder(t *testing.T) {
	e := carousel.NewEmitter()
	var got []string
	e.On("x", func(carousel.Event) { got = append(got, "first") })
	e.On("x", func(carousel.Event) { got = append(got, "second") })
	e.On("y", func(carousel.Event) { got = append(got, "other") })

	e.Emit(carousel.Event{Name: "x"})

	if want := []string{"first", "second"}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEmitter_Unsubscribe(t *testing.T) {
	e := carousel.NewEmitter()
	calls := 0
	off := e.On("x", func(carousel.Event) { calls++ })

	e.Emit(carousel.Event{Name: "x"})
	off()
	off()
	e.Emit(carousel.Event{Name: "x"})

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if n := e.ListenerCount("x"); n != 0 {
		t.Errorf("ListenerCount = %d, want 0", n)
	}
}

func TestEmitter_Once(t *testing.T) {
	e := carousel.NewEmitter()
	calls := 0
	e.Once("x", func(carousel.Event) { calls++ })

	e.Emit(carousel.Event{Name: "x"})
	e.Emit(carousel.Event{Name: "x"})

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestEmitter_ListenerAddedDuringEmitWaitsForNextEmit(t *testing.T) {
	e := carousel.NewEmitter()
	late := 0
	e.On("x", func(carousel.Event) {
		e.On("x", func(carousel.Event) { late++ })
	})

	e.Emit(carousel.Event{Name: "x"})
	if late != 0 {
		t.Errorf("listener added during emit ran %d times", late)
	}
	e.Emit(carousel.Event{Name: "x"})
	if late != 1 {
		t.Errorf("late listener ran %d times, want 1", late)
	}
}

func TestEmitter_RecoversPanickingListener(t *testing.T) {
	var reported []*renewalerrors.RenewalError
	var panics []*renewalerrors.PanicError
	prev := renewalerrors.SetHandler(&captureHandler{
		onError: func(err *renewalerrors.RenewalError) { reported = append(reported, err) },
		onPanic: func(err *renewalerrors.PanicError) { panics = append(panics, err) },
	})
	defer renewalerrors.SetHandler(prev)

	e := carousel.NewEmitter()
	ran := false
	e.On(carousel.EventAfterMove, func(carousel.Event) { panic("listener exploded") })
	e.On(carousel.EventAfterMove, func(carousel.Event) { ran = true })

	e.Emit(carousel.Event{Name: carousel.EventAfterMove})

	if !ran {
		t.Error("expected the listener after the panicking one to run")
	}
	if len(panics) != 1 || panics[0].Op != "carousel.Emit" {
		t.Fatalf("panics = %+v, want one from carousel.Emit", panics)
	}
	if len(reported) != 1 {
		t.Fatalf("reported %d errors, want 1", len(reported))
	}
	err := reported[0]
	if err.Kind != renewalerrors.KindListener || err.Event != carousel.EventAfterMove {
		t.Errorf("error = %+v, want a listener error for %s", err, carousel.EventAfterMove)
	}
	if !strings.Contains(err.Error(), "listener exploded") {
		t.Errorf("error %q should carry the panic value", err.Error())
	}
}

func TestTrigger_EmitsInboundEventThenMoves(t *testing.T) {
	tester := newTester(t, []float64{50, 50, 50}, carousel.Config{Visible: 1})
	c := tester.Carousel()

	c.Trigger(carousel.EventAdvance)
	want := []string{
		carousel.EventAdvance,
		carousel.EventBeforeMove, carousel.EventMove, carousel.EventAfterMove,
	}
	if got := tester.EventNames(); !slices.Equal(got, want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	if c.Position() != 1 {
		t.Errorf("position = %d, want 1", c.Position())
	}

	c.Trigger(carousel.EventReverse)
	if c.Position() != 0 {
		t.Errorf("position = %d after reverse trigger, want 0", c.Position())
	}
}

func TestTrigger_UnknownEventOnlyNotifies(t *testing.T) {
	tester := newTester(t, []float64{50, 50}, carousel.Config{})
	c := tester.Carousel()
	heard := 0
	c.On("custom.ping", func(carousel.Event) { heard++ })

	c.Trigger("custom.ping")

	if heard != 1 || c.Position() != 0 {
		t.Errorf("heard=%d position=%d, want 1 and 0", heard, c.Position())
	}
	if len(tester.Events()) != 0 {
		t.Errorf("unexpected lifecycle events %v", tester.EventNames())
	}
}

type captureHandler struct {
	onError func(*renewalerrors.RenewalError)
	onPanic func(*renewalerrors.PanicError)
}

func (h *captureHandler) HandleError(err *renewalerrors.RenewalError) { h.onError(err) }
func (h *captureHandler) HandlePanic(err *renewalerrors.PanicError) { h.onPanic(err) }
