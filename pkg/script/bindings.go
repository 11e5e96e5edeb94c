package script

import (
	"github.com/dop251/goja"

	"github.com/go-renewal/renewal/pkg/carousel"
	renewalerrors "github.com/go-renewal/renewal/pkg/errors"
	"github.com/go-renewal/renewal/pkg/stage"
)

func (r *Runtime) setupCarousel() {
	obj := r.vm.NewObject()
	c := r.carousel

	// Moves return the carousel object so scripts can chain them.
	obj.Set("advance", func(call goja.FunctionCall) goja.Value {
		c.Advance(stepsArg(call)...)
		return obj
	})
	obj.Set("reverse", func(call goja.FunctionCall) goja.Value {
		c.Reverse(stepsArg(call)...)
		return obj
	})
	obj.Set("moveTo", func(call goja.FunctionCall) goja.Value {
		arg := call.Argument(0)
		if goja.IsUndefined(arg) || goja.IsNull(arg) {
			panic(r.vm.NewTypeError("moveTo requires a position"))
		}
		c.MoveTo(int(arg.ToInteger()))
		return obj
	})
	obj.Set("trigger", func(call goja.FunctionCall) goja.Value {
		c.Trigger(call.Argument(0).String())
		return obj
	})

	obj.Set("getPosition", func(goja.FunctionCall) goja.Value {
		return r.vm.ToValue(c.Position())
	})
	obj.Set("size", func(goja.FunctionCall) goja.Value {
		return r.vm.ToValue(c.Size())
	})
	obj.Set("getOffset", func(goja.FunctionCall) goja.Value {
		return r.vm.ToValue(c.Offset())
	})
	obj.Set("isMoving", func(goja.FunctionCall) goja.Value {
		return r.vm.ToValue(c.Moving())
	})
	obj.Set("getConfig", func(goja.FunctionCall) goja.Value {
		return r.configObject(c.Config())
	})
	obj.Set("getCurrentItem", func(goja.FunctionCall) goja.Value {
		return r.residentValue(c.Current())
	})

	obj.Set("on", func(call goja.FunctionCall) goja.Value {
		name := call.Argument(0).String()
		fn, ok := goja.AssertFunction(call.Argument(1))
		if !ok {
			panic(r.vm.NewTypeError("on requires a listener function"))
		}
		off := c.On(name, func(ev carousel.Event) {
			if _, err := fn(goja.Undefined(), r.eventObject(ev)); err != nil {
				rerr := &renewalerrors.RenewalError{
					Op:    "script.listener",
					Kind:  renewalerrors.KindScript,
					Event: ev.Name,
					Err:   err,
				}
				r.errors = append(r.errors, rerr)
				renewalerrors.Report(rerr)
			}
		})
		r.unsubs = append(r.unsubs, off)
		return r.vm.ToValue(func(goja.FunctionCall) goja.Value {
			off()
			return goja.Undefined()
		})
	})

	r.vm.Set("carousel", obj)
}

func stepsArg(call goja.FunctionCall) []int {
	arg := call.Argument(0)
	if goja.IsUndefined(arg) || goja.IsNull(arg) {
		return nil
	}
	return []int{int(arg.ToInteger())}
}

func (r *Runtime) eventObject(ev carousel.Event) *goja.Object {
	obj := r.vm.NewObject()
	obj.Set("name", ev.Name)
	obj.Set("position", ev.Position)
	obj.Set("offset", ev.Offset)
	return obj
}

func (r *Runtime) configObject(cfg carousel.Config) *goja.Object {
	events := r.vm.NewObject()
	events.Set("advance", cfg.EventAdvance)
	events.Set("reverse", cfg.EventReverse)
	events.Set("moving", cfg.EventBeforeMove)
	events.Set("move", cfg.EventMove)
	events.Set("moved", cfg.EventAfterMove)

	obj := r.vm.NewObject()
	obj.Set("transition", string(cfg.Transition))
	obj.Set("speed", cfg.Speed.Milliseconds())
	obj.Set("easing", cfg.Easing)
	obj.Set("visible", cfg.Visible)
	obj.Set("start", cfg.Start)
	obj.Set("vertical", cfg.Vertical)
	obj.Set("wrapperClass", cfg.WrapperClass)
	obj.Set("events", events)
	return obj
}

func (r *Runtime) residentValue(res carousel.Resident) goja.Value {
	box, ok := res.(stage.Box)
	if !ok {
		return r.vm.ToValue(res)
	}
	obj := r.vm.NewObject()
	obj.Set("label", box.Label)
	obj.Set("width", box.Width)
	obj.Set("marginLeft", box.MarginLeft)
	obj.Set("marginRight", box.MarginRight)
	return obj
}
