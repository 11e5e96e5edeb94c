package carousel

import (
	"fmt"

	renewalerrors "github.com/go-renewal/renewal/pkg/errors"
)

// Event is delivered to listeners registered with [Emitter.On].
type Event struct {
	// Name is the event name, such as "renewal.moving".
	Name string
	// Position is the carousel position when the event fired.
	Position int
	// Offset is the strip shift, in pixels, for Position.
	Offset float64
}

// Listener receives carousel events.
type Listener func(Event)

type listenerEntry struct {
	id   int
	fn   Listener
	once bool
}

// Emitter dispatches named events to listeners in registration order.
// Emitters are not safe for concurrent use; carousels run on one event loop.
type Emitter struct {
	listeners map[string][]listenerEntry
	nextID    int
}

// NewEmitter returns an empty emitter.
func NewEmitter() *Emitter {
	return &Emitter{listeners: make(map[string][]listenerEntry)}
}

// On registers fn for name. Returns an unsubscribe function.
func (e *Emitter) On(name string, fn Listener) func() {
	return e.add(name, fn, false)
}

// Once registers fn for the next emission of name only.
func (e *Emitter) Once(name string, fn Listener) func() {
	return e.add(name, fn, true)
}

func (e *Emitter) add(name string, fn Listener, once bool) func() {
	id := e.nextID
	e.nextID++
	e.listeners[name] = append(e.listeners[name], listenerEntry{id: id, fn: fn, once: once})
	return func() { e.remove(name, id) }
}

func (e *Emitter) remove(name string, id int) {
	entries := e.listeners[name]
	for i, entry := range entries {
		if entry.id == id {
			e.listeners[name] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of listeners registered for name.
func (e *Emitter) ListenerCount(name string) int {
	return len(e.listeners[name])
}

// Emit delivers ev to every listener of ev.Name. A panicking listener is
// reported to the error handler and the remaining listeners still run.
func (e *Emitter) Emit(ev Event) {
	entries := e.listeners[ev.Name]
	if len(entries) == 0 {
		return
	}
	snapshot := make([]listenerEntry, len(entries))
	copy(snapshot, entries)
	for _, entry := range snapshot {
		if entry.once {
			e.remove(ev.Name, entry.id)
		}
		e.deliver(entry.fn, ev)
	}
}

func (e *Emitter) deliver(fn Listener, ev Event) {
	defer renewalerrors.RecoverWithCallback("carousel.Emit", func(r any) {
		renewalerrors.Report(&renewalerrors.RenewalError{
			Op:    "carousel.Emit",
			Kind:  renewalerrors.KindListener,
			Event: ev.Name,
			Err:   fmt.Errorf("listener panicked: %v", r),
		})
	})
	fn(ev)
}
