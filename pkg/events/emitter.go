// Package events provides a minimal synchronous publish/subscribe emitter.
package events

// subscription holds a single registered handler.
type subscription struct {
	id   int
	fn   func()
	once bool
}

// Emitter dispatches named events to subscribed handlers. Dispatch is
// synchronous and runs handlers in subscription order. An Emitter is not
// safe for concurrent use; it is meant to live on the UI goroutine.
type Emitter struct {
	nextID   int
	handlers map[string][]subscription
}

// NewEmitter creates an empty emitter.
func NewEmitter() *Emitter {
	return &Emitter{
		handlers: make(map[string][]subscription),
	}
}

// On registers a handler for the named event and returns its subscription id.
func (e *Emitter) On(name string, fn func()) int {
	return e.subscribe(name, fn, false)
}

// Once registers a handler that is removed after its first invocation.
func (e *Emitter) Once(name string, fn func()) int {
	return e.subscribe(name, fn, true)
}

func (e *Emitter) subscribe(name string, fn func(), once bool) int {
	e.nextID++
	e.handlers[name] = append(e.handlers[name], subscription{
		id:   e.nextID,
		fn:   fn,
		once: once,
	})
	return e.nextID
}

// Off removes the subscription with the given id from the named event.
// Unknown ids are ignored.
func (e *Emitter) Off(name string, id int) {
	e.remove(name, id)
}

func (e *Emitter) remove(name string, id int) bool {
	subs := e.handlers[name]
	for i, sub := range subs {
		if sub.id == id {
			e.handlers[name] = append(subs[:i:i], subs[i+1:]...)
			return true
		}
	}
	return false
}

// Emit invokes all handlers registered for the named event, in subscription
// order. Once-handlers are unregistered before they run, so a re-entrant
// Emit from inside a handler cannot fire them twice.
func (e *Emitter) Emit(name string) {
	subs := e.handlers[name]
	if len(subs) == 0 {
		return
	}

	// Snapshot so handlers can subscribe/unsubscribe without affecting
	// the current dispatch.
	snapshot := make([]subscription, len(subs))
	copy(snapshot, subs)

	for _, sub := range snapshot {
		if sub.once && !e.remove(name, sub.id) {
			// Already consumed by a re-entrant Emit.
			continue
		}
		sub.fn()
	}
}

// HandlerCount returns the number of handlers currently registered for the
// named event.
func (e *Emitter) HandlerCount(name string) int {
	return len(e.handlers[name])
}
