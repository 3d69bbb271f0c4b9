package event

import "reflect"

// Bus collects events emitted during a tick and delivers them, in emission
// order, when the host flushes it. Handlers are keyed by the concrete event
// type; Flush also returns the raw sequence for hosts that prefer to poll.
// Not safe for concurrent use.
type Bus struct {
	queue    []Event
	handlers map[reflect.Type][]any
}

func NewBus() *Bus {
	return &Bus{
		queue:    make([]Event, 0, 64),
		handlers: make(map[reflect.Type][]any),
	}
}

// Emit queues an event for the next Flush.
func Emit[T Event](b *Bus, event T) {
	b.queue = append(b.queue, event)
}

// Subscribe registers a typed handler for events of type T.
func Subscribe[T Event](b *Bus, fn func(T)) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	b.handlers[t] = append(b.handlers[t], fn)
}

// Pending returns the number of queued events.
func (b *Bus) Pending() int { return len(b.queue) }

// Flush delivers every queued event to its subscribed handlers in emission
// order, clears the queue and returns the delivered events.
func (b *Bus) Flush() []Event {
	if len(b.queue) == 0 {
		return nil
	}
	out := make([]Event, len(b.queue))
	copy(out, b.queue)
	b.queue = b.queue[:0]

	for _, ev := range out {
		for _, h := range b.handlers[reflect.TypeOf(ev)] {
			callHandler(h, ev)
		}
	}
	return out
}

// Discard drops queued events without delivering them.
func (b *Bus) Discard() {
	b.queue = b.queue[:0]
}

func callHandler(handler any, event any) {
	reflect.ValueOf(handler).Call([]reflect.Value{reflect.ValueOf(event)})
}
