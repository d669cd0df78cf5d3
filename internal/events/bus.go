package events

import (
	"context"
	"log"
	"sync"
)

// Handler consumes one event. Handlers must be pure functions of the event
// and the data store; they may not retain uncommitted state.
type Handler func(ctx context.Context, e Event)

// Bus is the in-process publish/subscribe fabric. Dispatch is synchronous:
// Publish invokes every matching subscriber before returning, which gives
// per-aggregate emission-order delivery for free since producers publish an
// aggregate's events from inside that aggregate's critical section.
//
// Subscriber panics are recovered and logged; a failing subscriber never
// fails the publisher.
type Bus struct {
	mu   sync.RWMutex
	subs map[string][]Handler
	all  []Handler
}

func NewBus() *Bus {
	return &Bus{subs: make(map[string][]Handler)}
}

// Subscribe registers h for events with the given name.
func (b *Bus) Subscribe(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[name] = append(b.subs[name], h)
}

// SubscribeAll registers h for every event.
func (b *Bus) SubscribeAll(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.all = append(b.all, h)
}

// Publish delivers e to all subscribers, best effort.
func (b *Bus) Publish(ctx context.Context, e Event) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[e.Name()])+len(b.all))
	handlers = append(handlers, b.subs[e.Name()]...)
	handlers = append(handlers, b.all...)
	b.mu.RUnlock()

	for _, h := range handlers {
		b.deliver(ctx, e, h)
	}
}

func (b *Bus) deliver(ctx context.Context, e Event, h Handler) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[events][bus] subscriber panic event=%s aggregate=%s recovered=%v", e.Name(), e.AggregateID(), r)
		}
	}()
	h(ctx, e)
}
