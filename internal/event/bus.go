// Package event provides the synchronous publish/subscribe bus that every
// engine component communicates through.
//
// Architecture:
//   - Single-threaded dispatch on the caller's goroutine
//   - Handlers for one topic run in registration order
//   - Publishing a topic nobody listens to is a no-op
//   - Handlers may publish, subscribe and unsubscribe while a dispatch is running
package event

// Handler receives an event of any topic.
type Handler func(Event)

// Subscription identifies a registered handler so it can be removed later.
type Subscription struct {
	topic Topic
	id    uint64
}

// Topic returns the topic the subscription listens to.
func (s Subscription) Topic() Topic {
	return s.topic
}

type entry struct {
	id      uint64
	handler Handler
	removed bool
}

// Bus dispatches events to subscribers. The zero value is not usable; call NewBus.
type Bus struct {
	handlers map[Topic][]*entry
	nextID   uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Topic][]*entry),
	}
}

// Subscribe registers h for topic. No topic pre-declaration is needed.
func (b *Bus) Subscribe(topic Topic, h Handler) Subscription {
	b.nextID++
	b.handlers[topic] = append(b.handlers[topic], &entry{id: b.nextID, handler: h})
	return Subscription{topic: topic, id: b.nextID}
}

// SubscribeAll registers h for every known topic, in topic order.
// Used for tracing.
func (b *Bus) SubscribeAll(h Handler) []Subscription {
	subs := make([]Subscription, 0, len(topicNames))
	for t := Topic(0); t < topicCount; t++ {
		subs = append(subs, b.Subscribe(t, h))
	}
	return subs
}

// Unsubscribe removes a subscription. It reports whether it was registered.
// A handler removed during a dispatch is not called for the rest of it.
func (b *Bus) Unsubscribe(s Subscription) bool {
	list := b.handlers[s.topic]
	for i, e := range list {
		if e.id != s.id {
			continue
		}
		e.removed = true
		// Build a new slice so in-flight dispatches keep their view.
		next := make([]*entry, 0, len(list)-1)
		next = append(next, list[:i]...)
		next = append(next, list[i+1:]...)
		if len(next) == 0 {
			delete(b.handlers, s.topic)
		} else {
			b.handlers[s.topic] = next
		}
		return true
	}
	return false
}

// Publish delivers ev synchronously to every handler subscribed to its topic.
// Handlers added during the dispatch are not called for this event.
func (b *Bus) Publish(ev Event) {
	list := b.handlers[ev.Topic()]
	if len(list) == 0 {
		return
	}
	// Appends by nested Subscribe calls may reuse the backing array beyond
	// len(list); ranging over the captured header never reaches them.
	for _, e := range list {
		if e.removed {
			continue
		}
		e.handler(ev)
	}
}

// HandlerCount returns the number of handlers registered for the topic.
func (b *Bus) HandlerCount(t Topic) int {
	return len(b.handlers[t])
}

// On subscribes a handler typed on the concrete event struct. The topic is
// taken from E, so the handler signature is checked at compile time.
func On[E Event](b *Bus, h func(E)) Subscription {
	var zero E
	return b.Subscribe(zero.Topic(), func(ev Event) {
		if typed, ok := ev.(E); ok {
			h(typed)
		}
	})
}
