// Package events carries "this aspect of state changed" signals between
// parts of the same process. Publishing names a topic only; observers are
// expected to re-read the store for the new state.
package events

import "sync"

const (
	TopicCart          = "cart"
	TopicAuth          = "auth"
	TopicOrders        = "orders"
	TopicCatalog       = "catalog"
	TopicNotifications = "notifications"
)

type Bus struct {
	mu   sync.Mutex
	next int
	subs map[string]map[int]func(topic string)
}

func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[int]func(string))}
}

// Subscribe registers fn for a topic and returns its cancel func.
func (b *Bus) Subscribe(topic string, fn func(topic string)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]func(string))
	}
	id := b.next
	b.next++
	b.subs[topic][id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
	}
}

// Publish fans out synchronously; callbacks run outside the bus lock.
func (b *Bus) Publish(topic string) {
	b.mu.Lock()
	fns := make([]func(string), 0, len(b.subs[topic]))
	for _, fn := range b.subs[topic] {
		fns = append(fns, fn)
	}
	b.mu.Unlock()
	for _, fn := range fns {
		fn(topic)
	}
}
