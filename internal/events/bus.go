package events

import (
	"log"
	"sync"

	"github.com/localnerve/decideforme/internal/metrics"
)

// Publisher publishes notifications into one scope
type Publisher interface {
	Publish(topic Topic)
}

// Forwarder receives every local publish, used to relay notifications to other instances
type Forwarder func(scope string, topic Topic)

type subscription struct {
	id    uint64
	topic Topic // empty for every topic
	fn    func(Topic)
}

// Bus dispatches named notifications to the listeners of a scope. A scope is one client profile.
// Listeners run synchronously, in subscription order, on the publishing goroutine.
type Bus struct {
	mu         sync.Mutex
	nextID     uint64
	scopes     map[string][]subscription
	forwarders []Forwarder
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{scopes: make(map[string][]subscription)}
}

// Subscribe registers listener for one topic of scope and returns the function that removes it
func (b *Bus) Subscribe(scope string, topic Topic, listener func()) func() {
	return b.add(scope, topic, func(Topic) { listener() })
}

// SubscribeAll registers listener for every topic of scope
func (b *Bus) SubscribeAll(scope string, listener func(Topic)) func() {
	return b.add(scope, "", listener)
}

func (b *Bus) add(scope string, topic Topic, fn func(Topic)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.scopes[scope] = append(b.scopes[scope], subscription{id: id, topic: topic, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(scope, id) })
	}
}

func (b *Bus) remove(scope string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.scopes[scope]
	kept := make([]subscription, 0, len(subs))
	for _, s := range subs {
		if s.id != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		delete(b.scopes, scope)
		return
	}
	b.scopes[scope] = kept
}

// AddForwarder registers f to see every local publish
func (b *Bus) AddForwarder(f Forwarder) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.forwarders = append(b.forwarders, f)
}

// Publish notifies every listener of topic in scope, then the forwarders
func (b *Bus) Publish(scope string, topic Topic) {
	metrics.Broadcasts.WithLabelValues(string(topic)).Inc()
	b.Dispatch(scope, topic)

	b.mu.Lock()
	forwarders := append([]Forwarder(nil), b.forwarders...)
	b.mu.Unlock()

	for _, f := range forwarders {
		f(scope, topic)
	}
}

// Dispatch notifies the local listeners of topic in scope without forwarding
func (b *Bus) Dispatch(scope string, topic Topic) {
	b.mu.Lock()
	subs := append([]subscription(nil), b.scopes[scope]...)
	b.mu.Unlock()

	for _, s := range subs {
		if s.topic == "" || s.topic == topic {
			b.call(s, scope, topic)
		}
	}
}

func (b *Bus) call(s subscription, scope string, topic Topic) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Listener panic on %s/%s: %v", scope, topic, r)
		}
	}()
	s.fn(topic)
}

// Listeners returns the number of listeners registered in scope
func (b *Bus) Listeners(scope string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.scopes[scope])
}

// Scope returns a Publisher bound to scope
func (b *Bus) Scope(scope string) Publisher {
	return scoped{bus: b, scope: scope}
}

type scoped struct {
	bus   *Bus
	scope string
}

func (s scoped) Publish(topic Topic) {
	s.bus.Publish(s.scope, topic)
}
