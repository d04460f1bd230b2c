// Package stream carries qualified button-press events from the host
// runtime to subscribed screens. It is a synchronous pub-sub stream:
// every published press is delivered to every subscriber in registration
// order, on the publishing goroutine, with no buffering or reordering.
//
// Subscribers receive every press regardless of route; demultiplexing by
// ownership is the dispatcher's job.
package stream

import (
	"fmt"
	"log"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"
)

// Press is a single button-press event as emitted by the host runtime.
// QualifiedID has the form "route.localID".
type Press struct {
	QualifiedID string
	At          time.Time
}

// NewPress creates a Press stamped with the current time.
func NewPress(qualifiedID string) Press {
	return Press{QualifiedID: qualifiedID, At: time.Now()}
}

// Handler is a function that receives a press.
type Handler func(Press)

// subscription pairs a handle with its handler.
type subscription struct {
	id      string
	handler Handler
}

// Stream is the global button-press event stream.
// It is safe for concurrent use.
type Stream struct {
	mu     sync.RWMutex
	subs   []subscription
	nextID atomic.Uint64
}

// New creates an empty Stream.
func New() *Stream {
	return &Stream{}
}

// Subscribe registers a handler for every published press and returns a
// handle that can be passed to Unsubscribe.
func (s *Stream) Subscribe(handler Handler) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := fmt.Sprintf("press-%d", s.nextID.Add(1))
	s.subs = append(s.subs, subscription{id: id, handler: handler})
	return id
}

// Unsubscribe removes a subscription by handle.
// Returns true if the subscription was found and removed.
func (s *Stream) Unsubscribe(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Publish delivers a press to all subscribers in registration order.
// If a handler panics, the panic is logged, recovered, and delivery
// continues to the remaining subscribers.
func (s *Stream) Publish(p Press) {
	s.mu.RLock()
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()

	for _, sub := range subs {
		s.safeCall(sub.handler, p)
	}
}

// safeCall invokes a handler and recovers from panics so one misbehaving
// screen cannot block press delivery to the others.
func (s *Stream) safeCall(handler Handler, p Press) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("ERROR: press handler panicked for %s: %v\n%s",
				p.QualifiedID, r, debug.Stack())
		}
	}()
	handler(p)
}

// Len returns the number of active subscriptions.
func (s *Stream) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

// Clear removes all subscriptions.
func (s *Stream) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = nil
}
