// Package broadcast is an in-memory fan-out of typed events to subscribers.
package broadcast

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// DefaultBufferSize is the per-subscriber channel buffer.
const DefaultBufferSize = 16

// Broadcaster delivers every published event to all current subscribers.
// Publish never blocks: a subscriber whose buffer is full misses the event.
type Broadcaster[T any] struct {
	mu          sync.RWMutex
	subscribers map[string]chan T
	bufferSize  int
	closed      bool
}

// New creates a Broadcaster. bufferSize <= 0 uses DefaultBufferSize.
func New[T any](bufferSize int) *Broadcaster[T] {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Broadcaster[T]{
		subscribers: make(map[string]chan T),
		bufferSize:  bufferSize,
	}
}

// Subscribe registers a subscriber. The returned cancel func unsubscribes and
// closes the channel; it is also called automatically when ctx is done.
// Calling cancel more than once is safe.
func (b *Broadcaster[T]) Subscribe(ctx context.Context) (<-chan T, func()) {
	id := uuid.NewString()
	ch := make(chan T, b.bufferSize)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	b.subscribers[id] = ch
	b.mu.Unlock()

	var once sync.Once
	done := make(chan struct{})
	cancel := func() {
		once.Do(func() {
			close(done)
			b.unsubscribe(id)
		})
	}

	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-done:
		}
	}()

	return ch, cancel
}

func (b *Broadcaster[T]) unsubscribe(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[id]; ok {
		delete(b.subscribers, id)
		close(ch)
	}
}

// Publish sends event to all subscribers and returns how many received it.
func (b *Broadcaster[T]) Publish(event T) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	delivered := 0
	for _, ch := range b.subscribers {
		select {
		case ch <- event:
			delivered++
		default:
			// Subscriber too slow; drop
		}
	}
	return delivered
}

// Len returns the number of active subscribers.
func (b *Broadcaster[T]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Close unsubscribes everyone. Later Subscribe calls get a closed channel.
func (b *Broadcaster[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subscribers {
		delete(b.subscribers, id)
		close(ch)
	}
}
