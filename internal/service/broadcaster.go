package service

import "sync"

const subscriberBuffer = 16

// broadcaster fans values out to subscribers without blocking the
// publisher. A subscriber whose buffer is full misses the value.
type broadcaster[T any] struct {
	mu   sync.Mutex
	subs map[int]chan T
	next int
}

func newBroadcaster[T any]() *broadcaster[T] {
	return &broadcaster[T]{subs: make(map[int]chan T)}
}

// Subscribe registers a subscriber. Values in initial are queued on the new
// channel before any published value.
func (b *broadcaster[T]) Subscribe(initial ...T) (<-chan T, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan T, subscriberBuffer+len(initial))
	for _, v := range initial {
		ch <- v
	}
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			close(ch)
		})
	}
}

func (b *broadcaster[T]) Publish(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- v:
		default:
		}
	}
}
