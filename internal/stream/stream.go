// Package stream is a small synchronous push channel: a Subject delivers
// values, then a single terminal signal, to its subscribers in order.
//
// Delivery happens on the goroutine that calls Send or Complete. There is no
// buffering and no backpressure. Operators build derived publishers that
// forward events from an upstream publisher.
package stream

import (
	"sync"
	"sync/atomic"
)

type Publisher[T any] interface {
	// Subscribe registers 'next' for each value and 'done' for the terminal
	// signal. 'done' receives nil on completion or the failure error, and is
	// called at most once. Neither is called after the returned Subscription
	// is cancelled.
	Subscribe(next func(T), done func(error)) *Subscription
}

// FuncPublisher wraps a function that implements Subscribe.
type FuncPublisher[T any] func(next func(T), done func(error)) *Subscription

func (f FuncPublisher[T]) Subscribe(next func(T), done func(error)) *Subscription {
	return f(next, done)
}

// Subscription is the handle of one subscriber. Cancelling it stops delivery
// to that subscriber only.
type Subscription struct {
	once      sync.Once
	cancelled atomic.Bool
	onCancel  func()
}

func newSubscription(onCancel func()) *Subscription {
	return &Subscription{onCancel: onCancel}
}

// Cancel stops delivery. It is safe to call more than once.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.cancelled.Store(true)
		if s.onCancel != nil {
			s.onCancel()
		}
	})
}

// Cancelled reports whether Cancel has been called
func (s *Subscription) Cancelled() bool {
	return s.cancelled.Load()
}

// Bag owns a set of subscriptions and cancels all of them on Close.
// Subscriptions added after Close are cancelled immediately.
type Bag struct {
	mu     sync.Mutex
	subs   []*Subscription
	closed bool
}

// Add stores a subscription in the bag
func (b *Bag) Add(s *Subscription) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		s.Cancel()
		return
	}
	b.subs = append(b.subs, s)
	b.mu.Unlock()
}

// Len returns the number of subscriptions held
func (b *Bag) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close cancels every subscription in the bag
func (b *Bag) Close() {
	b.mu.Lock()
	subs := b.subs
	b.subs = nil
	b.closed = true
	b.mu.Unlock()

	for _, s := range subs {
		s.Cancel()
	}
}

func orNoop[T any](next func(T), done func(error)) (func(T), func(error)) {
	if next == nil {
		next = func(T) {}
	}
	if done == nil {
		done = func(error) {}
	}
	return next, done
}
