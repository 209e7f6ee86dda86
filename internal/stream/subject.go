package stream

import (
	"slices"
	"sync"
)

type observer[T any] struct {
	next func(T)
	done func(error)
	sub  *Subscription
}

// Subject is a hot publisher fed by Send and terminated by Complete.
//
// Values are delivered to the subscribers active at the time of the Send, in
// subscription order. The first Complete is terminal: later Sends and
// Completes are ignored. Subscribing to a completed subject delivers the
// terminal signal immediately.
//
// Subscribe is safe for concurrent use. Send and Complete expect a single
// producer; concurrent producers get no ordering guarantee.
type Subject[T any] struct {
	mu        sync.Mutex
	observers []*observer[T]
	completed bool
	err       error
}

// NewSubject creates an open subject with no subscribers
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{}
}

func (s *Subject[T]) Subscribe(next func(T), done func(error)) *Subscription {
	next, done = orNoop(next, done)

	o := &observer[T]{next: next, done: done}
	o.sub = newSubscription(func() { s.remove(o) })

	s.mu.Lock()
	if s.completed {
		err := s.err
		s.mu.Unlock()
		done(err)
		o.sub.Cancel()
		return o.sub
	}
	s.observers = append(s.observers, o)
	s.mu.Unlock()

	return o.sub
}

// Send delivers v to every active subscriber. It is a no-op once the subject
// has completed.
func (s *Subject[T]) Send(v T) {
	s.mu.Lock()
	if s.completed {
		s.mu.Unlock()
		return
	}
	observers := slices.Clone(s.observers)
	s.mu.Unlock()

	for _, o := range observers {
		// A subscriber may be cancelled by an earlier callback in this loop.
		if o.sub.Cancelled() {
			continue
		}
		o.next(v)
	}
}

// Complete terminates the subject. A nil err is a normal completion.
func (s *Subject[T]) Complete(err error) {
	s.mu.Lock()
	if s.completed {
		s.mu.Unlock()
		return
	}
	s.completed = true
	s.err = err
	observers := s.observers
	s.observers = nil
	s.mu.Unlock()

	for _, o := range observers {
		if o.sub.Cancelled() {
			continue
		}
		o.done(err)
	}
}

// Completed reports whether the subject has received its terminal signal
func (s *Subject[T]) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

// Subscribers returns the number of active subscribers
func (s *Subject[T]) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observers)
}

func (s *Subject[T]) remove(o *observer[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = slices.DeleteFunc(s.observers, func(x *observer[T]) bool { return x == o })
}
