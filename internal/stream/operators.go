package stream

import (
	"context"
	"sync"
)

// relay forwards events downstream until stopped. Stopping cancels the
// upstream subscription, even when it is stopped before Subscribe returns.
type relay struct {
	mu       sync.Mutex
	stopped  bool
	upstream *Subscription
}

func (r *relay) attach(up *Subscription) {
	r.mu.Lock()
	r.upstream = up
	stopped := r.stopped
	r.mu.Unlock()

	if stopped {
		up.Cancel()
	}
}

func (r *relay) active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.stopped
}

// stop returns true for the call that actually stopped the relay
func (r *relay) stop() bool {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return false
	}
	r.stopped = true
	up := r.upstream
	r.mu.Unlock()

	if up != nil {
		up.Cancel()
	}
	return true
}

// operate subscribes to src and hands each upstream event to onNext, which
// may emit any number of values or fail the stream. onDone, if set, runs
// before the terminal signal is forwarded.
func operate[A, B any](
	src Publisher[A],
	next func(B),
	done func(error),
	onNext func(a A, emit func(B), fail func(error)),
	onDone func(err error, emit func(B)),
) *Subscription {
	next, done = orNoop(next, done)

	r := &relay{}
	emit := func(b B) {
		if r.active() {
			next(b)
		}
	}
	finish := func(err error) {
		if r.stop() {
			done(err)
		}
	}

	up := src.Subscribe(
		func(a A) {
			if r.active() {
				onNext(a, emit, finish)
			}
		},
		func(err error) {
			if !r.active() {
				return
			}
			if onDone != nil {
				onDone(err, emit)
			}
			finish(err)
		})
	r.attach(up)

	return newSubscription(func() { r.stop() })
}

// Map applies a function to each value.
func Map[A, B any](src Publisher[A], apply func(A) B) Publisher[B] {
	return FuncPublisher[B](
		func(next func(B), done func(error)) *Subscription {
			return operate(src, next, done,
				func(a A, emit func(B), _ func(error)) { emit(apply(a)) },
				nil)
		})
}

// TryMap applies a function that may fail. The first error cancels the
// upstream and terminates the stream with that error.
func TryMap[A, B any](src Publisher[A], apply func(A) (B, error)) Publisher[B] {
	return FuncPublisher[B](
		func(next func(B), done func(error)) *Subscription {
			return operate(src, next, done,
				func(a A, emit func(B), fail func(error)) {
					b, err := apply(a)
					if err != nil {
						fail(err)
						return
					}
					emit(b)
				},
				nil)
		})
}

// MapOr applies a function returning an optional value and substitutes
// 'fallback' when the value is absent.
func MapOr[A, B any](src Publisher[A], apply func(A) (B, bool), fallback B) Publisher[B] {
	return Map(src, func(a A) B {
		if b, ok := apply(a); ok {
			return b
		}
		return fallback
	})
}

// Filter keeps only the values for which keep returns true.
func Filter[T any](src Publisher[T], keep func(T) bool) Publisher[T] {
	return FuncPublisher[T](
		func(next func(T), done func(error)) *Subscription {
			return operate(src, next, done,
				func(v T, emit func(T), _ func(error)) {
					if keep(v) {
						emit(v)
					}
				},
				nil)
		})
}

// Collect groups values into batches of n. On successful completion a
// non-empty partial batch is emitted before the completion; on failure it
// is discarded.
func Collect[T any](src Publisher[T], n int) Publisher[[]T] {
	if n < 1 {
		n = 1
	}
	return FuncPublisher[[]T](
		func(next func([]T), done func(error)) *Subscription {
			var buf []T
			return operate(src, next, done,
				func(v T, emit func([]T), _ func(error)) {
					buf = append(buf, v)
					if len(buf) == n {
						batch := buf
						buf = nil
						emit(batch)
					}
				},
				func(err error, emit func([]T)) {
					batch := buf
					buf = nil
					if err == nil && len(batch) > 0 {
						emit(batch)
					}
				})
		})
}

// FromSlice creates a cold publisher that emits the items to each new
// subscriber and then completes.
func FromSlice[T any](items []T) Publisher[T] {
	return FuncPublisher[T](
		func(next func(T), done func(error)) *Subscription {
			next, done = orNoop(next, done)
			sub := newSubscription(nil)
			for _, item := range items {
				if sub.Cancelled() {
					return sub
				}
				next(item)
			}
			if !sub.Cancelled() {
				done(nil)
			}
			return sub
		})
}

// Sink subscribes with the given callbacks. Either may be nil.
func Sink[T any](src Publisher[T], next func(T), done func(error)) *Subscription {
	next, done = orNoop(next, done)
	return src.Subscribe(next, done)
}

// ToSlice subscribes to src and blocks until it terminates, returning the
// values received and the terminal error. Cancelling ctx cancels the
// subscription and returns ctx.Err() with the values received so far.
func ToSlice[T any](ctx context.Context, src Publisher[T]) ([]T, error) {
	var (
		mu    sync.Mutex
		items = make([]T, 0)
	)
	finished := make(chan error, 1)

	sub := src.Subscribe(
		func(v T) {
			mu.Lock()
			items = append(items, v)
			mu.Unlock()
		},
		func(err error) {
			finished <- err
		})
	defer sub.Cancel()

	var err error
	select {
	case err = <-finished:
	case <-ctx.Done():
		sub.Cancel()
		err = ctx.Err()
	}

	mu.Lock()
	defer mu.Unlock()
	return append([]T(nil), items...), err
}
