// Package future provides a Future, the deferred value of an asynchronous
// computation. A Future can be passed around and read by any number of
// consumers, which is the key difference from reading a channel once.
package future

import (
	"context"
	"sync/atomic"

	"github.com/ib-77/outcome/pkg/rop"
)

// Func is the function signature required to create a Future via FromFunc
type Func[T any] func() (T, error)

// Future represents an asynchronous computation that settles exactly once.
// The first call to Complete or Fail wins and all later ones are silently
// ignored.
//
// Wait and Get block until the Future settles. They can be called by many
// goroutines at once and all of them observe the same value and error.
type Future[T any] struct {
	isCompleted uint32
	completed   chan struct{}

	value T
	err   error
}

// New creates an unsettled Future that must be settled by calling Complete
// or Fail.
func New[T any]() *Future[T] {
	return &Future[T]{
		completed: make(chan struct{}),
	}
}

// FromFunc creates a Future settled by the return value of do, which runs on
// its own goroutine. A panic inside do fails the Future with the normalized
// panic value.
func FromFunc[T any](do Func[T]) *Future[T] {
	f := New[T]()

	go func() {
		returned := false
		defer func() {
			if r := recover(); r != nil {
				f.Fail(rop.Normalize(r))
			} else if !returned {
				f.Fail(rop.ErrGoexit)
			}
		}()

		t, err := do()
		returned = true
		if !rop.IsNil(err) {
			f.Fail(err)
			return
		}
		f.Complete(t)
	}()

	return f
}

// Resolved returns a Future already completed with value.
func Resolved[T any](value T) *Future[T] {
	f := New[T]()
	f.Complete(value)
	return f
}

// Rejected returns a Future already failed with err.
func Rejected[T any](err error) *Future[T] {
	f := New[T]()
	f.Fail(err)
	return f
}

// Complete settles this Future with the provided value.
func (f *Future[T]) Complete(value T) {
	f.internalComplete(value, nil)
}

// Fail settles this Future with the provided error.
func (f *Future[T]) Fail(err error) {
	f.internalComplete(*new(T), err)
}

func (f *Future[T]) internalComplete(val T, err error) {
	if atomic.CompareAndSwapUint32(&f.isCompleted, 0, 1) {
		f.value = val
		f.err = err
		close(f.completed)
	}
}

// Done is closed once the Future has settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.completed
}

// Wait blocks until the Future settles and returns its value and error.
func (f *Future[T]) Wait() (T, error) {
	<-f.completed
	return f.value, f.err
}

// Get is Wait bounded by ctx. Cancelling ctx stops the wait, not the
// computation behind the Future.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.completed:
		return f.value, f.err
	case <-ctx.Done():
		return *new(T), ctx.Err()
	}
}
