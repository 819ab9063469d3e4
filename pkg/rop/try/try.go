package try

import (
	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/future"
)

// Fn runs fn and returns its value as a success, or its error or panic as a
// failure.
func Fn[T any](fn func() (T, error)) rop.Of[T] {
	return FnAs(fn, rop.Normalize)
}

// Value is Fn for computations that only fail by panicking.
func Value[T any](fn func() T) rop.Of[T] {
	return Fn(func() (T, error) {
		return fn(), nil
	})
}

// FnAs is Fn with a caller-defined failure type. classify receives either the
// returned error or the raw panic value.
func FnAs[T, E any](fn func() (T, error), classify func(raised any) E) rop.Result[T, E] {
	v, raised, failed := run(fn)
	if failed {
		return rop.Failure[T](classify(raised))
	}
	return rop.Success[T, E](v)
}

func run[T any](fn func() (T, error)) (v T, raised any, failed bool) {
	defer func() {
		if r := recover(); r != nil {
			raised, failed = r, true
		}
	}()

	v, err := fn()
	if !rop.IsNil(err) {
		return v, err, true
	}
	return v, nil, false
}

// Async runs fn on a new goroutine. The returned channel receives exactly one
// Result and is then closed.
func Async[T any](fn func() (T, error)) <-chan rop.Of[T] {
	return AsyncAs(fn, rop.Normalize)
}

func AsyncAs[T, E any](fn func() (T, error), classify func(raised any) E) <-chan rop.Result[T, E] {
	out := make(chan rop.Result[T, E], 1)

	go func() {
		defer close(out)

		returned := false
		defer func() {
			if !returned {
				out <- rop.Failure[T](classify(rop.ErrGoexit))
			}
		}()

		out <- FnAs(fn, classify)
		returned = true
	}()

	return out
}

// Await blocks until f settles.
func Await[T any](f *future.Future[T]) rop.Of[T] {
	v, err := f.Wait()
	return rop.FromPair(v, err)
}

// Future starts fn on a new goroutine and settles the future it returns. A
// panic in fn and a failed future are both reported as failures.
func Future[T any](fn func() *future.Future[T]) <-chan rop.Of[T] {
	return Async(func() (T, error) {
		return fn().Wait()
	})
}
