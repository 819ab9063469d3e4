package rop

import "fmt"

// Result holds either a success value of type T or a failure value of type E,
// never both. The zero Result is a failure carrying E's zero value.
type Result[T, E any] struct {
	result T
	err    E
	ok     bool
}

// Of is the common case of a Result whose failure side is a Go error.
type Of[T any] = Result[T, error]

func Success[T, E any](r T) Result[T, E] {
	return Result[T, E]{
		result: r,
		ok:     true,
	}
}

func Failure[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err: err,
		ok:  false,
	}
}

// Result returns the success value, or T's zero value for a failure.
func (r Result[T, E]) Result() T {
	return r.result
}

// Err returns the failure value, or E's zero value for a success.
func (r Result[T, E]) Err() E {
	return r.err
}

// Get returns the success value and whether r is a success.
func (r Result[T, E]) Get() (T, bool) {
	return r.result, r.ok
}

func (r Result[T, E]) IsSuccess() bool {
	return r.ok
}

func (r Result[T, E]) IsFailure() bool {
	return !r.ok
}

// Unwrap returns the success value. Calling it on a failure is a programming
// error: it panics with an *UnwrapError carrying the failure value.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(&UnwrapError{Payload: r.err})
	}
	return r.result
}

func (r Result[T, E]) UnwrapOr(def T) T {
	if r.ok {
		return r.result
	}
	return def
}

// UnwrapOrElse returns the success value or computes one from the failure.
// orElse is only called for a failure.
func (r Result[T, E]) UnwrapOrElse(orElse func(err E) T) T {
	if r.ok {
		return r.result
	}
	return orElse(r.err)
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v)", r.result)
	}
	return fmt.Sprintf("Failure(%v)", r.err)
}
