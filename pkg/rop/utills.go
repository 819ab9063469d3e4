package rop

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports whether i is nil, including a nil pointer stored in an
// interface.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// FromPair converts a (value, error) return into a Result. A nil pointer
// stored in err counts as no error.
func FromPair[T any](v T, err error) Of[T] {
	if IsNil(err) {
		return Success[T, error](v)
	}
	return Failure[T](err)
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
