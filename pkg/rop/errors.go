package rop

import (
	"errors"
	"fmt"
)

// ErrGoexit reports a computation that called runtime.Goexit instead of
// returning.
var ErrGoexit = errors.New("rop: computation exited without returning")

// UnwrapError is the panic value raised by Result.Unwrap on a failure.
type UnwrapError struct {
	Payload any
}

func (e *UnwrapError) Error() string {
	return fmt.Sprintf("rop: Unwrap called on failure: %v", e.Payload)
}

// Unwrap exposes the failure value when it is itself an error.
func (e *UnwrapError) Unwrap() error {
	if err, ok := e.Payload.(error); ok {
		return err
	}
	return nil
}

// CapturedError wraps a recovered panic value that was not an error.
type CapturedError struct {
	Value   any
	Message string
}

func (e *CapturedError) Error() string {
	return e.Message
}

// Normalize turns an arbitrary recovered value into an error. Errors are
// returned as they are; anything else becomes a *CapturedError whose message
// is the value's default text form.
func Normalize(v any) error {
	if err, ok := v.(error); ok && !IsNil(err) {
		return err
	}
	return &CapturedError{Value: v, Message: fmt.Sprint(v)}
}

// IsCaptured reports whether err (or anything it wraps) came from a
// non-error panic value.
func IsCaptured(err error) bool {
	var ce *CapturedError
	return errors.As(err, &ce)
}
