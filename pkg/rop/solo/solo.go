package solo

import (
	"errors"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/try"
)

// Handlers is the pair of branches passed to Match.
type Handlers[T, E, U any] struct {
	OnSuccess func(r T) U
	OnFailure func(err E) U
}

func Map[T, U, E any](input rop.Result[T, E], onSuccess func(r T) U) rop.Result[U, E] {
	if input.IsSuccess() {
		return rop.Success[U, E](onSuccess(input.Result()))
	}
	return rop.Failure[U](input.Err())
}

func MapErr[T, E, F any](input rop.Result[T, E], onFailure func(err E) F) rop.Result[T, F] {
	if input.IsFailure() {
		return rop.Failure[T](onFailure(input.Err()))
	}
	return rop.Success[T, F](input.Result())
}

// MapOr returns onSuccess applied to the value, or def for a failure.
func MapOr[T, E, U any](input rop.Result[T, E], def U, onSuccess func(r T) U) U {
	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return def
}

// AndThen feeds a success value into the next fallible step. A failure is
// passed through and onSuccess is not called.
func AndThen[T, U, E any](input rop.Result[T, E], onSuccess func(r T) rop.Result[U, E]) rop.Result[U, E] {
	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return rop.Failure[U](input.Err())
}

// Or returns alternative when input is a failure. alternative is already
// built by the caller; use OrElse when building it is costly.
func Or[T, E, F any](input rop.Result[T, E], alternative rop.Result[T, F]) rop.Result[T, F] {
	if input.IsSuccess() {
		return rop.Success[T, F](input.Result())
	}
	return alternative
}

func OrElse[T, E, F any](input rop.Result[T, E], onFailure func(err E) rop.Result[T, F]) rop.Result[T, F] {
	if input.IsSuccess() {
		return rop.Success[T, F](input.Result())
	}
	return onFailure(input.Err())
}

func Match[T, E, U any](input rop.Result[T, E], handlers Handlers[T, E, U]) U {
	if input.IsSuccess() {
		return handlers.OnSuccess(input.Result())
	}
	return handlers.OnFailure(input.Err())
}

func Flatten[T, E any](input rop.Result[rop.Result[T, E], E]) rop.Result[T, E] {
	if input.IsSuccess() {
		return input.Result()
	}
	return rop.Failure[T](input.Err())
}

func Tee[T, E any](input rop.Result[T, E], onSuccess func(r T)) rop.Result[T, E] {
	if input.IsSuccess() {
		onSuccess(input.Result())
	}
	return input
}

func TeeErr[T, E any](input rop.Result[T, E], onFailure func(err E)) rop.Result[T, E] {
	if input.IsFailure() {
		onFailure(input.Err())
	}
	return input
}

// Try runs a (value, error) step on a success value. Errors and panics from
// onTryExecute become failures the same way try.Fn reports them.
func Try[T, U any](input rop.Of[T], onTryExecute func(r T) (U, error)) rop.Of[U] {
	if input.IsFailure() {
		return rop.Failure[U](input.Err())
	}
	return try.Fn(func() (U, error) {
		return onTryExecute(input.Result())
	})
}

// Validate succeeds with input when validate accepts it and fails with
// errMsg otherwise.
func Validate[T any](input T, validate func(in T) (isValid bool, errMsg string)) rop.Of[T] {
	if isValid, errMsg := validate(input); !isValid {
		return rop.Failure[T](errors.New(errMsg))
	}
	return rop.Success[T, error](input)
}
