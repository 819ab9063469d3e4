package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T, E any] struct {
	ctx context.Context
	res rop.Result[T, E]
}

// Start creates a new chain from a rop.Result
func Start[T, E any](ctx context.Context, r rop.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](ctx context.Context, v T) Chain[T, E] {
	return Start(ctx, rop.Success[T, E](v))
}

// Result returns the underlying rop.Result
func (c Chain[T, E]) Result() rop.Result[T, E] {
	return c.res
}

func (c Chain[T, E]) Context() context.Context {
	return c.ctx
}

// Then composes functions that already return rop.Result[T, E]
func (c Chain[T, E]) Then(onSuccess func(ctx context.Context, t T) rop.Result[T, E]) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Result())}
}

// Map transforms the successful value to a new value
func (c Chain[T, E]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: rop.Success[T, E](onSuccess(c.ctx, c.res.Result()))}
}

// MapErr transforms the failure value, leaving a success untouched
func (c Chain[T, E]) MapErr(onFailure func(ctx context.Context, err E) E) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: rop.Failure[T](onFailure(c.ctx, c.res.Err()))}
}

// Or keeps a successful chain and otherwise switches to alternative.
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	return alternative
}

// OrElse is the lazy form of Or: onFailure only runs for a failed chain.
func (c Chain[T, E]) OrElse(onFailure func(ctx context.Context, err E) rop.Result[T, E]) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: onFailure(c.ctx, c.res.Err())}
}

// Ensure triggers side effects for success/failure without changing the result.
// Either callback may be nil.
func (c Chain[T, E]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, E)) Chain[T, E] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Result())
	}
	return c
}

// RepeatUntil runs onSuccess at least once and keeps running it while until
// reports true for the latest value. The first failure stops the loop.
func (c Chain[T, E]) RepeatUntil(onSuccess func(ctx context.Context, t T) rop.Result[T, E],
	until func(ctx context.Context, t T) bool) Chain[T, E] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsFailure() || !until(c.ctx, c.res.Result()) {
			return c
		}
	}
}

// While runs onSuccess as long as while holds for the current value.
func (c Chain[T, E]) While(onSuccess func(ctx context.Context, t T) rop.Result[T, E],
	while func(ctx context.Context, t T) bool) Chain[T, E] {

	for c.res.IsSuccess() && while(c.ctx, c.res.Result()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Switch chains a function that returns rop.Result[U, E]
func Switch[T, U, E any](c Chain[T, E], onSuccess func(ctx context.Context, t T) rop.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{
		ctx: c.ctx,
		res: solo.AndThen(c.res, func(t T) rop.Result[U, E] {
			return onSuccess(c.ctx, t)
		}),
	}
}

// MapTo chains a pure transformation function
func MapTo[T, U, E any](c Chain[T, E], onSuccess func(ctx context.Context, t T) U) Chain[U, E] {
	return Chain[U, E]{
		ctx: c.ctx,
		res: solo.Map(c.res, func(t T) U {
			return onSuccess(c.ctx, t)
		}),
	}
}

// ThenTry chains a function that returns (U, error), like repository calls.
func ThenTry[T, U any](c Chain[T, error], tryOnSuccess func(ctx context.Context, t T) (U, error)) Chain[U, error] {
	return Chain[U, error]{
		ctx: c.ctx,
		res: solo.Try(c.res, func(t T) (U, error) {
			return tryOnSuccess(c.ctx, t)
		}),
	}
}

// Finally collapses the chain into a final value using solo.Match
func Finally[T, E, U any](c Chain[T, E], onSuccess func(context.Context, T) U, onFailure func(context.Context, E) U) U {
	return solo.Match(c.res, solo.Handlers[T, E, U]{
		OnSuccess: func(t T) U { return onSuccess(c.ctx, t) },
		OnFailure: func(err E) U { return onFailure(c.ctx, err) },
	})
}
