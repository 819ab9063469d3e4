// Package solo contains the single-value, synchronous combinators over
// rop.Result. Each one returns a new Result (or a plain value for Match and
// MapOr) and never mutates its input.
//
// Highlights:
// - Map/MapErr/MapOr: transform one side of a Result
// - AndThen: chain a step that itself returns a Result, without nesting
// - Or/OrElse: fall back to another Result on failure (eager / lazy)
// - Match: reduce to a concrete value via success/failure handlers
// - Try/Validate: bring (value, error) steps and predicates into a chain
// - Tee/TeeErr: side-effect helpers
package solo
