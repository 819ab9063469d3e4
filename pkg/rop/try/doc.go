// Package try captures failure-prone computations into rop.Result values.
//
// A computation fails when it returns a non-nil error or panics. Neither
// escapes the adapters: both become the failure side of the Result.
//
// Highlights:
// - Fn/Value: run a computation on the caller's goroutine
// - Async: run a computation on its own goroutine, deliver one Result
// - Await/Future: settle a future.Future into a Result
// - FnAs/AsyncAs: same, with a caller-defined failure type
//
// Panic values that are not errors are wrapped by rop.Normalize unless a
// classify function is supplied.
package try
