// Package rop defines Result, a value that is either a success or a failure,
// together with its constructors and terminal operations.
//
// Highlights:
// - Success/Failure: construct Result[T, E]
// - IsSuccess/IsFailure/Get: inspect the variant
// - Unwrap/UnwrapOr/UnwrapOrElse: extract the success value
// - Normalize: turn a recovered panic value into an error
//
// Combinators that change T or E live in package solo, capture adapters in
// package try, and a fluent context-carrying wrapper in package chain.
package rop
