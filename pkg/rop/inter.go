package rop

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
}

// WithError defines an interface for types that hold either a result or a
// failure value
type WithError[T, E any] interface {
	ResultProvider[T]
	// Err returns the failure value if the operation failed
	Err() E
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
}

var _ WithError[int, error] = Result[int, error]{}
