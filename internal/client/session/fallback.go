package session

// Result carries a value that may have been substituted by a default after a
// recoverable failure. Reason holds that failure for logging.
type Result[T any] struct {
	Value     T
	Reason    error
	Defaulted bool
}

// Resolved wraps a value obtained normally.
func Resolved[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Defaulted wraps a fallback value together with the reason it was used.
func Defaulted[T any](v T, reason error) Result[T] {
	return Result[T]{Value: v, Defaulted: true, Reason: reason}
}
