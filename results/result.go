// Package results defines Result, a value that represents either a successful
// outcome carrying data or a failed outcome carrying an error, never both.
// The fields are unexported so that a Result with both slots populated cannot
// be constructed; Success and Failure are the only producers.
package results

// Result is the outcome of an operation: a value of type T when Err is nil,
// or an error paired with the zero value of T otherwise. Results are
// immutable value types.
type Result[T any] struct {
	val T
	err error
}

// New builds a Result from a conventional (value, error) pair. A non-nil
// error always wins: the value is discarded so the success slot stays empty
// on the failure path.
func New[T any](val T, err error) Result[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(val)
}

// Success returns a Result carrying val.
func Success[T any](val T) Result[T] {
	return Result[T]{val: val}
}

// Failure returns a Result carrying err. Calling Failure with a nil error is
// a programming error and panics, since the Result would then be neither a
// success nor a failure.
func Failure[T any](err error) Result[T] {
	if err == nil {
		panic("results: Failure called with a nil error")
	}
	return Result[T]{err: err}
}

// Value returns the Result as a conventional (value, error) pair.
func (r Result[T]) Value() (T, error) {
	return r.val, r.err
}

// MustValue returns the success value and panics if the Result is a failure.
func (r Result[T]) MustValue() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.val
}

// Err returns the failure error, or nil for a success.
func (r Result[T]) Err() error {
	return r.err
}

// IsSuccess reports whether the Result carries a value rather than an error.
func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}
