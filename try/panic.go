package try

import (
	"fmt"
	"runtime/debug"
)

// Recovered is the error placed in a Result when a wrapped thunk panics.
// The panicked value is preserved verbatim in Value, without normalization or
// stringification, so callers receive exactly what was thrown. Stack records
// the goroutine stack captured at the recovery point.
type Recovered struct {
	Value any
	Stack []byte
}

func newRecovered(v any) *Recovered {
	return &Recovered{
		Value: v,
		Stack: debug.Stack(),
	}
}

func (r *Recovered) Error() string {
	return fmt.Sprintf("recovered panic: %v", r.Value)
}

// Unwrap exposes a panicked error value to errors.Is and errors.As. It
// returns nil when the panicked value was not an error.
func (r *Recovered) Unwrap() error {
	err, _ := r.Value.(error)
	return err
}
