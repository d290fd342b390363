// Package futures provides a write-once Future representing an asynchronous
// computation. A Future can be created, passed around, and read by any number
// of consumers. This is the key difference between a Future and using a
// channel for an asynchronous computation, as a channel value can only be
// read once.
package futures

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrCanceled is the error a Future settles with when Cancel is called.
var ErrCanceled = errors.New("future canceled")

// Func is the function signature required to create a Future via FromFunc.
type Func[T any] func() (T, error)

// Future represents the eventual outcome of an asynchronous computation.
// Once created it can be settled exactly once: the first call to Complete,
// Fail, or Cancel wins and all later settlements are silently ignored.
//
// Get extracts the outcome. If the Future has not settled, Get blocks until
// it does or until the provided context is done. Get may be called by any
// number of goroutines and they all observe the same outcome.
type Future[T any] struct {
	settled uint32
	done    chan struct{}

	value T
	err   error
}

// New creates an unsettled Future that must be settled manually by calling
// Complete, Fail, or Cancel.
func New[T any]() *Future[T] {
	return &Future[T]{
		done: make(chan struct{}),
	}
}

// NewWithContext creates an unsettled Future bound to ctx: if ctx is done
// before the Future settles, the Future fails with the context's error.
func NewWithContext[T any](ctx context.Context) *Future[T] {
	f := New[T]()

	go func() {
		select {
		case <-ctx.Done():
			f.Fail(ctx.Err())
		case <-f.done:
		}
	}()

	return f
}

// FromFunc creates a Future that settles with the outcome of do, which is run
// in a new goroutine started by this call.
func FromFunc[T any](do Func[T]) *Future[T] {
	f := New[T]()

	go func() {
		t, err := do()
		if err != nil {
			f.Fail(err)
			return
		}
		f.Complete(t)
	}()

	return f
}

// FromValue creates a Future already settled with value.
func FromValue[T any](value T) *Future[T] {
	f := New[T]()
	f.Complete(value)
	return f
}

// FromError creates a Future already settled with err.
func FromError[T any](err error) *Future[T] {
	f := New[T]()
	f.Fail(err)
	return f
}

// Complete settles this Future with the provided value. If the Future has
// already settled the call is ignored.
func (f *Future[T]) Complete(value T) {
	f.settle(value, nil)
}

// Fail settles this Future with the provided error. If the Future has already
// settled the call is ignored.
func (f *Future[T]) Fail(err error) {
	f.settle(*new(T), err)
}

// Cancel settles this Future with ErrCanceled. If the Future has already
// settled the call is ignored.
func (f *Future[T]) Cancel() {
	f.Fail(ErrCanceled)
}

func (f *Future[T]) settle(val T, err error) {
	if atomic.CompareAndSwapUint32(&f.settled, 0, 1) {
		f.value = val
		f.err = err
		close(f.done)
	}
}

// Get retrieves the outcome of this Future, blocking until the Future settles
// or ctx is done, whichever comes first. A Future that settled before Get was
// called returns its outcome even if ctx is already done.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	default:
	}

	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return *new(T), ctx.Err()
	}
}
