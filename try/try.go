// Package try converts operations that may fail or panic into results.Result
// values, so call sites receive every outcome as data and no panic or
// unchecked error escapes the wrapper.
//
// Await is for callers who already hold a started asynchronous operation.
// Do and DoFuture own the invocation themselves, which additionally lets
// them capture panics raised before any asynchronous work begins.
package try

import (
	"context"
	"errors"

	"github.com/nshah-tech/trywrap/futures"
	"github.com/nshah-tech/trywrap/results"
)

// ErrNilFuture is the failure reported when a nil future is awaited or when
// a DoFuture thunk returns one.
var ErrNilFuture = errors.New("try: nil future")

// Await blocks until f settles and converts the outcome into a Result.
// A value settlement yields a success, an error settlement yields a failure
// carrying the future's error verbatim, and cancellation of ctx while waiting
// yields a failure carrying the context's error. A nil future is reported as
// a failure carrying ErrNilFuture. Await never panics.
func Await[T any](ctx context.Context, f *futures.Future[T]) results.Result[T] {
	if f == nil {
		return results.Failure[T](ErrNilFuture)
	}
	return results.New(f.Get(ctx))
}

// Do invokes fn inside a protected region and converts the outcome into a
// Result. A panic raised by fn is captured as a failure carrying a *Recovered
// that preserves the panicked value; a non-nil error return becomes a failure
// carrying that error verbatim; anything else is a success. Do never panics
// and never lets a panic from fn escape.
func Do[T any](fn func() (T, error)) (res results.Result[T]) {
	defer catch(&res)
	return results.New(fn())
}

// DoFuture invokes fn inside the same protected region as Do and then awaits
// the future it returns. A panic raised while fn runs is captured before any
// awaiting happens, so construction failures surface immediately. A nil
// future is reported as a failure carrying ErrNilFuture. DoFuture never
// panics.
func DoFuture[T any](ctx context.Context, fn func() *futures.Future[T]) (res results.Result[T]) {
	f, rec := invoke(fn)
	if rec != nil {
		return results.Failure[T](rec)
	}
	if f == nil {
		return results.Failure[T](ErrNilFuture)
	}
	return Await(ctx, f)
}

// AwaitAll waits for every provided future and returns one Result per future,
// index-aligned with the input. Unlike a joint error return, cancellation of
// ctx does not abort the slice: futures that settled in time report their
// outcome and the rest fail with the context's error.
func AwaitAll[T any](ctx context.Context, fs []*futures.Future[T]) []results.Result[T] {
	res := make([]results.Result[T], 0, len(fs))

	for _, f := range fs {
		res = append(res, Await(ctx, f))
	}

	return res
}

func invoke[T any](fn func() *futures.Future[T]) (f *futures.Future[T], rec *Recovered) {
	defer func() {
		if v := recover(); v != nil {
			f = nil
			rec = newRecovered(v)
		}
	}()
	return fn(), nil
}

func catch[T any](res *results.Result[T]) {
	if v := recover(); v != nil {
		*res = results.Failure[T](newRecovered(v))
	}
}
