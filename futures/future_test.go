package futures

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var errTest = errors.New("test error")

func TestFirstCompletionWins(t *testing.T) {
	require := require.New(t)

	f := New[int]()

	go func() {
		time.Sleep(10 * time.Millisecond)
		f.Complete(1)
		f.Complete(2)
		f.Complete(3)
	}()

	v, err := f.Get(context.Background())
	require.NoError(err)
	require.Equal(1, v)
}

func TestConcurrentComplete(t *testing.T) {
	require := require.New(t)

	f := New[int]()

	for i := 0; i <= 1000; i++ {
		go func() {
			f.Complete(42)
		}()
	}

	v, err := f.Get(context.Background())
	require.NoError(err)
	require.Equal(42, v)
}

func TestFail(t *testing.T) {
	require := require.New(t)

	f := New[int]()

	for i := 0; i <= 1000; i++ {
		go func() {
			time.Sleep(10 * time.Millisecond)
			f.Fail(errTest)
		}()
	}

	_, err := f.Get(context.Background())
	require.ErrorIs(err, errTest)
}

func TestCancel(t *testing.T) {
	require := require.New(t)

	f := New[int]()

	go func() {
		time.Sleep(10 * time.Millisecond)
		f.Cancel()
	}()

	_, err := f.Get(context.Background())
	require.ErrorIs(err, ErrCanceled)
}

func TestFromFunc(t *testing.T) {
	require := require.New(t)

	f := FromFunc(func() (int, error) {
		time.Sleep(10 * time.Millisecond)
		return 42, nil
	})

	v, err := f.Get(context.Background())
	require.NoError(err)
	require.Equal(42, v)

	f = FromFunc(func() (int, error) {
		time.Sleep(10 * time.Millisecond)
		return 0, errTest
	})

	_, err = f.Get(context.Background())
	require.ErrorIs(err, errTest)
}

func TestFromValue(t *testing.T) {
	require := require.New(t)

	f := FromValue("ok")

	v, err := f.Get(context.Background())
	require.NoError(err)
	require.Equal("ok", v)
}

func TestFromError(t *testing.T) {
	require := require.New(t)

	f := FromError[string](errTest)

	_, err := f.Get(context.Background())
	require.ErrorIs(err, errTest)
}

func TestGetUnblocksOnContextCancel(t *testing.T) {
	require := require.New(t)

	f := New[int]()
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := f.Get(ctx)
	require.ErrorIs(err, context.Canceled)
}

func TestSettledFutureIgnoresDoneContext(t *testing.T) {
	require := require.New(t)

	f := FromValue(7)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v, err := f.Get(ctx)
	require.NoError(err)
	require.Equal(7, v)
}

func TestNewWithContext(t *testing.T) {
	require := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	f := NewWithContext[int](ctx)

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := f.Get(context.Background())
	require.ErrorIs(err, context.Canceled)
}

func TestNewWithContextCompletesNormally(t *testing.T) {
	require := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f := NewWithContext[int](ctx)
	f.Complete(42)

	v, err := f.Get(context.Background())
	require.NoError(err)
	require.Equal(42, v)
}
