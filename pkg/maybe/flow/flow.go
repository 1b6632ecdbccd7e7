package flow

import (
	"context"
	"sync"

	"github.com/TeturactsWill/PatrynSolutions.Utilities/pkg/maybe"
	"github.com/TeturactsWill/PatrynSolutions.Utilities/pkg/maybe/lift"
)

// ToChanMany emits every element of values as a Some container, in order.
// The channel closes when the input is exhausted or ctx is done, whichever
// comes first.
func ToChanMany[T any](ctx context.Context, values []T) <-chan maybe.Of[T] {
	out := make(chan maybe.Of[T])

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			return
		}

		for _, v := range values {
			select {
			case out <- maybe.Some(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func ToChan[T any](ctx context.Context, value T) <-chan maybe.Of[T] {
	return ToChanMany(ctx, []T{value})
}

// ToChanLifted is ToChanMany with lift.Value semantics: nil and
// zero-valued elements travel as None instead of Some.
func ToChanLifted[T comparable](ctx context.Context, values []T) <-chan maybe.Of[T] {
	out := make(chan maybe.Of[T])

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			return
		}

		for _, v := range values {
			select {
			case out <- lift.Value(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Collect drains out into a slice, stopping early when ctx is done.
func Collect[T any](ctx context.Context, out <-chan maybe.Of[T]) []maybe.Of[T] {
	res := make([]maybe.Of[T], 0)
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		for {
			select {
			case v, ok := <-out:
				if !ok {
					return
				}
				res = append(res, v)
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return res
}

// First returns the first container received from out, or None when the
// channel closes or ctx is done before anything arrives.
func First[T any](ctx context.Context, out <-chan maybe.Of[T]) maybe.Of[T] {
	res := maybe.None[T]()
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()

		select {
		case v, ok := <-out:
			if !ok {
				return
			}
			res = v
		case <-ctx.Done():
		}
	}()

	wg.Wait()
	return res
}
