package flow

import (
	"context"
	"sync"

	"github.com/drw-lab/res/pkg/res"
)

// ToChan feeds values into a fresh channel of successful results, stopping
// early when the context is cancelled.
func ToChan[E, T any](ctx context.Context, values ...T) <-chan res.Result[T, E] {
	in := make(chan res.Result[T, E])

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}
			select {
			case in <- res.Success[E](v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// FromChan collects everything from out until it closes or the context is
// cancelled.
func FromChan[T any](ctx context.Context, out <-chan T) []T {
	collected := make([]T, 0)
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
				collected = append(collected, v)
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return collected
}

// First returns the first value from out, or defaultV when out closes empty
// or the context is cancelled first.
func First[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}
