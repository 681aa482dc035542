package flow

import (
	"context"

	"github.com/drw-lab/res/pkg/res"
)

// Validate builds an engine that fails invalid success payloads and passes
// everything else through.
func Validate[T, E any](validate func(ctx context.Context, value T) (valid bool, err E)) Engine[T, T, E] {
	return func(ctx context.Context, input res.Result[T, E]) res.Result[T, E] {
		return res.AndThen(&input, func(value T) res.Result[T, E] {
			if valid, err := validate(ctx, value); !valid {
				return res.Fail[T](err)
			}
			return res.Success[E](value)
		})
	}
}

// Switch builds an engine from a function that already returns a result.
func Switch[In, Out, E any](onSuccess func(ctx context.Context, value In) res.Result[Out, E]) Engine[In, Out, E] {
	return func(ctx context.Context, input res.Result[In, E]) res.Result[Out, E] {
		return res.AndThen(&input, func(value In) res.Result[Out, E] {
			return onSuccess(ctx, value)
		})
	}
}

// Map builds an engine from a pure transformation. The failure type cannot
// be inferred from the callback, so it comes first:
//
//	flow.Map[string](func(ctx context.Context, v int) int { return v * 2 })
func Map[E, In, Out any](onSuccess func(ctx context.Context, value In) Out) Engine[In, Out, E] {
	return func(ctx context.Context, input res.Result[In, E]) res.Result[Out, E] {
		return res.Map(&input, func(value In) Out {
			return onSuccess(ctx, value)
		})
	}
}

// Tee builds an engine that runs a side effect on success payloads and
// passes the line through untouched.
func Tee[E, T any](onSuccess func(ctx context.Context, value T)) Engine[T, T, E] {
	return Map[E](func(ctx context.Context, value T) T {
		onSuccess(ctx, value)
		return value
	})
}

// Finally collapses a result channel into a value channel through the
// success and failure handlers.
func Finally[T, E, U any](ctx context.Context, inputCh <-chan res.Result[T, E],
	onSuccess func(ctx context.Context, value T) U,
	onFailure func(ctx context.Context, err E) U) <-chan U {

	out := make(chan U)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				var final U
				if in.IsFailure() {
					final = onFailure(ctx, in.UnwrapErr())
				} else {
					final = onSuccess(ctx, in.Unwrap())
				}

				select {
				case out <- final:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
