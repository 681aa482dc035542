package chain

import "github.com/drw-lab/res/pkg/res"

// Chain wraps a res.Result to enable fluent chaining.
type Chain[T, E any] struct {
	result res.Result[T, E]
}

// Start creates a new chain from a res.Result.
func Start[T, E any](result res.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{result: result}
}

// FromValue creates a new chain from a successful value.
func FromValue[E, T any](value T) *Chain[T, E] {
	return &Chain[T, E]{result: res.Success[E](value)}
}

// Result moves the underlying res.Result out of the chain.
func (c *Chain[T, E]) Result() res.Result[T, E] {
	return c.result
}

// Then chains a function that already returns a res.Result.
func (c *Chain[T, E]) Then(onSuccess func(value T) res.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{result: res.AndThen(&c.result, onSuccess)}
}

// Map chains a pure transformation of the success payload.
func (c *Chain[T, E]) Map(onSuccess func(value T) T) *Chain[T, E] {
	return &Chain[T, E]{result: res.Map(&c.result, onSuccess)}
}

// MapErr chains a pure transformation of the failure payload.
func (c *Chain[T, E]) MapErr(onFailure func(err E) E) *Chain[T, E] {
	return &Chain[T, E]{result: res.MapErr(&c.result, onFailure)}
}

// Ensure performs a side effect on the success payload without changing
// the result.
func (c *Chain[T, E]) Ensure(onSuccess func(value T)) *Chain[T, E] {
	return c.Map(func(value T) T {
		onSuccess(value)
		return value
	})
}

// Or picks the first successful chain among c and the alternatives, falling
// back to c's own outcome when none succeeded.
func (c *Chain[T, E]) Or(alternatives ...*Chain[T, E]) *Chain[T, E] {
	if c.result.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt.result.IsSuccess() {
			return alt
		}
	}
	return c
}

// And returns the first failed chain among c and the requirements, or the
// last requirement when all succeeded.
func (c *Chain[T, E]) And(requirements ...*Chain[T, E]) *Chain[T, E] {
	if c.result.IsFailure() || len(requirements) == 0 {
		return c
	}
	for _, req := range requirements {
		if req.result.IsFailure() {
			return req
		}
	}
	return requirements[len(requirements)-1]
}

// Then chains a function that moves the chain to a new success type.
func Then[T, U, E any](c *Chain[T, E], onSuccess func(value T) res.Result[U, E]) *Chain[U, E] {
	return &Chain[U, E]{result: res.AndThen(&c.result, onSuccess)}
}

// Map chains a pure type-changing transformation.
func Map[T, U, E any](c *Chain[T, E], onSuccess func(value T) U) *Chain[U, E] {
	return &Chain[U, E]{result: res.Map(&c.result, onSuccess)}
}

// Try chains a conventional (value, error) function on an error-failing
// chain, converting a non-nil error into a failure.
func Try[T, U any](c *Chain[T, error], onSuccess func(value T) (U, error)) *Chain[U, error] {
	return &Chain[U, error]{result: res.AndThen(&c.result, func(value T) res.Result[U, error] {
		out, err := onSuccess(value)
		if err != nil {
			return res.Fail[U](err)
		}
		return res.Success[error](out)
	})}
}

// Finally collapses the chain into a final value.
func Finally[T, E, U any](c *Chain[T, E], onSuccess func(value T) U, onFailure func(err E) U) U {
	if c.result.IsFailure() {
		return onFailure(c.result.UnwrapErr())
	}
	return onSuccess(c.result.Unwrap())
}
