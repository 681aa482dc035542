package res

// Map applies fn to the success payload, producing Result[U, E]. A failure
// passes through unchanged; fn is never invoked for it.
func Map[T, E, U any](r *Result[T, E], fn func(value T) U) Result[U, E] {
	r.mustLive("Map")
	if r.state == stateFailure {
		return failFrom[U](r)
	}
	return Success[E](fn(r.takeValue()))
}

// MapErr applies fn to the failure payload, producing Result[T, F]. A
// success passes through unchanged.
func MapErr[T, E, F any](r *Result[T, E], fn func(err E) F) Result[T, F] {
	r.mustLive("MapErr")
	if r.state == stateSuccess {
		return successFrom[F](r)
	}
	return Fail[T](fn(r.takeErr()))
}

// AndThen invokes fn on the success payload and returns its result as-is.
// A failure short-circuits: fn is never invoked and the failure is rewrapped
// at the new success type. The failure type is fixed across the chain.
func AndThen[T, E, U any](r *Result[T, E], fn func(value T) Result[U, E]) Result[U, E] {
	r.mustLive("AndThen")
	if r.state == stateFailure {
		return failFrom[U](r)
	}
	return fn(r.takeValue())
}

// And is the non-lazy AndThen: on success the payload is discarded and
// other is returned as-is, on failure the failure wins.
func And[T, E, U any](r *Result[T, E], other Result[U, E]) Result[U, E] {
	r.mustLive("And")
	if r.state == stateFailure {
		return failFrom[U](r)
	}
	r.invalidate()
	return other
}

// OrElse is the failure-side mirror of AndThen: fn consumes the failure
// payload, a success short-circuits. The success type is fixed across the
// chain.
func OrElse[T, E, F any](r *Result[T, E], fn func(err E) Result[T, F]) Result[T, F] {
	r.mustLive("OrElse")
	if r.state == stateSuccess {
		return successFrom[F](r)
	}
	return fn(r.takeErr())
}

// Or is the non-lazy OrElse.
func Or[T, E, F any](r *Result[T, E], other Result[T, F]) Result[T, F] {
	r.mustLive("Or")
	if r.state == stateSuccess {
		return successFrom[F](r)
	}
	r.invalidate()
	return other
}

// failFrom rewraps the failure payload at a new success type, keeping the
// identity stamp.
func failFrom[U, T, E any](r *Result[T, E]) Result[U, E] {
	return Result[U, E]{
		id:        r.id,
		createdAt: r.createdAt,
		err:       r.takeErr(),
		state:     stateFailure,
	}
}

// successFrom rewraps the success payload at a new failure type, keeping
// the identity stamp.
func successFrom[F, T, E any](r *Result[T, E]) Result[T, F] {
	return Result[T, F]{
		id:        r.id,
		createdAt: r.createdAt,
		value:     r.takeValue(),
		state:     stateSuccess,
	}
}
