package res

// Ok moves the success payload out if the result is a success. On a failure
// it reports false and leaves the result live, so the failure payload can
// still be taken with Err.
func (r *Result[T, E]) Ok() (T, bool) {
	r.mustLive("Ok")
	if r.state != stateSuccess {
		var zero T
		return zero, false
	}
	return r.takeValue(), true
}

// Err is the mirror of Ok for the failure payload.
func (r *Result[T, E]) Err() (E, bool) {
	r.mustLive("Err")
	if r.state != stateFailure {
		var zero E
		return zero, false
	}
	return r.takeErr(), true
}

// Unwrap moves the success payload out, panicking with a Violation if the
// result holds a failure. A panic here means the call site broke its own
// "I know this succeeded" contract; it is not a domain failure.
func (r *Result[T, E]) Unwrap() T {
	r.mustLive("Unwrap")
	if r.state != stateSuccess {
		panic(Violation("Unwrap on a failed Result"))
	}
	return r.takeValue()
}

// UnwrapErr is the mirror of Unwrap for the failure payload.
func (r *Result[T, E]) UnwrapErr() E {
	r.mustLive("UnwrapErr")
	if r.state != stateFailure {
		panic(Violation("UnwrapErr on a successful Result"))
	}
	return r.takeErr()
}

// Expect is Unwrap with a caller-supplied diagnostic.
func (r *Result[T, E]) Expect(msg string) T {
	r.mustLive("Expect")
	if r.state != stateSuccess {
		panic(Violation(msg))
	}
	return r.takeValue()
}

// ExpectErr is UnwrapErr with a caller-supplied diagnostic.
func (r *Result[T, E]) ExpectErr(msg string) E {
	r.mustLive("ExpectErr")
	if r.state != stateFailure {
		panic(Violation(msg))
	}
	return r.takeErr()
}

// UnwrapOr returns the success payload, or def on a failure. Never panics
// on the variant.
func (r *Result[T, E]) UnwrapOr(def T) T {
	r.mustLive("UnwrapOr")
	if r.state != stateSuccess {
		r.invalidate()
		return def
	}
	return r.takeValue()
}

// UnwrapOrDefault returns the success payload, or the zero value of T.
func (r *Result[T, E]) UnwrapOrDefault() T {
	var zero T
	return r.UnwrapOr(zero)
}

// UnwrapOrElse returns the success payload, or fn applied to the moved
// failure payload.
func (r *Result[T, E]) UnwrapOrElse(fn func(err E) T) T {
	r.mustLive("UnwrapOrElse")
	if r.state != stateSuccess {
		return fn(r.takeErr())
	}
	return r.takeValue()
}
