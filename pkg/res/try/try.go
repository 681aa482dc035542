package try

import "github.com/drw-lab/res/pkg/res"

// marker carries a propagated failure payload through the stack. Private so
// no caller can fake or intercept a propagation.
type marker struct {
	err any
}

// Get returns the moved success payload of r, or aborts the enclosing
// function, handing the moved failure payload to the deferred Handle.
func Get[T, E any](r res.Result[T, E]) T {
	if r.IsFailure() {
		panic(marker{err: r.UnwrapErr()})
	}
	return r.Unwrap()
}

// Handle recovers a propagation started by Get and stores the failure into
// the enclosing function's named result. Defer it before the first Get:
//
//	func f() (out res.Result[T, E]) {
//		defer try.Handle(&out)
//		...
//	}
func Handle[T, E any](out *res.Result[T, E]) {
	rec := recover()
	if rec == nil {
		return
	}
	m, ok := rec.(marker)
	if !ok {
		panic(rec)
	}
	err, ok := m.err.(E)
	if !ok {
		// Propagated failure type does not match the enclosing function's
		// failure type; this Handle does not own the propagation.
		panic(rec)
	}
	*out = res.Fail[T](err)
}
