// Package try is the propagation shortcut over res.Result: extract a
// success payload or exit the enclosing function with the failure, the way
// a ? operator would. It is pure sugar over IsFailure, UnwrapErr and Unwrap
// and keeps no state of its own.
//
//	func parseBoth(a, b string) (out res.Result[int, string]) {
//		defer try.Handle(&out)
//		x := try.Get(parse(a))
//		y := try.Get(parse(b))
//		return res.Success[string](x + y)
//	}
//
// Get must only run under a deferred Handle whose failure type matches the
// propagated one; a mismatch re-panics. Panics that did not originate in
// Get, res.Violation included, pass through Handle untouched.
package try
