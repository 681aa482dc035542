// Package res provides a two-variant result type: a value that holds either
// a success payload of type T or a failure payload of type E, never both,
// together with the combinators to propagate, transform and extract it
// without using panics for normal control flow.
//
// Highlights:
// - Success/Fail: construct Result[T, E]
// - IsSuccess/IsFailure: introspect the active variant
// - Ok/Err: safe extraction into the (value, bool) optional form
// - Unwrap/UnwrapErr/Expect/ExpectErr: extraction that panics on the wrong variant
// - UnwrapOr/UnwrapOrDefault/UnwrapOrElse: extraction with a fallback
// - Map/MapErr: transform one side, pass the other through unchanged
// - AndThen/And/OrElse/Or: short-circuiting composition
// - Less/Greater/LessOrEqual/GreaterOrEqual/Equal: payload ordering
//
// A Result is single-use. Consuming operations take pointer receivers and
// invalidate the source; using an invalidated (or zero) Result panics with
// Violation. Domain failures travel as E payloads and are always returned,
// never thrown; a Violation panic signals a broken call-site contract and
// must not be recovered into a domain failure.
package res
