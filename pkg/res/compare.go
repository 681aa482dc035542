package res

import "cmp"

// The relational functions compare two live results of the same shape:
// success payloads when both succeeded, failure payloads when both failed.
// With mixed variants every operator, Equal included, returns the LEFT
// operand's IsSuccess, which makes a success unconditionally "less" than a
// failure. That rule is kept for compatibility even though LessOrEqual and
// GreaterOrEqual are then not each other's negations on mixed operands.

func Less[T, E cmp.Ordered](a, b *Result[T, E]) bool {
	return relate(a, b, func(c int) bool { return c < 0 })
}

func Greater[T, E cmp.Ordered](a, b *Result[T, E]) bool {
	return relate(a, b, func(c int) bool { return c > 0 })
}

func LessOrEqual[T, E cmp.Ordered](a, b *Result[T, E]) bool {
	return relate(a, b, func(c int) bool { return c <= 0 })
}

func GreaterOrEqual[T, E cmp.Ordered](a, b *Result[T, E]) bool {
	return relate(a, b, func(c int) bool { return c >= 0 })
}

// Equal compares payloads only; the identity stamp is ignored.
func Equal[T, E cmp.Ordered](a, b *Result[T, E]) bool {
	return relate(a, b, func(c int) bool { return c == 0 })
}

func relate[T, E cmp.Ordered](a, b *Result[T, E], op func(c int) bool) bool {
	a.mustLive("compare")
	b.mustLive("compare")

	switch {
	case a.state == stateSuccess && b.state == stateSuccess:
		return op(cmp.Compare(a.value, b.value))
	case a.state == stateFailure && b.state == stateFailure:
		return op(cmp.Compare(a.err, b.err))
	default:
		return a.state == stateSuccess
	}
}
