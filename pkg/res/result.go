package res

import (
	"time"

	"github.com/google/uuid"
)

type state uint8

const (
	// The zero state doubles as "moved from": a zero Result and a consumed
	// Result are equally unusable.
	stateNone state = iota
	stateSuccess
	stateFailure
)

// Violation is the panic payload for contract violations: extracting the
// wrong variant, or touching a consumed or zero Result. It is deliberately
// a distinct type from any E so it can never be mistaken for a domain
// failure.
type Violation string

func (v Violation) Error() string {
	return "res: " + string(v)
}

// Result holds exactly one of a success value T or a failure value E.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	state     state
}

// Success wraps value as a successful Result. The failure type parameter
// comes first so call sites only spell the side that cannot be inferred:
//
//	res.Success[string](42)
func Success[E, T any](value T) Result[T, E] {
	return Result[T, E]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     value,
		state:     stateSuccess,
	}
}

// Fail wraps err as a failed Result:
//
//	res.Fail[int]("bad input")
func Fail[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
		state:     stateFailure,
	}
}

func (r *Result[T, E]) IsSuccess() bool {
	r.mustLive("IsSuccess")
	return r.state == stateSuccess
}

func (r *Result[T, E]) IsFailure() bool {
	r.mustLive("IsFailure")
	return r.state == stateFailure
}

// Id identifies this result across rewraps; failure passthrough in the
// combinators keeps it. Usable on a consumed Result for diagnostics.
func (r *Result[T, E]) Id() uuid.UUID {
	return r.id
}

// CreatedAt is the UTC construction time.
func (r *Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Result[T, E]) mustLive(op string) {
	if r.state == stateNone {
		panic(Violation(op + " on a consumed or zero Result"))
	}
}

// takeValue moves the success payload out and invalidates r.
func (r *Result[T, E]) takeValue() T {
	v := r.value
	r.invalidate()
	return v
}

// takeErr moves the failure payload out and invalidates r.
func (r *Result[T, E]) takeErr() E {
	e := r.err
	r.invalidate()
	return e
}

func (r *Result[T, E]) invalidate() {
	var zeroT T
	var zeroE E
	r.value = zeroT
	r.err = zeroE
	r.state = stateNone
}
