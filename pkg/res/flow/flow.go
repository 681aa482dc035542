package flow

import (
	"context"
	"sync"

	"github.com/drw-lab/res/pkg/res"
)

// Run fans a same-type engine across a pool of workers. The output channel
// closes once the input drains or the context is cancelled.
func Run[T, E any](ctx context.Context, inputCh <-chan res.Result[T, E],
	engine Engine[T, T, E], workers int) <-chan res.Result[T, E] {
	return Turnout(ctx, inputCh, engine, workers)
}

// Turnout is Run for an engine that moves the line to a new success type.
func Turnout[In, Out, E any](ctx context.Context, inputCh <-chan res.Result[In, E],
	engine Engine[In, Out, E], workers int) <-chan res.Result[Out, E] {
	return TurnoutWith(ctx, inputCh, engine, CancelHandlers[In, Out, E]{}, workers)
}

// TurnoutWith is Turnout with caller-supplied cancellation handlers.
func TurnoutWith[In, Out, E any](ctx context.Context, inputCh <-chan res.Result[In, E],
	engine Engine[In, Out, E], handlers CancelHandlers[In, Out, E], workers int) <-chan res.Result[Out, E] {

	out := make(chan res.Result[Out, E])
	wg := &sync.WaitGroup{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go locomotive(ctx, inputCh, out, engine, handlers, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
