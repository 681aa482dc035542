package flow

import (
	"context"
	"sync"

	"github.com/drw-lab/res/pkg/res"
)

// Engine transforms one result into the next stage's result. It takes sole
// ownership of its input.
type Engine[In, Out, E any] func(ctx context.Context, input res.Result[In, E]) res.Result[Out, E]

type CancelHandlers[In, Out, E any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan res.Result[In, E], outCh chan<- res.Result[Out, E])
	OnCancelUnprocessed func(ctx context.Context, unprocessed res.Result[In, E], outCh chan<- res.Result[Out, E])
	OnCancelProcessed   func(ctx context.Context, processed res.Result[Out, E], outCh chan<- res.Result[Out, E])
}

func locomotive[In, Out, E any](ctx context.Context, inputCh <-chan res.Result[In, E], outCh chan<- res.Result[Out, E],
	engine Engine[In, Out, E], handlers CancelHandlers[In, Out, E], wg *sync.WaitGroup) {
	defer wg.Done()

	limiter := throttle(ctx)

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			if limiter != nil {
				if err := limiter.Wait(ctx); err != nil {
					if handlers.OnCancelUnprocessed != nil {
						handlers.OnCancelUnprocessed(ctx, in, outCh)
					}
					return
				}
			}

			pr := engine(ctx, in)

			select {
			case <-ctx.Done():
				if handlers.OnCancelProcessed != nil {
					handlers.OnCancelProcessed(ctx, pr, outCh)
				}
				return
			case outCh <- pr:
			}
		}
	}
}
