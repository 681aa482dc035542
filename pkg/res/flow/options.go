package flow

import (
	"context"

	"golang.org/x/time/rate"
)

type OptionKey string

const (
	WorkerOptionKey   OptionKey = "worker_options"
	ThrottleOptionKey OptionKey = "throttle_options"
)

type WorkerOptions struct {
	MaxCount int
}

func WithWorkers(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxCount: maxWorkers})
}

func Workers(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount > 0 {
		return options.MaxCount
	}
	return defaultMaxWorkers
}

// WithThrottle caps how fast locomotives pull work: at most limit items per
// second pool-wide, with the given burst.
func WithThrottle(ctx context.Context, limit rate.Limit, burst int) context.Context {
	return context.WithValue(ctx, ThrottleOptionKey, rate.NewLimiter(limit, burst))
}

func throttle(ctx context.Context) *rate.Limiter {
	limiter, ok := ctx.Value(ThrottleOptionKey).(*rate.Limiter)
	if !ok {
		return nil
	}
	return limiter
}
