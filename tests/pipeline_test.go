package tests

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drw-lab/res/pkg/res"
	"github.com/drw-lab/res/pkg/res/chain"
	"github.com/drw-lab/res/pkg/res/flow"
	"github.com/drw-lab/res/pkg/res/try"
)

// TestURLPipeline drives addresses through a validate/transform pipeline and
// checks that structurally broken ones come out as failures.
func TestURLPipeline(t *testing.T) {
	addresses := []string{
		"https://www.example.com",
		"https://www.test.org",
		"https://www.google.com",
		"invalid-url",
		"ftp://wrong-protocol.com",
	}

	results := processAddresses(addresses)

	invalidCount := 0
	for _, r := range results {
		if r == "invalid" {
			invalidCount++
		}
	}

	assert.Equal(t, len(addresses), len(results))
	assert.Equal(t, 2, invalidCount)
}

func processAddresses(addresses []string) []string {
	ctx := flow.WithWorkers(context.Background(), 3)

	validated := flow.Run(ctx,
		flow.ToChan[string](ctx, addresses...),
		flow.Validate(func(ctx context.Context, addr string) (bool, string) {
			u, err := url.Parse(addr)
			if err != nil || u.Scheme != "https" || !strings.Contains(u.Host, ".") {
				return false, "not an https address"
			}
			return true, ""
		}),
		flow.Workers(ctx, 1))

	measured := flow.Turnout(ctx,
		validated,
		flow.Switch(func(ctx context.Context, addr string) res.Result[int, string] {
			return res.Success[string](len(addr))
		}),
		flow.Workers(ctx, 1))

	return flow.FromChan(ctx, flow.Finally(ctx, measured,
		func(ctx context.Context, n int) string {
			return fmt.Sprintf("address length: %d", n)
		},
		func(ctx context.Context, e string) string {
			return "invalid"
		}))
}

// TestChainWithPropagation mixes the fluent chain with the try shortcut the
// way application code would.
func TestChainWithPropagation(t *testing.T) {
	lookup := func(id int) res.Result[string, string] {
		if id <= 0 {
			return res.Fail[string]("unknown id")
		}
		return res.Success[string](fmt.Sprintf("user-%d", id))
	}

	greet := func(id int) (out res.Result[string, string]) {
		defer try.Handle(&out)
		name := try.Get(lookup(id))
		return chain.FromValue[string](name).
			Map(func(n string) string { return "hello, " + n }).
			Result()
	}

	ok := greet(7)
	require.True(t, ok.IsSuccess())
	assert.Equal(t, "hello, user-7", ok.Unwrap())

	bad := greet(-1)
	require.True(t, bad.IsFailure())
	assert.Equal(t, "unknown id", bad.UnwrapErr())
}

// TestThrottledPipeline checks that a pool-wide throttle changes pacing, not
// outcomes.
func TestThrottledPipeline(t *testing.T) {
	ctx := flow.WithThrottle(context.Background(), 500, 1)

	out := flow.Run(ctx,
		flow.ToChan[string](ctx, 1, 2, 3, 4),
		flow.Map[string](func(ctx context.Context, v int) int { return v + 100 }),
		2)

	collected := flow.FromChan(ctx, out)
	require.Len(t, collected, 4)
	for i := range collected {
		assert.True(t, collected[i].IsSuccess())
	}
}
