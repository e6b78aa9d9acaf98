package aoc

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ParallelMap calls f on every element of in, running at most limit calls at
// once (limit <= 0 means no limit). Results are returned in input order. The
// first error cancels the context passed to the remaining calls and is
// returned.
func ParallelMap[I, O any](ctx context.Context, in []I, limit int, f func(context.Context, I) (O, error)) ([]O, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	out := make([]O, len(in))
	for i, v := range in {
		i, v := i, v
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			o, err := f(ctx, v)
			if err != nil {
				return err
			}
			out[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Fold reduces in to a single value, starting from defVal.
func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}
