package mars

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SimulateBatches runs independent inputs concurrently, each on its own
// grid. Reports keep input order. The first failing batch cancels the
// ones not yet started.
func SimulateBatches(ctx context.Context, batches [][]string, workers int, opts ...Option) ([]*Report, error) {
	if workers < 1 {
		workers = 1
	}
	out := make([]*Report, len(batches))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, lines := range batches {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rp, err := Simulate(lines, opts...)
			if err != nil {
				return fmt.Errorf("batch %d: %w", i, err)
			}
			out[i] = rp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func RunBatches(ctx context.Context, batches [][]string, workers int, opts ...Option) ([][]string, error) {
	reports, err := SimulateBatches(ctx, batches, workers, opts...)
	if err != nil {
		return nil, err
	}
	out := make([][]string, len(reports))
	for i, rp := range reports {
		out[i] = rp.Lines()
	}
	return out, nil
}
