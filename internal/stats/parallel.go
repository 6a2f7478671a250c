package stats

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MapReduce splits records into partitions, maps each partition concurrently
// and folds the partial results in partition order. mapFn must be pure.
// Partitions <= 0 uses GOMAXPROCS.
func MapReduce[T, R any](
	ctx context.Context,
	records []T,
	partitions int,
	mapFn func([]T) R,
	reduceFn func(acc, part R) R,
	zero R,
) (R, error) {
	if len(records) == 0 {
		return zero, nil
	}
	if partitions <= 0 {
		partitions = runtime.GOMAXPROCS(0)
	}
	if partitions > len(records) {
		partitions = len(records)
	}
	size := (len(records) + partitions - 1) / partitions

	parts := make([]R, partitions)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < partitions; i++ {
		i := i
		start := i * size
		if start >= len(records) {
			parts[i] = zero
			continue
		}
		end := min(start+size, len(records))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			parts[i] = mapFn(records[start:end])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return zero, err
	}

	acc := zero
	for _, p := range parts {
		acc = reduceFn(acc, p)
	}
	return acc, nil
}

// ParallelCountByField is CountByField computed with MapReduce.
func ParallelCountByField[T any, K comparable](ctx context.Context, records []T, partitions int, key func(T) K) (map[K]int, error) {
	return MapReduce(ctx, records, partitions,
		func(part []T) map[K]int { return CountByField(part, key) },
		func(acc, part map[K]int) map[K]int {
			out := make(map[K]int, len(acc)+len(part))
			for k, v := range acc {
				out[k] = v
			}
			for k, v := range part {
				out[k] += v
			}
			return out
		},
		map[K]int{},
	)
}

// ParallelSum is Sum computed with MapReduce.
func ParallelSum[T any](ctx context.Context, records []T, partitions int, field func(T) float64) (float64, error) {
	return MapReduce(ctx, records, partitions,
		func(part []T) float64 { return Sum(part, field) },
		func(acc, part float64) float64 { return acc + part },
		0,
	)
}
