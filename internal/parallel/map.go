package parallel

import "context"

// Map evaluates fn for every index in [0, n) on the pool and returns the
// results in index order. On cancellation the results of undispatched
// indices are zero and ctx.Err() is returned.
func Map[T any](ctx context.Context, p *WorkerPool, n int, fn func(i int) T) ([]T, error) {
	res := make([]T, n)
	work := make([]func(), n)
	for i := range work {
		work[i] = func() {
			res[i] = fn(i)
		}
	}
	err := p.ExecuteAllContext(ctx, work)
	return res, err
}

// Chunks splits total items into at most parts nearly equal counts.
// Every returned count is positive.
func Chunks(total, parts int) []int {
	if total <= 0 {
		return nil
	}
	parts = max(min(parts, total), 1)
	res := make([]int, parts)
	for i := range res {
		res[i] = total / parts
		if i < total%parts {
			res[i]++
		}
	}
	return res
}
