package projections

import (
	"context"
	"log/slog"
	"sync"
)

// fanOut issues one fetch per park concurrently and joins when all settle.
// Items are concatenated in settle order, not issue order; callers wanting
// a stable order re-sort afterwards. A failed park contributes a failure
// entry instead of failing the aggregate.
func fanOut[T any](ctx context.Context, parqueIDs []string, fetch func(ctx context.Context, parqueID string) ([]T, error)) PartialResult[T] {
	if len(parqueIDs) == 0 {
		return PartialResult[T]{}
	}

	type settled struct {
		parqueID string
		items    []T
		err      error
	}

	results := make(chan settled, len(parqueIDs))
	var wg sync.WaitGroup
	for _, pid := range parqueIDs {
		wg.Add(1)
		go func(pid string) {
			defer wg.Done()
			items, err := fetch(ctx, pid)
			results <- settled{parqueID: pid, items: items, err: err}
		}(pid)
	}
	wg.Wait()
	close(results)

	var out PartialResult[T]
	for r := range results {
		if r.err != nil {
			slog.Warn("aggregate_source_failed", "parque_id", r.parqueID, "error", r.err)
			out.Failures = append(out.Failures, SourceFailure{ParqueID: r.parqueID, Err: r.err})
			continue
		}
		out.Items = append(out.Items, r.items...)
	}
	return out
}
