package reconcile

import "context"

// Reconcile merges freshly fetched remote records with their local copies.
//
// The output has one record per remote record, in the same order. Records with a
// local copy go through adapter.Merge; records without one pass through unchanged.
// A failed lookup never aborts the batch: the record passes through unchanged and
// the failure is reported in Result.Failures. Reconcile performs no writes, so
// running it twice against an unchanged store yields the same output.
func Reconcile[T any](ctx context.Context, remote []T, adapter Adapter[T]) *Result[T] {
	result := &Result[T]{
		Items:   make([]T, 0, len(remote)),
		Summary: Summary{Adapter: adapter.Name(), Total: len(remote)},
	}

	index, indexed := loadIndex(ctx, remote, adapter)
	if !indexed {
		if _, ok := adapter.(IndexLoader[T]); ok {
			result.Summary.BatchFallback = true
		}
	}

	for _, item := range remote {
		key := adapter.Key(item)

		var (
			local T
			found bool
			err   error
		)
		if indexed {
			local, found = index[key]
		} else {
			local, found, err = adapter.Lookup(ctx, key)
		}

		switch {
		case err != nil:
			result.Failures = append(result.Failures, LookupFailure{Key: key, Err: err})
			result.Summary.Failed++
			result.Items = append(result.Items, item)
		case found:
			result.Summary.Matched++
			result.Items = append(result.Items, adapter.Merge(item, local))
		default:
			result.Items = append(result.Items, item)
		}
	}

	return result
}

// loadIndex uses the adapter's batch loader when it has one.
func loadIndex[T any](ctx context.Context, remote []T, adapter Adapter[T]) (map[int]T, bool) {
	loader, ok := adapter.(IndexLoader[T])
	if !ok || len(remote) == 0 {
		return nil, false
	}

	keys := make([]int, 0, len(remote))
	for _, item := range remote {
		keys = append(keys, adapter.Key(item))
	}

	index, err := loader.LoadIndex(ctx, keys)
	if err != nil {
		return nil, false
	}
	return index, true
}
