// Package reconcile merges a freshly fetched remote collection with the locally
// persisted copies of the same records.
//
// Records are matched by a stable integer key. The remote side is the source of
// truth for every field except the ones the adapter chooses to carry over from
// the local copy (for heroes: the favorite flag).
//
// # Architecture
//
//  1. Engine: Reconcile walks the remote records in order, finds each local copy,
//     and delegates field precedence to the adapter.
//
//  2. Adapter: model-specific key extraction, lookup and merge. Adapters that can
//     load many local copies in one query implement IndexLoader; when the batch
//     load fails the engine falls back to one lookup per key.
//
// # Failure Handling
//
// A failed lookup degrades that single record to "no local copy" and is reported
// in Result.Failures. The batch is never aborted.
//
// # Usage Example
//
//	result := reconcile.Reconcile(ctx, fetched, adapter)
//	for _, f := range result.Failures {
//	    logger.Warn("favorite lookup failed", zap.Int("id", f.Key), zap.Error(f.Err))
//	}
package reconcile
