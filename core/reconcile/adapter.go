package reconcile

import "context"

// Adapter defines the model-specific side of a reconciliation: how records are
// keyed, how the local copy of a key is found, and which local fields survive.
type Adapter[T any] interface {
	// Name returns the unique name of this adapter (e.g., "heroes").
	Name() string

	// Key returns the stable identifier shared by remote and local records.
	Key(item T) int

	// Lookup returns the local record for key. found is false when none exists.
	// An error means the store could not answer for this key.
	Lookup(ctx context.Context, key int) (item T, found bool, err error)

	// Merge combines a remote record with its local copy and returns the output record.
	// It is only called when a local copy was found, and must not mutate either argument.
	Merge(remote, local T) T
}

// IndexLoader is implemented by adapters that can load the local copies of many
// keys in one query. Keys absent from the returned map have no local copy.
type IndexLoader[T any] interface {
	LoadIndex(ctx context.Context, keys []int) (map[int]T, error)
}
