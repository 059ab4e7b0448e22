package reconcile

import "fmt"

// LookupFailure records a local lookup that failed for one key.
// The record it belongs to is reconciled as if no local copy existed.
type LookupFailure struct {
	// Key is the identifier whose lookup failed.
	Key int `json:"key"`

	// Err is the underlying store error.
	Err error `json:"-"`
}

// Error implements error so failures can be logged or joined directly.
func (f LookupFailure) Error() string {
	return fmt.Sprintf("lookup %d: %v", f.Key, f.Err)
}

// Unwrap returns the underlying store error.
func (f LookupFailure) Unwrap() error {
	return f.Err
}

// Summary provides aggregate counts for a reconciliation.
type Summary struct {
	// Adapter is the name of the adapter that produced the result.
	Adapter string `json:"adapter"`

	// Total is the number of remote records processed.
	Total int `json:"total"`

	// Matched counts remote records that had a local copy.
	Matched int `json:"matched"`

	// Failed counts remote records whose lookup failed.
	Failed int `json:"failed"`

	// BatchFallback is true when the batch index could not be loaded and
	// lookups fell back to one query per key.
	BatchFallback bool `json:"batch_fallback"`
}

// Result is the output of Reconcile.
type Result[T any] struct {
	// Items holds the reconciled records, in remote order.
	Items []T

	// Failures lists per-key lookup failures, in remote order.
	Failures []LookupFailure

	// Summary provides aggregate counts.
	Summary Summary
}
