package heroes

import "errors"

var (
	// ErrHeroNotFound is returned when an id is neither in the catalog nor in the store.
	ErrHeroNotFound = errors.New("hero not found")
	// ErrNotLoaded is returned when the catalog has never been populated and cannot be refreshed.
	ErrNotLoaded = errors.New("hero catalog not loaded")
)
