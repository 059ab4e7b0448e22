// Package pipeline derives ordered views over the hero catalog.
//
// Every function is a pure projection: it returns a new slice and leaves its input
// untouched, so readers holding an earlier snapshot never observe a partially
// applied sort. A view applies the case-insensitive name filter first and then at
// most one sort; a new sort replaces the previous one rather than composing with it.
//
// Intelligence and strength keys come from the typed stats when present and
// otherwise from the "Intelligence: N" / "Strength: N" labels of the description,
// defaulting to 0.
package pipeline
