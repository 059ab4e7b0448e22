// Package health reports whether the hero catalog's backends are usable.
//
// # Checks
//
//   - schema: the heroes table has every column of the Hero model (fix=true migrates).
//   - storage: the backup bucket exists (fix=true creates it).
//   - source: the remote superhero catalog answers.
//
// GET /health runs all of them and answers 503 when any fails.
package health
