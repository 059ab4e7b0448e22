// Package superhero is the client of the public superhero catalog API.
//
// The catalog serves a single all.json document with every character and a
// biography/{id}.json document per character. Requests are bound by the caller's
// context and the configured timeout, and are never retried here: a failed fetch
// surfaces to the caller, which keeps its previous data.
package superhero
