// Package heroes implements the hero catalog feature.
//
// The Service keeps one canonical in-memory Catalog built from the remote
// superhero source, restricted to a single publisher. Each refresh reconciles the
// fetched heroes against the Store: a hero stored as favorite stays favorite, every
// other field comes from the source. Toggling a favorite updates the catalog
// immediately and writes the hero to the store; a failed write is queued and
// retried on the next refresh.
//
// # Routes
//
//	GET  /heroes                  list (q, sort, order)
//	POST /heroes/refresh          refetch and reconcile
//	GET  /heroes/favorites        stored favorites
//	GET  /heroes/:id              detail with biography
//	POST /heroes/:id/favorite     toggle favorite
//	POST /heroes/pending/retry    retry queued saves
package heroes
