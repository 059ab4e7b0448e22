package heroes

import (
	"context"
	"errors"

	"hero-catalog/core/reconcile"
	"hero-catalog/feature/heroes/models"
)

var (
	_ reconcile.Adapter[models.Hero]     = (*favoriteAdapter)(nil)
	_ reconcile.IndexLoader[models.Hero] = (*favoriteAdapter)(nil)
)

// favoriteAdapter carries the favorite flag of stored heroes onto fetched ones.
// Unsaved toggles in pending take precedence over the store.
type favoriteAdapter struct {
	store   Store
	pending map[int]models.Hero
}

func newFavoriteAdapter(store Store, pending map[int]models.Hero) *favoriteAdapter {
	if pending == nil {
		pending = map[int]models.Hero{}
	}
	return &favoriteAdapter{store: store, pending: pending}
}

func (a *favoriteAdapter) Name() string {
	return "heroes"
}

func (a *favoriteAdapter) Key(h models.Hero) int {
	return h.ID
}

func (a *favoriteAdapter) Lookup(ctx context.Context, id int) (models.Hero, bool, error) {
	if h, ok := a.pending[id]; ok {
		return h, true, nil
	}

	stored, err := a.store.GetByID(ctx, id)
	if errors.Is(err, ErrHeroNotFound) {
		return models.Hero{}, false, nil
	}
	if err != nil {
		return models.Hero{}, false, err
	}
	return *stored, true, nil
}

func (a *favoriteAdapter) LoadIndex(ctx context.Context, ids []int) (map[int]models.Hero, error) {
	index, err := a.store.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for id, h := range a.pending {
		index[id] = h
	}
	return index, nil
}

// Merge keeps every remote field; a stored favorite wins over a fresh false.
func (a *favoriteAdapter) Merge(remote, local models.Hero) models.Hero {
	out := remote.Clone()
	if local.IsFavorite {
		out.IsFavorite = true
	}
	return out
}
