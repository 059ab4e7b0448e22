package heroes

import (
	"sync"
	"time"

	"hero-catalog/feature/heroes/models"
)

// Catalog is the canonical in-memory hero collection. Readers receive copies, so a
// snapshot never changes underneath them.
type Catalog struct {
	mu          sync.RWMutex
	heroes      []models.Hero
	index       map[int]int
	loaded      bool
	refreshedAt time.Time
}

// NewCatalog creates an empty, not yet loaded catalog.
func NewCatalog() *Catalog {
	return &Catalog{index: make(map[int]int)}
}

// Snapshot returns a copy of the current collection in catalog order.
func (c *Catalog) Snapshot() []models.Hero {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Hero, len(c.heroes))
	for i, h := range c.heroes {
		out[i] = h.Clone()
	}
	return out
}

// Replace swaps the whole collection and marks the catalog loaded.
func (c *Catalog) Replace(heroes []models.Hero) {
	next := make([]models.Hero, len(heroes))
	index := make(map[int]int, len(heroes))
	for i, h := range heroes {
		next[i] = h.Clone()
		index[h.ID] = i
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.heroes = next
	c.index = index
	c.loaded = true
	c.refreshedAt = time.Now()
}

// Update replaces the hero with the same id. It reports false when the id is unknown.
func (c *Catalog) Update(hero models.Hero) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[hero.ID]
	if !ok {
		return false
	}

	// Copy-on-write: earlier snapshots keep the previous slice.
	next := make([]models.Hero, len(c.heroes))
	copy(next, c.heroes)
	next[i] = hero.Clone()
	c.heroes = next
	return true
}

// Get returns a copy of the hero with the given id.
func (c *Catalog) Get(id int) (models.Hero, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		return models.Hero{}, false
	}
	return c.heroes[i].Clone(), true
}

// Len returns the number of heroes in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.heroes)
}

// Loaded reports whether Replace has been called at least once.
func (c *Catalog) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// RefreshedAt returns the time of the last Replace.
func (c *Catalog) RefreshedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refreshedAt
}
