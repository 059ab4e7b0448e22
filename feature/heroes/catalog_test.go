package heroes

import (
	"testing"

	"hero-catalog/feature/heroes/models"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_ReplaceAndSnapshot(t *testing.T) {
	c := NewCatalog()
	assert.False(t, c.Loaded())
	assert.Empty(t, c.Snapshot())

	c.Replace([]models.Hero{{ID: 1, Name: "Thor"}, {ID: 2, Name: "Hulk"}})
	assert.True(t, c.Loaded())
	assert.False(t, c.RefreshedAt().IsZero())
	assert.Equal(t, 2, c.Len())

	snap := c.Snapshot()
	snap[0].Name = "changed"

	h, ok := c.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "Thor", h.Name)
}

func TestCatalog_UpdateIsCopyOnWrite(t *testing.T) {
	c := NewCatalog()
	c.Replace([]models.Hero{{ID: 1, Name: "Thor"}, {ID: 2, Name: "Hulk"}})

	before := c.Snapshot()
	assert.True(t, c.Update(models.Hero{ID: 2, Name: "Hulk", IsFavorite: true}))
	assert.False(t, c.Update(models.Hero{ID: 99}))

	assert.False(t, before[1].IsFavorite)
	after := c.Snapshot()
	assert.True(t, after[1].IsFavorite)
	assert.Equal(t, []string{"Thor", "Hulk"}, []string{after[0].Name, after[1].Name})

	_, ok := c.Get(99)
	assert.False(t, ok)
}
