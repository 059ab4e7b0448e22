package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(fiber.Router) error {
	f.loaded = true
	return f.err
}

func TestManager_LoadAll(t *testing.T) {
	heroes := &fakeFeature{name: "heroes", enabled: true}
	disabled := &fakeFeature{name: "disabled"}

	m := NewManager()
	m.Register(heroes)
	m.Register(disabled)

	assert.NoError(t, m.LoadAll(fiber.New()))
	assert.True(t, heroes.loaded)
	assert.False(t, disabled.loaded)
	assert.Len(t, m.Features(), 2)
}

func TestManager_LoadAllFailure(t *testing.T) {
	m := NewManager()
	m.Register(&fakeFeature{name: "backup", enabled: true, err: errors.New("bucket missing")})
	after := &fakeFeature{name: "health", enabled: true}
	m.Register(after)

	err := m.LoadAll(fiber.New())
	assert.EqualError(t, err, "failed to load feature backup: bucket missing")
	assert.False(t, after.loaded)
}
