package loader_test

import (
	"errors"
	"testing"

	"caldav-bridge/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.loadErr
}

func TestLoadAll(t *testing.T) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	enabled := &fakeFeature{name: "calendar", enabled: true}
	disabled := &fakeFeature{name: "dormant", enabled: false}

	m := loader.NewManager()
	m.Register(enabled)
	m.Register(disabled)

	assert.NoError(t, m.LoadAll(app))
	assert.True(t, enabled.loaded)
	assert.False(t, disabled.loaded)
}

func TestLoadAll_FailureAborts(t *testing.T) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	broken := &fakeFeature{name: "broken", enabled: true, loadErr: errors.New("boom")}
	after := &fakeFeature{name: "after", enabled: true}

	m := loader.NewManager()
	m.Register(broken)
	m.Register(after)

	err := m.LoadAll(app)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.False(t, after.loaded)
}
