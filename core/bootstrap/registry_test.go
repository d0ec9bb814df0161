package bootstrap_test

import (
	"errors"
	"testing"

	"caldav-bridge/core/bootstrap"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func noopFactory(env bootstrap.Environment, logger *zap.Logger) (*fiber.App, error) {
	return fiber.New(fiber.Config{DisableStartupMessage: true}), nil
}

func TestRegistry_Resolve(t *testing.T) {
	reg := bootstrap.NewRegistry()
	reg.Register("calendar:app", noopFactory)

	factory, err := reg.Resolve("calendar:app")
	require.NoError(t, err)
	assert.NotNil(t, factory)
}

func TestRegistry_UnknownReference(t *testing.T) {
	reg := bootstrap.NewRegistry()
	reg.Register("calendar:app", noopFactory)

	for _, ref := range []string{"calendar:missing", "other:app", "calendar", ""} {
		_, err := reg.Resolve(ref)
		require.Error(t, err, "ref %q", ref)

		var epe *bootstrap.EntryPointResolutionError
		require.True(t, errors.As(err, &epe))
		assert.Equal(t, ref, epe.Ref)
	}
}

func TestRegistry_WhitespaceNormalized(t *testing.T) {
	reg := bootstrap.NewRegistry()
	reg.Register("calendar:app", noopFactory)

	_, err := reg.Resolve(" calendar:app\n")
	assert.NoError(t, err)
}
