package bootstrap_test

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"caldav-bridge/core/bootstrap"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// freePort reserves an ephemeral port and releases it for the launcher.
func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())
	return port
}

func testLauncher() *bootstrap.Launcher {
	reg := bootstrap.NewRegistry()
	reg.Register("calendar:app", func(env bootstrap.Environment, logger *zap.Logger) (*fiber.App, error) {
		app := fiber.New(fiber.Config{DisableStartupMessage: true})
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true})
		})
		return app, nil
	})
	return bootstrap.NewLauncher(reg, zap.NewNop())
}

func TestStart_Listening(t *testing.T) {
	l := testLauncher()
	port := freePort(t)

	h, err := l.Start(bootstrap.StartOptions{
		EntryPoint: "calendar:app",
		Port:       fmt.Sprintf("%d", port),
	})
	require.NoError(t, err)
	defer h.Shutdown()

	assert.Equal(t, bootstrap.StateListening, h.State())
	assert.Equal(t, port, h.Port())

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/health", port))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStart_ShutdownTerminates(t *testing.T) {
	l := testLauncher()

	h, err := l.Start(bootstrap.StartOptions{
		EntryPoint: "calendar:app",
		Port:       fmt.Sprintf("%d", freePort(t)),
	})
	require.NoError(t, err)

	require.NoError(t, h.Shutdown())
	assert.Equal(t, bootstrap.StateTerminated, h.State())
}

func TestStart_InvalidPort(t *testing.T) {
	l := testLauncher()

	for _, raw := range []string{"0", "65536", "-1", "eighty"} {
		_, err := l.Start(bootstrap.StartOptions{
			EntryPoint: "calendar:app",
			Port:       raw,
		})
		require.Error(t, err, "port %q", raw)

		var be *bootstrap.BindError
		require.True(t, errors.As(err, &be))
		assert.Equal(t, raw, be.Port)
	}
}

func TestStart_PortAlreadyBound(t *testing.T) {
	l := testLauncher()

	ln, err := net.Listen("tcp", "0.0.0.0:0")
	require.NoError(t, err)
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	_, err = l.Start(bootstrap.StartOptions{
		EntryPoint: "calendar:app",
		Port:       fmt.Sprintf("%d", port),
	})
	var be *bootstrap.BindError
	require.True(t, errors.As(err, &be))
}

func TestStart_UnknownEntryPointBindsNothing(t *testing.T) {
	l := testLauncher()
	port := freePort(t)

	_, err := l.Start(bootstrap.StartOptions{
		EntryPoint: "missing:app",
		Port:       fmt.Sprintf("%d", port),
	})
	var epe *bootstrap.EntryPointResolutionError
	require.True(t, errors.As(err, &epe))

	// The port must still be free: resolution failures precede binding.
	probe, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	require.NoError(t, err)
	probe.Close()
}

func TestStart_EnvFilePrecedence(t *testing.T) {
	t.Setenv("BRIDGE_TEST_VALUE", "ambient")

	envFile := filepath.Join(t.TempDir(), "app.env")
	require.NoError(t, os.WriteFile(envFile, []byte("BRIDGE_TEST_VALUE=from-file\n"), 0o644))

	var seen string
	reg := bootstrap.NewRegistry()
	reg.Register("probe:app", func(env bootstrap.Environment, logger *zap.Logger) (*fiber.App, error) {
		seen = env.Get("BRIDGE_TEST_VALUE")
		return fiber.New(fiber.Config{DisableStartupMessage: true}), nil
	})
	l := bootstrap.NewLauncher(reg, zap.NewNop())

	h, err := l.Start(bootstrap.StartOptions{
		EntryPoint: "probe:app",
		EnvFile:    envFile,
		Port:       fmt.Sprintf("%d", freePort(t)),
	})
	require.NoError(t, err)
	defer h.Shutdown()

	assert.Equal(t, "from-file", seen, "env-file values override pre-existing variables")
	assert.Equal(t, "from-file", os.Getenv("BRIDGE_TEST_VALUE"))
}

func TestStart_PortFromEnvFile(t *testing.T) {
	t.Setenv("PORT", "") // restored after the test even though Overload rewrites it
	port := freePort(t)
	envFile := filepath.Join(t.TempDir(), "app.env")
	require.NoError(t, os.WriteFile(envFile, []byte(fmt.Sprintf("PORT=%d\n", port)), 0o644))

	l := testLauncher()
	h, err := l.Start(bootstrap.StartOptions{
		EntryPoint: "calendar:app",
		EnvFile:    envFile,
	})
	require.NoError(t, err)
	defer h.Shutdown()

	assert.Equal(t, port, h.Port())

	// Give the accept loop a beat, then verify the socket answers.
	time.Sleep(50 * time.Millisecond)
	conn, err := net.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	require.NoError(t, err)
	conn.Close()
}
