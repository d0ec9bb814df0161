package bootstrap_test

import (
	"errors"
	"testing"

	"caldav-bridge/core/bootstrap"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFixture(t *testing.T) (afero.Fs, bootstrap.BuildOptions) {
	t.Helper()
	fs := afero.NewMemMapFs()

	require.NoError(t, afero.WriteFile(fs, "requirements.txt",
		[]byte("fastapi==0.110.0\nuvicorn>=0.27.0\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "app.py",
		[]byte("app = build_app()\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "env",
		[]byte("APPLE_ID=user@example.com\nPORT=8089\n"), 0o644))

	return fs, bootstrap.BuildOptions{
		ManifestPath:   "requirements.txt",
		EntryPointFile: "app.py",
		EntryPoint:     "app:app",
		EnvFile:        "env",
		Output:         "image",
		Resolver: bootstrap.StaticResolver{
			"fastapi": "0.110.0",
			"uvicorn": "0.29.0",
		},
	}
}

func TestBuild(t *testing.T) {
	fs, opts := buildFixture(t)

	img, err := bootstrap.Build(fs, opts)
	require.NoError(t, err)

	assert.Equal(t, "app:app", img.EntryPoint)
	assert.Equal(t, []string{"fastapi==0.110.0", "uvicorn==0.29.0"}, img.Packages)

	// Files are copied verbatim
	entry, err := afero.ReadFile(fs, "image/app.py")
	require.NoError(t, err)
	assert.Equal(t, "app = build_app()\n", string(entry))

	env, err := afero.ReadFile(fs, "image/.env")
	require.NoError(t, err)
	assert.Equal(t, "APPLE_ID=user@example.com\nPORT=8089\n", string(env))
	assert.Equal(t, "image/.env", img.EnvFilePath())
}

func TestBuild_UnresolvablePackageLeavesNoImage(t *testing.T) {
	fs, opts := buildFixture(t)
	opts.Resolver = bootstrap.StaticResolver{"fastapi": "0.110.0"} // uvicorn missing

	_, err := bootstrap.Build(fs, opts)
	require.Error(t, err)

	var dre *bootstrap.DependencyResolutionError
	require.True(t, errors.As(err, &dre))
	assert.Equal(t, "uvicorn", dre.Name)

	exists, err := afero.DirExists(fs, "image")
	require.NoError(t, err)
	assert.False(t, exists, "no image may be produced on resolution failure")
}

func TestBuild_UnsatisfiedConstraint(t *testing.T) {
	fs, opts := buildFixture(t)
	opts.Resolver = bootstrap.StaticResolver{
		"fastapi": "0.110.0",
		"uvicorn": "0.26.0", // below the >=0.27.0 constraint
	}

	_, err := bootstrap.Build(fs, opts)
	var dre *bootstrap.DependencyResolutionError
	require.True(t, errors.As(err, &dre))
	assert.Equal(t, "uvicorn", dre.Name)
}

func TestBuild_CopyFailureRemovesCreatedDir(t *testing.T) {
	fs, opts := buildFixture(t)
	opts.EnvFile = "missing-env"

	_, err := bootstrap.Build(fs, opts)
	require.Error(t, err)

	exists, err := afero.DirExists(fs, "image")
	require.NoError(t, err)
	assert.False(t, exists, "a directory Build created must not survive a failed build")
}

func TestBuild_CopyFailureKeepsPreexistingDir(t *testing.T) {
	fs, opts := buildFixture(t)
	opts.EnvFile = "missing-env"

	require.NoError(t, afero.WriteFile(fs, "image/keep.txt", []byte("user data\n"), 0o644))

	_, err := bootstrap.Build(fs, opts)
	require.Error(t, err)

	// Unrelated content survives; only the image files are rolled back.
	kept, err := afero.ReadFile(fs, "image/keep.txt")
	require.NoError(t, err)
	assert.Equal(t, "user data\n", string(kept))

	for _, name := range []string{"image/entrypoint", "image/packages.lock", "image/.env", "image/app.py"} {
		exists, err := afero.Exists(fs, name)
		require.NoError(t, err)
		assert.False(t, exists, name)
	}
}

func TestOpenImage_RoundTrip(t *testing.T) {
	fs, opts := buildFixture(t)

	built, err := bootstrap.Build(fs, opts)
	require.NoError(t, err)

	opened, err := bootstrap.OpenImage(fs, "image")
	require.NoError(t, err)
	assert.Equal(t, built.EntryPoint, opened.EntryPoint)
	assert.Equal(t, built.Packages, opened.Packages)
	assert.Equal(t, "image/.env", opened.EnvFilePath())
}

func TestOpenImage_NotAnImage(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("empty", 0o755))

	_, err := bootstrap.OpenImage(fs, "empty")
	assert.Error(t, err)
}

func TestBuild_NoEnvFile(t *testing.T) {
	fs, opts := buildFixture(t)
	opts.EnvFile = ""

	img, err := bootstrap.Build(fs, opts)
	require.NoError(t, err)
	assert.Empty(t, img.EnvFilePath())
}
