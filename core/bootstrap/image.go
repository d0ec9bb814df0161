package bootstrap

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Fixed file names inside a built image.
const (
	imageEntryPointFile = "entrypoint"
	imageLockFile       = "packages.lock"
	imageEnvFile        = ".env"
)

// Image is a built, immutable runtime image: the resolved package set, the
// entry-point reference, and the copied entry-point and env files.
type Image struct {
	fs   afero.Fs
	Root string
	// EntryPoint is the module-qualified application reference to serve.
	EntryPoint string
	// Packages holds the resolved dependency set as name==version pins.
	Packages []string
}

// BuildOptions are the inputs to Build. Paths refer to the given filesystem.
type BuildOptions struct {
	// ManifestPath names the dependency manifest file.
	ManifestPath string
	// EntryPointFile names the application source file to copy verbatim.
	EntryPointFile string
	// EntryPoint is the module-qualified reference recorded in the image.
	EntryPoint string
	// EnvFile names the environment file to copy verbatim. Optional.
	EnvFile string
	// Output is the directory the image is built into.
	Output string
	// Resolver locates installable package versions.
	Resolver Resolver
}

// Build materializes a runtime image. Dependency resolution happens before
// anything is written, so a DependencyResolutionError leaves no image
// behind; a copy failure removes the partial output without touching
// unrelated files in a pre-existing output directory.
func Build(fs afero.Fs, opts BuildOptions) (*Image, error) {
	f, err := fs.Open(opts.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open manifest %q: %w", opts.ManifestPath, err)
	}
	manifest, err := ParseManifest(f)
	f.Close()
	if err != nil {
		return nil, err
	}

	pins := make([]string, 0, len(manifest.Dependencies))
	for _, dep := range manifest.Dependencies {
		version, err := opts.Resolver.Resolve(dep.Name)
		if err != nil {
			return nil, &DependencyResolutionError{Name: dep.Name, Constraint: dep.Raw, Err: err}
		}
		if dep.Constraint != nil && !dep.Constraint.Check(version) {
			return nil, &DependencyResolutionError{
				Name:       dep.Name,
				Constraint: dep.Raw,
				Err:        fmt.Errorf("available version %s does not satisfy constraint", version),
			}
		}
		pins = append(pins, dep.Name+"=="+version.String())
	}

	existed, err := afero.DirExists(fs, opts.Output)
	if err != nil {
		return nil, fmt.Errorf("cannot stat image directory: %w", err)
	}

	img, err := writeImage(fs, opts, pins)
	if err != nil {
		removeImage(fs, opts, existed)
		return nil, err
	}
	return img, nil
}

// removeImage undoes a failed writeImage. The output directory itself goes
// only when Build created it; a pre-existing directory keeps everything
// except the image files.
func removeImage(fs afero.Fs, opts BuildOptions, existed bool) {
	if !existed {
		_ = fs.RemoveAll(opts.Output)
		return
	}
	names := []string{imageLockFile, imageEntryPointFile, imageEnvFile}
	if opts.EntryPointFile != "" {
		names = append(names, filepath.Base(opts.EntryPointFile))
	}
	for _, name := range names {
		_ = fs.Remove(path.Join(opts.Output, name))
	}
}

func writeImage(fs afero.Fs, opts BuildOptions, pins []string) (*Image, error) {
	if err := fs.MkdirAll(opts.Output, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create image directory: %w", err)
	}

	lock := strings.Join(pins, "\n")
	if lock != "" {
		lock += "\n"
	}
	if err := afero.WriteFile(fs, path.Join(opts.Output, imageLockFile), []byte(lock), 0o644); err != nil {
		return nil, fmt.Errorf("cannot write package lock: %w", err)
	}

	if err := afero.WriteFile(fs, path.Join(opts.Output, imageEntryPointFile), []byte(opts.EntryPoint+"\n"), 0o644); err != nil {
		return nil, fmt.Errorf("cannot write entry point reference: %w", err)
	}

	if opts.EntryPointFile != "" {
		dst := path.Join(opts.Output, filepath.Base(opts.EntryPointFile))
		if err := copyFile(fs, opts.EntryPointFile, dst); err != nil {
			return nil, fmt.Errorf("cannot copy entry point file: %w", err)
		}
	}

	if opts.EnvFile != "" {
		if err := copyFile(fs, opts.EnvFile, path.Join(opts.Output, imageEnvFile)); err != nil {
			return nil, fmt.Errorf("cannot copy env file: %w", err)
		}
	}

	return &Image{fs: fs, Root: opts.Output, EntryPoint: opts.EntryPoint, Packages: pins}, nil
}

func copyFile(fs afero.Fs, src, dst string) error {
	data, err := afero.ReadFile(fs, src)
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, dst, data, 0o644)
}

// OpenImage re-opens a previously built image.
func OpenImage(fs afero.Fs, root string) (*Image, error) {
	ref, err := afero.ReadFile(fs, path.Join(root, imageEntryPointFile))
	if err != nil {
		return nil, fmt.Errorf("not a runtime image (missing entry point reference): %w", err)
	}

	img := &Image{
		fs:         fs,
		Root:       root,
		EntryPoint: strings.TrimSpace(string(ref)),
	}

	if lock, err := afero.ReadFile(fs, path.Join(root, imageLockFile)); err == nil {
		for _, line := range strings.Split(string(lock), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				img.Packages = append(img.Packages, line)
			}
		}
	}

	return img, nil
}

// EnvFilePath returns the path of the copied env file, or empty when the
// image was built without one.
func (i *Image) EnvFilePath() string {
	p := path.Join(i.Root, imageEnvFile)
	if ok, err := afero.Exists(i.fs, p); err != nil || !ok {
		return ""
	}
	return p
}
