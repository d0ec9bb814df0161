package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"caldav-bridge/core/bootstrap"
	"caldav-bridge/core/config"
	"caldav-bridge/core/imagestore"
	"caldav-bridge/core/logger"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	buildManifest   string
	buildEntryFile  string
	buildEntryPoint string
	buildEnvFile    string
	buildIndex      string
	buildOutput     string
	buildName       string
	buildPush       bool
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a runtime image",
	Long: `Resolves the dependency manifest against a package index and materializes
an immutable runtime image: resolved package pins, the entry-point reference,
and verbatim copies of the entry-point and env files. With --push, the image
is archived to the configured object store.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		fs := afero.NewOsFs()

		resolver, err := loadIndex(fs, buildIndex)
		if err != nil {
			return err
		}

		img, err := bootstrap.Build(fs, bootstrap.BuildOptions{
			ManifestPath:   buildManifest,
			EntryPointFile: buildEntryFile,
			EntryPoint:     buildEntryPoint,
			EnvFile:        buildEnvFile,
			Output:         buildOutput,
			Resolver:       resolver,
		})
		if err != nil {
			return err
		}

		logg.Info("Image built",
			zap.String("output", img.Root),
			zap.String("entry_point", img.EntryPoint),
			zap.Int("packages", len(img.Packages)),
		)

		if !buildPush {
			return nil
		}

		client, err := imagestore.NewClient(cfg.Store)
		if err != nil {
			return err
		}
		store := imagestore.NewStore(client, cfg.Store.Bucket)
		if err := store.Push(context.Background(), fs, img.Root, buildName); err != nil {
			return err
		}
		logg.Info("Image pushed",
			zap.String("bucket", cfg.Store.Bucket),
			zap.String("name", buildName),
		)
		return nil
	},
}

// loadIndex reads a package index of name==version lines into a resolver.
func loadIndex(fs afero.Fs, path string) (bootstrap.StaticResolver, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("cannot read package index %q: %w", path, err)
	}

	index := bootstrap.StaticResolver{}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, version, ok := strings.Cut(line, "==")
		if !ok {
			return nil, fmt.Errorf("malformed index line %q", line)
		}
		index[strings.TrimSpace(name)] = strings.TrimSpace(version)
	}
	return index, nil
}

func init() {
	buildCmd.Flags().StringVar(&buildManifest, "manifest", "requirements.txt", "dependency manifest file")
	buildCmd.Flags().StringVar(&buildEntryFile, "entry-file", "", "application source file copied into the image")
	buildCmd.Flags().StringVar(&buildEntryPoint, "entrypoint", "calendar:app", "module-qualified application reference")
	buildCmd.Flags().StringVar(&buildEnvFile, "env-file", "", "environment file copied into the image")
	buildCmd.Flags().StringVar(&buildIndex, "index", "packages.idx", "package index (name==version per line)")
	buildCmd.Flags().StringVar(&buildOutput, "output", "image", "image output directory")
	buildCmd.Flags().StringVar(&buildName, "name", "caldav-bridge", "archive name used with --push")
	buildCmd.Flags().BoolVar(&buildPush, "push", false, "push the built image to the object store")
	RootCmd.AddCommand(buildCmd)
}
