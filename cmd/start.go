package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"caldav-bridge/core/bootstrap"
	"caldav-bridge/core/config"
	"caldav-bridge/core/dav"
	"caldav-bridge/core/imagestore"
	"caldav-bridge/core/loader"
	"caldav-bridge/core/logger"
	"caldav-bridge/core/middleware/auth"
	"caldav-bridge/core/middleware/rayid"
	"caldav-bridge/feature/calendar"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "caldav-bridge/docs/swagger"
)

// @title CalDAV Bridge API
// @version 1.0
// @description JSON bridge forwarding WebDAV/CalDAV operations to an upstream host.
// @host localhost:8089
// @BasePath /

var (
	startImagePath string
	startPullName  string
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the CalDAV bridge server",
	Long: `Starts the HTTP server through the bootstrap launcher: env file applied,
entry point resolved, one socket bound on the configured port. With --image,
the entry point and env file come from a previously built runtime image;
--pull downloads the named image archive from the object store first.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration (applies .env with file-wins precedence)
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Register the applications this binary can host
		registry := bootstrap.NewRegistry()
		registry.Register("calendar:app", newCalendarApp)

		launcher := bootstrap.NewLauncher(registry, logg)

		// 4. Restore the image from the object store when asked
		if startPullName != "" {
			dir, err := os.MkdirTemp("", "caldav-bridge-image-")
			if err != nil {
				logg.Fatal("Failed to create image directory", zap.Error(err))
			}
			client, err := imagestore.NewClient(cfg.Store)
			if err != nil {
				logg.Fatal("Failed to connect to object store", zap.Error(err))
			}
			store := imagestore.NewStore(client, cfg.Store.Bucket)
			if err := store.Pull(cmd.Context(), afero.NewOsFs(), startPullName, dir); err != nil {
				logg.Fatal("Failed to pull runtime image", zap.Error(err))
			}
			logg.Info("Image pulled",
				zap.String("bucket", cfg.Store.Bucket),
				zap.String("name", startPullName),
			)
			startImagePath = dir
		}

		// 5. Launch
		var handle *bootstrap.Handle
		if startImagePath != "" {
			img, err := bootstrap.OpenImage(afero.NewOsFs(), startImagePath)
			if err != nil {
				logg.Fatal("Failed to open runtime image", zap.Error(err))
			}
			// The image's env file decides PORT; no override here.
			handle, err = launcher.StartImage(img, bootstrap.StartOptions{})
			if err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		} else {
			handle, err = launcher.Start(bootstrap.StartOptions{
				EntryPoint: cfg.Server.EntryPoint,
				Port:       cfg.Server.Port,
			})
			if err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}

		// 6. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-c
			logg.Info("Shutting down server...")
			_ = handle.Shutdown()
		}()

		if err := handle.Wait(); err != nil {
			logg.Fatal("Server exited with error", zap.Error(err))
		}
	},
}

// newCalendarApp is the factory behind the "calendar:app" entry point. The
// Environment snapshot is its only configuration source.
func newCalendarApp(env bootstrap.Environment, logg *zap.Logger) (*fiber.App, error) {
	cfg, err := config.FromEnvironment(env)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // The launcher logs its own startup message
	})

	// Middleware Registration
	// 1. RayID (must be first to trace everything)
	app.Use(rayid.New())

	// 2. Logging Middleware (Zap + RayID)
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	// 3. Swagger Documentation (Public)
	app.Get("/swagger/*", swagger.HandlerDefault)

	// 4. Auth (protects every bridge route)
	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

	// 5. Features
	mgr := loader.NewManager()
	client := dav.NewClient(cfg.Upstream)
	mgr.Register(calendar.NewFeature(client, cfg.Upstream, logg))

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}

func init() {
	startCmd.Flags().StringVar(&startImagePath, "image", "", "start from a built runtime image directory")
	startCmd.Flags().StringVar(&startPullName, "pull", "", "pull the named image from the object store and start it")
	RootCmd.AddCommand(startCmd)
}
