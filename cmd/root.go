package cmd

import (
	"fmt"
	"os"

	"caldav-bridge/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "caldav-bridge",
	Short: "CalDAV Bridge Service",
	Long: `CalDAV Bridge exposes simple JSON endpoints that forward real WebDAV
(PROPFIND/REPORT/PUT/DELETE) traffic to an upstream CalDAV host such as iCloud.
It can also build and launch self-contained runtime images of the service.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting.
		// Console format matches CLI expectations; "debug" gives ISO8601
		// timestamps (DevConfig) instead of Epoch (ProdConfig).
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
