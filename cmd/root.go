package cmd

import (
	"fmt"
	"os"

	"fluid-server/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands.
// Running it is the same as running the start subcommand.
var RootCmd = &cobra.Command{
	Use:   "fluid-server",
	Short: "Fluid Dynamics Simulation Server",
	Long: `Serves the fluid dynamics simulation site from a local directory over HTTP
and opens your default browser at it once the server is reachable.

Running fluid-server without a subcommand is the same as running
"fluid-server start".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runStart,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			// Log the error with structured logger (Console encoding will make it pretty)
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
