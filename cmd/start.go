package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fluid-server/core/browser"
	"fluid-server/core/config"
	"fluid-server/core/logger"
	"fluid-server/core/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagHost      string
	flagPort      string
	flagDir       string
	flagNoBrowser bool
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the simulation server",
	Long:  `Starts the HTTP server for the simulation site and opens the browser at it.`,
	RunE:  runStart,
}

func init() {
	addStartFlags(startCmd)
	addStartFlags(RootCmd)
	RootCmd.AddCommand(startCmd)
}

// addStartFlags registers the serving flags. They are added to the root
// command too so that a bare invocation accepts them.
func addStartFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagHost, "host", "", "interface to bind (default all interfaces)")
	cmd.Flags().StringVar(&flagPort, "port", "", "port to listen on (default 8000)")
	cmd.Flags().StringVar(&flagDir, "dir", "", "directory to serve (default current directory)")
	cmd.Flags().BoolVar(&flagNoBrowser, "no-browser", false, "do not open the browser on startup")
}

func runStart(cmd *cobra.Command, args []string) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyFlagOverrides(cmd, cfg)

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	// 3. Build the server and bind its socket
	srv := server.New(cfg.Server, logg)

	fmt.Printf("Starting Fluid Dynamics Simulation Server on port %s...\n", cfg.Server.Port)
	fmt.Printf("Open your browser to: %s\n", cfg.Server.URL())
	fmt.Println("Press Ctrl+C to stop the server")

	if err := srv.Listen(); err != nil {
		logg.Fatal("Failed to bind server socket", zap.Error(err))
	}

	// 4. Launch the browser opener (detached, never joined)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opener := browser.NewOpener(cfg.Browser, srv.URL(), srv.Ready(), logg)
	go opener.Run(ctx)

	// 5. Serve until interrupted
	serveErr := make(chan error, 1)
	go func() {
		logg.Info("Serving directory",
			zap.String("dir", cfg.Server.Dir),
			zap.String("addr", srv.Addr()),
		)
		serveErr <- srv.Serve()
	}()

	// 6. Graceful Shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sig:
		fmt.Println("\nShutting down server...")
		cancel()
		if err := srv.Shutdown(); err != nil {
			logg.Error("Server shutdown error", zap.Error(err))
		}
		if err := <-serveErr; err != nil {
			logg.Error("Server stopped with error", zap.Error(err))
		}
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	}

	return nil
}

// applyFlagOverrides lets command line flags win over environment and .env
// configuration.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = flagHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = flagPort
	}
	if cmd.Flags().Changed("dir") {
		cfg.Server.Dir = flagDir
	}
	if flagNoBrowser {
		cfg.Browser.Enabled = false
	}
}
