// Package cmd provides Cobra CLI commands for tabwell.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tabwell/tabwell/internal/cli"
	"github.com/tabwell/tabwell/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "tabwell",
		Short: "A headless tab-strip engine for multi-window browsers",
		Long: `Tabwell - the tab-collection and selection core of a multi-window
browser, as a standalone engine.

It tracks an ordered pinned sequence shared across windows plus a
per-window unpinned sequence, keeps a single selection cursor over both,
and recomputes that cursor after every mutation: close, reorder, pin,
unpin, and cross-window transfer.

Use 'tabwell demo' to drive the engine interactively, or explore the
subcommands for configuration and schema output.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
