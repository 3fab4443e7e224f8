package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tabwell/tabwell/internal/cli/model"
	"github.com/tabwell/tabwell/internal/infrastructure/config"
	"github.com/tabwell/tabwell/internal/logging"
)

var demoWindows int

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Drive the strip engine interactively",
	Long: `Open an interactive TUI with several simulated browser windows over one
shared pinned sequence.

Every keypress maps to an engine operation (new tab, close, pin, unpin,
move, transfer between windows), and the signal log shows the callbacks a
real UI layer would receive.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().IntVarP(&demoWindows, "windows", "w", 0, "number of windows to open (overrides config)")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	cfg := app.Config
	if demoWindows > 0 {
		cfg.Demo.Windows = demoWindows
		if cfg.Demo.Windows > 4 {
			cfg.Demo.Windows = 4
		}
	}

	m := model.NewDemo(app.Context(), cfg, app.Theme)
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Edits to the config file take effect without a restart: the reload
	// lands in the update loop as a message, so the coordinators are only
	// touched from the single engine thread.
	app.ConfigMgr.OnConfigChange(func(reloaded *config.Config) {
		logging.SetLevel(logging.ParseLevel(reloaded.Logging.Level))
		p.Send(model.ConfigReloadedMsg{Config: reloaded})
	})
	if err := app.ConfigMgr.Watch(); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run demo: %w", err)
	}
	return nil
}
