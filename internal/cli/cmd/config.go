package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tabwell/tabwell/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(_ *cobra.Command, _ []string) error {
		path, err := config.GetConfigFile()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(_ *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		cfg := app.Config

		if file := app.ConfigMgr.ConfigFileUsed(); file != "" {
			fmt.Printf("# %s\n\n", file)
		}
		fmt.Println("[logging]")
		fmt.Printf("level = %q\n", cfg.Logging.Level)
		fmt.Printf("format = %q\n\n", cfg.Logging.Format)
		fmt.Println("[tabs]")
		fmt.Printf("switch_to_new_when_opened = %t\n", cfg.Tabs.SwitchToNewWhenOpened)
		fmt.Printf("recently_closed_limit = %d\n\n", cfg.Tabs.RecentlyClosedLimit)
		fmt.Println("[demo]")
		fmt.Printf("windows = %d\n", cfg.Demo.Windows)
		return nil
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the configuration JSON schema",
	RunE: func(_ *cobra.Command, _ []string) error {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(schemaCmd)
}
