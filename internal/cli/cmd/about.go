package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/tabwell/tabwell/internal/domain/build"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	info := app.BuildInfo
	theme := app.Theme

	goVersion := info.GoVersion
	if goVersion == "" {
		goVersion = runtime.Version()
	}

	fmt.Println(theme.Title.Render("tabwell"))
	fmt.Printf("%s %s\n", theme.HelpKey.Render("version:"), info.Version)
	fmt.Printf("%s %s\n", theme.HelpKey.Render("commit:"), info.Commit)
	fmt.Printf("%s %s\n", theme.HelpKey.Render("built:"), info.BuildDate)
	fmt.Printf("%s %s\n", theme.HelpKey.Render("go:"), goVersion)
	fmt.Printf("%s %s\n", theme.HelpKey.Render("repo:"), build.RepoURL())
	return nil
}
