// Package main provides the wtp CLI entry point.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"winkit/internal/wt"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wtp",
	Short: "Manage Windows Terminal profiles",
	Long: `wtp manages profiles in the Windows Terminal settings.json.

The settings file is located under %LOCALAPPDATA% automatically. Profiles
are de-duplicated on their commandline: adding a profile whose executable
matches an existing one replaces it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
}

// mustOpenStore resolves the settings file or exits with the right code.
func mustOpenStore() *wt.Store {
	store, err := wt.Open()
	if err != nil {
		exitWithError(exitCodeFor(err), "%v", err)
	}
	return store
}

// exitCodeFor maps store errors onto the exit code contract.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, wt.ErrNoLocalAppData), errors.Is(err, wt.ErrSettingsNotFound):
		return ExitConfigError
	case errors.Is(err, wt.ErrMalformedSettings):
		return ExitDataError
	}
	return ExitError
}
