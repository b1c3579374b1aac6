// Package main provides the addpath CLI entry point.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"winkit/internal/userenv"
)

// Version is set at build time via ldflags
var Version = "dev"

// Exit codes for the addpath binary.
const (
	ExitSuccess = 0 // Success
	ExitError   = 1 // Invalid path, unsupported platform or registry failure
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "addpath <dir>",
	Short: "Add a directory to the user's PATH environment variable",
	Long: `Add a directory to the user's PATH environment variable.

The directory is resolved to an absolute path and created if it does not
exist. The change is written to the registry and broadcast, so new shells
pick it up without a reboot; a directory already on PATH is left alone.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAddPath,
}

func init() {
	rootCmd.Version = Version
}

func runAddPath(cmd *cobra.Command, args []string) error {
	dir, err := filepath.Abs(args[0])
	if err != nil {
		return exit(ExitError, "resolving path: %v", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return exit(ExitError, "creating directory: %v", err)
	}

	current, typ, err := userenv.Get("Path")
	if err != nil {
		if errors.Is(err, userenv.ErrUnsupported) {
			return exit(ExitError, "this tool only supports Windows")
		}
		return exit(ExitError, "reading user PATH: %v", err)
	}

	if userenv.ContainsPath(current, dir) {
		fmt.Println("INFO : Path already exists.")
		return nil
	}

	if err := userenv.Set("Path", userenv.AppendPath(current, dir), typ); err != nil {
		return exit(ExitError, "writing user PATH: %v", err)
	}
	fmt.Printf("INFO : Added %q successfully to the PATH.\n", dir)
	return nil
}

// exit prints the error and terminates with code.
func exit(code int, format string, args ...interface{}) error {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(code)
	return nil
}
