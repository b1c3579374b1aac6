package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"winkit/internal/wt"
)

var (
	addExe  string
	addIcon string
)

func init() {
	addCmd.Flags().StringVar(&addExe, "exe", "", "Command line executable for the profile")
	addCmd.Flags().StringVar(&addIcon, "icon", "", "Optional icon for the profile")
	addCmd.MarkFlagRequired("exe")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add --exe <path> [--icon <path>] <name>",
	Short: "Add a new Windows Terminal profile",
	Long: `Add a new Windows Terminal profile.

The executable path is resolved to an absolute path and must exist. A
profile whose commandline matches an existing one replaces it.

Example:
  wtp add --exe C:\tools\pwsh.exe "PowerShell 7"`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	exe, err := resolveExisting(addExe)
	if err != nil {
		exitWithError(ExitError, "resolving --exe: %v", err)
	}
	icon := ""
	if addIcon != "" {
		if icon, err = resolveExisting(addIcon); err != nil {
			exitWithError(ExitError, "resolving --icon: %v", err)
		}
	}

	profile := wt.NewProfile(args[0], exe, icon)
	store := mustOpenStore()
	if err := store.Add(profile); err != nil {
		exitWithError(exitCodeFor(err), "adding profile: %v", err)
	}

	outputJSON(profile)
	printInfo("Profile added successfully")
	return nil
}

// resolveExisting turns path into an absolute path and checks it exists.
func resolveExisting(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("%s does not exist", abs)
	}
	return abs, nil
}
