package main

import (
	"errors"

	"github.com/spf13/cobra"

	"winkit/internal/wt"
)

var (
	removeGUID string
	removeName string
)

func init() {
	removeCmd.Flags().StringVar(&removeGUID, "guid", "", "GUID of the profile to delete")
	removeCmd.Flags().StringVar(&removeName, "name", "", "Name of the profile to delete")
	removeCmd.MarkFlagsMutuallyExclusive("guid", "name")
	removeCmd.MarkFlagsOneRequired("guid", "name")
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove (--guid <g> | --name <n>)",
	Short: "Remove a Windows Terminal profile",
	Long: `Remove a Windows Terminal profile by GUID or by name.

Use either GUID or name, not both. When several profiles share a name the
first one in the list is removed.`,
	Args: cobra.NoArgs,
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	value, field := removeGUID, wt.ByGUID
	if removeName != "" {
		value, field = removeName, wt.ByName
	}

	store := mustOpenStore()
	removed, err := store.Remove(value, field)
	if err != nil {
		if errors.Is(err, wt.ErrProfileNotFound) {
			exitWithError(ExitError, "no profile to remove with %s = %s", field, value)
		}
		exitWithError(exitCodeFor(err), "removing profile: %v", err)
	}

	outputJSON(removed)
	printInfo("Profile removed successfully")
	return nil
}
