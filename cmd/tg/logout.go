package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"winkit/internal/telegram"
)

var logoutReset bool

func init() {
	logoutCmd.Flags().BoolVarP(&logoutReset, "reset", "r", false, "Also clear the stored API ID and hash")
	rootCmd.AddCommand(logoutCmd)
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out from Telegram",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

func runLogout(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	acct := mustLoadAccount()

	if err := acct.Logout(ctx); err != nil {
		if errors.Is(err, telegram.ErrNoSession) {
			exitWithError(ExitNoSession, "no active session found")
		}
		exitWithError(exitCodeFor(err), "%v", err)
	}
	fmt.Println("Logged out successfully.")

	if logoutReset {
		if err := acct.Reset(); err != nil {
			exitWithError(exitCodeFor(err), "%v", err)
		}
	}
	return nil
}
