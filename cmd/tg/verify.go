package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the current session",
	Args:  cobra.NoArgs,
	RunE:  runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	acct := mustLoadAccount()

	active, err := acct.Verify(context.Background())
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if !active {
		exitWithError(ExitNoSession, "no active session found")
	}
	fmt.Printf("Active session found for %q.\n", acct.Number)
	return nil
}
