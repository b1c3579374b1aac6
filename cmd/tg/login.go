package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"winkit/internal/telegram"
)

var loginForce bool

func init() {
	loginCmd.Flags().BoolVarP(&loginForce, "force", "f", false, "Force login, clearing any existing session")
	rootCmd.AddCommand(loginCmd)
}

var loginCmd = &cobra.Command{
	Use:   "login [phone]",
	Short: "Log in to Telegram",
	Long: `Log in to Telegram and save the session.

The phone number is taken from the argument, the TELEGRAM_NUMBER
environment variable, or an interactive prompt, in that order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	acct := mustLoadAccount()

	phone := acct.Number
	if len(args) == 1 {
		phone = args[0]
	}
	if phone == "" {
		var err error
		if phone, err = promptLine("Please enter a valid telegram number (+91): "); err != nil {
			exitWithError(ExitError, "%v", err)
		}
	}
	if _, err := telegram.ValidateNumber(phone); err != nil {
		exitWithError(ExitBadNumber, "%v", err)
	}

	if loginForce && acct.HasSession() {
		if err := acct.Logout(ctx); err != nil && !errors.Is(err, telegram.ErrNoSession) {
			exitWithError(exitCodeFor(err), "%v", err)
		}
	}

	active, err := acct.Verify(ctx)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if active {
		normalized, _ := telegram.ValidateNumber(phone)
		if normalized != acct.Number {
			exitWithError(ExitError, "active session found for %q; logout first (or) use -f/--force", acct.Number)
		}
		fmt.Println("Active session already exists.")
		return nil
	}

	if err := acct.SetNumber(phone); err != nil {
		exitWithError(exitCodeFor(err), "%v", err)
	}
	fmt.Printf("Starting login procedure for %q.\n", acct.Number)

	if err := acct.Login(ctx, termAuth{phone: acct.Number}); err != nil {
		exitWithError(ExitError, "%v", err)
	}
	fmt.Println("Logged in successfully and session saved.")
	return nil
}
