// Package main provides the tg CLI entry point.
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"winkit/internal/telegram"
	"winkit/internal/userenv"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tg",
	Short: "Manage the Telegram session stored in user environment variables",
	Long: `tg manages a Telegram login session.

Credentials (phone number, API ID, API hash) and the session string are
kept in the user's environment variables, so the session survives across
shells and reboots.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: systemCheck,
}

func init() {
	rootCmd.Version = Version
}

// systemCheck refuses to run where user environment variables cannot be
// persisted. A local .env is loaded first so development works anywhere.
func systemCheck(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()
	if runtime.GOOS != "windows" {
		exitWithError(ExitError, "this tool only supports Windows")
	}
	if err := userenv.Available(); err != nil {
		exitWithError(ExitEnvAccess, "user environment block unavailable: %v", err)
	}
	return nil
}

// mustLoadAccount reads the account from the environment, prompting for
// missing API credentials, and exits with the contract code on failure.
func mustLoadAccount() *telegram.Account {
	acct, err := telegram.Load(telegram.UserEnv{}, promptLine)
	if err != nil {
		exitWithError(exitCodeFor(err), "%v", err)
	}
	return acct
}

// exitCodeFor maps account errors onto the exit code contract.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, telegram.ErrPersist):
		return ExitEnvWrite
	case errors.Is(err, telegram.ErrInvalidNumber):
		return ExitBadNumber
	case errors.Is(err, telegram.ErrInvalidAPIID):
		return ExitBadAPIID
	case errors.Is(err, telegram.ErrInvalidAPIHash):
		return ExitBadHash
	case errors.Is(err, telegram.ErrNoSession):
		return ExitNoSession
	}
	return ExitError
}

// exitWithError writes an error message to stderr and exits.
func exitWithError(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "ERROR : "+format+"\n", args...)
	os.Exit(code)
}
