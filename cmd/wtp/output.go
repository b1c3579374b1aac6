package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printInfo writes a styled informational line to stdout.
func printInfo(format string, args ...interface{}) {
	fmt.Printf("%s - %s\n", infoStyle.Render("INFO"), fmt.Sprintf(format, args...))
}

// exitWithError writes a styled error to stderr and exits.
func exitWithError(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s - %s\n", errorStyle.Render("ERROR"), fmt.Sprintf(format, args...))
	os.Exit(code)
}
