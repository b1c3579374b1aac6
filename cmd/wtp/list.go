package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"winkit/internal/wt"
)

var listOutput string

func init() {
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "yaml", "Output format: json, yaml or table")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all Windows Terminal profiles",
	Long: `List all Windows Terminal profiles.

Examples:
  wtp list
  wtp list -o table`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	store := mustOpenStore()
	profiles, err := store.List()
	if err != nil {
		exitWithError(exitCodeFor(err), "listing profiles: %v", err)
	}

	switch listOutput {
	case "json":
		outputJSON(profiles)
	case "yaml":
		data, err := yaml.Marshal(struct {
			Profiles []wt.Profile `yaml:"profiles"`
		}{Profiles: profiles})
		if err != nil {
			exitWithError(ExitError, "encoding profiles: %v", err)
		}
		fmt.Print(string(data))
	case "table":
		tbl := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("name", "guid", "commandline", "hidden", "icon")
		for _, p := range profiles {
			tbl.Row(p.Name, p.GUID, p.Commandline, strconv.FormatBool(p.Hidden), p.Icon)
		}
		fmt.Println(tbl)
	default:
		exitWithError(ExitError, "unknown output format %q (want json, yaml or table)", listOutput)
	}
	return nil
}
