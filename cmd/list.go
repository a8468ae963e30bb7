package cmd

import (
	"bytes"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/conneroisu/templar-breakpoints/internal/breakpoint"
	"github.com/conneroisu/templar-breakpoints/internal/icon"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List breakpoints in ascending order",
	Long: `List the configured breakpoints sorted by size, with the label id each one
gets in the icon and the media query that shows it.

Examples:
  breakpoints list                # Table
  breakpoints list -f json        # JSON
  breakpoints list -f yaml        # YAML`,
	RunE: runList,
}

var listFlags *StandardFlags

func init() {
	rootCmd.AddCommand(listCmd)

	listFlags = AddStandardFlags(listCmd, "table", "json", "yaml")
}

// listEntry is one row of list output.
type listEntry struct {
	Name       string           `json:"name" yaml:"name"`
	Value      breakpoint.Value `json:"value" yaml:"value"`
	Magnitude  float64          `json:"magnitude" yaml:"magnitude"`
	ID         string           `json:"id" yaml:"id"`
	MediaQuery string           `json:"media_query" yaml:"media_query"`
}

func listEntries(list breakpoint.List) []listEntry {
	entries := make([]listEntry, len(list))
	for i, bp := range list {
		// Normalized, so always finite
		magnitude, _ := bp.Value.Magnitude()
		entries[i] = listEntry{
			Name:       bp.Name,
			Value:      bp.Value,
			Magnitude:  magnitude,
			ID:         icon.GenerateID(i),
			MediaQuery: fmt.Sprintf("(width>=%s)", bp.Value.CSS()),
		}
	}
	return entries
}

func runList(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd.Context())
	if err != nil {
		return err
	}

	entries := listEntries(env.result.Breakpoints)

	var data []byte
	switch listFlags.Format {
	case "table":
		data, err = listTable(entries)
	default:
		data, err = encode(listFlags.Format, entries)
	}
	if err != nil {
		return err
	}
	return writeOutput(cmd, listFlags.Output, data)
}

func listTable(entries []listEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "NAME\tVALUE\tMAGNITUDE\tID\tMEDIA QUERY")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			e.Name, e.Value.String(), strconv.FormatFloat(e.Magnitude, 'f', -1, 64), e.ID, e.MediaQuery)
	}

	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
