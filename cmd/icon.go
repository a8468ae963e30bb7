package cmd

import (
	"github.com/spf13/cobra"
)

var iconCmd = &cobra.Command{
	Use:     "icon",
	Aliases: []string{"i"},
	Short:   "Print the breakpoint icon SVG",
	Long: `Print the SVG icon built from the configured breakpoints.

The icon shows "<smallest" below the first breakpoint and the name of the
largest matching breakpoint above it, switching labels with CSS media queries.

Examples:
  breakpoints icon                      # Print to stdout
  breakpoints icon -o public/icon.svg   # Write to a file`,
	RunE: runIcon,
}

var iconFlags *StandardFlags

func init() {
	rootCmd.AddCommand(iconCmd)

	iconFlags = AddStandardFlags(iconCmd)
}

func runIcon(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd.Context())
	if err != nil {
		return err
	}

	return writeOutput(cmd, iconFlags.Output, []byte(env.result.App.Icon+"\n"))
}
