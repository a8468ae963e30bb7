package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/templar-breakpoints/internal/version"
)

var (
	versionFlags    *StandardFlags
	versionShort    bool
	versionDetailed bool
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version information including:

- Semantic version number
- Git commit hash
- Build timestamp
- Go version used for compilation
- Target platform (OS/architecture)

Examples:
  breakpoints version              # Show version
  breakpoints version --detailed   # Show detailed version info
  breakpoints version -f json      # Output as JSON`,
	RunE: runVersionCommand,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionFlags = AddStandardFlags(versionCmd, "text", "json", "yaml")
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show short version only")
	versionCmd.Flags().BoolVar(&versionDetailed, "detailed", false, "Show detailed version information")
}

func runVersionCommand(cmd *cobra.Command, args []string) error {
	if versionFlags.Format != "text" {
		data, err := encode(versionFlags.Format, version.GetBuildInfo())
		if err != nil {
			return err
		}
		return writeOutput(cmd, versionFlags.Output, data)
	}

	var text string
	switch {
	case versionShort:
		text = version.GetShortVersion()
	case versionDetailed:
		text = version.GetDetailedVersion()
	default:
		info := version.GetBuildInfo()
		text = "breakpoints " + info.Version
		if info.GitCommit != "unknown" && len(info.GitCommit) >= 7 {
			text += fmt.Sprintf(" (%s)", info.GitCommit[:7])
		}
		if info.Dirty {
			text += " (dirty)"
		}
		text += fmt.Sprintf("\nBuilt with %s for %s", info.GoVersion, info.Platform)
	}

	return writeOutput(cmd, versionFlags.Output, []byte(text+"\n"))
}
