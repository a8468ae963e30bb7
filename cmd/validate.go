package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/templar-breakpoints/internal/breakpoint"
	"github.com/conneroisu/templar-breakpoints/internal/icon"
)

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the breakpoint configuration and the generated icon",
	Long: `Validate the configuration and check the generated icon:

- Every breakpoint value starts with a finite number
- No two breakpoints share a value
- The icon has one label per breakpoint plus the "<smallest" label
- Media queries appear in ascending order, one per breakpoint

Examples:
  breakpoints validate                # Human readable summary
  breakpoints validate -f json        # Output results as JSON`,
	RunE: runValidateCommand,
}

var validateFlags *StandardFlags

func init() {
	rootCmd.AddCommand(validateCmd)

	validateFlags = AddStandardFlags(validateCmd, "text", "json", "yaml")
}

type ValidationSummary struct {
	Valid        bool         `json:"valid" yaml:"valid"`
	ConfigFile   string       `json:"config_file,omitempty" yaml:"config_file,omitempty"`
	Breakpoints  int          `json:"breakpoints" yaml:"breakpoints"`
	IconBytes    int          `json:"icon_bytes" yaml:"icon_bytes"`
	Labels       []icon.Label `json:"labels" yaml:"labels"`
	MediaQueries []string     `json:"media_queries" yaml:"media_queries"`
	Errors       []string     `json:"errors,omitempty" yaml:"errors,omitempty"`
}

func runValidateCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	env, err := loadEnvironment(ctx)
	if err != nil {
		return err
	}

	summary := auditIcon(env.result.Breakpoints, env.result.App.Icon)
	summary.ConfigFile = env.cfg.File

	var data []byte
	switch validateFlags.Format {
	case "text":
		data = validationText(summary)
	default:
		data, err = encode(validateFlags.Format, summary)
		if err != nil {
			return err
		}
	}
	if err := writeOutput(cmd, validateFlags.Output, data); err != nil {
		return err
	}

	if !summary.Valid {
		err := fmt.Errorf("validation failed: %d problems", len(summary.Errors))
		env.logger.Error(ctx, err, "Icon validation failed")
		return err
	}
	return nil
}

// auditIcon compares the icon markup against the list it was built from.
func auditIcon(list breakpoint.List, markup string) ValidationSummary {
	summary := ValidationSummary{
		Breakpoints: len(list),
		IconBytes:   len(markup),
	}

	report, err := icon.Audit(markup)
	if err != nil {
		summary.Errors = append(summary.Errors, err.Error())
		return summary
	}
	summary.Labels = report.Labels
	summary.MediaQueries = report.MediaQueries

	if len(report.Labels) != len(list)+1 {
		summary.Errors = append(summary.Errors,
			fmt.Sprintf("expected %d labels, found %d", len(list)+1, len(report.Labels)))
	}
	if len(report.MediaQueries) != len(list) {
		summary.Errors = append(summary.Errors,
			fmt.Sprintf("expected %d media queries, found %d", len(list), len(report.MediaQueries)))
	}

	for i, bp := range list {
		if i < len(report.MediaQueries) && report.MediaQueries[i] != bp.Value.CSS() {
			summary.Errors = append(summary.Errors,
				fmt.Sprintf("media query %d is %q, expected %q", i, report.MediaQueries[i], bp.Value.CSS()))
		}
		if i+1 < len(report.Labels) {
			label := report.Labels[i+1]
			if label.ID != icon.GenerateID(i) || label.Text != bp.Name {
				summary.Errors = append(summary.Errors,
					fmt.Sprintf("label %d is %s=%q, expected %s=%q", i, label.ID, label.Text, icon.GenerateID(i), bp.Name))
			}
		}
	}

	summary.Valid = len(summary.Errors) == 0
	return summary
}

func validationText(summary ValidationSummary) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Validation Summary:\n")
	if summary.ConfigFile != "" {
		fmt.Fprintf(&buf, "  Config file: %s\n", summary.ConfigFile)
	}
	fmt.Fprintf(&buf, "  Breakpoints: %d\n", summary.Breakpoints)
	fmt.Fprintf(&buf, "  Icon size: %d bytes\n", summary.IconBytes)
	fmt.Fprintln(&buf)

	for i, label := range summary.Labels {
		query := "default"
		if i > 0 && i-1 < len(summary.MediaQueries) {
			query = "width>=" + summary.MediaQueries[i-1]
		}
		fmt.Fprintf(&buf, "  #%-4s %-12s %s\n", label.ID, label.Text, query)
	}
	fmt.Fprintln(&buf)

	for _, msg := range summary.Errors {
		fmt.Fprintf(&buf, "❌ %s\n", msg)
	}
	if summary.Valid {
		fmt.Fprintln(&buf, "✅ Breakpoints and icon are valid!")
	}

	return buf.Bytes()
}
