package cmd

import (
	"github.com/spf13/cobra"

	"github.com/conneroisu/templar-breakpoints/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:     "preview",
	Aliases: []string{"p"},
	Short:   "Write an HTML page for inspecting the icon",
	Long: `Write a standalone HTML page showing the icon at a large size next to a
table of breakpoints, label ids and media queries. Open it in a browser and
resize the window to watch the label change.

Examples:
  breakpoints preview                         # Writes breakpoints-preview.html
  breakpoints preview -o tmp/preview.html --title "Site breakpoints"`,
	RunE: runPreview,
}

const defaultPreviewFile = "breakpoints-preview.html"

var (
	previewFlags *StandardFlags
	previewTitle string
)

func init() {
	rootCmd.AddCommand(previewCmd)

	previewFlags = AddStandardFlags(previewCmd)
	previewCmd.Flags().StringVar(&previewTitle, "title", "", "Page title (defaults to the app name)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	env, err := loadEnvironment(ctx)
	if err != nil {
		return err
	}

	title := previewTitle
	if title == "" {
		title = env.result.App.Name
	}

	path := previewFlags.Output
	if path == "" {
		path = defaultPreviewFile
	}

	page := preview.Page(title, env.result.Breakpoints, env.result.App.Icon)
	if err := preview.WriteFile(ctx, path, page); err != nil {
		reportError(ctx, env.logger, err)
		return err
	}

	env.logger.Info(ctx, "Preview written", "path", path)
	return nil
}
