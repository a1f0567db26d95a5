// ABOUTME: CLI commands for data export and import.
// ABOUTME: Supports markdown report, JSON and YAML backups; import restores JSON.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fitlog/internal/export"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [markdown|json|yaml]",
	Short: "Export all data",
	Long: `Export the full application state.

FORMATS:

  markdown   human-readable training report (default)
  json       versioned backup, restorable with 'fitlog import'
  yaml       versioned backup

EXAMPLES:

  fitlog export                      # Markdown report to stdout
  fitlog export json -o backup.json  # JSON backup to a file`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := "markdown"
		if len(args) > 0 {
			format = args[0]
		}

		var out []byte
		var err error
		switch format {
		case "markdown", "md":
			out = []byte(export.Report(appState))
		case "json":
			out, err = export.JSON(appState)
		case "yaml", "yml":
			out, err = export.YAML(appState)
		default:
			return fmt.Errorf("unknown format: %s (use markdown, json, or yaml)", format)
		}
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		if exportOutput == "" {
			fmt.Print(string(out))
			return nil
		}
		if err := os.WriteFile(exportOutput, out, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		color.Green("✓ Exported %s to %s", format, exportOutput)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore from a JSON backup",
	Long: `Restore the full application state from a JSON backup created
with 'fitlog export json'. The current state is replaced entirely.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		state, err := export.ImportJSON(data)
		if err != nil {
			return fmt.Errorf("failed to import: %w", err)
		}

		if err := st.SaveState(state); err != nil {
			return fmt.Errorf("failed to save imported state: %w", err)
		}
		*appState = *state

		color.Green("✓ Imported %d session(s) and %d custom exercise(s)",
			len(state.Logs), len(state.CustomExercises))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
