package main

import (
	"github.com/spf13/cobra"

	"github.com/rosterize/rosterize/internal/output"
	"github.com/rosterize/rosterize/version"
)

var (
	cfgFile      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "rosterize",
	Short: "Extract provider roster data from emails into spreadsheet rows",
	Long: `Rosterize turns unstructured provider-roster emails into rows of a
standardized spreadsheet.

Each .eml file is reduced to plain text, sent to a text-completion model
with a fixed 17-field extraction schema, and the model's output is parsed,
repaired, and normalized so every output row covers every template column.
Values the model cannot determine are written as "Information not found".`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.rosterize/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "text", "output format: text, yaml, or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		output.SetFormat(outputFormat)
	}

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
