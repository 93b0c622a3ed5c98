package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rosterize/rosterize/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage rosterize configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration file",
	Long: `Write the default configuration to the given path (default:
./config.yaml). API keys are referenced via ${ENV_VAR} placeholders and
resolved from the environment at run time.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "config.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Printf("Wrote default config to %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}
