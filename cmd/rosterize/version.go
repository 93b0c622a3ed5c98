package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rosterize/rosterize/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the rosterize version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rosterize %s\n", version.GitRelease)
	},
}
