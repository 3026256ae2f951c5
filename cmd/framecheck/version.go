package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeffamaxey/framecheck"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of framecheck",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("framecheck version %s\n", framecheck.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
