package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jeffamaxey/framecheck/internal/cli"
)

var describeCmd = &cobra.Command{
	Use:   "describe <data.csv>",
	Short: "Print the schema of a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Describe(os.Stdout, args[0])
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
