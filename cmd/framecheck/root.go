package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "framecheck",
	Short: "framecheck validates the schema of tabular data",
	Long:  `Framecheck checks CSV files and query results against declared column contracts (names, dtypes, strictness) and can serve those checks over HTTP.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
