package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jeffamaxey/framecheck/internal/cli"
)

var checkCmd = &cobra.Command{
	Use:   "check <data.csv>",
	Short: "Validate a CSV file against a contract",
	Long:  `Reads the CSV file's header and dtypes and validates them against the contract file. Exits non-zero with the violation message when the schema does not match.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contractPath, _ := cmd.Flags().GetString("contract")
		strict, _ := cmd.Flags().GetBool("strict")

		return cli.Check(os.Stdout, cli.CheckOptions{
			DataPath:     args[0],
			ContractPath: contractPath,
			Strict:       strict,
		})
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringP("contract", "c", "", "Path to the YAML contract file")
	checkCmd.Flags().Bool("strict", false, "Reject columns the contract does not declare")
	checkCmd.MarkFlagRequired("contract")
}
