package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jeffamaxey/framecheck/internal/cli"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve schema checks over HTTP",
	Long:  `Loads every contract in the contracts directory and exposes POST /v1/check, GET /healthz and GET /metrics until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		contractsDir, _ := cmd.Flags().GetString("contracts")
		debug, _ := cmd.Flags().GetBool("debug")

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return cli.Serve(ctx, cli.ServeOptions{
			Addr:         addr,
			ContractsDir: contractsDir,
			Debug:        debug,
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "Listen address")
	serveCmd.Flags().String("contracts", "contracts", "Directory of YAML contract files")
	serveCmd.Flags().Bool("debug", false, "Enable debug logging")
}
